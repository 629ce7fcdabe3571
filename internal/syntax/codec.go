package syntax

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// current schema of the green tree encoding; bump when greenRecord changes
const greenSchemaVersion uint16 = 1

// greenRecord is one element of a preorder dump. Nodes carry the number of
// direct children, tokens carry their text.
type greenRecord struct {
	Kind  uint8  `msgpack:"k"`
	Arity uint32 `msgpack:"n,omitempty"`
	Text  string `msgpack:"t,omitempty"`
}

type greenDump struct {
	Schema  uint16        `msgpack:"v"`
	Records []greenRecord `msgpack:"r"`
}

var ErrBadGreenEncoding = errors.New("syntax: malformed green tree encoding")

// EncodeGreen serializes a green tree with msgpack.
func EncodeGreen(root *GreenNode) ([]byte, error) {
	dump := greenDump{Schema: greenSchemaVersion}
	dump.Records = appendRecords(dump.Records, root)
	return msgpack.Marshal(&dump)
}

func appendRecords(out []greenRecord, el GreenElement) []greenRecord {
	switch g := el.(type) {
	case *GreenToken:
		return append(out, greenRecord{Kind: uint8(g.kind), Text: g.text})
	case *GreenNode:
		out = append(out, greenRecord{Kind: uint8(g.kind), Arity: uint32(len(g.children))}) // #nosec G115 -- bounded by width
		for _, c := range g.children {
			out = appendRecords(out, c)
		}
	}
	return out
}

// DecodeGreen rebuilds a tree produced by EncodeGreen. Tokens and small nodes
// are interned through cache (nil means a private cache).
func DecodeGreen(data []byte, cache *NodeCache) (*GreenNode, error) {
	var dump greenDump
	if err := msgpack.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("syntax: decode green tree: %w", err)
	}
	if dump.Schema != greenSchemaVersion {
		return nil, fmt.Errorf("%w: schema %d, want %d", ErrBadGreenEncoding, dump.Schema, greenSchemaVersion)
	}
	if len(dump.Records) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadGreenEncoding)
	}
	d := decoder{records: dump.Records, builder: NewBuilder(cache)}
	if err := d.element(); err != nil {
		return nil, err
	}
	if d.pos != len(d.records) {
		return nil, fmt.Errorf("%w: %d trailing records", ErrBadGreenEncoding, len(d.records)-d.pos)
	}
	if Kind(d.records[0].Kind).IsToken() {
		return nil, fmt.Errorf("%w: root is a token", ErrBadGreenEncoding)
	}
	return d.builder.Finish(), nil
}

type decoder struct {
	records []greenRecord
	pos     int
	builder *Builder
}

func (d *decoder) element() error {
	if d.pos >= len(d.records) {
		return fmt.Errorf("%w: truncated", ErrBadGreenEncoding)
	}
	rec := d.records[d.pos]
	d.pos++
	kind := Kind(rec.Kind)
	switch {
	case kind.IsToken():
		if d.builder.Depth() == 0 {
			return fmt.Errorf("%w: token outside of node", ErrBadGreenEncoding)
		}
		d.builder.Token(kind, rec.Text)
		return nil
	case kind.IsNode():
		d.builder.StartNode(kind)
		for range rec.Arity {
			if err := d.element(); err != nil {
				return err
			}
		}
		d.builder.FinishNode()
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d at record %d", ErrBadGreenEncoding, rec.Kind, d.pos-1)
	}
}
