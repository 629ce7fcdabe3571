package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"felix/internal/diag"
	"felix/internal/parser"
	"felix/internal/source"
	"felix/internal/syntax"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// ErrCacheSchema is returned for payloads written by another schema version.
var ErrCacheSchema = errors.New("disk cache: schema mismatch")

// Digest is the SHA-256 of a file's normalized content.
type Digest = [32]byte

// DiskCache хранит результаты разбора по хэшу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the on-disk form of one parse result.
type DiskPayload struct {
	Schema      uint16             `msgpack:"schema"`
	Green       []byte             `msgpack:"green"` // syntax.EncodeGreen
	Errors      []CachedParseError `msgpack:"errors"`
	Diagnostics []CachedDiagnostic `msgpack:"diags"`
}

type CachedParseError struct {
	Expected []uint8 `msgpack:"expected"`
	Found    uint8   `msgpack:"found"`
	Start    uint32  `msgpack:"start"`
	End      uint32  `msgpack:"end"`
}

// CachedDiagnostic is a diagnostic without its file id and notes.
// Fix edits are assumed to target the same file.
type CachedDiagnostic struct {
	Severity uint8       `msgpack:"sev"`
	Code     uint16      `msgpack:"code"`
	Start    uint32      `msgpack:"start"`
	End      uint32      `msgpack:"end"`
	Message  string      `msgpack:"msg"`
	Fixes    []CachedFix `msgpack:"fixes,omitempty"`
}

type CachedFix struct {
	Title string       `msgpack:"title"`
	Edits []CachedEdit `msgpack:"edits"`
}

type CachedEdit struct {
	Start   uint32 `msgpack:"start"`
	End     uint32 `msgpack:"end"`
	NewText string `msgpack:"text"`
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("disk cache: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("disk cache: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не держать всё в одном каталоге
	return filepath.Join(c.dir, "parse", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, fmt.Errorf("%w: got %d, want %d", ErrCacheSchema, out.Schema, diskCacheSchemaVersion)
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o750); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// Store caches a finished parse result together with the file's diagnostics.
func (c *DiskCache) Store(key Digest, res *parser.Result, diags []diag.Diagnostic) error {
	if c == nil {
		return nil
	}
	payload, err := resultToDiskPayload(res, diags)
	if err != nil {
		return err
	}
	return c.Put(key, payload)
}

// Load restores a parse result for file; ok is false on a miss.
func (c *DiskCache) Load(key Digest, file source.FileID) (res *parser.Result, diags []diag.Diagnostic, ok bool, err error) {
	var payload DiskPayload
	found, err := c.Get(key, &payload)
	if err != nil || !found {
		return nil, nil, false, err
	}
	res, diags, err = diskPayloadToResult(&payload, file)
	if err != nil {
		return nil, nil, false, err
	}
	return res, diags, true, nil
}

func resultToDiskPayload(res *parser.Result, diags []diag.Diagnostic) (*DiskPayload, error) {
	green, err := syntax.EncodeGreen(res.Green())
	if err != nil {
		return nil, err
	}
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Green:       green,
		Errors:      make([]CachedParseError, 0, len(res.Errors())),
		Diagnostics: make([]CachedDiagnostic, 0, len(diags)),
	}
	for _, e := range res.Errors() {
		ce := CachedParseError{
			Expected: make([]uint8, len(e.Expected)),
			Found:    uint8(e.Found),
			Start:    e.Range.Start,
			End:      e.Range.End,
		}
		for i, k := range e.Expected {
			ce.Expected[i] = uint8(k)
		}
		payload.Errors = append(payload.Errors, ce)
	}
	for _, d := range diags {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, f := range d.Fixes {
			cf := CachedFix{Title: f.Title, Edits: make([]CachedEdit, 0, len(f.Edits))}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, CachedEdit{Start: e.Span.Start, End: e.Span.End, NewText: e.NewText})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload, nil
}

func diskPayloadToResult(payload *DiskPayload, file source.FileID) (*parser.Result, []diag.Diagnostic, error) {
	green, err := syntax.DecodeGreen(payload.Green, nil)
	if err != nil {
		return nil, nil, err
	}
	errs := make([]parser.ParseError, 0, len(payload.Errors))
	for _, ce := range payload.Errors {
		pe := parser.ParseError{
			Expected: make([]syntax.Kind, len(ce.Expected)),
			Found:    syntax.Kind(ce.Found),
			Range:    syntax.TextRange{Start: ce.Start, End: ce.End},
		}
		if !pe.Found.Valid() {
			return nil, nil, fmt.Errorf("disk cache: invalid kind %d", ce.Found)
		}
		for i, k := range ce.Expected {
			pe.Expected[i] = syntax.Kind(k)
			if !pe.Expected[i].Valid() {
				return nil, nil, fmt.Errorf("disk cache: invalid kind %d", k)
			}
		}
		errs = append(errs, pe)
	}
	diags := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		d := diag.New(
			diag.Severity(cd.Severity),
			diag.Code(cd.Code),
			source.Span{File: file, Start: cd.Start, End: cd.End},
			cd.Message,
		)
		for _, cf := range cd.Fixes {
			edits := make([]diag.FixEdit, 0, len(cf.Edits))
			for _, e := range cf.Edits {
				edits = append(edits, diag.FixEdit{Span: source.Span{File: file, Start: e.Start, End: e.End}, NewText: e.NewText})
			}
			d = d.WithFix(cf.Title, edits...)
		}
		diags = append(diags, d)
	}
	return parser.NewResult(green, errs), diags, nil
}
