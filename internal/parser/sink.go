package parser

import (
	"fmt"

	"felix/internal/syntax"
)

// sink за один проход по журналу событий собирает дерево и возвращает в него
// trivia, которые парсер пропускал.
type sink struct {
	tokens  []Token
	cursor  int
	events  []Event
	builder *syntax.Builder
	errors  []ParseError
}

func newSink(tokens []Token, events []Event, cache *syntax.NodeCache) *sink {
	return &sink{
		tokens:  tokens,
		events:  events,
		builder: syntax.NewBuilder(cache),
	}
}

func (s *sink) finish() (*syntax.GreenNode, []ParseError) {
	var kinds []syntax.Kind
	for idx := range s.events {
		ev := s.events[idx]
		s.events[idx] = Event{Kind: evConsumed}

		switch ev.Kind {
		case EvStartNode:
			kinds = s.forwardParents(kinds[:0], idx, ev)
			for i := len(kinds) - 1; i >= 0; i-- {
				s.builder.StartNode(kinds[i])
			}
		case EvAddToken:
			s.token()
		case EvFinishNode:
			s.builder.FinishNode()
		case EvError:
			s.errors = append(s.errors, *ev.Err)
		case evConsumed:
			// уже открыт как предок через forward parent
		case EvPlaceholder:
			panic(fmt.Sprintf("parser: unresolved placeholder at event %d", idx))
		default:
			panic(fmt.Sprintf("parser: unknown event %s at %d", ev.Kind, idx))
		}

		s.eatTrivia()
	}

	if s.cursor != len(s.tokens) {
		panic(fmt.Sprintf("parser: sink left %d token(s) unconsumed", len(s.tokens)-s.cursor))
	}
	return s.builder.Finish(), s.errors
}

// forwardParents собирает цепочку вида [сам узел, родитель, прародитель, ...].
func (s *sink) forwardParents(kinds []syntax.Kind, idx int, ev Event) []syntax.Kind {
	kinds = append(kinds, ev.Node)
	fp := ev.ForwardParent
	for fp != 0 {
		idx += fp
		if fp < 0 || idx >= len(s.events) {
			panic(fmt.Sprintf("parser: forward parent %+d points outside of %d events", fp, len(s.events)))
		}
		parent := s.events[idx]
		if parent.Kind != EvStartNode {
			panic(fmt.Sprintf("parser: forward parent at %d is %s, not StartNode", idx, parent.Kind))
		}
		s.events[idx] = Event{Kind: evConsumed}
		kinds = append(kinds, parent.Node)
		fp = parent.ForwardParent
	}
	return kinds
}

func (s *sink) token() {
	if s.cursor >= len(s.tokens) {
		panic("parser: AddToken past the end of the token buffer")
	}
	tok := s.tokens[s.cursor]
	s.builder.Token(tok.Kind, tok.Text)
	s.cursor++
}

func (s *sink) eatTrivia() {
	for s.cursor < len(s.tokens) && s.tokens[s.cursor].Kind.IsTrivia() {
		s.token()
	}
}
