package parser

import (
	"fmt"

	"felix/internal/syntax"
)

type EventKind uint8

const (
	// EvPlaceholder резервирует место под StartNode, пока вид узла неизвестен.
	EvPlaceholder EventKind = iota
	EvStartNode
	EvAddToken
	EvFinishNode
	EvError
	// evConsumed - StartNode, уже открытый sink'ом через цепочку forward parent.
	evConsumed
)

func (k EventKind) String() string {
	switch k {
	case EvPlaceholder:
		return "Placeholder"
	case EvStartNode:
		return "StartNode"
	case EvAddToken:
		return "AddToken"
	case EvFinishNode:
		return "FinishNode"
	case EvError:
		return "Error"
	case evConsumed:
		return "consumed"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event - элемент плоского журнала, который парсер пишет вместо дерева.
type Event struct {
	Kind EventKind
	// Node задан для EvStartNode.
	Node syntax.Kind
	// ForwardParent: если не 0, этот узел вкладывается в узел, чей StartNode
	// лежит на ForwardParent событий дальше.
	ForwardParent int
	// Err задан для EvError.
	Err *ParseError
}

func (e Event) String() string {
	switch e.Kind {
	case EvStartNode:
		if e.ForwardParent != 0 {
			return fmt.Sprintf("StartNode(%s, +%d)", e.Node, e.ForwardParent)
		}
		return fmt.Sprintf("StartNode(%s)", e.Node)
	case EvError:
		return "Error(" + e.Err.String() + ")"
	default:
		return e.Kind.String()
	}
}
