package parser

import (
	"fmt"

	"felix/internal/syntax"
)

// Marker указывает на Placeholder в журнале событий. Каждый Marker должен быть
// завершён ровно один раз через Complete, иначе это ошибка грамматики.
type Marker struct {
	pos int
}

// CompletedMarker указывает на StartNode уже завершённого узла.
type CompletedMarker struct {
	pos  int
	kind syntax.Kind
}

// Start открывает узел, вид которого станет известен позже.
func (p *Parser) Start() Marker {
	pos := len(p.events)
	p.events = append(p.events, Event{Kind: EvPlaceholder})
	p.open++
	return Marker{pos: pos}
}

// Complete заменяет Placeholder на StartNode{kind} и закрывает узел.
func (m Marker) Complete(p *Parser, kind syntax.Kind) CompletedMarker {
	ev := &p.events[m.pos]
	if ev.Kind != EvPlaceholder {
		panic(fmt.Sprintf("parser: marker at %d completed twice (slot holds %s)", m.pos, ev))
	}
	*ev = Event{Kind: EvStartNode, Node: kind}
	p.events = append(p.events, Event{Kind: EvFinishNode})
	p.open--
	return CompletedMarker{pos: m.pos, kind: kind}
}

// Kind returns the kind the marker was completed with.
func (m CompletedMarker) Kind() syntax.Kind { return m.kind }

// Precede открывает новый узел, который станет родителем уже завершённого m.
// Сами события m не двигаются: его StartNode получает ссылку вперёд на новый Placeholder.
func (m CompletedMarker) Precede(p *Parser) Marker {
	newM := p.Start()
	ev := &p.events[m.pos]
	if ev.Kind != EvStartNode {
		panic(fmt.Sprintf("parser: precede on %s at %d", ev, m.pos))
	}
	ev.ForwardParent = newM.pos - m.pos
	return newM
}
