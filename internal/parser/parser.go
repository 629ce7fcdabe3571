package parser

import (
	"fmt"
	"slices"

	"felix/internal/syntax"
)

// Parser - состояние парсера на один буфер токенов. Дерево он не строит:
// пишет журнал событий, из которого дерево собирает sink.
type Parser struct {
	source   *Source
	events   []Event
	expected []syntax.Kind // что проверяли с момента последнего bump
	open     int           // незавершённые маркеры
}

func newParser(tokens []Token) *Parser {
	return &Parser{
		source: NewSource(tokens),
		events: make([]Event, 0, len(tokens)*2+2),
	}
}

// Events разбирает токены и возвращает журнал событий.
// Паникует, если грамматика оставила незавершённый маркер.
func Events(tokens []Token) []Event {
	p := newParser(tokens)
	root(p)
	return p.finish()
}

// finish отдаёт журнал; открытый маркер здесь - ошибка грамматики.
func (p *Parser) finish() []Event {
	if p.open != 0 {
		panic(fmt.Sprintf("parser: %d marker(s) left uncompleted", p.open))
	}
	return p.events
}

func (p *Parser) peek() (syntax.Kind, bool) {
	return p.source.PeekKind()
}

// bump съедает следующий значимый токен в текущий узел.
func (p *Parser) bump() {
	p.expected = p.expected[:0]
	if _, ok := p.source.NextToken(); !ok {
		panic("parser: bump at end of input")
	}
	p.events = append(p.events, Event{Kind: EvAddToken})
}

// at проверяет вид следующего токена и запоминает его как ожидаемый.
func (p *Parser) at(kind syntax.Kind) bool {
	if !slices.Contains(p.expected, kind) {
		p.expected = append(p.expected, kind)
	}
	k, ok := p.peek()
	return ok && k == kind
}

func (p *Parser) atSet(set []syntax.Kind) bool {
	k, ok := p.peek()
	return ok && slices.Contains(set, k)
}

func (p *Parser) atEnd() bool {
	_, ok := p.peek()
	return !ok
}

func (p *Parser) expect(kind syntax.Kind) {
	if p.at(kind) {
		p.bump()
		return
	}
	p.error()
}

// error записывает ParseError и, если это не граница оператора и не конец
// ввода, заворачивает один токен в узел Error, чтобы разбор продвинулся.
func (p *Parser) error() {
	var (
		found syntax.Kind
		rng   syntax.TextRange
	)
	if tok, ok := p.source.PeekToken(); ok {
		found, rng = tok.Kind, tok.Range
	} else {
		found = syntax.EOF
		if last, ok := p.source.LastTokenRange(); ok {
			rng = last
		}
	}
	p.events = append(p.events, Event{
		Kind: EvError,
		Err: &ParseError{
			Expected: slices.Clone(p.expected),
			Found:    found,
			Range:    rng,
		},
	})

	if !p.atSet(recoverySet[:]) && !p.atEnd() {
		m := p.Start()
		p.bump()
		m.Complete(p, syntax.ErrorNode)
	}
}
