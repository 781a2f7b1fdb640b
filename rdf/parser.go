package rdf

import (
	"io"
	"strings"
)

// terminatorSet is a small membership set of token types, used to tell
// parsePredicateObjectList where a predicateObjectList production is
// allowed to end (a top-level statement ends at '.', a blank node
// property list ends at ']').
type terminatorSet map[tokenType]bool

// Parser turns a stream of Turtle or N-Triples tokens into Triples. It
// tracks @prefix/@base (and their SPARQL-style PREFIX/BASE spellings)
// declarations and blank node label scoping for the lifetime of a
// single document, mirroring the original's StatementIterator.
type Parser struct {
	s  *scanner
	ns *Namespaces

	labels    map[string]BlankNode
	nextBlank uint32

	queue    []Triple
	buffered *token
	done     error
}

// NewParser returns a Parser reading Turtle/N-Triples from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{
		s:      newScanner(r),
		ns:     NewNamespaces(),
		labels: make(map[string]BlankNode),
	}
}

// Namespaces returns the prefix/base bindings accumulated so far.
func (p *Parser) Namespaces() *Namespaces { return p.ns }

// Next returns the next Triple, or io.EOF once the document is
// exhausted. Directives are consumed silently; they do not produce a
// Triple.
func (p *Parser) Next() (Triple, error) {
	for len(p.queue) == 0 {
		if p.done != nil {
			return Triple{}, p.done
		}
		tok := p.next()
		switch tok.Type {
		case tokenEOF:
			p.done = io.EOF
			return Triple{}, io.EOF
		case tokenIllegal:
			p.done = p.errf(KindParseError, "%s", p.s.Error)
			return Triple{}, p.done
		}
		if err := p.parseTopLevel(tok); err != nil {
			p.done = err
			return Triple{}, err
		}
	}
	t := p.queue[0]
	p.queue = p.queue[1:]
	return t, nil
}

// ParseAll drains the Parser, returning every Triple in the document.
func ParseAll(r io.Reader) ([]Triple, *Namespaces, error) {
	p := NewParser(r)
	var out []Triple
	for {
		t, err := p.Next()
		if err == io.EOF {
			return out, p.ns, nil
		}
		if err != nil {
			return out, p.ns, err
		}
		out = append(out, t)
	}
}

// ParseInto drains r, adding every parsed triple to b.
func ParseInto(r io.Reader, b *GraphBuilder) (*Namespaces, error) {
	p := NewParser(r)
	for {
		t, err := p.Next()
		if err == io.EOF {
			return p.ns, nil
		}
		if err != nil {
			return p.ns, err
		}
		if err := b.Add(t); err != nil {
			return p.ns, err
		}
	}
}

func (p *Parser) next() token {
	if p.buffered != nil {
		t := *p.buffered
		p.buffered = nil
		return t
	}
	return p.s.Scan()
}

func (p *Parser) peek() token {
	if p.buffered == nil {
		t := p.s.Scan()
		p.buffered = &t
	}
	return *p.buffered
}

func (p *Parser) emit(t Triple) { p.queue = append(p.queue, t) }

func (p *Parser) getBlank(label string) BlankNode {
	if bn, ok := p.labels[label]; ok {
		return bn
	}
	bn := BlankNode(p.nextBlank)
	p.nextBlank++
	p.labels[label] = bn
	return bn
}

func (p *Parser) newBlank() BlankNode {
	bn := BlankNode(p.nextBlank)
	p.nextBlank++
	return bn
}

func (p *Parser) errf(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return newParseError(kind, p.s.Row, p.s.Col, format, args...)
}

func (p *Parser) parseTopLevel(tok token) error {
	switch {
	case tok.Type == tokenDot:
		return nil
	case tok.Type == tokenLangTag && strings.EqualFold(tok.Text, "prefix"):
		return p.parsePrefixDirective(true)
	case tok.Type == tokenLangTag && strings.EqualFold(tok.Text, "base"):
		return p.parseBaseDirective(true)
	case tok.Type == tokenWord && strings.EqualFold(tok.Text, "prefix"):
		return p.parsePrefixDirective(false)
	case tok.Type == tokenWord && strings.EqualFold(tok.Text, "base"):
		return p.parseBaseDirective(false)
	default:
		return p.parseTriples(tok)
	}
}

func (p *Parser) parsePrefixDirective(requireDot bool) error {
	nameTok := p.next()
	if nameTok.Type != tokenWord {
		return p.errf(KindParseError, "expected prefix name, got %s %q", nameTok.Type, nameTok.Text)
	}
	prefix := strings.TrimSuffix(nameTok.Text, ":")

	uriTok := p.next()
	if uriTok.Type != tokenURI {
		return p.errf(KindParseError, "expected namespace IRI, got %s %q", uriTok.Type, uriTok.Text)
	}
	p.ns.Set(prefix, NewURI(uriTok.Text).Resolve(p.ns.Base))

	if requireDot {
		if d := p.next(); d.Type != tokenDot {
			return p.errf(KindParseError, "expected '.' after @prefix directive, got %s", d.Type)
		}
	}
	return nil
}

func (p *Parser) parseBaseDirective(requireDot bool) error {
	uriTok := p.next()
	if uriTok.Type != tokenURI {
		return p.errf(KindParseError, "expected IRI, got %s %q", uriTok.Type, uriTok.Text)
	}
	u := NewURI(uriTok.Text)
	if !isAbsolute(string(u)) && p.ns.Base == "" {
		return p.errf(KindInvalidBase, "base IRI %q is not absolute", u)
	}
	p.ns.SetBase(u)

	if requireDot {
		if d := p.next(); d.Type != tokenDot {
			return p.errf(KindParseError, "expected '.' after @base directive, got %s", d.Type)
		}
	}
	return nil
}

var atDot = terminatorSet{tokenDot: true}
var atCloseBracket = terminatorSet{tokenCloseBracket: true}

func (p *Parser) parseTriples(tok token) error {
	subj, err := p.parseSubjectTerm(tok)
	if err != nil {
		return err
	}
	end, err := p.parsePredicateObjectList(subj, atDot)
	if err != nil {
		return err
	}
	if end.Type != tokenDot {
		return p.errf(KindParseError, "expected '.' to end statement, got %s", end.Type)
	}
	return nil
}

// parsePredicateObjectList consumes ";"-separated predicate/objectList
// groups for subj, stopping at (and returning, without consuming
// twice) whichever token in terms is seen first.
func (p *Parser) parsePredicateObjectList(subj Subject, terms terminatorSet) (token, error) {
	for {
		tok := p.next()
		if terms[tok.Type] {
			return tok, nil
		}

		var pred URI
		if tok.Type == tokenWord && tok.Text == "a" {
			pred = RDFtype
		} else {
			u, err := p.resolveIRI(tok)
			if err != nil {
				return token{}, err
			}
			pred = u
		}

		if err := p.parseObjectList(subj, pred); err != nil {
			return token{}, err
		}

		sep := p.next()
		if terms[sep.Type] {
			return sep, nil
		}
		if sep.Type != tokenSemicolon {
			return token{}, p.errf(KindParseError, "expected ';' or end of statement, got %s", sep.Type)
		}
		// a trailing ';' may be followed directly by the terminator
		if nxt := p.peek(); terms[nxt.Type] {
			return p.next(), nil
		}
	}
}

func (p *Parser) parseObjectList(subj Subject, pred URI) error {
	for {
		tok := p.next()
		obj, err := p.parseObjectTerm(tok)
		if err != nil {
			return err
		}
		p.emit(Triple{Subj: subj, Pred: pred, Obj: obj})

		if p.peek().Type != tokenComma {
			return nil
		}
		p.next()
	}
}

func (p *Parser) resolveIRI(tok token) (URI, error) {
	switch tok.Type {
	case tokenURI:
		return NewURI(tok.Text).Resolve(p.ns.Base), nil
	case tokenWord:
		u, err := p.ns.Resolve(tok.Text)
		if err != nil {
			return "", p.errf(KindUnknownPrefix, "%s", err)
		}
		return u, nil
	default:
		return "", p.errf(KindParseError, "expected IRI or prefixed name, got %s %q", tok.Type, tok.Text)
	}
}

func (p *Parser) parseSubjectTerm(tok token) (Subject, error) {
	switch tok.Type {
	case tokenBNode:
		return p.getBlank(tok.Text), nil
	case tokenOpenBracket:
		return p.parseBlankNodePropertyList()
	case tokenOpenParen:
		return p.parseCollection()
	case tokenWord:
		if tok.Text == "a" {
			return nil, p.errf(KindParseError, "'a' is not a valid subject")
		}
		return p.resolveIRI(tok)
	case tokenURI:
		return p.resolveIRI(tok)
	default:
		return nil, p.errf(KindParseError, "expected subject, got %s %q", tok.Type, tok.Text)
	}
}

func (p *Parser) parseObjectTerm(tok token) (Term, error) {
	switch tok.Type {
	case tokenBNode:
		return p.getBlank(tok.Text), nil
	case tokenOpenBracket:
		return p.parseBlankNodePropertyList()
	case tokenOpenParen:
		return p.parseCollection()
	case tokenLiteral:
		return p.parseLiteralTail(tok.Text)
	case tokenWord:
		return p.parseBareWordObject(tok.Text)
	case tokenURI:
		return p.resolveIRI(tok)
	default:
		return nil, p.errf(KindParseError, "expected object, got %s %q", tok.Type, tok.Text)
	}
}

func (p *Parser) parseBlankNodePropertyList() (BlankNode, error) {
	bn := p.newBlank()
	if p.peek().Type == tokenCloseBracket {
		p.next()
		return bn, nil
	}
	end, err := p.parsePredicateObjectList(bn, atCloseBracket)
	if err != nil {
		return 0, err
	}
	if end.Type != tokenCloseBracket {
		return 0, p.errf(KindParseError, "expected ']', got %s", end.Type)
	}
	return bn, nil
}

func (p *Parser) parseCollection() (Subject, error) {
	var items []Term
	for {
		if p.peek().Type == tokenCloseParen {
			p.next()
			break
		}
		item, err := p.parseObjectTerm(p.next())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return RDFnil, nil
	}

	head := p.newBlank()
	cur := Subject(head)
	for i, item := range items {
		p.emit(Triple{Subj: cur, Pred: RDFfirst, Obj: item})
		if i == len(items)-1 {
			p.emit(Triple{Subj: cur, Pred: RDFrest, Obj: RDFnil})
			break
		}
		next := p.newBlank()
		p.emit(Triple{Subj: cur, Pred: RDFrest, Obj: next})
		cur = next
	}
	return head, nil
}

// parseLiteralTail builds the Literal following a scanned string body,
// consuming an optional "^^datatype" or "@lang" suffix.
func (p *Parser) parseLiteralTail(value string) (Term, error) {
	switch p.peek().Type {
	case tokenLangTag:
		tag := p.next()
		return NewLangLiteral(value, tag.Text), nil
	case tokenTypeMarker:
		p.next()
		dt, err := p.resolveIRI(p.next())
		if err != nil {
			return nil, err
		}
		return NewTypedLiteral(value, dt), nil
	default:
		return NewTypedLiteral(value, XSDstring), nil
	}
}

func (p *Parser) parseBareWordObject(text string) (Term, error) {
	switch text {
	case "true", "false":
		return NewTypedLiteral(text, XSDboolean), nil
	}
	if looksNumeric(text) {
		return NewTypedLiteral(text, numericDatatype(text)), nil
	}
	if text == "a" {
		return nil, p.errf(KindParseError, "'a' is not a valid object")
	}
	return p.resolveIRI(token{Type: tokenWord, Text: text})
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '+', '-', '.':
		return len(s) > 1
	default:
		return s[0] >= '0' && s[0] <= '9'
	}
}

func numericDatatype(s string) URI {
	switch {
	case strings.ContainsAny(s, "eE"):
		return XSDdouble
	case strings.Contains(s, "."):
		return XSDdecimal
	default:
		return XSDinteger
	}
}
