package rdf

import (
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []token {
	t.Helper()
	s := newScanner(strings.NewReader(input))
	var toks []token
	for {
		tok := s.Scan()
		if s.Error != "" {
			t.Fatalf("scan error at %s: %s", tok.Text, s.Error)
		}
		if tok.Type == tokenEOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestScanURI(t *testing.T) {
	toks := scanAll(t, `<http://ex.org/a> <http://ex.org/b> <http://ex.org/c> .`)
	want := []token{
		{tokenURI, "http://ex.org/a"},
		{tokenURI, "http://ex.org/b"},
		{tokenURI, "http://ex.org/c"},
		{tokenDot, ""},
	}
	assertTokens(t, toks, want)
}

func TestScanLiteralWithLangTag(t *testing.T) {
	toks := scanAll(t, `"hello"@en-US`)
	want := []token{
		{tokenLiteral, "hello"},
		{tokenLangTag, "en-US"},
	}
	assertTokens(t, toks, want)
}

func TestScanLiteralWithDatatype(t *testing.T) {
	toks := scanAll(t, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	want := []token{
		{tokenLiteral, "42"},
		{tokenTypeMarker, ""},
		{tokenURI, "http://www.w3.org/2001/XMLSchema#integer"},
	}
	assertTokens(t, toks, want)
}

func TestScanLongLiteralSpansLines(t *testing.T) {
	toks := scanAll(t, "\"\"\"line one\nline two\"\"\"")
	want := []token{
		{tokenLiteral, "line one\nline two"},
	}
	assertTokens(t, toks, want)
}

func TestScanEscapedLiteral(t *testing.T) {
	toks := scanAll(t, `"a\tb\ncA"`)
	want := []token{
		{tokenLiteral, "a\tb\ncA"},
	}
	assertTokens(t, toks, want)
}

func TestScanBlankNode(t *testing.T) {
	toks := scanAll(t, `_:b0 _:b1 .`)
	want := []token{
		{tokenBNode, "b0"},
		{tokenBNode, "b1"},
		{tokenDot, ""},
	}
	assertTokens(t, toks, want)
}

func TestScanPrefixedName(t *testing.T) {
	toks := scanAll(t, `ex:foo a ex:Bar .`)
	want := []token{
		{tokenWord, "ex:foo"},
		{tokenWord, "a"},
		{tokenWord, "ex:Bar"},
		{tokenDot, ""},
	}
	assertTokens(t, toks, want)
}

func TestScanCollectionAndBrackets(t *testing.T) {
	toks := scanAll(t, `( 1 2 ) [ ex:p ex:o ]`)
	want := []token{
		{tokenOpenParen, ""},
		{tokenWord, "1"},
		{tokenWord, "2"},
		{tokenCloseParen, ""},
		{tokenOpenBracket, ""},
		{tokenWord, "ex:p"},
		{tokenWord, "ex:o"},
		{tokenCloseBracket, ""},
	}
	assertTokens(t, toks, want)
}

func TestScanComment(t *testing.T) {
	toks := scanAll(t, "ex:a ex:b ex:c . # a trailing comment\nex:d ex:e ex:f .")
	if len(toks) != 8 {
		t.Fatalf("got %d tokens, want 8 (comment should be skipped): %v", len(toks), toks)
	}
}

func TestScanDecimalNumber(t *testing.T) {
	toks := scanAll(t, `.5 -3.14 1.0e10`)
	want := []token{
		{tokenWord, ".5"},
		{tokenWord, "-3.14"},
		{tokenWord, "1.0e10"},
	}
	assertTokens(t, toks, want)
}

func TestScanUnterminatedLiteralIsIllegal(t *testing.T) {
	s := newScanner(strings.NewReader(`"unterminated`))
	tok := s.Scan()
	if tok.Type != tokenIllegal {
		t.Fatalf("got token type %s, want Illegal", tok.Type)
	}
	if s.Error == "" {
		t.Errorf("expected a non-empty Error message")
	}
}

func assertTokens(t *testing.T, got, want []token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i].Type != want[i].Type {
			t.Errorf("token %d: type = %s, want %s (text %q)", i, got[i].Type, want[i].Type, got[i].Text)
			continue
		}
		if want[i].Text != "" && got[i].Text != want[i].Text {
			t.Errorf("token %d: text = %q, want %q", i, got[i].Text, want[i].Text)
		}
	}
}
