package ntriples

import (
	"bytes"
	"strings"
	"testing"

	"github.com/boutros/ttlgraph/rdf"
)

func TestWriteAllRoundTrips(t *testing.T) {
	b := rdf.NewGraphBuilder(rdf.Width64)
	triples := []rdf.Triple{
		{Subj: rdf.URI("http://ex.org/a"), Pred: rdf.RDFtype, Obj: rdf.URI("http://ex.org/Thing")},
		{Subj: rdf.URI("http://ex.org/a"), Pred: rdf.URI("http://ex.org/name"), Obj: rdf.NewLiteral("Alice")},
		{Subj: rdf.URI("http://ex.org/a"), Pred: rdf.URI("http://ex.org/greeting"), Obj: rdf.NewLangLiteral("hei", "no")},
	}
	for _, tr := range triples {
		if err := b.Add(tr); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	g := b.Finalize()

	var buf bytes.Buffer
	if err := Dump(&buf, g); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	out, _, err := rdf.ParseAll(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-parsing dumped output: %v", err)
	}
	if len(out) != len(triples) {
		t.Fatalf("round-trip produced %d triples, want %d\noutput:\n%s", len(out), len(triples), buf.String())
	}

	b2 := rdf.NewGraphBuilder(rdf.Width64)
	for _, tr := range out {
		b2.Add(tr)
	}
	g2 := b2.Finalize()
	if g2.Len() != g.Len() {
		t.Errorf("round-tripped graph has %d triples, want %d", g2.Len(), g.Len())
	}
	for _, tr := range triples {
		if !g2.Has(tr) {
			t.Errorf("round-tripped graph is missing %v", tr)
		}
	}
}

func TestWriteTripleFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	tr := rdf.Triple{Subj: rdf.URI("http://ex.org/a"), Pred: rdf.RDFtype, Obj: rdf.NewLiteral("x")}
	if err := w.WriteTriple(tr); err != nil {
		t.Fatalf("WriteTriple: %v", err)
	}
	w.Flush()
	got := buf.String()
	want := tr.String() + "\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
