package rdf

import "testing"

func buildAdapterTestGraph(t *testing.T) *Graph {
	t.Helper()
	b := NewGraphBuilder(Width64)
	triples := []Triple{
		{Subj: URI("http://ex.org/alice"), Pred: RDFtype, Obj: URI("http://ex.org/Person")},
		{Subj: URI("http://ex.org/bob"), Pred: RDFtype, Obj: URI("http://ex.org/Person")},
	}
	for _, tr := range triples {
		if err := b.Add(tr); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return b.Finalize()
}

func TestOntologyAdapterPreloadedIRI(t *testing.T) {
	g := buildAdapterTestGraph(t)
	a := NewOntologyAdapter(g, []URI{RDFtype, "", URI("http://ex.org/Person")})

	u, ok := a.PreloadedIRI(0)
	if !ok || u != RDFtype {
		t.Errorf("index 0: got (%v, %v), want (%v, true)", u, ok, RDFtype)
	}
	if _, ok := a.PreloadedIRI(1); ok {
		t.Error("index 1 is an empty URI, should report not-present")
	}
	if _, ok := a.PreloadedIRI(99); ok {
		t.Error("out-of-range index should report not-present")
	}
	if _, ok := a.PreloadedIRI(-1); ok {
		t.Error("negative index should report not-present")
	}
}

func TestOntologyAdapterIterSubjectPredicate(t *testing.T) {
	g := buildAdapterTestGraph(t)
	a := NewOntologyAdapter(g, nil)

	got := a.IterSubjectPredicate(URI("http://ex.org/alice"), RDFtype)
	if len(got) != 1 || got[0].Obj != Term(URI("http://ex.org/Person")) {
		t.Errorf("got %v, want a single triple with object ex:Person", got)
	}
}

func TestOntologyAdapterIterObjectPredicate(t *testing.T) {
	g := buildAdapterTestGraph(t)
	a := NewOntologyAdapter(g, nil)

	got := a.IterObjectPredicate(URI("http://ex.org/Person"), RDFtype)
	if len(got) != 2 {
		t.Errorf("got %d triples, want 2", len(got))
	}
}
