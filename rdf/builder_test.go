package rdf

import "testing"

func TestGraphBuilderAddAndFinalize(t *testing.T) {
	b := NewGraphBuilder(Width64)
	bn := b.NewBlankNode()

	triples := []Triple{
		{Subj: URI("http://ex.org/a"), Pred: RDFtype, Obj: URI("http://ex.org/Thing")},
		{Subj: URI("http://ex.org/a"), Pred: URI("http://ex.org/name"), Obj: NewLiteral("Alice")},
		{Subj: URI("http://ex.org/a"), Pred: URI("http://ex.org/lang"), Obj: NewLangLiteral("bonjour", "FR")},
		{Subj: bn, Pred: URI("http://ex.org/knows"), Obj: URI("http://ex.org/a")},
	}
	for _, tr := range triples {
		if err := b.Add(tr); err != nil {
			t.Fatalf("Add(%v) = %v", tr, err)
		}
	}
	if b.Len() != len(triples) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(triples))
	}

	g := b.Finalize()
	if g.Len() != len(triples) {
		t.Fatalf("g.Len() = %d, want %d", g.Len(), len(triples))
	}
	if g.NumBlankNodes() != 1 {
		t.Fatalf("g.NumBlankNodes() = %d, want 1", g.NumBlankNodes())
	}

	for _, tr := range triples {
		if !g.Has(tr) {
			t.Errorf("graph does not contain %v", tr)
		}
	}
}

func TestGraphBuilderDeduplicates(t *testing.T) {
	b := NewGraphBuilder(Width64)
	tr := Triple{Subj: URI("http://ex.org/a"), Pred: RDFtype, Obj: URI("http://ex.org/Thing")}
	b.Add(tr)
	b.Add(tr)
	b.Add(tr)
	g := b.Finalize()
	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after adding the same triple three times", g.Len())
	}
}

func TestGraphBuilderTooManyTerms(t *testing.T) {
	b := NewGraphBuilder(Width64)
	var err error
	for i := uint32(0); i <= Width64.MaxTermID()+1; i++ {
		tr := Triple{Subj: URI("http://ex.org/a"), Pred: RDFtype, Obj: NewLiteral(int(i))}
		if err = b.Add(tr); err != nil {
			break
		}
	}
	if err != ErrTooManyTerms {
		t.Fatalf("expected ErrTooManyTerms once the object id space overflows, got %v", err)
	}
}

func TestGraphBuilderLangCaseFold(t *testing.T) {
	b := NewGraphBuilder(Width64)
	subj := URI("http://ex.org/a")
	pred := URI("http://ex.org/label")
	b.Add(Triple{Subj: subj, Pred: pred, Obj: NewLangLiteral("hi", "EN-us")})
	g := b.Finalize()
	out := g.IterSubjectPredicate(subj, pred)
	if len(out) != 1 {
		t.Fatalf("expected 1 triple, got %d", len(out))
	}
	lit := out[0].Obj.(Literal)
	if lit.Lang() != "en-us" {
		t.Errorf("Lang() = %q, want lowercased %q", lit.Lang(), "en-us")
	}
}
