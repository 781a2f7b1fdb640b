package rdf

import "testing"

func TestInferSubClassOf(t *testing.T) {
	dog := URI("http://ex.org/Dog")
	animal := URI("http://ex.org/Animal")
	in := []Triple{
		{Subj: dog, Pred: RDFSsubClassOf, Obj: animal},
	}
	out := InferSubClassOf(in)

	want := []Triple{
		{Subj: dog, Pred: RDFSsubClassOf, Obj: animal},
		{Subj: dog, Pred: RDFtype, Obj: RDFSClass},
		{Subj: animal, Pred: RDFtype, Obj: RDFSClass},
	}
	if len(out) != len(want) {
		t.Fatalf("InferSubClassOf returned %d triples, want %d: %v", len(out), len(want), out)
	}
	for _, w := range want {
		found := false
		for _, g := range out {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing inferred triple %v", w)
		}
	}
}

func TestInferSubClassOfNoMatchLeavesInputUnchanged(t *testing.T) {
	in := []Triple{
		{Subj: URI("http://ex.org/a"), Pred: URI("http://ex.org/p"), Obj: URI("http://ex.org/b")},
	}
	out := InferSubClassOf(in)
	if len(out) != 1 {
		t.Fatalf("InferSubClassOf on unrelated triples changed the count: got %d, want 1", len(out))
	}
}

func TestInferSubClassOfObjectMustBeSubject(t *testing.T) {
	in := []Triple{
		{Subj: URI("http://ex.org/a"), Pred: RDFSsubClassOf, Obj: NewLiteral("not a class")},
	}
	out := InferSubClassOf(in)
	// Neither side is inferred: the rule is gated on the object being an
	// IRI or blank node, and a Literal is neither.
	if len(out) != 1 {
		t.Fatalf("InferSubClassOf with a literal object returned %d triples, want 1: %v", len(out), out)
	}
}
