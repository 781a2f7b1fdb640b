package rdf

// InferSubClassOf appends the triples trivially entailed by the one
// inference rule this package implements: every
// (x, rdfs:subClassOf, y) triple whose object y is an IRI or blank node
// entails that both x and y are instances of rdfs:Class; a literal y
// entails nothing. It is applied to the flat triple stream the
// parser produces, before those triples are handed to a GraphBuilder.
func InferSubClassOf(triples []Triple) []Triple {
	extra := make([]Triple, 0)
	for _, t := range triples {
		if t.Pred != RDFSsubClassOf {
			continue
		}
		obj, ok := t.Obj.(Subject)
		if !ok {
			continue
		}
		extra = append(extra, Triple{Subj: t.Subj, Pred: RDFtype, Obj: RDFSClass})
		extra = append(extra, Triple{Subj: obj, Pred: RDFtype, Obj: RDFSClass})
	}
	if len(extra) == 0 {
		return triples
	}
	return append(triples, extra...)
}
