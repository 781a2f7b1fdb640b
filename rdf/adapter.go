package rdf

// OntologyAdapter is a thin façade in front of a Graph for generated
// ontology bindings: it holds a set of preloaded, commonly-referenced
// IRIs by index (e.g. the handful of rdf:/rdfs: terms a generated
// vocabulary package needs to look up on every call) alongside the
// Graph's two range-query entry points, so generated code never needs
// to see the Graph's iterator machinery directly.
type OntologyAdapter struct {
	graph *Graph
	iris  []URI
}

// NewOntologyAdapter returns an OntologyAdapter over graph, with iris
// available by index through PreloadedIRI. An empty URI ("") at index
// i means no IRI is preloaded there.
func NewOntologyAdapter(graph *Graph, iris []URI) *OntologyAdapter {
	return &OntologyAdapter{graph: graph, iris: iris}
}

// PreloadedIRI returns the IRI preloaded at index i, and whether one
// was present.
func (a *OntologyAdapter) PreloadedIRI(i int) (URI, bool) {
	if i < 0 || i >= len(a.iris) || a.iris[i] == "" {
		return "", false
	}
	return a.iris[i], true
}

// IterSubjectPredicate delegates to the underlying Graph's
// subject+predicate range query.
func (a *OntologyAdapter) IterSubjectPredicate(subject Subject, predicate URI) []Triple {
	return a.graph.IterSubjectPredicate(subject, predicate)
}

// IterObjectPredicate delegates to the underlying Graph's
// object+predicate range query.
func (a *OntologyAdapter) IterObjectPredicate(object Term, predicate URI) []Triple {
	return a.graph.IterObjectPredicate(object, predicate)
}
