package rdf

import "sort"

// Graph is an immutable, in-memory RDF graph: two sorted, deduplicated
// arrays of compact triples (SPO, subject-major, and OPS,
// object-major) over two shared string tables. It is built once, by a
// GraphBuilder, and never mutated afterwards — the write-once lifecycle
// of the original's GraphWriter -> Graph transition.
//
// A Graph produced by Canonicalize shares its string tables with the
// Graph it was derived from; only the index arrays are rebuilt.
type Graph struct {
	strings *StringTable // subject/predicate/object IRIs + literal lexical values
	dtlang  *StringTable // datatype IRIs and language tags
	width   Width

	spo []packed
	ops []packed

	highestBlank uint32
}

// Len returns the number of distinct triples in the Graph.
func (g *Graph) Len() int { return len(g.spo) }

// Width reports the bit-width of the Graph's compact encoding.
func (g *Graph) Width() Width { return g.width }

// NumBlankNodes returns one past the highest blank node id
// materialized while building (by NewBlankNode or by Add). Every blank
// node id in the Graph lies in [0, NumBlankNodes); an id in that range
// need not occur in any triple.
func (g *Graph) NumBlankNodes() uint32 { return g.highestBlank }

func (g *Graph) resolveSubject(f fields) Subject {
	if f.subjectIsIRI {
		return URI(g.strings.String(f.subjectID))
	}
	return BlankNode(f.subjectID)
}

func (g *Graph) resolveObject(f fields) Term {
	switch f.kind {
	case ObjectIRI:
		return URI(g.strings.String(f.objectID))
	case ObjectBlankNode:
		return BlankNode(f.objectID)
	case ObjectLiteral:
		return NewTypedLiteral(g.strings.String(f.objectID), URI(g.dtlang.String(f.dtOrLangID)))
	case ObjectLiteralLang:
		return NewLangLiteral(g.strings.String(f.objectID), g.dtlang.String(f.dtOrLangID))
	}
	panic("rdf: invalid object kind")
}

func (g *Graph) tripleFromSPO(p packed) Triple {
	f := decodeSPO(p, g.width)
	return Triple{Subj: g.resolveSubject(f), Pred: URI(g.strings.String(f.predicateID)), Obj: g.resolveObject(f)}
}

func (g *Graph) tripleFromOPS(p packed) Triple {
	f := decodeOPS(p, g.width)
	return Triple{Subj: g.resolveSubject(f), Pred: URI(g.strings.String(f.predicateID)), Obj: g.resolveObject(f)}
}

// All returns every triple in the Graph, in SPO order.
func (g *Graph) All() []Triple {
	out := make([]Triple, len(g.spo))
	for i, p := range g.spo {
		out[i] = g.tripleFromSPO(p)
	}
	return out
}

func searchRange(s []packed, lo, hi packed) []packed {
	i := sort.Search(len(s), func(i int) bool { return !s[i].less(lo) })
	j := sort.Search(len(s), func(i int) bool { return !s[i].less(hi) })
	if j < i {
		j = i
	}
	return s[i:j]
}

func (g *Graph) subjectFields(s Subject) (fields, bool) {
	var f fields
	switch v := s.(type) {
	case URI:
		id, ok := g.strings.ID(string(v))
		if !ok {
			return f, false
		}
		f.subjectIsIRI = true
		f.subjectID = id
	case BlankNode:
		f.subjectIsIRI = false
		f.subjectID = uint32(v)
	default:
		return f, false
	}
	return f, true
}

// IterSubject returns every triple with the given subject, in
// predicate-then-object order.
func (g *Graph) IterSubject(s Subject) []Triple {
	f, ok := g.subjectFields(s)
	if !ok {
		return nil
	}
	lo := encodeSPO(f, g.width)
	hi := bumpSubjectSPO(lo, g.width)
	rng := searchRange(g.spo, lo, hi)
	out := make([]Triple, len(rng))
	for i, p := range rng {
		out[i] = g.tripleFromSPO(p)
	}
	return out
}

// IterSubjectPredicate returns every triple with the given subject and
// predicate.
func (g *Graph) IterSubjectPredicate(s Subject, pred URI) []Triple {
	f, ok := g.subjectFields(s)
	if !ok {
		return nil
	}
	predID, ok := g.strings.ID(string(pred))
	if !ok {
		return nil
	}
	f.predicateID = predID
	lo := encodeSPO(f, g.width)
	hi := bumpPredicateSPO(lo, g.width)
	rng := searchRange(g.spo, lo, hi)
	out := make([]Triple, len(rng))
	for i, p := range rng {
		out[i] = g.tripleFromSPO(p)
	}
	return out
}

func (g *Graph) objectFieldsPrefix(o Term) (fields, bool) {
	var f fields
	switch v := o.(type) {
	case URI:
		id, ok := g.strings.ID(string(v))
		if !ok {
			return f, false
		}
		f.kind = ObjectIRI
		f.objectID = id
	case BlankNode:
		f.kind = ObjectBlankNode
		f.objectID = uint32(v)
	case Literal:
		id, ok := g.strings.ID(v.value)
		if !ok {
			return f, false
		}
		f.objectID = id
		if v.language != "" {
			f.kind = ObjectLiteralLang
			dtID, ok := g.dtlang.ID(v.language)
			if !ok {
				return f, false
			}
			f.dtOrLangID = dtID
		} else {
			f.kind = ObjectLiteral
			dtID, ok := g.dtlang.ID(string(v.datatype))
			if !ok {
				return f, false
			}
			f.dtOrLangID = dtID
		}
	default:
		return f, false
	}
	return f, true
}

// IterObject returns every triple with the given object.
func (g *Graph) IterObject(o Term) []Triple {
	f, ok := g.objectFieldsPrefix(o)
	if !ok {
		return nil
	}
	lo := encodeOPS(f, g.width)
	hi := bumpObjectOPS(lo, g.width)
	rng := searchRange(g.ops, lo, hi)

	literal := f.kind == ObjectLiteral || f.kind == ObjectLiteralLang
	out := make([]Triple, 0, len(rng))
	for _, p := range rng {
		// The (kind, objectID) range brackets every triple sharing this
		// lexical form, but for literals it still spans every
		// datatype/language sharing that id; narrow to the exact one.
		if literal && decodeOPS(p, g.width).dtOrLangID != f.dtOrLangID {
			continue
		}
		out = append(out, g.tripleFromOPS(p))
	}
	return out
}

// IterObjectPredicate returns every triple with the given object and
// predicate.
func (g *Graph) IterObjectPredicate(o Term, pred URI) []Triple {
	f, ok := g.objectFieldsPrefix(o)
	if !ok {
		return nil
	}
	predID, ok := g.strings.ID(string(pred))
	if !ok {
		return nil
	}
	f.predicateID = predID
	lo := encodeOPS(f, g.width)
	hi := bumpPredicateOPS(lo, g.width)
	rng := searchRange(g.ops, lo, hi)
	out := make([]Triple, len(rng))
	for i, p := range rng {
		out[i] = g.tripleFromOPS(p)
	}
	return out
}

// IterSubjectBlankNodes returns every distinct blank node appearing in
// subject position, in ascending id order. Blank-subject triples sort
// first in SPO (the subject-is-IRI flag is the encoding's most
// significant bit), so this is a single contiguous prefix scan.
func (g *Graph) IterSubjectBlankNodes() []BlankNode {
	var out []BlankNode
	var last uint32
	seen := false
	for _, p := range g.spo {
		f := decodeSPO(p, g.width)
		if f.subjectIsIRI {
			break
		}
		if !seen || f.subjectID != last {
			out = append(out, BlankNode(f.subjectID))
			last, seen = f.subjectID, true
		}
	}
	return out
}

// IterObjectBlankNodes returns every distinct blank node appearing in
// object position, in ascending id order. Blank-object triples form a
// contiguous run in OPS (object kind is the encoding's most
// significant field, and ObjectBlankNode sorts right after ObjectIRI).
func (g *Graph) IterObjectBlankNodes() []BlankNode {
	var out []BlankNode
	var last uint32
	seen := false
	for _, p := range g.ops {
		f := decodeOPS(p, g.width)
		if f.kind < ObjectBlankNode {
			continue
		}
		if f.kind > ObjectBlankNode {
			break
		}
		if !seen || f.objectID != last {
			out = append(out, BlankNode(f.objectID))
			last, seen = f.objectID, true
		}
	}
	return out
}

// Has reports whether t is present in the Graph.
func (g *Graph) Has(t Triple) bool {
	f, ok := g.subjectFields(t.Subj)
	if !ok {
		return false
	}
	predID, ok := g.strings.ID(string(t.Pred))
	if !ok {
		return false
	}
	f.predicateID = predID
	of, ok := g.objectFieldsPrefix(t.Obj)
	if !ok {
		return false
	}
	f.kind, f.objectID, f.dtOrLangID = of.kind, of.objectID, of.dtOrLangID
	target := encodeSPO(f, g.width)
	i := sort.Search(len(g.spo), func(i int) bool { return !g.spo[i].less(target) })
	return i < len(g.spo) && g.spo[i].equal(target)
}
