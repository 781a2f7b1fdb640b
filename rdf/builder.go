package rdf

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// ErrTooManyTerms is returned by GraphBuilder.Add when interning a new
// term would exceed the id space of the builder's Width.
var ErrTooManyTerms = fmt.Errorf("rdf: too many distinct terms for this graph width")

// GraphBuilder accumulates triples and finalizes them into an
// immutable Graph. It mirrors the original's GraphWriter: per-triple
// interning into two string tables (one shared by IRIs and literal
// lexical forms, one for datatype IRIs and language tags), a
// last-seen cache for each of the four positions that tend to repeat
// across consecutive input triples (subject IRI, predicate, datatype,
// language), and a collect/finalize pass that sorts and deduplicates.
type GraphBuilder struct {
	width Width

	strings *stringCollector // subject/predicate/object IRIs + literal lexical values
	dtlang  *stringCollector // datatype IRIs and language tags

	triples []packed // built in SPO layout, using build-time (insertion-order) ids

	// blankIDs is the dense set of blank node ids materialized so far,
	// whether allocated by NewBlankNode or assigned by a caller (e.g.
	// the parser's own label counter) and fed straight into Add. The
	// builder's high-water mark is always bitmap.Maximum()+1, so a
	// blank id introduced through either path is reflected immediately.
	blankIDs *roaring.Bitmap

	// last-seen caches, checked before doing a map lookup
	prevSubjectIRI  string
	prevSubjectID   uint32
	prevSubjectOK   bool
	prevPredicate   string
	prevPredicateID uint32
	prevPredicateOK bool
	prevDatatype    string
	prevDatatypeID  uint32
	prevDatatypeOK  bool
	prevLang        string
	prevLangID      uint32
	prevLangOK      bool
}

// NewGraphBuilder returns an empty GraphBuilder using the given Width.
func NewGraphBuilder(width Width) *GraphBuilder {
	return &GraphBuilder{
		width:    width,
		strings:  newStringCollector(),
		dtlang:   newStringCollector(),
		blankIDs: roaring.New(),
	}
}

// highWater returns the smallest blank node id not yet materialized:
// one past the highest id recorded in blankIDs, or 0 if none have been.
func (b *GraphBuilder) highWater() uint32 {
	if b.blankIDs.IsEmpty() {
		return 0
	}
	return b.blankIDs.Maximum() + 1
}

// NewBlankNode allocates a fresh blank node id, scoped to the graph
// under construction.
func (b *GraphBuilder) NewBlankNode() BlankNode {
	id := b.highWater()
	b.blankIDs.Add(id)
	return BlankNode(id)
}

func (b *GraphBuilder) internSubjectIRI(s string) uint32 {
	if b.prevSubjectOK && b.prevSubjectIRI == s {
		return b.prevSubjectID
	}
	id := b.strings.intern(s)
	b.prevSubjectIRI, b.prevSubjectID, b.prevSubjectOK = s, id, true
	return id
}

func (b *GraphBuilder) internPredicate(s string) uint32 {
	if b.prevPredicateOK && b.prevPredicate == s {
		return b.prevPredicateID
	}
	id := b.strings.intern(s)
	b.prevPredicate, b.prevPredicateID, b.prevPredicateOK = s, id, true
	return id
}

func (b *GraphBuilder) internDatatype(s string) uint32 {
	if b.prevDatatypeOK && b.prevDatatype == s {
		return b.prevDatatypeID
	}
	id := b.dtlang.intern(s)
	b.prevDatatype, b.prevDatatypeID, b.prevDatatypeOK = s, id, true
	return id
}

func (b *GraphBuilder) internLang(s string) uint32 {
	if b.prevLangOK && b.prevLang == s {
		return b.prevLangID
	}
	id := b.dtlang.intern(s)
	b.prevLang, b.prevLangID, b.prevLangOK = s, id, true
	return id
}

// Add interns and appends a single triple. It returns ErrTooManyTerms
// if doing so would overflow the builder's Width.
func (b *GraphBuilder) Add(t Triple) error {
	var f fields

	switch s := t.Subj.(type) {
	case URI:
		f.subjectIsIRI = true
		f.subjectID = b.internSubjectIRI(string(s))
	case BlankNode:
		f.subjectIsIRI = false
		f.subjectID = uint32(s)
		b.blankIDs.Add(uint32(s))
	default:
		return fmt.Errorf("rdf: unsupported subject type %T", t.Subj)
	}

	f.predicateID = b.internPredicate(string(t.Pred))

	switch o := t.Obj.(type) {
	case URI:
		f.kind = ObjectIRI
		f.objectID = b.internSubjectIRI(string(o))
	case BlankNode:
		f.kind = ObjectBlankNode
		f.objectID = uint32(o)
		b.blankIDs.Add(uint32(o))
	case Literal:
		f.objectID = b.strings.intern(o.value)
		if o.language != "" {
			f.kind = ObjectLiteralLang
			f.dtOrLangID = b.internLang(o.language)
		} else {
			f.kind = ObjectLiteral
			f.dtOrLangID = b.internDatatype(string(o.datatype))
		}
	default:
		return fmt.Errorf("rdf: unsupported object type %T", t.Obj)
	}

	if f.subjectIsIRI && f.subjectID > b.width.MaxTermID() ||
		f.predicateID > b.width.MaxTermID() ||
		(f.kind == ObjectIRI || f.kind == ObjectLiteral || f.kind == ObjectLiteralLang) && f.objectID > b.width.MaxTermID() ||
		f.dtOrLangID > b.width.MaxDatatypeOrLangID() {
		return ErrTooManyTerms
	}

	b.triples = append(b.triples, encodeSPO(f, b.width))
	return nil
}

// Len returns the number of triples added so far (before
// deduplication).
func (b *GraphBuilder) Len() int { return len(b.triples) }

// Finalize sorts and deduplicates the accumulated triples, remaps
// their string ids to the dense, lexicographically-ordered ids
// collect() produces, builds the OPS index, and returns the resulting
// immutable Graph. The builder must not be used afterwards.
func (b *GraphBuilder) Finalize() *Graph {
	sortedStrings, remapStrings := b.strings.collect()
	sortedDtLang, remapDtLang := b.dtlang.collect()

	spo := make([]packed, len(b.triples))
	for i, p := range b.triples {
		f := decodeSPO(p, b.width)
		if f.subjectIsIRI {
			f.subjectID = remapStrings[f.subjectID]
		}
		f.predicateID = remapStrings[f.predicateID]
		switch f.kind {
		case ObjectIRI:
			f.objectID = remapStrings[f.objectID]
		case ObjectLiteral, ObjectLiteralLang:
			f.objectID = remapStrings[f.objectID]
			f.dtOrLangID = remapDtLang[f.dtOrLangID]
		}
		spo[i] = encodeSPO(f, b.width)
	}

	sort.Slice(spo, func(i, j int) bool { return spo[i].less(spo[j]) })
	spo = dedupSorted(spo)

	ops := make([]packed, len(spo))
	for i, p := range spo {
		ops[i] = encodeOPS(decodeSPO(p, b.width), b.width)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].less(ops[j]) })

	return &Graph{
		strings:      &StringTable{strs: sortedStrings},
		dtlang:       &StringTable{strs: sortedDtLang},
		width:        b.width,
		spo:          spo,
		ops:          ops,
		highestBlank: b.highWater(),
	}
}

func dedupSorted(s []packed) []packed {
	if len(s) == 0 {
		return s
	}
	n := 1
	for i := 1; i < len(s); i++ {
		if !s[i].equal(s[n-1]) {
			s[n] = s[i]
			n++
		}
	}
	return s[:n]
}
