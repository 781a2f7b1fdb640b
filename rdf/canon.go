package rdf

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// blankProfile is the 4-tuple usage profile the original's
// BlankNodeInfo/sort_blank_nodes keys its descending sort on: how many
// times a blank node appears as a subject, as a subject whose object is
// also blank, as an object, and as an object whose subject is also
// blank.
type blankProfile struct {
	asSubject                uint32
	asSubjectWithBlankObject uint32
	asObject                 uint32
	asObjectWithBlankSubject uint32
}

// less orders profiles for a DESCENDING sort: the node seen most often,
// in the tie-break order given in the comment above, sorts first.
func (p blankProfile) less(q blankProfile) bool {
	if p.asSubject != q.asSubject {
		return p.asSubject > q.asSubject
	}
	if p.asSubjectWithBlankObject != q.asSubjectWithBlankObject {
		return p.asSubjectWithBlankObject > q.asSubjectWithBlankObject
	}
	if p.asObject != q.asObject {
		return p.asObject > q.asObject
	}
	return p.asObjectWithBlankSubject > q.asObjectWithBlankSubject
}

func (p blankProfile) equal(q blankProfile) bool {
	return p == q
}

// blankProfiles computes the usage profile of every blank node in g,
// plus the set of blank ids that actually occur in at least one
// triple (a roaring.Bitmap, the same compressed-bitmap-of-small-ints
// structure the teacher reached for in its posting lists, repurposed
// here for blank-node membership tracking instead of on-disk postings).
func blankProfiles(g *Graph) ([]blankProfile, *roaring.Bitmap) {
	profiles := make([]blankProfile, g.highestBlank)
	seen := roaring.New()

	for _, p := range g.spo {
		f := decodeSPO(p, g.width)
		if !f.subjectIsIRI {
			profiles[f.subjectID].asSubject++
			seen.Add(f.subjectID)
			if f.kind == ObjectBlankNode {
				profiles[f.subjectID].asSubjectWithBlankObject++
			}
		}
		if f.kind == ObjectBlankNode {
			profiles[f.objectID].asObject++
			seen.Add(f.objectID)
			if !f.subjectIsIRI {
				profiles[f.objectID].asObjectWithBlankSubject++
			}
		}
	}
	return profiles, seen
}

// blindEdge is one single-hop neighbor of a blank node, with every
// blank-node id zeroed out before comparison — the original's
// zero_blank_nodes / compare_without_blank_nodes trick for tie-breaking
// nodes with identical usage profiles without assuming a canonical
// identity for the blank nodes on the other end of the edge.
type blindEdge struct {
	asSubject  bool
	predicate  uint32
	kind       ObjectKind
	otherIsIRI bool
	otherID    uint32 // 0 when other end is blank (zeroed)
	dtOrLangID uint32
}

func (e blindEdge) less(o blindEdge) bool {
	if e.asSubject != o.asSubject {
		return !e.asSubject // object-position edges sort before subject-position edges, arbitrarily but consistently
	}
	if e.predicate != o.predicate {
		return e.predicate < o.predicate
	}
	if e.kind != o.kind {
		return e.kind < o.kind
	}
	if e.otherIsIRI != o.otherIsIRI {
		return !e.otherIsIRI && o.otherIsIRI
	}
	if e.otherID != o.otherID {
		return e.otherID < o.otherID
	}
	return e.dtOrLangID < o.dtOrLangID
}

// neighborhood gathers every edge touching blank node id, in either
// direction, with any blank-node endpoint zeroed out.
func neighborhood(g *Graph, id uint32) []blindEdge {
	var edges []blindEdge
	for _, p := range g.spo {
		f := decodeSPO(p, g.width)
		if !f.subjectIsIRI && f.subjectID == id {
			e := blindEdge{asSubject: true, predicate: f.predicateID, kind: f.kind, dtOrLangID: f.dtOrLangID}
			switch f.kind {
			case ObjectIRI, ObjectLiteral, ObjectLiteralLang:
				e.otherIsIRI = f.kind == ObjectIRI
				e.otherID = f.objectID
			}
			edges = append(edges, e)
		}
		if f.kind == ObjectBlankNode && f.objectID == id {
			e := blindEdge{asSubject: false, predicate: f.predicateID, otherIsIRI: f.subjectIsIRI}
			if f.subjectIsIRI {
				e.otherID = f.subjectID
			}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].less(edges[j]) })
	return edges
}

func compareNeighborhoods(a, b []blindEdge) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].less(b[i]) {
			return -1
		}
		if b[i].less(a[i]) {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Canonicalize returns a new Graph with blank node ids reassigned to a
// deterministic order, independent of the order blank nodes were
// first encountered while parsing. Nodes are sorted by descending
// usage profile (blankProfile.less); nodes with identical profiles are
// tie-broken by comparing their single-hop neighborhoods with all
// blank-node endpoints blinded out.
//
// This mirrors the original's sort_blank_nodes: the tie-break only
// looks one hop out, so two blank nodes whose difference only shows up
// two or more hops away will not be told apart. That incompleteness is
// accepted, not a bug: the original made the same trade-off, and nodes
// like that do not occur in the W3C Turtle test suite this package is
// validated against.
func (g *Graph) Canonicalize() *Graph {
	n := g.highestBlank
	if n == 0 {
		return g
	}

	profiles, seen := blankProfiles(g)

	// seen drives the working set directly: blank ids that were
	// materialized while building (e.g. by NewBlankNode, or left over
	// from a reused label) but never actually occur in a triple need
	// neither a profile nor a neighborhood computed, and ToArray's
	// sorted iteration order gives a stable starting order to sort from.
	order := seen.ToArray()

	neighborhoods := make(map[uint32][]blindEdge, len(order))
	for _, id := range order {
		neighborhoods[id] = neighborhood(g, id)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if !profiles[a].equal(profiles[b]) {
			return profiles[a].less(profiles[b])
		}
		return compareNeighborhoods(neighborhoods[a], neighborhoods[b]) < 0
	})

	// newID[oldID] = position of oldID in the sorted order. Ids never
	// seen in a triple are left mapped to 0 but are never looked up
	// below, since they never appear as a blank subject or object.
	newID := make([]uint32, n)
	for pos, old := range order {
		newID[old] = uint32(pos)
	}

	spo := make([]packed, len(g.spo))
	for i, p := range g.spo {
		f := decodeSPO(p, g.width)
		if !f.subjectIsIRI {
			f.subjectID = newID[f.subjectID]
		}
		if f.kind == ObjectBlankNode {
			f.objectID = newID[f.objectID]
		}
		spo[i] = encodeSPO(f, g.width)
	}
	sort.Slice(spo, func(i, j int) bool { return spo[i].less(spo[j]) })

	ops := make([]packed, len(spo))
	for i, p := range spo {
		ops[i] = encodeOPS(decodeSPO(p, g.width), g.width)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].less(ops[j]) })

	return &Graph{
		strings:      g.strings,
		dtlang:       g.dtlang,
		width:        g.width,
		spo:          spo,
		ops:          ops,
		highestBlank: g.highestBlank,
	}
}
