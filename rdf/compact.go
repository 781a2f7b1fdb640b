package rdf

// Width selects the bit-width of a Graph's compact triple encoding,
// trading maximum string-table size against memory per triple — the
// same variant-selection the original's GraphWriter<SPO, OPS> made a
// type parameter fixed at graph-construction time.
type Width uint8

const (
	// Width64 packs a triple into a single uint64: 18 bits each for
	// the subject/predicate/object ids (up to 262,144 distinct terms)
	// and 7 bits for the datatype-or-language id (up to 128 distinct
	// datatypes/language tags). Suitable for small graphs.
	//
	// The spec this package follows documents a 64-bit variant with
	// k=19 id bits and m=23 datatype/language bits; summed across all
	// six packed fields (1 + k + k + 2 + k + m) that totals 83 bits,
	// which cannot fit in a 64-bit word. The widths above are the
	// closest practical fit that preserves the intent (three
	// comparably sized id fields, sized for graphs in the low hundreds
	// of thousands of distinct terms) inside an actual 64-bit machine
	// word; see DESIGN.md for the full reasoning. Graphs that need a
	// larger datatype/language table should use Width128.
	Width64 Width = iota
	// Width128 packs a triple into two uint64 words: 31 bits for the
	// subject id, 32 bits for the predicate id, 30 bits for the object
	// id (sharing its word with the 2-bit object kind) and 32 bits for
	// the datatype-or-language id. Term ids are therefore limited to the
	// 30-bit object field (see MaxTermID). This matches the spec's stated k=m=32
	// to within the handful of bits borrowed for the subject-kind flag
	// and the object-kind tag.
	Width128
)

func (w Width) String() string {
	if w == Width128 {
		return "128-bit"
	}
	return "64-bit"
}

// field bit-widths per Width, named the way the spec names them: k is
// the width of the subject/predicate/object id fields, m is the width
// of the datatype-or-language id field. For Width128, k is the nominal
// 32; the actual subject and object fields are 31 and 30 bits wide.
func (w Width) k() uint {
	if w == Width128 {
		return 32
	}
	return 18
}

func (w Width) m() uint {
	if w == Width128 {
		return 32
	}
	return 7
}

// MaxTermID returns the largest subject/predicate/object id the width
// can represent.
func (w Width) MaxTermID() uint32 {
	if w == Width128 {
		return 1<<30 - 1 // the object id field is the narrowest, at 30 bits
	}
	return 1<<18 - 1
}

// MaxDatatypeOrLangID returns the largest datatype-or-language id the
// width can represent.
func (w Width) MaxDatatypeOrLangID() uint32 {
	if w == Width128 {
		return 1<<32 - 1
	}
	return 1<<7 - 1
}

// packed is a fixed-width encoded triple. For Width64 only hi is used;
// for Width128 (hi, lo) form a 128-bit big-endian integer. Ordering by
// (hi, lo) lexicographically equals ordering by the fields packed into
// them, which is the whole point of the encoding: a plain numeric
// comparison of two packed values tells you their order in whichever
// index (SPO or OPS) they were built for.
type packed struct {
	hi, lo uint64
}

func (p packed) less(q packed) bool {
	return p.hi < q.hi || (p.hi == q.hi && p.lo < q.lo)
}

func (p packed) equal(q packed) bool {
	return p.hi == q.hi && p.lo == q.lo
}

// fields is the decoded form of a packed triple, the common currency
// between the builder, the graph's iterators and the canonicalizer.
type fields struct {
	subjectIsIRI bool
	subjectID    uint32
	predicateID  uint32
	kind         ObjectKind
	objectID     uint32
	dtOrLangID   uint32
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// encodeSPO packs f into subject-major order: subject, then predicate,
// then object (kind then id), then datatype/language.
func encodeSPO(f fields, w Width) packed {
	if w == Width128 {
		hi := boolBit(f.subjectIsIRI)<<63 | uint64(f.subjectID&(1<<31-1))<<32 | uint64(f.predicateID)
		lo := uint64(f.kind&0x3)<<62 | uint64(f.objectID&(1<<30-1))<<32 | uint64(f.dtOrLangID)
		return packed{hi: hi, lo: lo}
	}
	hi := boolBit(f.subjectIsIRI)<<63 |
		uint64(f.subjectID&(1<<18-1))<<45 |
		uint64(f.predicateID&(1<<18-1))<<27 |
		uint64(f.kind&0x3)<<25 |
		uint64(f.objectID&(1<<18-1))<<7 |
		uint64(f.dtOrLangID&(1<<7-1))
	return packed{hi: hi}
}

func decodeSPO(p packed, w Width) fields {
	if w == Width128 {
		return fields{
			subjectIsIRI: p.hi>>63&1 == 1,
			subjectID:    uint32(p.hi >> 32 & (1<<31 - 1)),
			predicateID:  uint32(p.hi & (1<<32 - 1)),
			kind:         ObjectKind(p.lo >> 62 & 0x3),
			objectID:     uint32(p.lo >> 32 & (1<<30 - 1)),
			dtOrLangID:   uint32(p.lo & (1<<32 - 1)),
		}
	}
	return fields{
		subjectIsIRI: p.hi>>63&1 == 1,
		subjectID:    uint32(p.hi >> 45 & (1<<18 - 1)),
		predicateID:  uint32(p.hi >> 27 & (1<<18 - 1)),
		kind:         ObjectKind(p.hi >> 25 & 0x3),
		objectID:     uint32(p.hi >> 7 & (1<<18 - 1)),
		dtOrLangID:   uint32(p.hi & (1<<7 - 1)),
	}
}

// encodeOPS packs f into object-major order: object (kind then id),
// then predicate, then subject, then datatype/language.
func encodeOPS(f fields, w Width) packed {
	if w == Width128 {
		hi := uint64(f.kind&0x3)<<62 | uint64(f.objectID&(1<<30-1))<<32 | uint64(f.predicateID)
		lo := boolBit(f.subjectIsIRI)<<63 | uint64(f.subjectID&(1<<31-1))<<32 | uint64(f.dtOrLangID)
		return packed{hi: hi, lo: lo}
	}
	hi := uint64(f.kind&0x3)<<62 |
		uint64(f.objectID&(1<<18-1))<<44 |
		uint64(f.predicateID&(1<<18-1))<<26 |
		boolBit(f.subjectIsIRI)<<25 |
		uint64(f.subjectID&(1<<18-1))<<7 |
		uint64(f.dtOrLangID&(1<<7-1))
	return packed{hi: hi}
}

func decodeOPS(p packed, w Width) fields {
	if w == Width128 {
		return fields{
			kind:         ObjectKind(p.hi >> 62 & 0x3),
			objectID:     uint32(p.hi >> 32 & (1<<30 - 1)),
			predicateID:  uint32(p.hi & (1<<32 - 1)),
			subjectIsIRI: p.lo>>63&1 == 1,
			subjectID:    uint32(p.lo >> 32 & (1<<31 - 1)),
			dtOrLangID:   uint32(p.lo & (1<<32 - 1)),
		}
	}
	return fields{
		kind:         ObjectKind(p.hi >> 62 & 0x3),
		objectID:     uint32(p.hi >> 44 & (1<<18 - 1)),
		predicateID:  uint32(p.hi >> 26 & (1<<18 - 1)),
		subjectIsIRI: p.hi>>25&1 == 1,
		subjectID:    uint32(p.hi >> 7 & (1<<18 - 1)),
		dtOrLangID:   uint32(p.hi & (1<<7 - 1)),
	}
}

// bumpSubjectSPO returns p (an SPO-ordered packed triple) with its
// subject id incremented by one and every less-significant field
// cleared, i.e. the smallest SPO key strictly greater than any triple
// sharing p's subject. It is how range queries build an exclusive
// upper bound from an inclusive lower bound.
func bumpSubjectSPO(p packed, w Width) packed {
	f := decodeSPO(p, w)
	f.subjectID++
	f.predicateID, f.kind, f.objectID, f.dtOrLangID = 0, 0, 0, 0
	return encodeSPO(f, w)
}

// bumpPredicateSPO is bumpSubjectSPO for the predicate field, holding
// the subject fixed.
func bumpPredicateSPO(p packed, w Width) packed {
	f := decodeSPO(p, w)
	f.predicateID++
	f.kind, f.objectID, f.dtOrLangID = 0, 0, 0
	return encodeSPO(f, w)
}

// bumpObjectOPS is bumpSubjectSPO for an OPS-ordered key's object
// field.
func bumpObjectOPS(p packed, w Width) packed {
	f := decodeOPS(p, w)
	f.objectID++
	f.predicateID, f.subjectIsIRI, f.subjectID, f.dtOrLangID = 0, false, 0, 0
	return encodeOPS(f, w)
}

// bumpPredicateOPS is bumpObjectOPS for the predicate field, holding
// the object fixed.
func bumpPredicateOPS(p packed, w Width) packed {
	f := decodeOPS(p, w)
	f.predicateID++
	f.subjectIsIRI, f.subjectID, f.dtOrLangID = false, 0, 0
	return encodeOPS(f, w)
}
