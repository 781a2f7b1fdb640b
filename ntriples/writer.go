// Package ntriples writes RDF triples in N-Triples form. It exists
// purely as a thin collaborator for the command-line tool and its
// round-trip tests; it does not grow Turtle prefix abbreviation or any
// other serialization, matching the teacher's db.Dump restricted to
// its N-Triples branch.
package ntriples

import (
	"bufio"
	"io"

	"github.com/boutros/ttlgraph/rdf"
)

// Writer serializes Triples as N-Triples, one statement per line.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteTriple writes a single N-Triples statement.
func (w *Writer) WriteTriple(t rdf.Triple) error {
	if _, err := w.w.WriteString(t.String()); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteAll writes every triple in ts, then flushes the underlying
// writer.
func (w *Writer) WriteAll(ts []rdf.Triple) error {
	for _, t := range ts {
		if err := w.WriteTriple(t); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes any buffered output to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Dump is a convenience wrapper writing every triple in g to w.
func Dump(w io.Writer, g *rdf.Graph) error {
	return NewWriter(w).WriteAll(g.All())
}
