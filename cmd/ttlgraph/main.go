// Command ttlgraph loads a Turtle or N-Triples file into an in-memory
// graph and reports on it. It replaces the teacher's Bolt-backed
// import/dump tool (cmd/sopp) with a one-shot, non-persistent load:
// there is no database file to open, only a document to parse.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/boutros/ttlgraph/ntriples"
	"github.com/boutros/ttlgraph/rdf"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ttlgraph: ")

	canon := flag.Bool("c", false, "canonicalize blank node ids before printing")
	dump := flag.Bool("d", false, "dump the graph as N-Triples to standard out")
	infer := flag.Bool("infer", false, "apply rdfs:subClassOf inference before loading")
	width := flag.String("width", "64", "compact triple width: 64 or 128")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ttlgraph <flags> <file.ttl|file.nt>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	w, err := parseWidth(*width)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(flag.Args()[0])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	triples, _, err := rdf.ParseAll(f)
	if err != nil {
		log.Fatal(err)
	}
	if *infer {
		triples = rdf.InferSubClassOf(triples)
	}

	b := rdf.NewGraphBuilder(w)
	for _, t := range triples {
		if err := b.Add(t); err != nil {
			log.Fatal(err)
		}
	}
	g := b.Finalize()
	if *canon {
		g = g.Canonicalize()
	}

	log.Printf("loaded %d triples, %d blank nodes", g.Len(), g.NumBlankNodes())

	if *dump {
		if err := ntriples.Dump(os.Stdout, g); err != nil {
			log.Fatal(err)
		}
	}
}

func parseWidth(s string) (rdf.Width, error) {
	switch s {
	case "64":
		return rdf.Width64, nil
	case "128":
		return rdf.Width128, nil
	default:
		return 0, fmt.Errorf("ttlgraph: invalid -width %q, must be 64 or 128", s)
	}
}
