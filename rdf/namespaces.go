package rdf

import (
	"fmt"
	"strings"
)

// Namespaces tracks the @prefix/@base (or PREFIX/BASE) bindings in
// effect while parsing a single Turtle document.
type Namespaces struct {
	p2uri map[string]URI
	Base  URI
}

// NewNamespaces returns an empty Namespaces table.
func NewNamespaces() *Namespaces {
	return &Namespaces{
		p2uri: make(map[string]URI),
	}
}

// Set binds prefix (without the trailing ':') to the namespace IRI u.
// The empty string is a valid prefix: it is the default namespace
// bound by "@prefix : <...>" and referenced by bare ":local" names.
func (n *Namespaces) Set(prefix string, u URI) {
	n.p2uri[prefix] = u
}

// SetBase sets the document's current base IRI, resolving it against
// the previous base if it is itself relative.
func (n *Namespaces) SetBase(u URI) {
	n.Base = u.Resolve(n.Base)
}

// Resolve expands a prefixed name ("prefix:local") into its full IRI.
// It returns an error if the prefix has not been bound.
func (n *Namespaces) Resolve(s string) (URI, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return "", fmt.Errorf("rdf: not a prefixed name: %q", s)
	}
	prefix, local := s[:i], s[i+1:]
	ns, ok := n.p2uri[prefix]
	if !ok {
		return "", fmt.Errorf("rdf: unknown prefix: %q", prefix)
	}
	return NewURI(string(ns) + local), nil
}
