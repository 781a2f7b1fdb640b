package rdf

import "testing"

func TestNamespacesResolve(t *testing.T) {
	ns := NewNamespaces()
	ns.Set("ex", URI("http://ex.org/"))

	u, err := ns.Resolve("ex:foo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if u != URI("http://ex.org/foo") {
		t.Errorf("got %v, want http://ex.org/foo", u)
	}
}

func TestNamespacesResolveDefaultPrefix(t *testing.T) {
	ns := NewNamespaces()
	ns.Set("", URI("http://ex.org/"))

	u, err := ns.Resolve(":foo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if u != URI("http://ex.org/foo") {
		t.Errorf("got %v, want http://ex.org/foo", u)
	}
}

func TestNamespacesResolveUnknownPrefix(t *testing.T) {
	ns := NewNamespaces()
	if _, err := ns.Resolve("ex:foo"); err == nil {
		t.Fatal("expected an error for an unbound prefix")
	}
}

func TestNamespacesResolveNotPrefixedName(t *testing.T) {
	ns := NewNamespaces()
	if _, err := ns.Resolve("foo"); err == nil {
		t.Fatal("expected an error for a string with no ':'")
	}
}

func TestNamespacesSetBaseResolvesAgainstPrevious(t *testing.T) {
	ns := NewNamespaces()
	ns.SetBase(URI("http://ex.org/a/"))
	if ns.Base != URI("http://ex.org/a/") {
		t.Fatalf("Base = %v, want http://ex.org/a/", ns.Base)
	}
	ns.SetBase(URI("b/"))
	if ns.Base != URI("http://ex.org/a/b/") {
		t.Errorf("Base = %v, want http://ex.org/a/b/", ns.Base)
	}
}

