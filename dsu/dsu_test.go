package dsu

import (
	"math/rand"
	"testing"
)

func TestForestSingletons(t *testing.T) {
	f := NewForest[string]()
	f.MakeSet("a")
	f.MakeSet("b")
	f.MakeSet("a") // repeated add is a no-op
	if f.Count() != 2 {
		t.Errorf("forest has %d sets, should have 2", f.Count())
	}
	if f.Connected("a", "b") {
		t.Errorf("\"a\" and \"b\" should not be connected")
	}
	if _, ok := f.Find("c"); ok {
		t.Errorf("find of unknown value should report absence")
	}
}

func TestForestUnion(t *testing.T) {
	f := NewForest[int]()
	if !f.Union(1, 2) {
		t.Fatalf("union of fresh values should merge")
	}
	if !f.Union(3, 4) {
		t.Fatalf("union of fresh values should merge")
	}
	if f.Union(1, 2) {
		t.Errorf("repeated union should report no merge")
	}
	if f.Count() != 2 {
		t.Errorf("forest has %d sets, should have 2", f.Count())
	}
	f.Union(2, 3)
	if !f.Connected(1, 4) {
		t.Errorf("1 and 4 should be connected after transitive unions")
	}
	if f.Count() != 1 {
		t.Errorf("forest has %d sets, should have 1", f.Count())
	}
}

func TestForestRandomUnions(t *testing.T) {
	const n = 256
	f := NewForest[int]()
	for i := 0; i < n; i++ {
		f.MakeSet(i)
	}
	r := rand.New(rand.NewSource(42))
	merges := 0
	for i := 0; i < 4*n; i++ {
		if f.Union(r.Intn(n), r.Intn(n)) {
			merges++
		}
	}
	if f.Count() != n-merges {
		t.Errorf("forest has %d sets, should have %d", f.Count(), n-merges)
	}
	for i := 0; i < n; i++ {
		ri, ok := f.Find(i)
		if !ok {
			t.Fatalf("value %d vanished from the forest", i)
		}
		rr, _ := f.Find(ri)
		if rr != ri {
			t.Errorf("representative of %d is not its own representative", i)
		}
	}
}

func TestElementUnion(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("a") // same payload, distinct set
	if a.Connected(c) {
		t.Errorf("distinct elements with equal payloads should not be connected")
	}
	if !a.Union(b) {
		t.Fatalf("union of fresh elements should merge")
	}
	if a.Union(b) {
		t.Errorf("repeated union should report no merge")
	}
	if !a.Connected(b) {
		t.Errorf("a and b should be connected")
	}
	if a.Find() != b.Find() {
		t.Errorf("a and b should share a representative")
	}
	if b.Connected(c) {
		t.Errorf("c should remain a singleton")
	}
}

func TestElementPathCompression(t *testing.T) {
	elems := make([]*Element[int], 64)
	for i := range elems {
		elems[i] = NewElement(i)
	}
	for i := 1; i < len(elems); i++ {
		elems[0].Union(elems[i])
	}
	root := elems[0].Find()
	for _, e := range elems {
		e.Find()
		if e != root && e.parent != root {
			t.Errorf("find should compress element %d directly under the root", e.Value)
		}
	}
}
