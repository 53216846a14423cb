package trie

import (
	"reflect"
	"sort"
	"testing"

	"github.com/go-faker/faker/v4"
)

func TestInsertContains(t *testing.T) {
	var tr Trie
	words := []string{"tree", "trie", "trick", "top", ""}
	for _, w := range words {
		tr.Insert(w)
	}
	if tr.Len() != len(words) {
		t.Errorf("length of trie is %d, should be %d", tr.Len(), len(words))
	}
	for _, w := range words {
		if !tr.Contains(w) {
			t.Errorf("trie should contain %q, doesn't", w)
		}
	}
	if tr.Contains("tr") {
		t.Errorf("trie should not contain prefix \"tr\" as a word")
	}
}

func TestInsertIdempotent(t *testing.T) {
	var tr Trie
	tr.Insert("node")
	tr.Insert("node")
	if tr.Len() != 1 {
		t.Errorf("length of trie is %d, should be 1", tr.Len())
	}
}

func TestRemove(t *testing.T) {
	var tr Trie
	tr.Insert("car")
	tr.Insert("card")
	if !tr.Remove("card") {
		t.Fatalf("remove of \"card\" failed")
	}
	if tr.Contains("card") {
		t.Errorf("trie should no longer contain \"card\"")
	}
	if !tr.Contains("car") {
		t.Errorf("removing \"card\" must not remove prefix word \"car\"")
	}
	if tr.Remove("card") {
		t.Errorf("second remove of \"card\" should report absence")
	}
	if tr.Len() != 1 {
		t.Errorf("length of trie is %d, should be 1", tr.Len())
	}
}

func TestRemovePrunesSpine(t *testing.T) {
	var tr Trie
	tr.Insert("alpha")
	tr.Remove("alpha")
	if len(tr.root.children) != 0 {
		t.Errorf("root should have no children after last word is removed")
	}
}

func TestAutocomplete(t *testing.T) {
	var tr Trie
	for _, w := range []string{"tea", "ten", "tent", "to", "trie", "tea"} {
		tr.Insert(w)
	}
	completions := tr.Autocomplete("te")
	want := []string{"tea", "ten", "tent"}
	if !reflect.DeepEqual(completions, want) {
		t.Errorf("completions for \"te\" are %v, should be %v", completions, want)
	}
	if c := tr.Autocomplete("x"); c != nil {
		t.Errorf("completions for absent prefix should be nil, are %v", c)
	}
	all := tr.Autocomplete("")
	if len(all) != tr.Len() {
		t.Errorf("empty prefix should complete to all %d words, got %d", tr.Len(), len(all))
	}
	if !sort.StringsAreSorted(all) {
		t.Errorf("completions should be sorted, are %v", all)
	}
}

func TestRandomWords(t *testing.T) {
	var tr Trie
	model := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		w := faker.Word()
		tr.Insert(w)
		model[w] = struct{}{}
	}
	if tr.Len() != len(model) {
		t.Errorf("length of trie is %d, should be %d", tr.Len(), len(model))
	}
	for w := range model {
		if !tr.Contains(w) {
			t.Errorf("trie should contain %q, doesn't", w)
		}
	}
	all := tr.Autocomplete("")
	if len(all) != len(model) {
		t.Errorf("completions of empty prefix count %d, should be %d", len(all), len(model))
	}
}
