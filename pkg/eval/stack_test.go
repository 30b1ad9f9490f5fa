package eval

import (
	"testing"

	"src.weir.sh/pkg/eval/vals"
)

func TestStack_LookupWalksToRoot(t *testing.T) {
	root := NewStack()
	root.Set(0, vals.Int{Val: 1})
	child := root.NewChild()
	grandchild := child.NewChild()

	if v, ok := grandchild.Lookup(0); !ok || !vals.Equal(v, vals.Int{Val: 1}) {
		t.Errorf("Lookup(0) = %v, %v, want 1, true", v, ok)
	}
	if _, ok := grandchild.Lookup(1); ok {
		t.Errorf("Lookup(1) = _, true, want _, false")
	}
}

func TestStack_ChildShadowsParent(t *testing.T) {
	root := NewStack()
	root.Set(0, vals.Int{Val: 1})
	child := root.NewChild()
	child.Set(0, vals.Int{Val: 2})

	if v, _ := child.Lookup(0); !vals.Equal(v, vals.Int{Val: 2}) {
		t.Errorf("child Lookup(0) = %v, want 2", v)
	}
	// The parent binding is shadowed, not overwritten.
	if v, _ := root.Lookup(0); !vals.Equal(v, vals.Int{Val: 1}) {
		t.Errorf("root Lookup(0) = %v, want 1", v)
	}
}

func TestStack_SiblingsAreIndependent(t *testing.T) {
	root := NewStack()
	a := root.NewChild()
	b := root.NewChild()
	a.Set(0, vals.Int{Val: 1})

	if _, ok := b.Lookup(0); ok {
		t.Errorf("sibling sees binding, want it not to")
	}
}
