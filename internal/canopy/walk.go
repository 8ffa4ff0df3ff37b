package canopy

// Walker is the accumulator threaded through a traversal. Join combines the
// results of two visits; Skip reports whether the traversal should stop
// descending (preorder) or stop visiting siblings (postorder).
type Walker[T any] interface {
	Join(T) T
	Skip() bool
}

// Walk is the simplest Walker: continue or skip.
type Walk uint8

const (
	WalkContinue Walk = iota
	WalkSkip
)

func (w Walk) Join(other Walk) Walk {
	if w == WalkSkip || other == WalkSkip {
		return WalkSkip
	}
	return WalkContinue
}

func (w Walk) Skip() bool {
	return w == WalkSkip
}

// Void is a Walker that never skips.
type Void struct{}

func (Void) Join(Void) Void { return Void{} }

func (Void) Skip() bool { return false }

// Preorder calls f on n and then, unless the result skips, on each of n's
// children in order. A skip prunes only the children of the node that
// returned it; siblings are still visited. The first error aborts the walk.
func Preorder[W Walker[W]](n Node, f func(Node) (W, error)) (W, error) {
	v, err := f(n)
	if err != nil || v.Skip() {
		return v, err
	}
	err = n.Children(func(child Node) error {
		cv, err := Preorder(child, f)
		if err != nil {
			return err
		}
		v = v.Join(cv)
		return nil
	})
	return v, err
}

// Postorder visits n's children in order and then n itself. Once any visit
// skips, the remaining siblings at every enclosing level are passed over, but
// the enclosing nodes themselves are still visited. This is what lets a
// search that stops on a match go on to visit the match's ancestors.
func Postorder[W Walker[W]](n Node, f func(Node) (W, error)) (W, error) {
	var v W
	err := n.Children(func(child Node) error {
		if v.Skip() {
			return nil
		}
		cv, err := Postorder(child, f)
		if err != nil {
			return err
		}
		v = v.Join(cv)
		return nil
	})
	if err != nil {
		return v, err
	}
	fv, err := f(n)
	if err != nil {
		return v, err
	}
	return v.Join(fv), nil
}
