package canopy

import "github.com/atomicstack/canopy/internal/geom"

// Locate finds the deepest visible node under root whose screen rectangle
// contains p, and calls f on it and then on each of its ancestors up to root.
// A skip from f stops the walk towards the root. Hidden subtrees are never
// entered. Among overlapping siblings the first in child order wins.
func (c *Canopy) Locate(root Node, p geom.Point, f func(Node) (Walk, error)) error {
	_, _, err := locate(root, p, f)
	return err
}

// locate reports whether p fell inside n, and whether a callback asked to
// stop.
func locate(n Node, p geom.Point, f func(Node) (Walk, error)) (found, stop bool, err error) {
	st := n.State()
	if st.hidden || !st.vp.Contains(p) {
		return false, false, nil
	}
	err = n.Children(func(child Node) error {
		if found {
			return nil
		}
		var cerr error
		found, stop, cerr = locate(child, p, f)
		return cerr
	})
	if err != nil || stop {
		return true, stop, err
	}
	w, err := f(n)
	if err != nil {
		return true, true, err
	}
	return true, w.Skip(), nil
}
