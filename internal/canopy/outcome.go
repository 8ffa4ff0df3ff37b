package canopy

// Outcome is the result of an event handler. A handled outcome means the
// event was consumed. Skip stops the enclosing traversal: for key and mouse
// dispatch it means no further ancestors see the event.
type Outcome struct {
	handled bool
	skip    bool
}

// Handle returns a handled outcome that skips.
func Handle() Outcome {
	return Outcome{handled: true, skip: true}
}

// Ignore returns an ignored outcome that does not skip.
func Ignore() Outcome {
	return Outcome{}
}

// WithSkip returns o with skip set.
func (o Outcome) WithSkip() Outcome {
	o.skip = true
	return o
}

// WithoutSkip returns o with skip cleared.
func (o Outcome) WithoutSkip() Outcome {
	o.skip = false
	return o
}

// IsHandled reports whether the event was consumed.
func (o Outcome) IsHandled() bool {
	return o.handled
}

// Skip implements Walker.
func (o Outcome) Skip() bool {
	return o.skip
}

// Join implements Walker. Handle dominates Ignore and skip is sticky.
func (o Outcome) Join(other Outcome) Outcome {
	return Outcome{
		handled: o.handled || other.handled,
		skip:    o.skip || other.skip,
	}
}

func (o Outcome) String() string {
	s := "ignore"
	if o.handled {
		s = "handle"
	}
	if o.skip {
		s += "+skip"
	}
	return s
}
