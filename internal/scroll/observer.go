// Package scroll tracks whether the page has scrolled far enough to hide the
// "scroll down" arrow.
package scroll

// Observer toggles a visibility flag from the page scroll offset.
type Observer struct {
	Threshold int
	hidden    bool
}

// NewObserver returns an observer with the arrow visible.
func NewObserver(threshold int) *Observer {
	return &Observer{Threshold: threshold}
}

// Observe records the current offset. It reports whether the arrow is visible
// and whether that changed with this call.
func (o *Observer) Observe(offset int) (visible, changed bool) {
	hidden := offset > o.Threshold
	changed = hidden != o.hidden
	o.hidden = hidden
	return !hidden, changed
}

// Visible reports the last observed visibility.
func (o *Observer) Visible() bool { return !o.hidden }
