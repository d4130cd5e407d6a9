package roadmap

// Tracker remembers which phases have been scrolled into view. A phase is
// revealed once at least MinVisible of its lines are on screen and stays
// revealed afterwards.
type Tracker struct {
	MinVisible float64
	revealed   []bool
}

// Span is the line range [Start, End) a block occupies on the page.
type Span struct {
	Start, End int
}

func NewTracker(n int) *Tracker {
	return &Tracker{MinVisible: 0.3, revealed: make([]bool, n)}
}

// Observe marks spans intersecting the viewport [top, top+height) and returns
// the indices revealed by this call.
func (t *Tracker) Observe(top, height int, spans []Span) []int {
	var fresh []int
	bottom := top + height
	for i, s := range spans {
		if i >= len(t.revealed) || t.revealed[i] {
			continue
		}
		size := s.End - s.Start
		if size <= 0 {
			continue
		}
		lo, hi := max(s.Start, top), min(s.End, bottom)
		if hi <= lo {
			continue
		}
		if float64(hi-lo)/float64(size) >= t.MinVisible {
			t.revealed[i] = true
			fresh = append(fresh, i)
		}
	}
	return fresh
}

func (t *Tracker) Revealed(i int) bool {
	return i >= 0 && i < len(t.revealed) && t.revealed[i]
}

// Count returns how many phases have been revealed.
func (t *Tracker) Count() int {
	n := 0
	for _, r := range t.revealed {
		if r {
			n++
		}
	}
	return n
}
