// Package countdown drives the reveal countdown: a remaining duration that a
// single tick stream decrements once per period until it reaches zero, at which
// point the controller completes exactly once.
package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNegativeDuration is returned when minutes or seconds are below zero.
	ErrNegativeDuration = errors.New("countdown: negative duration")
	// ErrInvalidRemaining is returned when a MM:SS value cannot be parsed.
	ErrInvalidRemaining = errors.New("countdown: invalid MM:SS value")
)

// Remaining is the time left on the countdown in whole minutes and seconds.
type Remaining struct {
	Minutes int
	Seconds int
}

// FromDuration converts d into minutes and seconds, dropping sub-second parts.
// Negative durations become zero.
func FromDuration(d time.Duration) Remaining {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}
	return Remaining{Minutes: total / 60, Seconds: total % 60}
}

// ParseRemaining parses "MM:SS" (or a bare number of seconds).
func ParseRemaining(s string) (Remaining, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Remaining{}, ErrInvalidRemaining
	}
	minPart, secPart, found := strings.Cut(s, ":")
	if !found {
		secs, err := strconv.Atoi(s)
		if err != nil || secs < 0 {
			return Remaining{}, fmt.Errorf("%w: %q", ErrInvalidRemaining, s)
		}
		return FromDuration(time.Duration(secs) * time.Second), nil
	}
	mins, err := strconv.Atoi(minPart)
	if err != nil {
		return Remaining{}, fmt.Errorf("%w: %q", ErrInvalidRemaining, s)
	}
	secs, err := strconv.Atoi(secPart)
	if err != nil || secs > 59 {
		return Remaining{}, fmt.Errorf("%w: %q", ErrInvalidRemaining, s)
	}
	r := Remaining{Minutes: mins, Seconds: secs}
	if err := r.Validate(); err != nil {
		return Remaining{}, err
	}
	return r, nil
}

// Validate reports ErrNegativeDuration for negative components and
// ErrInvalidRemaining when Seconds does not fit a two-digit MM:SS field.
func (r Remaining) Validate() error {
	if r.Minutes < 0 || r.Seconds < 0 {
		return fmt.Errorf("%w: %d:%d", ErrNegativeDuration, r.Minutes, r.Seconds)
	}
	if r.Seconds > 59 {
		return fmt.Errorf("%w: seconds %d above 59", ErrInvalidRemaining, r.Seconds)
	}
	return nil
}

func (r Remaining) IsZero() bool { return r.Minutes == 0 && r.Seconds == 0 }

// Total returns the remaining time as a duration.
func (r Remaining) Total() time.Duration {
	return time.Duration(r.Minutes)*time.Minute + time.Duration(r.Seconds)*time.Second
}

// String renders two-digit minutes and seconds, e.g. "00:20".
func (r Remaining) String() string {
	return fmt.Sprintf("%02d:%02d", r.Minutes, r.Seconds)
}

// step applies a single decrement. Zero stays zero.
func (r Remaining) step() Remaining {
	switch {
	case r.Seconds > 0:
		r.Seconds--
	case r.Minutes > 0:
		r.Minutes--
		r.Seconds = 59
	}
	return r
}
