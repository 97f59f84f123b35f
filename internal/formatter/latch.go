package formatter

import "github.com/jimvm/cucumber/internal/status"

// Latch remembers a failure raised outside any step until it is reported.
// A failed step result reports it as well, so it is never reported twice.
type Latch struct {
	pending bool
}

// Raise marks a failure as pending. Raising again before it is consumed
// changes nothing.
func (l *Latch) Raise() {
	l.pending = true
}

func (l *Latch) Pending() bool {
	return l.pending
}

// Consume clears the latch and reports whether a failure marker is due.
func (l *Latch) Consume() bool {
	due := l.pending
	l.pending = false
	return due
}

// Observe clears the latch when k already renders a failure.
func (l *Latch) Observe(k status.Kind) {
	if k == status.Failed {
		l.pending = false
	}
}
