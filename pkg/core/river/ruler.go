package river

import (
	"fmt"
	"strconv"
	"strings"
)

// Ruler holds the absolute x offsets of the tab stops shared by every row of
// one layout pass. Stop i is "the i-th tab stop in a row".
type Ruler struct {
	tabs []int
}

// SetTab records x as the minimum position of stop i. A new stop is appended
// when i equals the current length. Otherwise, if x lies beyond the stored
// stop, that stop and every later one move right by the difference; stops
// never move left. Stops must be introduced in order.
func (r *Ruler) SetTab(i, x int) {
	if i > len(r.tabs) {
		panic(fmt.Sprintf("river: tab stop %d set before stop %d", i, len(r.tabs)))
	}
	if i == len(r.tabs) {
		r.tabs = append(r.tabs, x)
		return
	}
	delta := x - r.tabs[i]
	if delta <= 0 {
		return
	}
	for j := i; j < len(r.tabs); j++ {
		r.tabs[j] += delta
	}
}

// Tab returns the position of stop i. Asking for a stop that was never set
// is a programming error and panics with an index out of range.
func (r *Ruler) Tab(i int) int { return r.tabs[i] }

// Len returns the number of stops.
func (r *Ruler) Len() int { return len(r.tabs) }

// String renders the stops, e.g. "Ruler{10,25,35}".
func (r *Ruler) String() string {
	parts := make([]string, len(r.tabs))
	for i, x := range r.tabs {
		parts[i] = strconv.Itoa(x)
	}
	return "Ruler{" + strings.Join(parts, ",") + "}"
}
