// Package stats records usage events for diagnostics: which screens the user
// navigates to, what triggered the change, and how many captures were taken.
package stats

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Cause describes what triggered a navigation change.
type Cause string

const (
	CauseSwipeLeft  Cause = "swipe_left"
	CauseSwipeRight Cause = "swipe_right"
	CauseSwipeUp    Cause = "swipe_up"
	CauseSwipeDown  Cause = "swipe_down"
	CauseButton     Cause = "button"
	CauseKey        Cause = "key"
)

// Recorder counts usage events in memory for the lifetime of the process.
type Recorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[string]int)}
}

// ChangeScreen records a navigation to the named screen.
func (r *Recorder) ChangeScreen(screen string, cause Cause) {
	r.bump(fmt.Sprintf("screen.%s.%s", screen, cause))
}

// ModeSelected records a switch to the named camera mode.
func (r *Recorder) ModeSelected(mode string, cause Cause) {
	r.bump(fmt.Sprintf("mode.%s.%s", mode, cause))
}

// CaptureTaken records a completed capture in the named mode.
func (r *Recorder) CaptureTaken(mode string) {
	r.bump("capture." + mode)
}

// Snapshot returns a copy of all counters.
func (r *Recorder) Snapshot() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Dump logs all counters, sorted by key.
func (r *Recorder) Dump() {
	snap := r.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%d", k, snap[k])
	}
	log.Printf("usage:%s", b.String())
}

func (r *Recorder) bump(key string) {
	r.mu.Lock()
	r.counts[key]++
	r.mu.Unlock()
}
