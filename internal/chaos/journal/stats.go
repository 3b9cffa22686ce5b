package journal

import (
	"fmt"
	"sort"

	"github.com/chaoscraft/chaos-engine-go/internal/chaos/dispatch"
	"github.com/chaoscraft/chaos-engine-go/internal/chaos/event"
)

// ModifierStats counts how one catalog entry fared
type ModifierStats struct {
	Selected int `json:"selected"`
	Failed   int `json:"failed"`
}

// Stats summarises every outcome a journal has seen
type Stats struct {
	Events      int                      `json:"events"`
	Applied     int                      `json:"applied"`
	Skipped     int                      `json:"skipped"`
	Failed      int                      `json:"failed"`
	TagsCleared int                      `json:"tags_cleared"`
	ByType      map[event.Type]int       `json:"by_type"`
	Modifiers   map[string]ModifierStats `json:"modifiers"`
}

func newStats() Stats {
	return Stats{
		ByType:    make(map[event.Type]int),
		Modifiers: make(map[string]ModifierStats),
	}
}

// Key identifies a modifier within its catalog in Stats.Modifiers
func Key(catalog, modifier string) string {
	return catalog + "/" + modifier
}

func (s *Stats) add(out dispatch.Outcome) {
	s.Events++
	s.ByType[out.Type]++
	s.Applied += len(out.Applied)
	s.Skipped += len(out.Skipped)
	s.Failed += len(out.Failed)
	s.TagsCleared += out.TagsCleared

	for _, sel := range out.Selected {
		k := Key(sel.Catalog, sel.Modifier)
		m := s.Modifiers[k]
		m.Selected++
		s.Modifiers[k] = m
	}
	for _, f := range out.Failed {
		k := Key(f.Catalog, f.Modifier)
		m := s.Modifiers[k]
		m.Failed++
		s.Modifiers[k] = m
	}
}

func (s Stats) clone() Stats {
	cp := s
	cp.ByType = make(map[event.Type]int, len(s.ByType))
	for k, v := range s.ByType {
		cp.ByType[k] = v
	}
	cp.Modifiers = make(map[string]ModifierStats, len(s.Modifiers))
	for k, v := range s.Modifiers {
		cp.Modifiers[k] = v
	}
	return cp
}

// SelectionRate returns how often key was selected per event of type t
func (s Stats) SelectionRate(t event.Type, key string) float64 {
	n := s.ByType[t]
	if n == 0 {
		return 0
	}
	return float64(s.Modifiers[key].Selected) / float64(n)
}

// Top returns up to n modifier keys ordered by selection count, ties by key
func (s Stats) Top(n int) []string {
	keys := make([]string, 0, len(s.Modifiers))
	for k := range s.Modifiers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := s.Modifiers[keys[i]].Selected, s.Modifiers[keys[j]].Selected
		if a != b {
			return a > b
		}
		return keys[i] < keys[j]
	})
	if n >= 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// String returns a string representation of the stats
func (s Stats) String() string {
	return fmt.Sprintf("Journal[events=%d, applied=%d, skipped=%d, failed=%d, tags_cleared=%d]",
		s.Events, s.Applied, s.Skipped, s.Failed, s.TagsCleared)
}
