package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vmunix/cullarr/internal/arr"
)

// Mode selects which direction the engine reconciles in.
type Mode int

const (
	// ModeExclude finds entries that ARE streamable on the configured
	// providers and can leave the library.
	ModeExclude Mode = iota
	// ModeReAdd finds unmonitored entries that are NOT streamable and
	// should be monitored again.
	ModeReAdd
)

func (m Mode) String() string {
	if m == ModeReAdd {
		return "re-add"
	}
	return "exclude"
}

// MovieDecision is the verdict for one movie.
type MovieDecision struct {
	Movie     arr.Movie
	Providers []string // clear names of matched providers, sorted
}

// SeasonDecision is a whole season promoted to season-level action.
type SeasonDecision struct {
	SeasonNumber int
	Providers    []string
}

// EpisodeDecision is a single episode that did not promote with its season.
type EpisodeDecision struct {
	Episode   arr.Episode
	Providers []string
}

// SeriesDecision is the verdict for one series: whole seasons plus residual
// episodes. Complete reports whether every season of the series promoted.
type SeriesDecision struct {
	Series   arr.Series
	Seasons  []SeasonDecision
	Episodes []EpisodeDecision
	Complete bool
}

// Providers returns the union of all matched provider names in the decision.
func (d *SeriesDecision) Providers() []string {
	seen := make(map[string]struct{})
	for _, s := range d.Seasons {
		for _, p := range s.Providers {
			seen[p] = struct{}{}
		}
	}
	for _, e := range d.Episodes {
		for _, p := range e.Providers {
			seen[p] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for p := range seen {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

// AllEpisodeIDs returns the residual episode ids in the decision.
func (d *SeriesDecision) AllEpisodeIDs() []int {
	ids := make([]int, 0, len(d.Episodes))
	for _, e := range d.Episodes {
		ids = append(ids, e.Episode.ID)
	}
	return ids
}

// SeasonNumbers returns the promoted season numbers.
func (d *SeriesDecision) SeasonNumbers() []int {
	nums := make([]int, 0, len(d.Seasons))
	for _, s := range d.Seasons {
		nums = append(nums, s.SeasonNumber)
	}
	return nums
}

// Summary renders a compact season/episode description for table output,
// e.g. "S02, S05; S01E03, S01E07" or "entire series".
func (d *SeriesDecision) Summary() string {
	if d.Complete {
		return "entire series"
	}
	var parts []string
	for _, s := range d.Seasons {
		parts = append(parts, fmt.Sprintf("S%02d", s.SeasonNumber))
	}
	for _, e := range d.Episodes {
		parts = append(parts, fmt.Sprintf("S%02dE%02d", e.Episode.SeasonNumber, e.Episode.EpisodeNumber))
	}
	return strings.Join(parts, ", ")
}

// Report is the outcome of applying a batch of decisions. Failures never
// abort the batch; they accumulate here.
type Report struct {
	Applied  int
	Failures []Failure
}

// Failure records one mutation that did not take.
type Failure struct {
	EntityID  int
	Operation string
	Err       error
}

func (r *Report) fail(id int, op string, err error) {
	r.Failures = append(r.Failures, Failure{EntityID: id, Operation: op, Err: err})
}

// Ok reports whether every mutation succeeded.
func (r *Report) Ok() bool {
	return len(r.Failures) == 0
}
