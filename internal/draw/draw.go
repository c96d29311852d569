// Package draw holds the Secret Santa session logic: collecting entrant
// names and generating the giver/receiver matching. It has no TUI
// dependencies so it can be exercised directly from tests.
package draw

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrDuplicateName = errors.New("name already entered")
	ErrTooFewPeople  = errors.New("need at least two people to draw")
)

// maxHintDistance is the edit distance below which two names are close
// enough to be worth a "looks close to" notice.
const maxHintDistance = 2

// Assignment pairs a giver with their receiver. Giver != Receiver always
// holds for assignments produced by Generate.
type Assignment struct {
	Giver    string
	Receiver string
}

// Roster collects entrant names for a single draw session. Names are
// unique (case-sensitive exact match) and kept in insertion order.
type Roster struct {
	names []string
}

func NewRoster() *Roster {
	return &Roster{}
}

// Add appends a name to the roster. Empty (or whitespace-only) names and
// exact duplicates are rejected with ErrEmptyName / ErrDuplicateName.
func (r *Roster) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	for _, n := range r.names {
		if n == name {
			return ErrDuplicateName
		}
	}
	r.names = append(r.names, name)
	return nil
}

// Remove deletes the named entry and reports whether it was present.
func (r *Roster) Remove(name string) bool {
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the collected names in insertion order. The slice is a
// copy; mutating it does not affect the roster.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Roster) Len() int {
	return len(r.names)
}

// Clear empties the roster for a fresh collection phase.
func (r *Roster) Clear() {
	r.names = nil
}

// Closest returns the existing entry nearest to name, if any sits within
// maxHintDistance (case-insensitive). It never affects whether a name is
// accepted; callers use it to surface a non-blocking notice.
func (r *Roster) Closest(name string) (string, bool) {
	lower := strings.ToLower(name)
	best := ""
	bestDist := maxHintDistance + 1
	for _, n := range r.names {
		if n == name {
			continue
		}
		d := levenshtein.ComputeDistance(strings.ToLower(n), lower)
		if d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist <= maxHintDistance
}

// Generate produces the Secret Santa matching for people: a uniformly
// random cyclic permutation, so nobody draws themself and everyone gives
// and receives exactly once. The result is uniform over cyclic
// arrangements rather than over all derangements, which is the fairness
// policy here.
//
// Pass a seeded rng for deterministic results; nil uses the global source.
func Generate(people []string, rng *rand.Rand) ([]Assignment, error) {
	if len(people) < 2 {
		return nil, ErrTooFewPeople
	}

	chain := make([]string, len(people))
	copy(chain, people)

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(chain), func(i, j int) {
		chain[i], chain[j] = chain[j], chain[i]
	})

	// Pair each entrant with their successor, wrapping the last back to
	// the first. A rotation by one never maps an element to itself, so
	// the cycle is a derangement by construction.
	out := make([]Assignment, len(chain))
	for i, giver := range chain {
		out[i] = Assignment{Giver: giver, Receiver: chain[(i+1)%len(chain)]}
	}
	return out, nil
}
