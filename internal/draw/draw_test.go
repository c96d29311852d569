package draw

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

// ---------------------------------------------------------------------------
// Roster tests
// ---------------------------------------------------------------------------

func TestRosterAddRejectsEmpty(t *testing.T) {
	r := NewRoster()
	for _, input := range []string{"", "   ", "\t"} {
		if err := r.Add(input); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Add(%q) = %v, want ErrEmptyName", input, err)
		}
	}
	if r.Len() != 0 {
		t.Fatalf("roster should stay empty, has %d entries", r.Len())
	}
}

func TestRosterAddRejectsDuplicate(t *testing.T) {
	r := NewRoster()
	if err := r.Add("Alice"); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := r.Add("Alice"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("second Add = %v, want ErrDuplicateName", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 entry after duplicate submit, got %d", r.Len())
	}
}

func TestRosterDuplicateCheckIsCaseSensitive(t *testing.T) {
	r := NewRoster()
	if err := r.Add("Alice"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add("alice"); err != nil {
		t.Fatalf("Add lowercase variant: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}
}

func TestRosterRemove(t *testing.T) {
	r := NewRoster()
	for _, n := range []string{"Alice", "Bob", "Carol"} {
		if err := r.Add(n); err != nil {
			t.Fatalf("Add(%s): %v", n, err)
		}
	}

	if !r.Remove("Bob") {
		t.Fatal("Remove(Bob) = false, want true")
	}
	want := []string{"Alice", "Carol"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	if r.Remove("Bob") {
		t.Fatal("Remove of missing name should report false")
	}
}

func TestRosterNamesReturnsCopy(t *testing.T) {
	r := NewRoster()
	_ = r.Add("Alice")
	_ = r.Add("Bob")

	names := r.Names()
	names[0] = "Mallory"
	if got := r.Names()[0]; got != "Alice" {
		t.Fatalf("roster mutated through Names() copy: %q", got)
	}
}

func TestRosterClear(t *testing.T) {
	r := NewRoster()
	_ = r.Add("Alice")
	_ = r.Add("Bob")
	r.Clear()
	if r.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", r.Len())
	}
}

func TestRosterClosest(t *testing.T) {
	r := NewRoster()
	_ = r.Add("Jonathan")
	_ = r.Add("Alice")
	_ = r.Add("Jonathon")

	hint, ok := r.Closest("Jonathon")
	if !ok || hint != "Jonathan" {
		t.Fatalf("Closest(Jonathon) = %q, %v; want Jonathan, true", hint, ok)
	}

	if hint, ok := r.Closest("Zebediah"); ok {
		t.Fatalf("Closest(Zebediah) = %q, true; want no hint", hint)
	}
}

// ---------------------------------------------------------------------------
// Matcher tests
// ---------------------------------------------------------------------------

func TestGenerateTooFewPeople(t *testing.T) {
	for _, people := range [][]string{nil, {}, {"Alice"}} {
		if _, err := Generate(people, nil); !errors.Is(err, ErrTooFewPeople) {
			t.Errorf("Generate(%v) error = %v, want ErrTooFewPeople", people, err)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	people := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}

	for n := 2; n <= len(people); n++ {
		input := people[:n]
		pairs, err := Generate(input, rng)
		if err != nil {
			t.Fatalf("Generate(n=%d): %v", n, err)
		}
		if len(pairs) != n {
			t.Fatalf("n=%d: got %d pairs", n, len(pairs))
		}

		givers := make([]string, 0, n)
		receivers := make([]string, 0, n)
		for _, p := range pairs {
			if p.Giver == p.Receiver {
				t.Errorf("n=%d: self-assignment %q", n, p.Giver)
			}
			givers = append(givers, p.Giver)
			receivers = append(receivers, p.Receiver)
		}

		want := append([]string(nil), input...)
		sort.Strings(want)
		sort.Strings(givers)
		sort.Strings(receivers)
		if !reflect.DeepEqual(givers, want) {
			t.Errorf("n=%d: givers %v != input %v", n, givers, want)
		}
		if !reflect.DeepEqual(receivers, want) {
			t.Errorf("n=%d: receivers %v != input %v", n, receivers, want)
		}
	}
}

func TestGenerateFormsSingleCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	people := []string{"Alice", "Bob", "Carol", "Dave", "Eve"}

	pairs, err := Generate(people, rng)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	next := make(map[string]string, len(pairs))
	for _, p := range pairs {
		next[p.Giver] = p.Receiver
	}

	// Walking the successor map from any entrant must visit everyone
	// before returning to the start.
	steps := 0
	for cur := people[0]; ; {
		cur = next[cur]
		steps++
		if cur == people[0] {
			break
		}
		if steps > len(people) {
			t.Fatal("cycle walk did not terminate")
		}
	}
	if steps != len(people) {
		t.Fatalf("cycle length = %d, want %d", steps, len(people))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	people := []string{"Alice", "Bob", "Carol"}

	a, err := Generate(people, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(people, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different draws:\n%v\n%v", a, b)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	people := []string{"Alice", "Bob", "Carol", "Dave"}
	orig := append([]string(nil), people...)

	if _, err := Generate(people, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(people, orig) {
		t.Fatalf("input mutated: %v", people)
	}
}
