package session

// Mark classifies one target index against the input.
type Mark int

const (
	MarkPending Mark = iota
	MarkCorrect
	MarkIncorrect
)

// Counters accumulates typing progress across snapshots of one round.
// Position is owned by the input driver and never touched by Reduce.
type Counters struct {
	Correct  int
	Total    int
	Position int
	Russian  bool

	// correct[i] is set once index i has matched the target.
	correct []bool
}

// Reduce folds a snapshot into c and returns the updated counters.
// Correctness is sticky: an index counts once it has ever matched, even if a
// later edit breaks it again.
func Reduce(c Counters, st State) Counters {
	target := []rune(st.Target)
	input := []rune(st.Input)

	if len(input) == 0 {
		c.Russian = IsRussian(st.Target)
	}

	seen := make([]bool, len(target))
	copy(seen, c.correct)
	n := min(len(input), len(target))
	for i := 0; i < n; i++ {
		if input[i] == target[i] && !seen[i] {
			seen[i] = true
			c.Correct++
		}
	}
	c.correct = seen
	c.Total = len(input)
	return c
}

// Marks classifies every target index against the snapshot input.
func Marks(st State) []Mark {
	target := []rune(st.Target)
	input := []rune(st.Input)
	marks := make([]Mark, len(target))
	for i := range target {
		if i >= len(input) {
			break
		}
		if input[i] == target[i] {
			marks[i] = MarkCorrect
		} else {
			marks[i] = MarkIncorrect
		}
	}
	return marks
}

// IsRussian reports whether text contains a Cyrillic letter (а-я, А-Я, ё, Ё).
func IsRussian(text string) bool {
	for _, r := range text {
		switch {
		case r >= 'а' && r <= 'я':
			return true
		case r >= 'А' && r <= 'Я':
			return true
		case r == 'ё' || r == 'Ё':
			return true
		}
	}
	return false
}
