package phrases

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoPhrases is returned when a Picker is built from an empty list.
var ErrNoPhrases = errors.New("no phrases to pick from")

// Picker selects target phrases at random.
type Picker struct {
	rnd     *rand.Rand
	phrases []string
	last    int
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker(phrases []string) (*Picker, error) {
	return NewPickerWithSeed(phrases, time.Now().UnixNano())
}

// NewPickerWithSeed returns a deterministic Picker.
func NewPickerWithSeed(phrases []string, seed int64) (*Picker, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	return &Picker{
		rnd:     rand.New(rand.NewSource(seed)),
		phrases: phrases,
		last:    -1,
	}, nil
}

// Next returns a random phrase, never the same one twice in a row when more
// than one phrase is available.
func (p *Picker) Next() string {
	if len(p.phrases) == 1 {
		p.last = 0
		return p.phrases[0]
	}
	idx := p.rnd.Intn(len(p.phrases))
	if idx == p.last {
		idx = (idx + 1 + p.rnd.Intn(len(p.phrases)-1)) % len(p.phrases)
	}
	p.last = idx
	return p.phrases[idx]
}

// Len returns the number of phrases.
func (p *Picker) Len() int {
	return len(p.phrases)
}
