// Package corpus provides the snippet corpus: built-in samples, user imports
// and random selection per category.
package corpus

import (
	"math/rand"
	"time"
)

// Picker selects snippets at random.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return NewSeededPicker(time.Now().UnixNano())
}

// NewSeededPicker returns a Picker with a fixed seed.
func NewSeededPicker(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen element of pool, or "" if pool is empty.
func (p *Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[p.rnd.Intn(len(pool))]
}
