// Package post assembles one DailyPost per weekday from the stored profiles
// and strategy framework, using fixed template families.
package post

import "math/rand"

// Picker selects an index from a template family. Injecting it keeps
// template selection reproducible under a fixed seed.
type Picker interface {
	// Pick returns an index in [0, n). n must be positive.
	Pick(n int) int
}

type seededPicker struct {
	r *rand.Rand
}

// NewSeededPicker returns a Picker backed by a deterministic source.
func NewSeededPicker(seed int64) Picker {
	return &seededPicker{r: rand.New(rand.NewSource(seed))}
}

func (p *seededPicker) Pick(n int) int {
	return p.r.Intn(n)
}

// firstPicker always selects the first template. Used as the fallback when
// no picker is supplied.
type firstPicker struct{}

func (firstPicker) Pick(int) int { return 0 }
