package corpus

import (
	"math/rand"
	"time"
)

// Picker chooses paragraphs uniformly at random.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewPickerWithSource returns a Picker driven by src.
func NewPickerWithSource(src rand.Source) *Picker {
	return &Picker{rnd: rand.New(src)}
}

// Pick returns a random paragraph, or "" when texts is empty.
func (p *Picker) Pick(texts []string) string {
	if len(texts) == 0 {
		return ""
	}
	return texts[p.rnd.Intn(len(texts))]
}
