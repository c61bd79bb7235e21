package features

import (
	"fmt"
	"sort"
)

// LabelEncoder maps categorical values to integer codes. The code of a value
// is its index in the sorted class list, matching how the encoders were
// fitted offline.
type LabelEncoder struct {
	classes []string
	index   map[string]int
}

// NewLabelEncoder builds an encoder over the fitted vocabulary. Classes are
// sorted so codes are stable regardless of the order they arrive in.
func NewLabelEncoder(classes []string) *LabelEncoder {
	sorted := make([]string, len(classes))
	copy(sorted, classes)
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, c := range sorted {
		index[c] = i
	}
	return &LabelEncoder{classes: sorted, index: index}
}

// Encode returns the integer code for value, or ErrUnknownCategoryValue if
// the value was not part of the fitted vocabulary.
func (e *LabelEncoder) Encode(value string) (int, error) {
	code, ok := e.index[value]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategoryValue, value)
	}
	return code, nil
}

// Classes returns the fitted vocabulary in code order.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Encoders holds the fitted categorical encoders for the two categorical
// feature columns.
type Encoders struct {
	FragilityLevel *LabelEncoder
	MaterialType   *LabelEncoder
}
