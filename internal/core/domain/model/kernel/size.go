package kernel

import (
	"fmt"

	"parcellocker/internal/pkg/errs"
)

// Size is the size class shared by compartments and packages. A package fits
// only a compartment of the same class.
type Size int

const (
	// UnknownSize catches uninitialized values.
	UnknownSize Size = iota
	Small
	Medium
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		Small:  "S",
		Medium: "M",
		Large:  "L",
	}
}

// ParseSize converts the wire/storage code ("S", "M" or "L") into a Size.
func ParseSize(code string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == code {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause(
		"size",
		fmt.Errorf("%q is not one of S, M, L", code),
	)
}

// Validate rejects UnknownSize and out-of-range values.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the single-letter code, or "Unknown".
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Sizes lists every valid size in ascending order.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}
