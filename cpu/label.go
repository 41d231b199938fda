// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

const (
	LABEL_LIMIT = 6 // Maximum label length.
)

// LabelTable binds label names to program addresses.
type LabelTable struct {
	address map[string]int
}

// ValidLabel checks that a label name may be defined.
func ValidLabel(label string) (err error) {
	switch {
	case len(label) == 0:
		err = &ErrLabel{Label: label, Err: ErrLabelInvalid}
	case len(label) > LABEL_LIMIT:
		err = &ErrLabel{Label: label, Err: ErrLabelInvalid}
	case isDigit(label[0]):
		err = &ErrLabel{Label: label, Err: ErrLabelInvalid}
	case (label[0] == '-' || label[0] == '+') && len(label) > 1 && isDigit(label[1]):
		// Signed numbers would parse as literals, not labels.
		err = &ErrLabel{Label: label, Err: ErrLabelInvalid}
	}

	return
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Define binds a label to an address.
func (lt *LabelTable) Define(label string, address int) (err error) {
	err = ValidLabel(label)
	if err != nil {
		return
	}

	_, ok := lt.address[label]
	if ok {
		err = &ErrLabel{Label: label, Err: ErrLabelDuplicate}
		return
	}

	if lt.address == nil {
		lt.address = make(map[string]int, 16)
	}
	lt.address[label] = address

	return
}

// Resolve returns the address bound to a label.
func (lt *LabelTable) Resolve(label string) (address int, err error) {
	address, ok := lt.address[label]
	if !ok {
		err = ErrLabelMissing(label)
	}
	return
}

// Len returns the number of defined labels.
func (lt *LabelTable) Len() int {
	return len(lt.address)
}

// Reset removes all labels.
func (lt *LabelTable) Reset() {
	clear(lt.address)
}

// All iterates over the labels in address order.
func (lt *LabelTable) All() iter.Seq2[string, int] {
	return func(yield func(label string, address int) bool) {
		labels := slices.SortedFunc(maps.Keys(lt.address), func(a, b string) int {
			return cmp.Compare(lt.address[a], lt.address[b])
		})
		for _, label := range labels {
			if !yield(label, lt.address[label]) {
				return
			}
		}
	}
}
