// Copyright (c) 2026 Keymaster Team
// otpentry - one-time password entry for the terminal
// This source code is licensed under the MIT license found in the LICENSE file.
package otp

import "strings"

// DefaultLength is used when no positive length is configured.
const DefaultLength = 6

// Named keys understood by Field.Press. Any other key is matched by its text.
const (
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyBackspace = "backspace"
)

// Field is the ordered slot state of an OTP entry. Every slot is either empty
// or holds exactly one ASCII digit; the slot count never changes.
type Field struct {
	slots []string
}

// NewField returns a field of n empty slots. n < 1 yields DefaultLength.
func NewField(n int) Field {
	if n < 1 {
		n = DefaultLength
	}
	return Field{slots: make([]string, n)}
}

func (f Field) Len() int { return len(f.slots) }

// Slot returns the value at i, or "" when i is out of range.
func (f Field) Slot(i int) string {
	if i < 0 || i >= len(f.slots) {
		return ""
	}
	return f.slots[i]
}

// Values returns a copy of all slots.
func (f Field) Values() []string {
	out := make([]string, len(f.slots))
	copy(out, f.slots)
	return out
}

// Value concatenates the slots. Empty slots contribute nothing.
func (f Field) Value() string {
	return strings.Join(f.slots, "")
}

// Complete reports whether every slot holds a digit.
func (f Field) Complete() bool {
	for _, s := range f.slots {
		if s == "" {
			return false
		}
	}
	return true
}

func (f *Field) Reset() {
	for i := range f.slots {
		f.slots[i] = ""
	}
}

// Press applies a single key at slot index and returns the slot that should
// hold focus afterwards. Keys that are neither navigation, backspace nor a
// single decimal digit leave the field and the focus untouched.
func (f *Field) Press(index int, k string) int {
	if index < 0 || index >= len(f.slots) {
		return index
	}
	last := len(f.slots) - 1

	switch k {
	case KeyLeft:
		if index > 0 {
			return index - 1
		}
		return index
	case KeyRight:
		if index < last {
			return index + 1
		}
		return index
	case KeyBackspace:
		// moves left even when the slot was already empty
		f.slots[index] = ""
		if index > 0 {
			return index - 1
		}
		return index
	}

	if !isDigitKey(k) {
		return index
	}

	f.slots[index] = k
	if index < last {
		return index + 1
	}
	return index
}

// Paste spreads the digits of text over the slots starting at slot 0. Slots
// past the pasted digits keep their values. ok is false when text holds no
// digit, in which case nothing changes.
func (f *Field) Paste(text string) (focus int, ok bool) {
	digits := extractDigits(text)
	if len(digits) == 0 {
		return 0, false
	}

	n := min(len(digits), len(f.slots))
	for i := 0; i < n; i++ {
		f.slots[i] = string(digits[i])
	}

	return min(len(digits), len(f.slots)-1), true
}

func isDigitKey(k string) bool {
	return len(k) == 1 && isDigit(rune(k[0]))
}

// isDigit accepts ASCII digits only.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func extractDigits(text string) []rune {
	var digits []rune
	for _, r := range text {
		if isDigit(r) {
			digits = append(digits, r)
		}
	}
	return digits
}
