package typeset

import (
	"fmt"
	"strings"
)

// Basic CJK numerals, indexed by digit.
var cjkDigits = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

const cjkTen = "十"

// CJKNumeral converts n to its Chinese numeral, e.g. 1→"一", 10→"十",
// 21→"二十一". The valid domain is 1..99; anything else returns
// ErrOrdinalRange, since a document with more than 99 figures or tables
// violates a caller invariant rather than a recoverable condition.
func CJKNumeral(n int) (string, error) {
	if n < 1 || n > 99 {
		return "", fmt.Errorf("%w: %d (must be between 1 and 99)", ErrOrdinalRange, n)
	}

	if n < 10 {
		return cjkDigits[n], nil
	}

	var b strings.Builder
	tens, ones := n/10, n%10
	if tens > 1 {
		b.WriteString(cjkDigits[tens])
	}
	b.WriteString(cjkTen)
	if ones > 0 {
		b.WriteString(cjkDigits[ones])
	}
	return b.String(), nil
}
