package verhoeff

import (
	"errors"
	"strconv"
)

// ErrNonDigit is returned when a payload contains anything but ASCII digits.
var ErrNonDigit = errors.New("verhoeff: payload must contain only digits")

// multiplication table of the dihedral group D5
var d = [10][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// position permutations; row i is the permutation applied at position i mod 8
var p = [8][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// multiplicative inverses in D5
var inv = [10]uint8{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// Validate reports whether digits carries a correct trailing Verhoeff check digit.
// Digits are consumed least-significant first. Any non-digit character makes
// the result false. The empty string trivially validates.
func Validate(digits string) bool {
	c, ok := checksum(digits, 0)
	return ok && c == 0
}

// CheckDigit computes the Verhoeff check digit for payload.
func CheckDigit(payload string) (int, error) {
	// The check digit will occupy position 0, so payload digits start at 1.
	c, ok := checksum(payload, 1)
	if !ok {
		return 0, ErrNonDigit
	}
	return int(inv[c]), nil
}

// Append returns payload followed by its check digit.
func Append(payload string) (string, error) {
	digit, err := CheckDigit(payload)
	if err != nil {
		return "", err
	}
	return payload + strconv.Itoa(digit), nil
}

func checksum(s string, offset int) (uint8, bool) {
	var c uint8
	for i := 0; i < len(s); i++ {
		ch := s[len(s)-1-i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		c = d[c][p[(i+offset)%8][ch-'0']]
	}
	return c, true
}
