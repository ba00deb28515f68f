package sanitizer

import "strings"

var (
	// NormalizePAN upper-cases a PAN and drops any whitespace typed inside it.
	NormalizePAN = Chain(RemoveWhitespace, ToUpper)

	// NormalizeMobile reduces a phone number to its ASCII digits:
	// "98765-43210" and "(987) 654 3210" both become "9876543210".
	NormalizeMobile = KeepDigits

	// NormalizePincode reduces a postal code to its ASCII digits.
	NormalizePincode = KeepDigits

	// NormalizeEmail trims surrounding whitespace. Case and dots are left
	// untouched so that format checks see what the member typed.
	NormalizeEmail = Trim
)

// NormalizeAadhaar strips whitespace and hyphens, the separators used when
// an Aadhaar number is printed as "2341 2341 2346" or "2341-2341-2346".
// Any other character is kept so that the format check can reject it.
func NormalizeAadhaar(s string) string {
	return RemoveChars(RemoveWhitespace(s), "-")
}

// MaskString keeps visibleChars runes at each end and stars out the middle.
// Strings too short to keep anything hidden are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[:visibleChars])
	end := string(runes[length-visibleChars:])
	return start + strings.Repeat("*", length-visibleChars*2) + end
}

// MaskAadhaar shows only the last four digits, the form UIDAI allows on
// printed and logged copies: "XXXXXXXX2346".
func MaskAadhaar(s string) string {
	digits := NormalizeAadhaar(s)
	if len(digits) <= 4 {
		return strings.Repeat("X", len(digits))
	}
	return strings.Repeat("X", len(digits)-4) + digits[len(digits)-4:]
}

// MaskPAN hides the middle of a PAN: "AB******4F".
func MaskPAN(s string) string {
	return MaskString(NormalizePAN(s), 2)
}

// MaskMobile keeps the last four digits of a mobile number.
func MaskMobile(s string) string {
	digits := NormalizeMobile(s)
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
