// Package sanitizer normalizes raw form input before it is validated or
// logged.
//
// Helpers fall into three groups:
//
//   - Strings: trimming, upper-casing, whitespace removal and digit
//     extraction.
//   - Formats: normalizers for Indian identity and contact data (PAN,
//     Aadhaar, mobile numbers, pincodes, email) and masking helpers that
//     keep personal data out of logs.
//   - Lists: UniqueFold removes blank and case-insensitive duplicate entries.
//
// Every helper is a pure function. Chain combines them:
//
//	clean := sanitizer.Chain(sanitizer.Trim, sanitizer.ToUpper)
//	pan := clean(" abcde1234f ") // "ABCDE1234F"
package sanitizer
