// Package kyc validates Indian identity and contact data captured during
// member enrollment: PAN, Aadhaar, mobile number, email, pincode and date of
// birth.
//
// Every validator takes the raw form value and returns the message to show
// next to the field, or "" when the value is acceptable. Values are
// normalized first (PAN is upper-cased, separators are stripped from
// Aadhaar, mobile numbers and pincodes), so callers pass exactly what the
// member typed.
//
// # Configuration
//
// Product policy lives in a Validator:
//
//	v := kyc.New(
//	    kyc.WithStrictPAN(true),         // check the PAN holder-type letter
//	    kyc.WithAgeBounds(18, 120),
//	    kyc.WithAadhaarDenylist("999999990019"),
//	)
//	msg := v.Aadhaar("2341 2341 2346")
//
// NewFromConfig builds the same from environment-backed Config. The package
// level ValidateXxx functions use the defaults: lenient PAN, ages 18 to 120
// and the built-in Aadhaar denylist.
//
// A Validator is immutable after construction and safe for concurrent use.
package kyc
