// Package verhoeff implements the Verhoeff check-digit scheme.
//
// The scheme multiplies digits in the dihedral group D5 after permuting them
// by position, which detects every single-digit substitution and every
// adjacent transposition. It protects the last digit of the 12-digit Aadhaar
// number, but nothing in this package assumes a particular length: length
// policy belongs to the caller.
//
// # Usage
//
//	if verhoeff.Validate("234123412346") {
//	    // checksum holds
//	}
//
//	full, err := verhoeff.Append("23412341234") // "234123412346"
//
// The lookup tables are package-level read-only arrays, so every function is
// safe for concurrent use.
package verhoeff
