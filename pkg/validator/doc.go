// Package validator provides small, composable validation rules for member
// enrollment data: required strings, list membership, calendar-correct age
// checks, email shape, and Indian identity and contact formats (PAN,
// Aadhaar, mobile numbers, pincodes).
//
// A Rule pairs a boolean Check with translation-friendly error metadata.
// Rules are evaluated either all at once with Apply, which aggregates every
// failure into ValidationErrors, or in order with First/FirstMessage, which
// stop at the first failure. The latter is how per-field validators with a
// sequence of increasingly specific messages are built:
//
//	msg := validator.FirstMessage(
//	    validator.RequiredString("pincode", v).WithMessage("Pincode is required"),
//	    validator.ExactDigits("pincode", v, 6).WithMessage("Please enter a valid 6-digit pincode"),
//	    validator.NoLeadingZero("pincode", v).WithMessage("Pincode cannot start with 0"),
//	)
//
// Rules hold no shared mutable state and only read package-level compiled
// regular expressions, so they are safe for concurrent use.
//
// # Error Handling
//
// ValidationErrors implements error; use ExtractValidationErrors or
// errors.As to recover field-level details. Map and FromMap convert to and
// from the field -> message shape used by form callers.
package validator
