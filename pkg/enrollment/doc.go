// Package enrollment validates the member enrollment form step by step.
//
// A Validator runs the generic "required" checks for a step, then the
// dedicated identity validators from package kyc, then the pinned business
// rules (country, state, city-for-pincode). The outcome is a Result holding
// one message per failing field:
//
//	v := enrollment.New()
//	res := v.Validate(enrollment.Input{
//	    Form:     form,
//	    Required: enrollment.PersonalFields,
//	    Cities:   []string{"Connaught Place", "Parliament House"},
//	})
//	if !res.IsValid {
//	    // res.Errors["panNumber"] == "Invalid PAN format. Should be like ABCDE1234F"
//	}
//
// Service wraps a Validator with a pincode.Directory, so callers only supply
// the form and the step name; the city list is looked up on their behalf.
//
// Validation is stateless and re-run from scratch on every attempt.
package enrollment
