package kyc

import "time"

var defaultValidator = New()

// ValidatePAN validates a PAN with the default policy.
func ValidatePAN(value string) string { return defaultValidator.PAN(value) }

// ValidateAadhaar validates an Aadhaar number with the default denylist.
func ValidateAadhaar(value string) string { return defaultValidator.Aadhaar(value) }

// ValidateMobile validates a 10-digit Indian mobile number.
func ValidateMobile(value string) string { return defaultValidator.Mobile(value) }

// ValidateEmail validates an email address.
func ValidateEmail(value string) string { return defaultValidator.Email(value) }

// ValidatePincode validates a 6-digit Indian postal code.
func ValidatePincode(value string) string { return defaultValidator.Pincode(value) }

// ValidateDateOfBirth validates a birth date against today and ages 18 to 120.
func ValidateDateOfBirth(dob *time.Time) string { return defaultValidator.DateOfBirth(dob) }
