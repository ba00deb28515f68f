package kyc

// Messages shown to the member. They are part of the mobile client contract.
const (
	MsgPANRequired   = "PAN Number is required"
	MsgPANFormat     = "Invalid PAN format. Should be like ABCDE1234F"
	MsgPANHolderType = "Invalid PAN holder type. 4th character must be one of P, F, C, H, A, T, B, L, J, G"

	MsgAadhaarRequired = "Aadhaar Number is required"
	MsgAadhaarLength   = "Aadhaar should be exactly 12 digits"
	MsgAadhaarInvalid  = "Invalid Aadhaar number"
	MsgAadhaarChecksum = "Invalid Aadhaar number (checksum validation failed)"

	MsgMobileRequired = "Mobile number is required"
	MsgMobileFormat   = "Please enter a valid 10-digit mobile number starting with 6-9"
	MsgMobileInvalid  = "Please enter a valid mobile number"

	MsgEmailRequired = "Email is required"
	MsgEmailTooLong  = "Email address is too long"
	MsgEmailFormat   = "Please enter a valid email address"

	MsgPincodeRequired    = "Pincode is required"
	MsgPincodeFormat      = "Please enter a valid 6-digit pincode"
	MsgPincodeLeadingZero = "Pincode cannot start with 0"

	MsgDOBRequired = "Date of Birth is required"
	MsgDOBFuture   = "Date of Birth cannot be in the future"
	MsgDOBInvalid  = "Please enter a valid date of birth"
)
