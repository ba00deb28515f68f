package kyc

// Config holds the enrollment policy knobs that differ between deployments.
type Config struct {
	StrictPAN       bool     `env:"KYC_STRICT_PAN" envDefault:"false"`     // StrictPAN enables the 4th-character holder-type check.
	MinAge          int      `env:"KYC_MIN_AGE" envDefault:"18"`           // MinAge is the minimum member age in whole years.
	MaxAge          int      `env:"KYC_MAX_AGE" envDefault:"120"`          // MaxAge rejects implausible birth dates.
	AadhaarDenylist []string `env:"KYC_AADHAAR_DENYLIST" envSeparator:","` // AadhaarDenylist extends the built-in denylist.
}
