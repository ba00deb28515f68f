package enrollment

import "time"

// Config controls the enrollment rules that vary per deployment.
type Config struct {
	Country       string        `env:"ENROLLMENT_COUNTRY" envDefault:"India"`
	StrictPincode bool          `env:"ENROLLMENT_STRICT_PINCODE" envDefault:"false"`
	LabelsFile    string        `env:"ENROLLMENT_LABELS_FILE"`
	LookupTimeout time.Duration `env:"ENROLLMENT_LOOKUP_TIMEOUT" envDefault:"3s"`
}
