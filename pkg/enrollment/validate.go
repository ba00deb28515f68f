package enrollment

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goldsaver/memberkit/pkg/kyc"
	"github.com/goldsaver/memberkit/pkg/validator"
)

// DefaultCountry is the only country members can enroll from.
const DefaultCountry = "India"

// Messages for the rules owned by the orchestrator.
const (
	MsgInvalidCity    = "Please select a valid city for this pincode"
	MsgInvalidState   = "Please select a valid state"
	MsgUnknownPincode = "Please enter a valid pincode"
	MsgInvalidAmount  = "Please enter a valid amount"
)

// dedicatedFields run in this order after the required checks.
var dedicatedFields = []string{
	FieldPincode, FieldMobile, FieldEmail, FieldPAN, FieldAadhaar, FieldDOB, FieldAmount,
}

// Input is one validation attempt.
type Input struct {
	Form     FormSnapshot
	Required []string
	// Cities valid for the form's pincode. Empty disables the city check.
	Cities []string
	// PincodeUnknown flags a well-formed pincode that the directory does not know.
	PincodeUnknown bool
}

// Result maps each failing field to its message.
type Result struct {
	Errors  map[string]string `json:"errors"`
	IsValid bool              `json:"isValid"`
}

func newResult(errs map[string]string) Result {
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

// Err returns the errors as validator.ValidationErrors sorted by field, or nil when valid.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return validator.FromMap(r.Errors)
}

// Validator runs the enrollment rules over a form snapshot.
// It is immutable and safe for concurrent use.
type Validator struct {
	kyc     *kyc.Validator
	labels  *Labels
	country string
	states  []string
	rules   map[string]kyc.Func
}

// Option configures a Validator.
type Option func(*Validator)

// WithKYC sets the identity validator and its policy.
func WithKYC(k *kyc.Validator) Option {
	return func(v *Validator) {
		if k != nil {
			v.kyc = k
		}
	}
}

// WithLabels sets the label catalog used for required messages.
func WithLabels(l *Labels) Option {
	return func(v *Validator) {
		if l != nil {
			v.labels = l
		}
	}
}

// WithCountry sets the country every form must name.
func WithCountry(country string) Option {
	return func(v *Validator) {
		if country = strings.TrimSpace(country); country != "" {
			v.country = country
		}
	}
}

// WithStates replaces the accepted state list. An empty list accepts any state.
func WithStates(states []string) Option {
	return func(v *Validator) {
		v.states = states
	}
}

// New creates a Validator with the default kyc policy, labels, country and states.
func New(opts ...Option) *Validator {
	v := &Validator{
		labels:  DefaultLabels(),
		country: DefaultCountry,
		states:  States,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.kyc == nil {
		v.kyc = kyc.New()
	}

	v.rules = map[string]kyc.Func{
		FieldPincode: v.kyc.Pincode,
		FieldMobile:  v.kyc.Mobile,
		FieldEmail:   v.kyc.Email,
		FieldPAN:     v.kyc.PAN,
		FieldAadhaar: v.kyc.Aadhaar,
		FieldDOB:     v.kyc.DateOfBirthString,
		FieldAmount:  validateAmount,
		FieldState:   v.validateState,
		FieldCountry: v.validateCountry,
	}
	return v
}

// Labels returns the catalog used for required messages.
func (v *Validator) Labels() *Labels {
	return v.labels
}

// Validate checks in.Form and returns one message per failing field.
//
// Empty required fields get the generic required message first. Dedicated
// validators then run on every non-empty field they cover and replace that
// message. Country is checked when required or present, state when
// present, and city only when in.Cities is non-empty.
func (v *Validator) Validate(in Input) Result {
	var errs validator.ValidationErrors
	fail := func(field, msg string) {
		if msg != "" {
			errs.Add(validator.ValidationError{Field: field, Message: msg})
		}
	}

	required := make(map[string]bool, len(in.Required))
	for _, field := range in.Required {
		required[field] = true
		if isBlank(in.Form.Get(field)) {
			fail(field, v.labels.RequiredMessage(field))
		}
	}

	for _, field := range dedicatedFields {
		if value := in.Form.Get(field); !isBlank(value) {
			fail(field, v.rules[field](value))
		}
	}

	if pin := in.Form.Get(FieldPincode); in.PincodeUnknown && !isBlank(pin) && !errs.Has(FieldPincode) {
		fail(FieldPincode, MsgUnknownPincode)
	}

	if state := in.Form.Get(FieldState); !isBlank(state) {
		fail(FieldState, v.validateState(state))
	}

	if country := in.Form.Get(FieldCountry); required[FieldCountry] || !isBlank(country) {
		fail(FieldCountry, v.validateCountry(country))
	}

	if city := in.Form.Get(FieldCity); !isBlank(city) && len(in.Cities) > 0 {
		fail(FieldCity, validator.FirstMessage(
			validator.InListFold(FieldCity, city, in.Cities).WithMessage(MsgInvalidCity),
		))
	}

	// later messages for a field replace earlier ones
	return newResult(errs.Map())
}

// ValidateField checks a single value the way Validate would, without
// cross-field rules. Fields without a dedicated rule only get the required
// check. Unknown fields return ErrUnknownField.
func (v *Validator) ValidateField(field, value string) (string, error) {
	if rule, ok := v.rules[field]; ok {
		if isBlank(value) && field != FieldCountry {
			return v.labels.RequiredMessage(field), nil
		}
		return rule(value), nil
	}
	if _, ok := v.labels.Fields[field]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if isBlank(value) {
		return v.labels.RequiredMessage(field), nil
	}
	return "", nil
}

func (v *Validator) validateCountry(value string) string {
	return validator.FirstMessage(
		validator.EqualString(FieldCountry, strings.TrimSpace(value), v.country).
			WithMessage(fmt.Sprintf("Country should be %s", v.country)),
	)
}

func (v *Validator) validateState(value string) string {
	if len(v.states) == 0 {
		return ""
	}
	return validator.FirstMessage(
		validator.InListFold(FieldState, value, v.states).WithMessage(MsgInvalidState),
	)
}

func validateAmount(value string) string {
	return validator.FirstMessage(
		validator.PositiveAmountString(FieldAmount, value).WithMessage(MsgInvalidAmount),
	)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var defaultValidator = sync.OnceValue(func() *Validator { return New() })

// Validate runs in through a Validator with default settings.
func Validate(in Input) Result {
	return defaultValidator().Validate(in)
}
