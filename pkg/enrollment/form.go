package enrollment

import (
	"errors"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Form field names, as sent by the enrollment client.
const (
	FieldInitial  = "initial"
	FieldName     = "name"
	FieldSurname  = "surname"
	FieldDoorNo   = "doorNo"
	FieldAddress1 = "address1"
	FieldAddress2 = "address2"
	FieldArea     = "area"
	FieldCity     = "city"
	FieldState    = "state"
	FieldCountry  = "country"
	FieldPincode  = "pincode"
	FieldMobile   = "mobile"
	FieldEmail    = "email"
	FieldPAN      = "panNumber"
	FieldAadhaar  = "aadharNumber"
	FieldDOB      = "dob"
	FieldSchemeID = "schemeId"
	FieldAmount   = "amount"
	FieldAccCode  = "accCode"
)

// Step names one screen of the enrollment flow.
type Step string

const (
	StepPersonal Step = "personal"
	StepScheme   Step = "scheme"
)

// PersonalFields are required on the personal details step.
var PersonalFields = []string{
	FieldInitial, FieldName, FieldSurname, FieldDoorNo, FieldAddress1, FieldArea,
	FieldCity, FieldState, FieldCountry, FieldPincode, FieldMobile, FieldDOB,
	FieldEmail, FieldPAN, FieldAadhaar,
}

// SchemeFields are required on the scheme selection step.
var SchemeFields = []string{FieldSchemeID, FieldAmount, FieldAccCode}

// RequiredFields returns a copy of the required field list for step.
func RequiredFields(step Step) ([]string, error) {
	switch step {
	case StepPersonal:
		return append([]string(nil), PersonalFields...), nil
	case StepScheme:
		return append([]string(nil), SchemeFields...), nil
	default:
		return nil, ErrUnknownStep
	}
}

// ParseStep parses a step name. An empty name means the personal step.
func ParseStep(s string) (Step, error) {
	switch step := Step(strings.ToLower(strings.TrimSpace(s))); step {
	case "":
		return StepPersonal, nil
	case StepPersonal, StepScheme:
		return step, nil
	default:
		return "", ErrUnknownStep
	}
}

// FormSnapshot maps field names to the raw values captured at validation time.
// A missing key reads as an empty value.
type FormSnapshot map[string]string

// Get returns the raw value of field.
func (f FormSnapshot) Get(field string) string {
	return f[field]
}

// Clone returns an independent copy of f.
func (f FormSnapshot) Clone() FormSnapshot {
	out := make(FormSnapshot, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// MemberForm is the typed enrollment form accepted over HTTP.
type MemberForm struct {
	Initial  string `json:"initial" mapstructure:"initial"`
	Name     string `json:"name" mapstructure:"name"`
	Surname  string `json:"surname" mapstructure:"surname"`
	DoorNo   string `json:"doorNo" mapstructure:"doorNo"`
	Address1 string `json:"address1" mapstructure:"address1"`
	Address2 string `json:"address2" mapstructure:"address2"`
	Area     string `json:"area" mapstructure:"area"`
	City     string `json:"city" mapstructure:"city"`
	State    string `json:"state" mapstructure:"state"`
	Country  string `json:"country" mapstructure:"country"`
	Pincode  string `json:"pincode" mapstructure:"pincode"`
	Mobile   string `json:"mobile" mapstructure:"mobile"`
	Email    string `json:"email" mapstructure:"email"`
	PAN      string `json:"panNumber" mapstructure:"panNumber"`
	Aadhaar  string `json:"aadharNumber" mapstructure:"aadharNumber"`
	DOB      string `json:"dob" mapstructure:"dob"`
	SchemeID string `json:"schemeId" mapstructure:"schemeId"`
	Amount   string `json:"amount" mapstructure:"amount"`
	AccCode  string `json:"accCode" mapstructure:"accCode"`
}

// Snapshot flattens the form into a FormSnapshot keyed by field name.
func (m MemberForm) Snapshot() (FormSnapshot, error) {
	out := make(map[string]string)
	if err := mapstructure.Decode(m, &out); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return FormSnapshot(out), nil
}

// DecodeForm builds a MemberForm from a loosely typed JSON object. Numbers
// and booleans are converted to their string form, so {"amount": 5000} and
// {"amount": "5000"} decode alike. Unknown keys are ignored.
func DecodeForm(raw map[string]any) (MemberForm, error) {
	var form MemberForm
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &form,
	})
	if err != nil {
		return MemberForm{}, errors.Join(ErrFailedToDecode, err)
	}
	if err := dec.Decode(raw); err != nil {
		return MemberForm{}, errors.Join(ErrFailedToDecode, err)
	}
	return form, nil
}
