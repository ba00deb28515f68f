package enrollment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goldsaver/memberkit/pkg/kyc"
	"github.com/goldsaver/memberkit/pkg/logger"
	"github.com/goldsaver/memberkit/pkg/pincode"
	"github.com/goldsaver/memberkit/pkg/validator"
)

const defaultLookupTimeout = 3 * time.Second

// Service validates enrollment steps, looking up the cities of the form's
// pincode through a pincode.Directory.
type Service struct {
	validator     *Validator
	directory     pincode.Directory
	logger        *slog.Logger
	strictPincode bool
	lookupTimeout time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithDirectory sets the pincode directory. Without one the city check is skipped.
func WithDirectory(d pincode.Directory) ServiceOption {
	return func(s *Service) {
		s.directory = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrictPincode rejects pincodes the directory reports as unknown.
func WithStrictPincode(strict bool) ServiceOption {
	return func(s *Service) {
		s.strictPincode = strict
	}
}

// WithLookupTimeout bounds each directory lookup.
func WithLookupTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// NewService creates a Service around v. A nil v uses New().
func NewService(v *Validator, opts ...ServiceOption) *Service {
	if v == nil {
		v = New()
	}
	s := &Service{
		validator:     v,
		logger:        slog.New(slog.DiscardHandler),
		lookupTimeout: defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("enrollment"))
	return s
}

// NewServiceFromConfig builds the Validator and Service described by cfg.
// Options are applied after cfg.
func NewServiceFromConfig(cfg Config, k *kyc.Validator, opts ...ServiceOption) (*Service, error) {
	labels := DefaultLabels()
	if cfg.LabelsFile != "" {
		var err error
		if labels, err = LoadLabels(cfg.LabelsFile); err != nil {
			return nil, err
		}
	}

	v := New(WithKYC(k), WithLabels(labels), WithCountry(cfg.Country))
	base := []ServiceOption{
		WithStrictPincode(cfg.StrictPincode),
		WithLookupTimeout(cfg.LookupTimeout),
	}
	return NewService(v, append(base, opts...)...), nil
}

// Validator returns the underlying form validator.
func (s *Service) Validator() *Validator {
	return s.validator
}

// ValidateStep validates form against the required fields of step.
// Only ErrUnknownStep is returned; directory failures never block validation.
func (s *Service) ValidateStep(ctx context.Context, step Step, form FormSnapshot) (Result, error) {
	required, err := RequiredFields(step)
	if err != nil {
		return Result{}, err
	}

	in := Input{Form: form, Required: required}
	if step == StepPersonal {
		in.Cities, in.PincodeUnknown = s.lookupCities(ctx, form.Get(FieldPincode))
	}

	res := s.validator.Validate(in)
	attrs := []any{logger.Step(string(step)), logger.ErrorCount(len(res.Errors))}
	if !res.IsValid {
		attrs = append(attrs, logger.FailedFields(validator.ExtractValidationErrors(res.Err()).Fields()))
		attrs = append(attrs, identityAttrs(form)...)
	}
	s.logger.DebugContext(ctx, "enrollment step validated", attrs...)
	return res, nil
}

// ValidateField validates one field value. See Validator.ValidateField.
func (s *Service) ValidateField(ctx context.Context, field, value string) (string, error) {
	msg, err := s.validator.ValidateField(field, value)
	switch {
	case err != nil:
		s.logger.DebugContext(ctx, "unknown enrollment field", logger.Field(field))
	case msg != "":
		attrs := append([]any{logger.Field(field)}, identityAttrs(FormSnapshot{field: value})...)
		s.logger.DebugContext(ctx, "enrollment field rejected", attrs...)
	}
	return msg, err
}

// identityAttrs returns masked log attributes for the identity numbers in form.
// Raw values never reach the log.
func identityAttrs(form FormSnapshot) []any {
	var attrs []any
	if v := form.Get(FieldAadhaar); !isBlank(v) {
		attrs = append(attrs, logger.Aadhaar(v))
	}
	if v := form.Get(FieldPAN); !isBlank(v) {
		attrs = append(attrs, logger.PAN(v))
	}
	if v := form.Get(FieldMobile); !isBlank(v) {
		attrs = append(attrs, logger.Mobile(v))
	}
	return attrs
}

// Cities returns the localities for pin. Without a directory it returns
// pincode.ErrNotFound.
func (s *Service) Cities(ctx context.Context, pin string) ([]string, error) {
	if s.directory == nil {
		return nil, pincode.ErrNotFound
	}
	normalized, err := pincode.Normalize(pin)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()
	return s.directory.Cities(ctx, normalized)
}

// lookupCities returns the cities for pin and whether pin should be flagged
// as unknown. Malformed pincodes are left to the pincode validator.
func (s *Service) lookupCities(ctx context.Context, pin string) ([]string, bool) {
	if s.directory == nil {
		return nil, false
	}
	if _, err := pincode.Normalize(pin); err != nil {
		return nil, false
	}

	start := time.Now()
	cities, err := s.Cities(ctx, pin)
	switch {
	case err == nil:
		return cities, false
	case errors.Is(err, pincode.ErrNotFound):
		s.logger.InfoContext(ctx, "pincode not in directory", logger.Pincode(pin))
		return nil, s.strictPincode
	default:
		s.logger.WarnContext(ctx, "pincode lookup failed, skipping city check",
			logger.Pincode(pin),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return nil, false
	}
}
