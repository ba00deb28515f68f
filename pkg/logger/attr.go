package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/goldsaver/memberkit/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler records the route pattern that served a request.
func Handler(pattern string) slog.Attr {
	return slog.String("handler", pattern)
}

// Field records a form field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Step records the enrollment step being validated.
func Step(name string) slog.Attr {
	return slog.String("step", name)
}

func Pincode(pin string) slog.Attr {
	return slog.String("pincode", pin)
}

// ErrorCount records how many fields failed validation.
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Aadhaar records an Aadhaar number with all but the last four digits masked.
func Aadhaar(number string) slog.Attr {
	return slog.String("aadhaar", sanitizer.MaskAadhaar(number))
}

// PAN records a PAN with its middle characters masked.
func PAN(number string) slog.Attr {
	return slog.String("pan", sanitizer.MaskPAN(number))
}

// Mobile records a mobile number with all but the last four digits masked.
func Mobile(number string) slog.Attr {
	return slog.String("mobile", sanitizer.MaskMobile(number))
}

// FailedFields records the names of the fields that failed validation.
func FailedFields(fields []string) slog.Attr {
	return slog.Any("failed_fields", fields)
}

// Status records an HTTP response status.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
