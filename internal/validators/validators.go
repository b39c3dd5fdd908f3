// Package validators implements validation, formatting and generation for
// Brazilian identification numbers: CPF, CNPJ, CEP, phone numbers, PIX
// payment keys and vehicle plates.
//
// All operations are pure and safe for concurrent use. The constant tables
// (check-digit weights, DDD sets, blacklists) encode rules fixed by the
// national numbering authorities and are not configurable.
package validators

import (
	"errors"
	"strings"
)

// Validator is the contract shared by every scheme in this package.
// Validate reports the specific failure, IsValid is the silent variant.
type Validator interface {
	// Validate checks the value and returns a *ValidationError on failure.
	Validate(value string) error

	// IsValid reports whether the value is valid.
	IsValid(value string) bool

	// Format returns the value with the scheme's canonical separators.
	Format(value string) (string, error)

	// Clean strips all formatting from the value.
	Clean(value string) string
}

// The PIX composite is excluded: its Clean can fail when no key subtype is
// detected, so it carries its own method set.
var (
	_ Validator = CPFValidator{}
	_ Validator = CNPJValidator{}
	_ Validator = CEPValidator{}
	_ Validator = PhoneValidator{}
	_ Validator = PlateValidator{}
)

// ErrorKind classifies why a value failed validation.
type ErrorKind string

const (
	// KindBadFormat means wrong length or non-canonical shape after cleaning.
	KindBadFormat ErrorKind = "bad_format"
	// KindChecksumMismatch means right length but wrong check digits.
	KindChecksumMismatch ErrorKind = "checksum_mismatch"
	// KindBlacklisted means a syntactically well-formed but known-invalid value.
	KindBlacklisted ErrorKind = "blacklisted_sequence"
	// KindOutOfRange means a generator parameter outside its valid domain.
	KindOutOfRange ErrorKind = "out_of_range"
	// KindUnknownAreaCode means an area code outside the national DDD table.
	KindUnknownAreaCode ErrorKind = "unknown_area_code"
	// KindUnknownKeyType means no PIX key subtype matched the value.
	KindUnknownKeyType ErrorKind = "unknown_key_type"
)

// ValidationError is the error type returned by every validator in this
// package.
type ValidationError struct {
	Scheme  string
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Scheme + ": " + e.Message
}

// newError builds a ValidationError for the given scheme.
func newError(scheme string, kind ErrorKind, message string) *ValidationError {
	return &ValidationError{Scheme: scheme, Kind: kind, Message: message}
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind == kind
	}
	return false
}

// OnlyDigits returns the decimal digits of s, in order, discarding
// everything else. Empty input yields empty output.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit reports whether s is a non-empty run of one repeated byte.
func allSameDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}
