package validators

import (
	"fmt"
	"math/rand"
)

// CPF validates, formats and generates CPF numbers (the 11-digit Brazilian
// natural-person taxpayer ID, two trailing check digits, canonical format
// XXX.XXX.XXX-XX).
var CPF CPFValidator

// cpfBlacklist holds same-digit sequences that have the right length but are
// rejected by the registry.
var cpfBlacklist = map[string]bool{
	"00000000000": true,
	"11111111111": true,
	"22222222222": true,
	"33333333333": true,
	"44444444444": true,
	"55555555555": true,
	"66666666666": true,
	"77777777777": true,
	"88888888888": true,
	"99999999999": true,
}

// CPFValidator implements the Validator contract for CPF numbers.
type CPFValidator struct{}

// Validate checks a CPF and returns a *ValidationError describing the first
// rule it breaks: length, blacklist, then check digits.
func (CPFValidator) Validate(value string) error {
	cleaned := OnlyDigits(value)

	if len(cleaned) != 11 {
		return newError("cpf", KindBadFormat,
			fmt.Sprintf("must have 11 digits, got %d", len(cleaned)))
	}
	if cpfBlacklist[cleaned] {
		return newError("cpf", KindBlacklisted, "repeated-digit sequence")
	}
	if !hasValidCheckDigits(cleaned, cpfFirstWeights, cpfSecondWeights) {
		return newError("cpf", KindChecksumMismatch, "incorrect check digits")
	}
	return nil
}

// IsValid reports whether the CPF is valid.
func (v CPFValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// Format returns the CPF as XXX.XXX.XXX-XX. The input may already be
// formatted; it only needs to carry 11 digits.
func (v CPFValidator) Format(value string) (string, error) {
	cleaned := OnlyDigits(value)
	if len(cleaned) != 11 {
		return "", newError("cpf", KindBadFormat, "must have 11 digits to format")
	}
	return cleaned[:3] + "." + cleaned[3:6] + "." + cleaned[6:9] + "-" + cleaned[9:], nil
}

// Clean strips all formatting, keeping only digits.
func (CPFValidator) Clean(value string) string {
	return OnlyDigits(value)
}

// Generate returns a random valid CPF.
func (v CPFValidator) Generate(formatted bool) string {
	var complete string
	for {
		base := make([]byte, 9)
		for i := range base {
			base[i] = byte('0' + rand.Intn(10))
		}
		complete = string(base) + checkDigits(string(base), cpfFirstWeights, cpfSecondWeights)
		if !cpfBlacklist[complete] {
			break
		}
	}

	if formatted {
		out, _ := v.Format(complete)
		return out
	}
	return complete
}

// CheckDigits computes the two check digits for a CPF base. The input is
// cleaned first and must carry at least 9 digits; only the first 9 are used.
func (CPFValidator) CheckDigits(base string) (string, error) {
	cleaned := OnlyDigits(base)
	if len(cleaned) < 9 {
		return "", newError("cpf", KindBadFormat, "base must have at least 9 digits")
	}
	return checkDigits(cleaned[:9], cpfFirstWeights, cpfSecondWeights), nil
}
