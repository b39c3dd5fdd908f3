package validators

import (
	"fmt"
	"math/rand"
	"strconv"
)

// CNPJ validates, formats and generates CNPJ numbers (the 14-digit Brazilian
// legal-entity taxpayer ID, canonical format XX.XXX.XXX/XXXX-XX).
//
// Structure: 8 base digits identifying the company, a 4-digit branch number
// (0001 = headquarters) and 2 check digits.
var CNPJ CNPJValidator

var cnpjBlacklist = map[string]bool{
	"00000000000000": true,
	"11111111111111": true,
	"22222222222222": true,
	"33333333333333": true,
	"44444444444444": true,
	"55555555555555": true,
	"66666666666666": true,
	"77777777777777": true,
	"88888888888888": true,
	"99999999999999": true,
}

// CNPJValidator implements the Validator contract for CNPJ numbers.
type CNPJValidator struct{}

// Validate checks a CNPJ and returns a *ValidationError describing the first
// rule it breaks: length, blacklist, then check digits.
func (CNPJValidator) Validate(value string) error {
	cleaned := OnlyDigits(value)

	if len(cleaned) != 14 {
		return newError("cnpj", KindBadFormat,
			fmt.Sprintf("must have 14 digits, got %d", len(cleaned)))
	}
	if cnpjBlacklist[cleaned] {
		return newError("cnpj", KindBlacklisted, "repeated-digit sequence")
	}
	if !hasValidCheckDigits(cleaned, cnpjFirstWeights, cnpjSecondWeights) {
		return newError("cnpj", KindChecksumMismatch, "incorrect check digits")
	}
	return nil
}

// IsValid reports whether the CNPJ is valid.
func (v CNPJValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// Format returns the CNPJ as XX.XXX.XXX/XXXX-XX.
func (v CNPJValidator) Format(value string) (string, error) {
	cleaned := OnlyDigits(value)
	if len(cleaned) != 14 {
		return "", newError("cnpj", KindBadFormat, "must have 14 digits to format")
	}
	return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" +
		cleaned[8:12] + "-" + cleaned[12:], nil
}

// Clean strips all formatting, keeping only digits.
func (CNPJValidator) Clean(value string) string {
	return OnlyDigits(value)
}

// Generate returns a random valid CNPJ for the given branch number.
// Branch 1 produces a headquarters CNPJ (branch digits 0001); the branch
// must be in [1, 9999].
func (v CNPJValidator) Generate(formatted bool, branch int) (string, error) {
	if branch < 1 || branch > 9999 {
		return "", newError("cnpj", KindOutOfRange, "branch number must be between 1 and 9999")
	}

	var complete string
	for {
		base := make([]byte, 8)
		for i := range base {
			base[i] = byte('0' + rand.Intn(10))
		}
		full := fmt.Sprintf("%s%04d", base, branch)
		complete = full + checkDigits(full, cnpjFirstWeights, cnpjSecondWeights)
		if !cnpjBlacklist[complete] {
			break
		}
	}

	if formatted {
		out, _ := v.Format(complete)
		return out, nil
	}
	return complete, nil
}

// CheckDigits computes the two check digits for a CNPJ base. The input is
// cleaned first and must carry at least 12 digits; only the first 12 are used.
func (CNPJValidator) CheckDigits(base string) (string, error) {
	cleaned := OnlyDigits(base)
	if len(cleaned) < 12 {
		return "", newError("cnpj", KindBadFormat, "base must have at least 12 digits")
	}
	return checkDigits(cleaned[:12], cnpjFirstWeights, cnpjSecondWeights), nil
}

// IsHeadquarters reports whether a valid CNPJ belongs to the company's
// headquarters (branch digits 0001).
func (v CNPJValidator) IsHeadquarters(value string) (bool, error) {
	cleaned := OnlyDigits(value)
	if err := v.Validate(cleaned); err != nil {
		return false, err
	}
	return cleaned[8:12] == "0001", nil
}

// IsBranch reports whether a valid CNPJ belongs to a branch (anything other
// than 0001).
func (v CNPJValidator) IsBranch(value string) (bool, error) {
	hq, err := v.IsHeadquarters(value)
	if err != nil {
		return false, err
	}
	return !hq, nil
}

// BranchNumber returns the branch number of a valid CNPJ (1 = headquarters).
func (v CNPJValidator) BranchNumber(value string) (int, error) {
	cleaned := OnlyDigits(value)
	if err := v.Validate(cleaned); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(cleaned[8:12])
	if err != nil {
		return 0, newError("cnpj", KindBadFormat, "branch digits are not numeric")
	}
	return n, nil
}

// BaseNumber returns the first 8 digits of a valid CNPJ, which identify the
// legal entity across all of its branches.
func (v CNPJValidator) BaseNumber(value string) (string, error) {
	cleaned := OnlyDigits(value)
	if err := v.Validate(cleaned); err != nil {
		return "", err
	}
	return cleaned[:8], nil
}
