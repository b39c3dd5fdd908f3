package validators

import "fmt"

// CEP validates and formats CEP values (the 8-digit Brazilian postal code,
// canonical format XXXXX-XXX).
//
// There is no check digit: any 8-digit value other than all zeros is
// accepted. Whether a code is actually assigned can only be answered by the
// postal lookup service, so there is no generator either.
var CEP CEPValidator

// CEPValidator implements the Validator contract for CEP values.
type CEPValidator struct{}

// Validate checks a CEP for length and the all-zero value.
func (CEPValidator) Validate(value string) error {
	cleaned := OnlyDigits(value)

	if len(cleaned) != 8 {
		return newError("cep", KindBadFormat,
			fmt.Sprintf("must have 8 digits, got %d", len(cleaned)))
	}
	if cleaned == "00000000" {
		return newError("cep", KindBadFormat, "cannot be all zeros")
	}
	return nil
}

// IsValid reports whether the CEP is valid.
func (v CEPValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// Format returns the CEP as XXXXX-XXX.
func (CEPValidator) Format(value string) (string, error) {
	cleaned := OnlyDigits(value)
	if len(cleaned) != 8 {
		return "", newError("cep", KindBadFormat, "must have 8 digits to format")
	}
	return cleaned[:5] + "-" + cleaned[5:], nil
}

// Clean strips all formatting, keeping only digits.
func (CEPValidator) Clean(value string) string {
	return OnlyDigits(value)
}
