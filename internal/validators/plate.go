package validators

import (
	"math/rand"
	"regexp"
	"strings"
)

// Plate validates, formats and generates Brazilian vehicle plates.
//
// Two shapes exist: the legacy format LLL-DDDD (3 letters, optional hyphen,
// 4 digits) and the Mercosul format LLLDLDD (3 letters, 1 digit, 1 letter,
// 2 digits) rolled out from 2018 on.
var Plate PlateValidator

// PlateKind distinguishes the two plate formats.
type PlateKind string

const (
	PlateLegacy   PlateKind = "legacy"
	PlateMercosul PlateKind = "mercosul"
)

var (
	plateLegacyRegex   = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$`)
	plateMercosulRegex = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

const plateLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PlateValidator implements the Validator contract for vehicle plates.
type PlateValidator struct{}

// Validate checks a plate against both formats. Characters outside letters,
// digits and hyphen are rejected before cleaning, so a malformed character is
// reported distinctly from a wrong shape.
func (v PlateValidator) Validate(value string) error {
	stripped := strings.ToUpper(strings.TrimSpace(value))

	for _, r := range stripped {
		if !isAlnum(r) && r != '-' {
			return newError("plate", KindBadFormat, "contains invalid characters")
		}
	}

	cleaned := v.Clean(value)
	if len(cleaned) < 7 || len(cleaned) > 8 {
		return newError("plate", KindBadFormat, "must have 7 or 8 characters")
	}
	if !plateLegacyRegex.MatchString(cleaned) && !plateMercosulRegex.MatchString(cleaned) {
		return newError("plate", KindBadFormat, "does not match the legacy or Mercosul shape")
	}
	return nil
}

// IsValid reports whether the plate is valid.
func (v PlateValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// Format returns the plate in canonical form: legacy plates get a hyphen
// after the third character, Mercosul plates carry no separator.
func (v PlateValidator) Format(value string) (string, error) {
	cleaned := v.Clean(value)
	if err := v.Validate(cleaned); err != nil {
		return "", err
	}
	if plateMercosulRegex.MatchString(cleaned) {
		return cleaned, nil
	}
	return cleaned[:3] + "-" + cleaned[3:], nil
}

// Clean strips hyphens and spaces and uppercases, keeping only letters and
// digits.
func (PlateValidator) Clean(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Kind classifies a valid plate as legacy or Mercosul.
func (v PlateValidator) Kind(value string) (PlateKind, error) {
	cleaned := v.Clean(value)
	if err := v.Validate(cleaned); err != nil {
		return "", err
	}
	if plateMercosulRegex.MatchString(cleaned) {
		return PlateMercosul, nil
	}
	return PlateLegacy, nil
}

// IsLegacy reports whether a valid plate uses the legacy format.
func (v PlateValidator) IsLegacy(value string) (bool, error) {
	kind, err := v.Kind(value)
	return kind == PlateLegacy, err
}

// IsMercosul reports whether a valid plate uses the Mercosul format.
func (v PlateValidator) IsMercosul(value string) (bool, error) {
	kind, err := v.Kind(value)
	return kind == PlateMercosul, err
}

// Generate returns a random valid plate of the given kind.
func (v PlateValidator) Generate(kind PlateKind, formatted bool) (string, error) {
	if kind != PlateLegacy && kind != PlateMercosul {
		return "", newError("plate", KindOutOfRange,
			"kind must be \"legacy\" or \"mercosul\"")
	}

	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteByte(plateLetters[rand.Intn(len(plateLetters))])
	}

	if kind == PlateLegacy {
		for i := 0; i < 4; i++ {
			b.WriteByte(byte('0' + rand.Intn(10)))
		}
	} else {
		b.WriteByte(byte('0' + rand.Intn(10)))
		b.WriteByte(plateLetters[rand.Intn(len(plateLetters))])
		b.WriteByte(byte('0' + rand.Intn(10)))
		b.WriteByte(byte('0' + rand.Intn(10)))
	}

	plate := b.String()
	if formatted {
		out, _ := v.Format(plate)
		return out, nil
	}
	return plate, nil
}

// ToMercosulDisplay transposes a legacy plate into the Mercosul shape by
// replacing its second digit with a letter ('A' + digit).
//
// This is a visual demonstration only. It is NOT the official DETRAN
// remapping; a real converted plate carries a different number.
func (v PlateValidator) ToMercosulDisplay(legacy string) (string, error) {
	cleaned := v.Clean(legacy)
	if !plateLegacyRegex.MatchString(cleaned) {
		return "", newError("plate", KindBadFormat, "must be a legacy-format plate")
	}

	letters := cleaned[:3]
	digits := cleaned[3:]

	letter := byte('A' + (digits[1] - '0'))
	if letter > 'Z' {
		letter = 'A'
	}
	return letters + string(digits[0]) + string(letter) + digits[2:], nil
}

func isAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
