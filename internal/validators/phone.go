package validators

import (
	"fmt"
	"math/rand"
)

// Phone validates, formats and generates Brazilian phone numbers.
//
// Landlines have 10 digits, (XX) XXXX-XXXX; mobiles have 11 digits with a
// leading 9 after the area code, (XX) 9XXXX-XXXX. The two leading digits are
// the DDD area code, a member of the fixed national table.
var Phone PhoneValidator

// PhoneKind distinguishes mobile and landline numbers.
type PhoneKind string

const (
	PhoneMobile   PhoneKind = "mobile"
	PhoneLandline PhoneKind = "landline"
)

// dddToState maps every valid DDD area code to its state abbreviation.
var dddToState = map[string]string{
	"11": "SP", "12": "SP", "13": "SP", "14": "SP", "15": "SP",
	"16": "SP", "17": "SP", "18": "SP", "19": "SP",
	"21": "RJ", "22": "RJ", "24": "RJ",
	"27": "ES", "28": "ES",
	"31": "MG", "32": "MG", "33": "MG", "34": "MG", "35": "MG",
	"37": "MG", "38": "MG",
	"41": "PR", "42": "PR", "43": "PR", "44": "PR", "45": "PR", "46": "PR",
	"47": "SC", "48": "SC", "49": "SC",
	"51": "RS", "53": "RS", "54": "RS", "55": "RS",
	"61": "DF",
	"62": "GO", "64": "GO",
	"63": "TO",
	"65": "MT", "66": "MT",
	"67": "MS",
	"68": "AC",
	"69": "RO",
	"71": "BA", "73": "BA", "74": "BA", "75": "BA", "77": "BA",
	"79": "SE",
	"81": "PE", "87": "PE",
	"82": "AL",
	"83": "PB",
	"84": "RN",
	"85": "CE", "88": "CE",
	"86": "PI", "89": "PI",
	"91": "PA", "93": "PA", "94": "PA",
	"92": "AM", "97": "AM",
	"95": "RR",
	"96": "AP",
	"98": "MA", "99": "MA",
}

// PhoneValidator implements the Validator contract for phone numbers.
type PhoneValidator struct{}

// Validate checks length, area code membership and the mobile/landline
// leading-digit rule.
func (PhoneValidator) Validate(value string) error {
	cleaned := OnlyDigits(value)

	if len(cleaned) != 10 && len(cleaned) != 11 {
		return newError("phone", KindBadFormat,
			fmt.Sprintf("must have 10 (landline) or 11 (mobile) digits, got %d", len(cleaned)))
	}

	ddd := cleaned[:2]
	if _, ok := dddToState[ddd]; !ok {
		return newError("phone", KindUnknownAreaCode, "invalid area code: "+ddd)
	}

	if len(cleaned) == 11 {
		if cleaned[2] != '9' {
			return newError("phone", KindBadFormat, "mobile number must start with 9 after the area code")
		}
	} else if cleaned[2] == '9' {
		return newError("phone", KindBadFormat, "landline number cannot start with 9")
	}
	return nil
}

// IsValid reports whether the phone number is valid.
func (v PhoneValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// Format returns the number as (XX) XXXX-XXXX or (XX) 9XXXX-XXXX depending
// on its length.
func (PhoneValidator) Format(value string) (string, error) {
	cleaned := OnlyDigits(value)

	if len(cleaned) != 10 && len(cleaned) != 11 {
		return "", newError("phone", KindBadFormat, "must have 10 or 11 digits to format")
	}

	ddd := cleaned[:2]
	number := cleaned[2:]
	if len(cleaned) == 11 {
		return "(" + ddd + ") " + number[:5] + "-" + number[5:], nil
	}
	return "(" + ddd + ") " + number[:4] + "-" + number[4:], nil
}

// Clean strips all formatting, keeping only digits.
func (PhoneValidator) Clean(value string) string {
	return OnlyDigits(value)
}

// Generate returns a random valid phone number of the given kind in the
// given area code (empty ddd picks one at random). Mobiles get a fixed
// leading 9 plus 8 random digits; landline prefixes start with a digit in
// [2,5] plus 7 random digits.
func (v PhoneValidator) Generate(kind PhoneKind, ddd string, formatted bool) (string, error) {
	if ddd == "" {
		codes := v.AreaCodes()
		ddd = codes[rand.Intn(len(codes))]
	}
	if _, ok := dddToState[ddd]; !ok {
		return "", newError("phone", KindUnknownAreaCode, "invalid area code: "+ddd)
	}
	if kind != PhoneMobile && kind != PhoneLandline {
		return "", newError("phone", KindOutOfRange,
			fmt.Sprintf("kind must be %q or %q", PhoneMobile, PhoneLandline))
	}

	var first byte
	var randomDigits int
	if kind == PhoneMobile {
		first = '9'
		randomDigits = 8
	} else {
		first = byte('2' + rand.Intn(4))
		randomDigits = 7
	}

	number := make([]byte, 0, 1+randomDigits)
	number = append(number, first)
	for i := 0; i < randomDigits; i++ {
		number = append(number, byte('0'+rand.Intn(10)))
	}

	complete := ddd + string(number)
	if formatted {
		out, _ := v.Format(complete)
		return out, nil
	}
	return complete, nil
}

// Kind classifies a valid phone number as mobile or landline.
func (v PhoneValidator) Kind(value string) (PhoneKind, error) {
	cleaned := OnlyDigits(value)
	if err := v.Validate(cleaned); err != nil {
		return "", err
	}
	if len(cleaned) == 11 {
		return PhoneMobile, nil
	}
	return PhoneLandline, nil
}

// IsMobile reports whether a valid phone number is a mobile.
func (v PhoneValidator) IsMobile(value string) (bool, error) {
	kind, err := v.Kind(value)
	return kind == PhoneMobile, err
}

// IsLandline reports whether a valid phone number is a landline.
func (v PhoneValidator) IsLandline(value string) (bool, error) {
	kind, err := v.Kind(value)
	return kind == PhoneLandline, err
}

// AreaCode returns the DDD of a valid phone number.
func (v PhoneValidator) AreaCode(value string) (string, error) {
	cleaned := OnlyDigits(value)
	if err := v.Validate(cleaned); err != nil {
		return "", err
	}
	return cleaned[:2], nil
}

// StateForAreaCode returns the state abbreviation served by the given DDD.
func (PhoneValidator) StateForAreaCode(ddd string) (string, error) {
	state, ok := dddToState[ddd]
	if !ok {
		return "", newError("phone", KindUnknownAreaCode, "invalid area code: "+ddd)
	}
	return state, nil
}

// AreaCodes returns every valid DDD, in ascending order.
func (PhoneValidator) AreaCodes() []string {
	codes := make([]string, 0, len(dddToState))
	for a := '1'; a <= '9'; a++ {
		for b := '0'; b <= '9'; b++ {
			ddd := string(a) + string(b)
			if _, ok := dddToState[ddd]; ok {
				codes = append(codes, ddd)
			}
		}
	}
	return codes
}
