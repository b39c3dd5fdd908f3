package validators

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Pix validates PIX payment keys: CPF, CNPJ, email, phone in international
// form (+55...) and random keys (EVP, UUID v4). The key subtype is never
// stored; it is inferred by trying each subtype validator in a fixed
// priority order.
var Pix PixValidator

// KeyType identifies the subtype of a PIX key.
type KeyType string

const (
	KeyCPF    KeyType = "cpf"
	KeyCNPJ   KeyType = "cnpj"
	KeyEmail  KeyType = "email"
	KeyPhone  KeyType = "phone"
	KeyRandom KeyType = "random"
)

var (
	pixEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	pixPhoneRegex = regexp.MustCompile(`^\+55\d{2}9?\d{8}$`)
	pixUUIDRegex  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// KeyInfo is the best-effort diagnostic produced by Describe. Extras holds
// type-specific fields; any extra whose computation fails is simply absent.
type KeyInfo struct {
	Valid     bool                   `json:"valid"`
	Type      KeyType                `json:"type,omitempty"`
	Formatted string                 `json:"formatted,omitempty"`
	Cleaned   string                 `json:"cleaned,omitempty"`
	Masked    string                 `json:"masked,omitempty"`
	Extras    map[string]interface{} `json:"extras,omitempty"`
}

// KeyResult is one entry of a batch validation.
type KeyResult struct {
	Key   string  `json:"key"`
	Valid bool    `json:"valid"`
	Type  KeyType `json:"type,omitempty"`
	Error string  `json:"error,omitempty"`
}

// PixValidator implements the Validator contract for PIX keys.
type PixValidator struct{}

// Sanitize trims the value, removes line breaks, tabs, zero-width and BOM
// characters, and collapses internal whitespace runs into single spaces.
func (PixValidator) Sanitize(value string) string {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer("\n", "", "\r", "", "\t", "").Replace(value)
	value = strings.Join(strings.Fields(value), " ")
	value = strings.ReplaceAll(value, "\u200B", "")
	value = strings.ReplaceAll(value, "\uFEFF", "")
	return value
}

// DetectType infers the key subtype by trying each validator in priority
// order: CPF, CNPJ, email, phone, random. It returns "" when nothing
// matches.
func (v PixValidator) DetectType(value string) KeyType {
	value = v.Sanitize(value)

	switch {
	case v.IsValidCPFKey(value):
		return KeyCPF
	case v.IsValidCNPJKey(value):
		return KeyCNPJ
	case v.IsValidEmailKey(value):
		return KeyEmail
	case v.IsValidPhoneKey(value):
		return KeyPhone
	case v.IsValidRandomKey(value):
		return KeyRandom
	}
	return ""
}

// Validate checks whether the value is a valid PIX key of any subtype.
func (v PixValidator) Validate(value string) error {
	if v.DetectType(value) == "" {
		return newError("pix", KindUnknownKeyType, "value does not match any PIX key type")
	}
	return nil
}

// IsValid reports whether the value is a valid PIX key of any subtype.
func (v PixValidator) IsValid(value string) bool {
	return v.Validate(value) == nil
}

// IsValidCPFKey reports whether the value is a valid CPF key.
func (v PixValidator) IsValidCPFKey(value string) bool {
	return CPF.IsValid(v.Sanitize(value))
}

// IsValidCNPJKey reports whether the value is a valid CNPJ key.
func (v PixValidator) IsValidCNPJKey(value string) bool {
	return CNPJ.IsValid(v.Sanitize(value))
}

// IsValidEmailKey reports whether the value is a valid email key.
// PIX email rules: 5 to 77 characters, no spaces, local@domain.tld shape,
// no consecutive dots, local part must not start or end with a dot.
func (v PixValidator) IsValidEmailKey(value string) bool {
	value = v.Sanitize(value)

	if len(value) < 5 || len(value) > 77 {
		return false
	}
	if strings.Contains(value, " ") {
		return false
	}
	if !pixEmailRegex.MatchString(value) {
		return false
	}
	if strings.Contains(value, "..") {
		return false
	}
	local := value[:strings.Index(value, "@")]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	return true
}

// IsValidPhoneKey reports whether the value is a valid phone key in PIX
// form: +55, a 2-digit area code, then 9 plus 8 digits (mobile) or 8 digits
// (landline). The national part must also pass the phone validator.
func (v PixValidator) IsValidPhoneKey(value string) bool {
	value = v.Sanitize(value)

	if !strings.HasPrefix(value, "+55") {
		return false
	}
	if !pixPhoneRegex.MatchString(value) {
		return false
	}
	return Phone.IsValid(value[3:])
}

// IsValidRandomKey reports whether the value is a valid random key (EVP): a
// canonical 36-character hyphenated UUID whose version nibble is 4.
func (v PixValidator) IsValidRandomKey(value string) bool {
	value = v.Sanitize(value)

	if !pixUUIDRegex.MatchString(value) {
		return false
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Version() == 4
}

// Format returns the key in canonical display form: CPF/CNPJ keys are
// formatted by their validators, emails and random keys are lowercased,
// phone keys pass through.
func (v PixValidator) Format(value string) (string, error) {
	value = v.Sanitize(value)

	switch v.DetectType(value) {
	case KeyCPF:
		return CPF.Format(value)
	case KeyCNPJ:
		return CNPJ.Format(value)
	case KeyPhone:
		return value, nil
	case KeyEmail:
		return strings.ToLower(value), nil
	case KeyRandom:
		return strings.ToLower(value), nil
	}
	return "", newError("pix", KindUnknownKeyType, "invalid PIX key: "+value)
}

// Clean returns the key with formatting stripped: digits only for CPF/CNPJ,
// the phone key without "+" and spaces, lowercase for emails and random
// keys.
func (v PixValidator) Clean(value string) (string, error) {
	value = v.Sanitize(value)

	switch v.DetectType(value) {
	case KeyCPF:
		return CPF.Clean(value), nil
	case KeyCNPJ:
		return CNPJ.Clean(value), nil
	case KeyPhone:
		return strings.NewReplacer("+", "", " ", "").Replace(value), nil
	case KeyEmail:
		return strings.ToLower(value), nil
	case KeyRandom:
		return strings.ToLower(value), nil
	}
	return "", newError("pix", KindUnknownKeyType, "invalid PIX key: "+value)
}

// Normalize converts the key into its storage form: national-format phones
// become +55 keys, emails are lowercased, random keys are canonicalized,
// anything else passes through sanitized.
func (v PixValidator) Normalize(value string) (string, error) {
	value = v.Sanitize(value)

	if Phone.IsValid(value) && !strings.HasPrefix(value, "+55") {
		return v.PhoneToPixKey(value)
	}

	switch v.DetectType(value) {
	case KeyEmail:
		return strings.ToLower(value), nil
	case KeyRandom:
		return strings.ToLower(value), nil
	}
	return value, nil
}

// PhoneToPixKey converts a national-format Brazilian phone number into the
// PIX key form (+55 followed by the cleaned digits). Values that already
// start with +55 pass through.
func (v PixValidator) PhoneToPixKey(phone string) (string, error) {
	phone = v.Sanitize(phone)

	if strings.HasPrefix(phone, "+55") {
		return phone, nil
	}
	if err := Phone.Validate(phone); err != nil {
		return "", err
	}
	return "+55" + Phone.Clean(phone), nil
}

// Mask redacts a key for display, keeping only enough of it to be
// recognizable. visibleSuffix controls how many trailing characters a phone
// key keeps (the other subtypes have fixed redaction shapes).
func (v PixValidator) Mask(value string, visibleSuffix int) (string, error) {
	value = v.Sanitize(value)
	if visibleSuffix <= 0 {
		visibleSuffix = 4
	}

	switch v.DetectType(value) {
	case KeyCPF:
		formatted, err := CPF.Format(value)
		if err != nil {
			return "", err
		}
		return "***.***.*" + formatted[len(formatted)-5:], nil

	case KeyCNPJ:
		formatted, err := CNPJ.Format(value)
		if err != nil {
			return "", err
		}
		return "**.***.***/****-" + formatted[len(formatted)-2:], nil

	case KeyEmail:
		at := strings.Index(value, "@")
		local, domain := value[:at], value[at+1:]
		if len(local) > 4 {
			return local[:4] + "***@" + domain, nil
		}
		return "***@" + domain, nil

	case KeyPhone:
		if visibleSuffix > len(value)-6 {
			visibleSuffix = len(value) - 6
		}
		return value[:6] + "****" + value[len(value)-visibleSuffix:], nil

	case KeyRandom:
		return value[:8] + "****-****-****-" + value[len(value)-12:], nil
	}
	return "", newError("pix", KindUnknownKeyType, "invalid PIX key: "+value)
}

// Equal reports whether two keys address the same destination, regardless of
// formatting or case. Bare national phones are lifted into PIX form before
// comparing. Equal never fails: any internal error collapses to false.
func (v PixValidator) Equal(a, b string) bool {
	a = v.Sanitize(a)
	b = v.Sanitize(b)

	if Phone.IsValid(a) && !strings.HasPrefix(a, "+55") {
		if converted, err := v.PhoneToPixKey(a); err == nil {
			a = converted
		}
	}
	if Phone.IsValid(b) && !strings.HasPrefix(b, "+55") {
		if converted, err := v.PhoneToPixKey(b); err == nil {
			b = converted
		}
	}

	typeA, typeB := v.DetectType(a), v.DetectType(b)
	if typeA == "" || typeB == "" || typeA != typeB {
		return false
	}

	cleanedA, errA := v.Clean(a)
	cleanedB, errB := v.Clean(b)
	if errA != nil || errB != nil {
		return false
	}
	return cleanedA == cleanedB
}

// Describe aggregates everything known about a key: validity, detected
// type, formatted/cleaned/masked forms and type-specific extras (area code
// and state for phones, headquarters flag and branch number for CNPJ keys).
// It is a best-effort summary: failures while computing a field leave that
// field absent instead of propagating.
func (v PixValidator) Describe(value string) KeyInfo {
	value = v.Sanitize(value)
	keyType := v.DetectType(value)

	info := KeyInfo{
		Valid:  keyType != "",
		Type:   keyType,
		Extras: map[string]interface{}{},
	}
	if keyType == "" {
		return info
	}

	if formatted, err := v.Format(value); err == nil {
		info.Formatted = formatted
	}
	if cleaned, err := v.Clean(value); err == nil {
		info.Cleaned = cleaned
	}
	if masked, err := v.Mask(value, 4); err == nil {
		info.Masked = masked
	}

	switch keyType {
	case KeyPhone:
		national := strings.TrimPrefix(value, "+55")
		info.Extras["area_code"] = national[:2]
		if state, err := Phone.StateForAreaCode(national[:2]); err == nil {
			info.Extras["state"] = state
		}
		if kind, err := Phone.Kind(national); err == nil {
			info.Extras["phone_kind"] = string(kind)
		}

	case KeyCPF:
		info.Extras["document"] = "CPF"

	case KeyCNPJ:
		info.Extras["document"] = "CNPJ"
		cleaned := CNPJ.Clean(value)
		if hq, err := CNPJ.IsHeadquarters(cleaned); err == nil {
			info.Extras["headquarters"] = hq
		}
		if branch, err := CNPJ.BranchNumber(cleaned); err == nil {
			info.Extras["branch_number"] = branch
		}
	}

	return info
}

// GenerateRandomKey returns a new random PIX key (a UUID v4 string).
func (PixValidator) GenerateRandomKey() string {
	return uuid.New().String()
}

// ValidateBatch validates every key in the slice and returns one result per
// key, in order.
func (v PixValidator) ValidateBatch(keys []string) []KeyResult {
	results := make([]KeyResult, 0, len(keys))

	for _, key := range keys {
		result := KeyResult{Key: key}
		if keyType := v.DetectType(key); keyType != "" {
			result.Valid = true
			result.Type = keyType
		} else {
			result.Error = "key type not identified"
		}
		results = append(results, result)
	}
	return results
}

// GenerateTestKeys returns count valid keys of each subtype, keyed by type.
// Intended for populating fixtures and test databases.
func (v PixValidator) GenerateTestKeys(count int) map[KeyType][]string {
	keys := map[KeyType][]string{
		KeyCPF:    make([]string, 0, count),
		KeyCNPJ:   make([]string, 0, count),
		KeyEmail:  make([]string, 0, count),
		KeyPhone:  make([]string, 0, count),
		KeyRandom: make([]string, 0, count),
	}

	for i := 0; i < count; i++ {
		keys[KeyCPF] = append(keys[KeyCPF], CPF.Generate(true))
		cnpj, _ := CNPJ.Generate(true, 1)
		keys[KeyCNPJ] = append(keys[KeyCNPJ], cnpj)
		keys[KeyEmail] = append(keys[KeyEmail], fmt.Sprintf("test%d@example.com", i))

		number := make([]byte, 0, 9)
		number = append(number, '9')
		for j := 0; j < 8; j++ {
			number = append(number, byte('0'+rand.Intn(10)))
		}
		keys[KeyPhone] = append(keys[KeyPhone], "+5511"+string(number))

		keys[KeyRandom] = append(keys[KeyRandom], v.GenerateRandomKey())
	}
	return keys
}
