package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixDetectType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyType
	}{
		{name: "bare cpf", input: "12345678909", want: KeyCPF},
		{name: "formatted cpf", input: "123.456.789-09", want: KeyCPF},
		{name: "bare cnpj", input: "11222333000181", want: KeyCNPJ},
		{name: "formatted cnpj", input: "11.222.333/0001-81", want: KeyCNPJ},
		{name: "email", input: "user@example.com", want: KeyEmail},
		{name: "mobile phone key", input: "+5511987654321", want: KeyPhone},
		{name: "landline phone key", input: "+551134567890", want: KeyPhone},
		{name: "random key", input: "123e4567-e89b-42d3-a456-426614174000", want: KeyRandom},
		{name: "uuid v1 rejected", input: "123e4567-e89b-12d3-a456-426614174000", want: ""},
		{name: "phone without country code", input: "11987654321", want: ""},
		{name: "phone with unknown area code", input: "+5520987654321", want: ""},
		{name: "cpf with bad check digits", input: "12345678900", want: ""},
		{name: "garbage", input: "not-a-key", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pix.DetectType(tt.input))
		})
	}
}

func TestPixValidate(t *testing.T) {
	assert.NoError(t, Pix.Validate("12345678909"))
	assert.True(t, Pix.IsValid("user@example.com"))

	err := Pix.Validate("not-a-key")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnknownKeyType))
}

func TestPixSanitize(t *testing.T) {
	assert.Equal(t, "user@example.com", Pix.Sanitize("  user@example.com\n"))
	assert.Equal(t, "user@example.com", Pix.Sanitize("user@exam\u200Bple.com"))
	assert.Equal(t, "user@example.com", Pix.Sanitize("\uFEFFuser@example.com"))
	assert.Equal(t, "a b", Pix.Sanitize("a \t  b"))
}

func TestPixEmailKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "plain", input: "user@example.com", valid: true},
		{name: "minimum length", input: "a@b.co", valid: true},
		{name: "plus tag", input: "user+tag@example.com", valid: true},
		{name: "too short", input: "a@b.", valid: false},
		{name: "too long", input: strings.Repeat("a", 70) + "@example.com", valid: false},
		{name: "consecutive dots", input: "us..er@example.com", valid: false},
		{name: "local starts with dot", input: ".user@example.com", valid: false},
		{name: "local ends with dot", input: "user.@example.com", valid: false},
		{name: "no tld", input: "user@example", valid: false},
		{name: "no at sign", input: "user.example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, Pix.IsValidEmailKey(tt.input))
		})
	}
}

func TestPixFormatAndClean(t *testing.T) {
	formatted, err := Pix.Format("12345678909")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-09", formatted)

	formatted, err = Pix.Format("USER@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", formatted)

	cleaned, err := Pix.Clean("123.456.789-09")
	require.NoError(t, err)
	assert.Equal(t, "12345678909", cleaned)

	cleaned, err = Pix.Clean("+5511987654321")
	require.NoError(t, err)
	assert.Equal(t, "5511987654321", cleaned)

	cleaned, err = Pix.Clean("123E4567-E89B-42D3-A456-426614174000")
	require.NoError(t, err)
	assert.Equal(t, "123e4567-e89b-42d3-a456-426614174000", cleaned)

	_, err = Pix.Clean("not-a-key")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnknownKeyType))
}

func TestPixNormalize(t *testing.T) {
	normalized, err := Pix.Normalize("11987654321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", normalized)

	normalized, err = Pix.Normalize("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", normalized)

	normalized, err = Pix.Normalize("USER@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", normalized)

	normalized, err = Pix.Normalize("123.456.789-09")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-09", normalized)
}

func TestPixPhoneToPixKey(t *testing.T) {
	key, err := Pix.PhoneToPixKey("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", key)

	key, err = Pix.PhoneToPixKey("+5511987654321")
	require.NoError(t, err)
	assert.Equal(t, "+5511987654321", key)

	_, err = Pix.PhoneToPixKey("123")
	assert.Error(t, err)
}

func TestPixMask(t *testing.T) {
	masked, err := Pix.Mask("12345678909", 0)
	require.NoError(t, err)
	assert.Equal(t, "***.***.*89-09", masked)

	masked, err = Pix.Mask("11222333000181", 0)
	require.NoError(t, err)
	assert.Equal(t, "**.***.***/****-81", masked)

	masked, err = Pix.Mask("user@example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, "***@example.com", masked)

	masked, err = Pix.Mask("maria.silva@example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, "mari***@example.com", masked)

	masked, err = Pix.Mask("+5511987654321", 4)
	require.NoError(t, err)
	assert.Equal(t, "+55119****4321", masked)

	// A suffix longer than the key must not slice past its bounds.
	masked, err = Pix.Mask("+5511987654321", 20)
	require.NoError(t, err)
	assert.Equal(t, "+55119****87654321", masked)

	masked, err = Pix.Mask("123e4567-e89b-42d3-a456-426614174000", 0)
	require.NoError(t, err)
	assert.Equal(t, "123e4567****-****-****-426614174000", masked)

	_, err = Pix.Mask("not-a-key", 0)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindUnknownKeyType))
}

func TestPixEqual(t *testing.T) {
	assert.True(t, Pix.Equal("123.456.789-09", "12345678909"))
	assert.True(t, Pix.Equal("User@Example.com", "user@example.com"))
	assert.True(t, Pix.Equal("(11) 98765-4321", "+5511987654321"))
	assert.True(t, Pix.Equal("123E4567-E89B-42D3-A456-426614174000",
		"123e4567-e89b-42d3-a456-426614174000"))

	assert.False(t, Pix.Equal("12345678909", "11222333000181"))
	assert.False(t, Pix.Equal("12345678909", "not-a-key"))
	assert.False(t, Pix.Equal("", ""))
}

func TestPixDescribe(t *testing.T) {
	info := Pix.Describe("+5511987654321")
	assert.True(t, info.Valid)
	assert.Equal(t, KeyPhone, info.Type)
	assert.Equal(t, "11", info.Extras["area_code"])
	assert.Equal(t, "SP", info.Extras["state"])
	assert.Equal(t, "mobile", info.Extras["phone_kind"])

	info = Pix.Describe("11.222.333/0001-81")
	assert.True(t, info.Valid)
	assert.Equal(t, KeyCNPJ, info.Type)
	assert.Equal(t, "11222333000181", info.Cleaned)
	assert.Equal(t, "CNPJ", info.Extras["document"])
	assert.Equal(t, true, info.Extras["headquarters"])
	assert.Equal(t, 1, info.Extras["branch_number"])

	info = Pix.Describe("nope")
	assert.False(t, info.Valid)
	assert.Empty(t, info.Type)
}

func TestPixGenerateRandomKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		key := Pix.GenerateRandomKey()
		assert.True(t, Pix.IsValidRandomKey(key))
		seen[key] = true
	}
	assert.Len(t, seen, 20)
}

func TestPixValidateBatch(t *testing.T) {
	keys := []string{"12345678909", "not-a-key", "user@example.com"}
	results := Pix.ValidateBatch(keys)
	require.Len(t, results, 3)

	assert.Equal(t, "12345678909", results[0].Key)
	assert.True(t, results[0].Valid)
	assert.Equal(t, KeyCPF, results[0].Type)

	assert.False(t, results[1].Valid)
	assert.Equal(t, "key type not identified", results[1].Error)

	assert.True(t, results[2].Valid)
	assert.Equal(t, KeyEmail, results[2].Type)
}

func TestPixGenerateTestKeys(t *testing.T) {
	keys := Pix.GenerateTestKeys(3)
	require.Len(t, keys, 5)

	for keyType, values := range keys {
		require.Len(t, values, 3, "type %s", keyType)
		for _, value := range values {
			assert.Equal(t, keyType, Pix.DetectType(value), "value %s", value)
		}
	}
}
