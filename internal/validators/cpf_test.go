package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPFValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		kind  ErrorKind
	}{
		{name: "valid formatted", input: "123.456.789-09", valid: true},
		{name: "valid bare", input: "12345678909", valid: true},
		{name: "valid with noise", input: " 123 456 789 09 ", valid: true},
		{name: "wrong check digits", input: "123.456.789-00", valid: false, kind: KindChecksumMismatch},
		{name: "repeated digits", input: "111.111.111-11", valid: false, kind: KindBlacklisted},
		{name: "all zeros", input: "000.000.000-00", valid: false, kind: KindBlacklisted},
		{name: "too short", input: "1234567890", valid: false, kind: KindBadFormat},
		{name: "too long", input: "123456789091", valid: false, kind: KindBadFormat},
		{name: "empty", input: "", valid: false, kind: KindBadFormat},
		{name: "letters only", input: "abcdefghijk", valid: false, kind: KindBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CPF.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				assert.True(t, CPF.IsValid(tt.input))
				return
			}
			require.Error(t, err)
			assert.False(t, CPF.IsValid(tt.input))
			assert.True(t, IsKind(err, tt.kind), "want kind %s, got %v", tt.kind, err)
		})
	}
}

func TestCPFFormat(t *testing.T) {
	formatted, err := CPF.Format("12345678909")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-09", formatted)

	// Already formatted input is normalized, not double-formatted.
	formatted, err = CPF.Format("123.456.789-09")
	require.NoError(t, err)
	assert.Equal(t, "123.456.789-09", formatted)

	_, err = CPF.Format("123")
	assert.Error(t, err)
}

func TestCPFClean(t *testing.T) {
	assert.Equal(t, "12345678909", CPF.Clean("123.456.789-09"))
	assert.Equal(t, "12345678909", CPF.Clean(" 123-456-789/09 "))
	assert.Equal(t, "", CPF.Clean("abc"))
}

func TestCPFCheckDigits(t *testing.T) {
	digits, err := CPF.CheckDigits("123456789")
	require.NoError(t, err)
	assert.Equal(t, "09", digits)

	// A full CPF is truncated to its 9-digit base.
	digits, err = CPF.CheckDigits("12345678909")
	require.NoError(t, err)
	assert.Equal(t, "09", digits)

	_, err = CPF.CheckDigits("12345")
	assert.Error(t, err)
}

func TestCPFGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		value := CPF.Generate(false)
		require.Len(t, value, 11)
		assert.True(t, CPF.IsValid(value), "generated CPF %q must validate", value)
		seen[value] = true
	}
	// Random generation over a 10^9 space should essentially never collide.
	assert.GreaterOrEqual(t, len(seen), 95)

	formatted := CPF.Generate(true)
	assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, formatted)
	assert.True(t, CPF.IsValid(formatted))
}
