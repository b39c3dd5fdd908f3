package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCNPJValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		kind  ErrorKind
	}{
		{name: "valid formatted", input: "11.222.333/0001-81", valid: true},
		{name: "valid bare", input: "11222333000181", valid: true},
		{name: "wrong check digits", input: "11.222.333/0001-80", valid: false, kind: KindChecksumMismatch},
		{name: "repeated digits", input: "11111111111111", valid: false, kind: KindBlacklisted},
		{name: "too short", input: "1122233300018", valid: false, kind: KindBadFormat},
		{name: "empty", input: "", valid: false, kind: KindBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CNPJ.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				assert.True(t, CNPJ.IsValid(tt.input))
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "want kind %s, got %v", tt.kind, err)
		})
	}
}

func TestCNPJFormat(t *testing.T) {
	formatted, err := CNPJ.Format("11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11.222.333/0001-81", formatted)

	_, err = CNPJ.Format("11222333")
	assert.Error(t, err)
}

func TestCNPJCheckDigits(t *testing.T) {
	digits, err := CNPJ.CheckDigits("112223330001")
	require.NoError(t, err)
	assert.Equal(t, "81", digits)

	_, err = CNPJ.CheckDigits("112223")
	assert.Error(t, err)
}

func TestCNPJBranchInfo(t *testing.T) {
	hq, err := CNPJ.IsHeadquarters("11.222.333/0001-81")
	require.NoError(t, err)
	assert.True(t, hq)

	branch, err := CNPJ.IsBranch("11.222.333/0001-81")
	require.NoError(t, err)
	assert.False(t, branch)

	n, err := CNPJ.BranchNumber("11222333000181")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	base, err := CNPJ.BaseNumber("11222333000181")
	require.NoError(t, err)
	assert.Equal(t, "11222333", base)

	// Derived info is only available for valid values.
	_, err = CNPJ.IsHeadquarters("11222333000180")
	assert.Error(t, err)
}

func TestCNPJGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		value, err := CNPJ.Generate(false, 1)
		require.NoError(t, err)
		require.Len(t, value, 14)
		assert.True(t, CNPJ.IsValid(value), "generated CNPJ %q must validate", value)
		assert.Equal(t, "0001", value[8:12])
		seen[value] = true
	}
	assert.GreaterOrEqual(t, len(seen), 95)

	value, err := CNPJ.Generate(false, 42)
	require.NoError(t, err)
	assert.Equal(t, "0042", value[8:12])

	formatted, err := CNPJ.Generate(true, 1)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`, formatted)

	_, err = CNPJ.Generate(false, 0)
	assert.True(t, IsKind(err, KindOutOfRange))
	_, err = CNPJ.Generate(false, 10000)
	assert.True(t, IsKind(err, KindOutOfRange))
}
