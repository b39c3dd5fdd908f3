package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCEPValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "valid formatted", input: "01310-100", valid: true},
		{name: "valid bare", input: "01310100", valid: true},
		{name: "all zeros", input: "00000-000", valid: false},
		{name: "too short", input: "0131010", valid: false},
		{name: "too long", input: "013101000", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "letters", input: "abcde-fgh", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, CEP.IsValid(tt.input))
			if !tt.valid {
				assert.True(t, IsKind(CEP.Validate(tt.input), KindBadFormat))
			}
		})
	}
}

func TestCEPFormat(t *testing.T) {
	formatted, err := CEP.Format("01310100")
	require.NoError(t, err)
	assert.Equal(t, "01310-100", formatted)

	_, err = CEP.Format("013")
	assert.Error(t, err)
}

func TestCEPClean(t *testing.T) {
	assert.Equal(t, "01310100", CEP.Clean("01310-100"))
	assert.Equal(t, "01310100", CEP.Clean(" 01.310-100 "))
}
