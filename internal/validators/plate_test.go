package validators

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlateValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "legacy with hyphen", input: "ABC-1234", valid: true},
		{name: "legacy bare", input: "ABC1234", valid: true},
		{name: "legacy lowercase", input: "abc-1234", valid: true},
		{name: "mercosul", input: "ABC1D23", valid: true},
		{name: "mercosul lowercase", input: "abc1d23", valid: true},
		{name: "invalid character", input: "AB*1234", valid: false},
		{name: "inner space", input: "ABC 1234", valid: false},
		{name: "too short", input: "AB1234", valid: false},
		{name: "too long", input: "ABCD12345", valid: false},
		{name: "digits where letters expected", input: "1BC1234", valid: false},
		{name: "two letters in mercosul tail", input: "ABC1DE3", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Plate.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, KindBadFormat), "want kind %s, got %v", KindBadFormat, err)
		})
	}
}

func TestPlateFormat(t *testing.T) {
	formatted, err := Plate.Format("abc1234")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", formatted)

	formatted, err = Plate.Format("ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", formatted)

	// Mercosul plates carry no separator.
	formatted, err = Plate.Format("abc1d23")
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", formatted)

	_, err = Plate.Format("X")
	assert.Error(t, err)
}

func TestPlateClean(t *testing.T) {
	assert.Equal(t, "ABC1234", Plate.Clean(" abc-1234 "))
	assert.Equal(t, "ABC1D23", Plate.Clean("abc1d23"))
}

func TestPlateKind(t *testing.T) {
	kind, err := Plate.Kind("ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, PlateLegacy, kind)

	kind, err = Plate.Kind("ABC1D23")
	require.NoError(t, err)
	assert.Equal(t, PlateMercosul, kind)

	_, err = Plate.Kind("nope")
	assert.Error(t, err)

	legacy, err := Plate.IsLegacy("ABC-1234")
	require.NoError(t, err)
	assert.True(t, legacy)

	mercosul, err := Plate.IsMercosul("ABC1D23")
	require.NoError(t, err)
	assert.True(t, mercosul)
}

func TestPlateGenerate(t *testing.T) {
	for i := 0; i < 50; i++ {
		plate, err := Plate.Generate(PlateLegacy, false)
		require.NoError(t, err)
		assert.NoError(t, Plate.Validate(plate))

		kind, err := Plate.Kind(plate)
		require.NoError(t, err)
		assert.Equal(t, PlateLegacy, kind)
	}

	for i := 0; i < 50; i++ {
		plate, err := Plate.Generate(PlateMercosul, false)
		require.NoError(t, err)

		kind, err := Plate.Kind(plate)
		require.NoError(t, err)
		assert.Equal(t, PlateMercosul, kind)
	}

	formatted, err := Plate.Generate(PlateLegacy, true)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{3}-\d{4}$`), formatted)

	_, err = Plate.Generate(PlateKind("flying"), false)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindOutOfRange))
}

func TestPlateToMercosulDisplay(t *testing.T) {
	display, err := Plate.ToMercosulDisplay("ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, "ABC1C34", display)

	display, err = Plate.ToMercosulDisplay("abc1034")
	require.NoError(t, err)
	assert.Equal(t, "ABC1A34", display)

	_, err = Plate.ToMercosulDisplay("ABC1D23")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBadFormat))
}
