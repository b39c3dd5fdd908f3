package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		kind  ErrorKind
	}{
		{name: "valid mobile formatted", input: "(11) 98765-4321", valid: true},
		{name: "valid mobile bare", input: "11987654321", valid: true},
		{name: "valid landline", input: "(11) 3456-7890", valid: true},
		{name: "unknown area code", input: "(20) 98765-4321", valid: false, kind: KindUnknownAreaCode},
		{name: "mobile without leading 9", input: "11887654321", valid: false, kind: KindBadFormat},
		{name: "landline starting with 9", input: "1198765432", valid: false, kind: KindBadFormat},
		{name: "too short", input: "119876543", valid: false, kind: KindBadFormat},
		{name: "too long", input: "119876543210", valid: false, kind: KindBadFormat},
		{name: "empty", input: "", valid: false, kind: KindBadFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Phone.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.kind), "want kind %s, got %v", tt.kind, err)
		})
	}
}

func TestPhoneFormat(t *testing.T) {
	formatted, err := Phone.Format("11987654321")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321", formatted)

	formatted, err = Phone.Format("1134567890")
	require.NoError(t, err)
	assert.Equal(t, "(11) 3456-7890", formatted)

	_, err = Phone.Format("119")
	assert.Error(t, err)
}

func TestPhoneKind(t *testing.T) {
	kind, err := Phone.Kind("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, PhoneMobile, kind)

	kind, err = Phone.Kind("(11) 3456-7890")
	require.NoError(t, err)
	assert.Equal(t, PhoneLandline, kind)

	mobile, err := Phone.IsMobile("11987654321")
	require.NoError(t, err)
	assert.True(t, mobile)

	landline, err := Phone.IsLandline("1134567890")
	require.NoError(t, err)
	assert.True(t, landline)
}

func TestPhoneAreaCode(t *testing.T) {
	ddd, err := Phone.AreaCode("(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "11", ddd)

	state, err := Phone.StateForAreaCode("11")
	require.NoError(t, err)
	assert.Equal(t, "SP", state)

	state, err = Phone.StateForAreaCode("85")
	require.NoError(t, err)
	assert.Equal(t, "CE", state)

	_, err = Phone.StateForAreaCode("20")
	assert.True(t, IsKind(err, KindUnknownAreaCode))

	codes := Phone.AreaCodes()
	assert.Len(t, codes, 67)
	assert.Equal(t, "11", codes[0])
	assert.Equal(t, "99", codes[len(codes)-1])
}

func TestPhoneGenerate(t *testing.T) {
	for i := 0; i < 20; i++ {
		mobile, err := Phone.Generate(PhoneMobile, "11", false)
		require.NoError(t, err)
		require.Len(t, mobile, 11)
		assert.True(t, Phone.IsValid(mobile), "generated mobile %q must validate", mobile)

		landline, err := Phone.Generate(PhoneLandline, "21", false)
		require.NoError(t, err)
		require.Len(t, landline, 10)
		assert.True(t, Phone.IsValid(landline), "generated landline %q must validate", landline)
	}

	// Empty DDD picks a random valid one.
	value, err := Phone.Generate(PhoneMobile, "", false)
	require.NoError(t, err)
	assert.True(t, Phone.IsValid(value))

	formatted, err := Phone.Generate(PhoneMobile, "11", true)
	require.NoError(t, err)
	assert.Regexp(t, `^\(11\) 9\d{4}-\d{4}$`, formatted)

	_, err = Phone.Generate(PhoneMobile, "20", false)
	assert.True(t, IsKind(err, KindUnknownAreaCode))

	_, err = Phone.Generate(PhoneKind("pager"), "11", false)
	assert.True(t, IsKind(err, KindOutOfRange))
}
