package validators

// Check-digit arithmetic shared by the CPF and CNPJ schemes: a weighted
// positional sum modulo 11, where a remainder below 2 yields digit 0 and
// anything else yields 11 minus the remainder. The second check digit is
// computed over the base plus the first check digit.

var (
	cpfFirstWeights  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// checkDigit computes one mod-11 check digit for digits using the given
// weights. digits must contain only '0'-'9' and len(digits) == len(weights).
func checkDigit(digits string, weights []int) int {
	sum := 0
	for i := range weights {
		sum += int(digits[i]-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// checkDigits computes both check digits for base, using firstWeights for
// the first digit and secondWeights for the second (which covers base plus
// the first check digit). The result is a 2-character digit string.
func checkDigits(base string, firstWeights, secondWeights []int) string {
	first := checkDigit(base, firstWeights)
	second := checkDigit(base+string(rune('0'+first)), secondWeights)
	return string([]byte{byte('0' + first), byte('0' + second)})
}

// hasValidCheckDigits reports whether the trailing two digits of value match
// the checksum computed over its base prefix.
func hasValidCheckDigits(value string, firstWeights, secondWeights []int) bool {
	base := value[:len(firstWeights)]
	return value[len(firstWeights):] == checkDigits(base, firstWeights, secondWeights)
}
