package engine

import "strconv"

// reduceToDigit sums the character values of s (letters as A=1..Z=26, digits
// at face value, everything else ignored) and recursively reduces the sum's
// digit string until a single digit 1-9 remains, stopping early at the
// master numbers 11, 22 and 33.
//
// The early stop makes the reducer consistent with the cosmic systemic
// score, which awards a bonus for master-number life paths.
func reduceToDigit(s string) int {
	sum := 0
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			sum += int(r-'A') + 1
		case r >= '0' && r <= '9':
			sum += int(r - '0')
		}
	}
	if sum > 9 && !isMasterNumber(sum) {
		return reduceToDigit(strconv.Itoa(sum))
	}
	return sum
}

// isMasterNumber reports whether n is one of the numerology master numbers.
func isMasterNumber(n int) bool {
	return n == 11 || n == 22 || n == 33
}
