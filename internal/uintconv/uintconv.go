package uintconv

import "math"

// Parse is a strict decimal integer parser for length-valued headers.
// Contrary to strconv.ParseInt, it accepts plain digit runs only: no signs,
// no leading plus, no whitespace, no empty input. Values overflowing int64
// are rejected as well.
func Parse(str string) (num int64, ok bool) {
	if len(str) == 0 {
		return 0, false
	}

	for i := 0; i < len(str); i++ {
		digit := str[i] - '0'
		if digit > 9 {
			return 0, false
		}

		if num > (math.MaxInt64-int64(digit))/10 {
			return 0, false
		}

		num = num*10 + int64(digit)
	}

	return num, true
}
