package hexconv

// Invalid marks bytes which aren't hexadecimal digits.
const Invalid = 0xFF

// Halfbyte maps a character to the value of the hex digit it represents,
// or Invalid.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = Invalid
	}

	for char := byte('0'); char <= '9'; char++ {
		Halfbyte[char] = char - '0'
	}

	for char := byte('a'); char <= 'f'; char++ {
		Halfbyte[char] = char - 'a' + 10
	}

	for char := byte('A'); char <= 'F'; char++ {
		Halfbyte[char] = char - 'A' + 10
	}
}
