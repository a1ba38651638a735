package h1

// tchar is the set of bytes allowed in HTTP tokens (RFC 9110, 5.6.2):
// visible ASCII except delimiters. Both methods and header names are tokens.
var tchar = [256]bool{}

func init() {
	const extra = "!#$%&'*+-.^_`|~"

	for char := byte('0'); char <= '9'; char++ {
		tchar[char] = true
	}

	for char := byte('a'); char <= 'z'; char++ {
		tchar[char] = true
		tchar[char-0x20] = true
	}

	for i := 0; i < len(extra); i++ {
		tchar[extra[i]] = true
	}
}

func isToken(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}

	for _, char := range raw {
		if !tchar[char] {
			return false
		}
	}

	return true
}

// isFieldValue reports whether the value is free of CR, LF and NUL. Any
// other byte, obs-text included, is passed through verbatim.
func isFieldValue(raw []byte) bool {
	for _, char := range raw {
		switch char {
		case '\r', '\n', 0x00:
			return false
		}
	}

	return true
}

func trimOWS(raw []byte) []byte {
	for len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t') {
		raw = raw[1:]
	}

	for len(raw) > 0 && (raw[len(raw)-1] == ' ' || raw[len(raw)-1] == '\t') {
		raw = raw[:len(raw)-1]
	}

	return raw
}
