package status

import "strconv"

// Valid reports whether the code is rendered as exactly three digits, which is the only
// form the status line grammar accepts.
func Valid(code Code) bool {
	return code >= 100 && code <= 999
}

// FromBytes parses exactly three ASCII digits, the first of them not being 0. ok is false
// for anything else.
func FromBytes(raw []byte) (code Code, ok bool) {
	if len(raw) != 3 || raw[0] == '0' {
		return 0, false
	}

	for _, char := range raw {
		if char < '0' || char > '9' {
			return 0, false
		}

		code = code*10 + Code(char-'0')
	}

	return code, true
}

// Append renders the code in decimal.
func Append(buff []byte, code Code) []byte {
	return strconv.AppendUint(buff, uint64(code), 10)
}
