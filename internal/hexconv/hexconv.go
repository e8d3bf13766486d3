package hexconv

// Halfbyte maps an ASCII hex digit into its value. All other bytes are mapped to 0xFF.
var Halfbyte = [256]byte{}

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = 0xFF
	}

	for char := '0'; char <= '9'; char++ {
		Halfbyte[char] = byte(char - '0')
	}

	for char := 'a'; char <= 'f'; char++ {
		Halfbyte[char] = byte(char-'a') + 10
		Halfbyte[char-'a'+'A'] = byte(char-'a') + 10
	}
}

const digits = "0123456789abcdef"

// Append renders n in lowercase hex without leading zeroes.
func Append(buff []byte, n uint64) []byte {
	if n == 0 {
		return append(buff, '0')
	}

	var (
		scratch [16]byte
		offset  = len(scratch)
	)

	for ; n > 0; n >>= 4 {
		offset--
		scratch[offset] = digits[n&0xF]
	}

	return append(buff, scratch[offset:]...)
}
