package record

import "unicode/utf8"

// appendString appends s to dst as a JSON string.
// Control characters are escaped and invalid UTF-8 bytes are replaced with U+FFFD.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	p := 0

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c < utf8.RuneSelf && c >= 0x20 && c != '\\' && c != '"':
			i++

		case c < utf8.RuneSelf:
			dst = append(dst, s[p:i]...)
			switch c {
			case '\t':
				dst = append(dst, '\\', 't')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\\':
				dst = append(dst, '\\', '\\')
			case '"':
				dst = append(dst, '\\', '"')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
			i++
			p = i

		default:
			v, wd := utf8.DecodeRuneInString(s[i:])
			if v == utf8.RuneError && wd == 1 {
				dst = append(dst, s[p:i]...)
				dst = append(dst, `\ufffd`...)
				i++
				p = i
			} else {
				i += wd
			}
		}
	}

	dst = append(dst, s[p:]...)

	return append(dst, '"')
}

const hexDigits = "0123456789abcdef"
