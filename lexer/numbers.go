/*
File    : calf/lexer/numbers.go
*/

package lexer

import "github.com/arrdem/calf/token"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// integerRule matches spec.md §4.2: optional sign then one or more digits.
// Grounded on go-mix/lexer/lexer_utils.go's readNumber digit scan.
func integerRule() Rule {
	return Rule{
		Kind: token.Integer,
		Match: func(buf string) bool {
			i := 0
			if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
				i++
			}
			if i == len(buf) {
				return false
			}
			for ; i < len(buf); i++ {
				if !isDigit(buf[i]) {
					return false
				}
			}
			return true
		},
	}
}

// floatRule matches spec.md §4.2: a body with a required decimal point and
// optional fractional digits, or an exponent, or both — either the decimal
// part or the exponent must be present. Attributes expose "body" (the
// digits before any exponent marker) and "exponent" (the exponent's
// optionally-signed digits), matching spec.md §3's example attribute names.
func floatRule() Rule {
	return Rule{
		Kind:  token.Float,
		Match: matchFloat,
		Attrs: floatAttrs,
	}
}

// scanFloat walks buf and reports how much of it forms a valid FLOAT body,
// whether a decimal point was seen, whether an exponent was seen, and the
// offset where the exponent marker (e/E) begins (-1 if none).
func scanFloat(buf string) (end int, hasDot, hasExp bool, expAt int) {
	n := len(buf)
	i := 0
	expAt = -1
	if i < n && (buf[i] == '+' || buf[i] == '-') {
		i++
	}
	for i < n && isDigit(buf[i]) {
		i++
	}
	if i < n && buf[i] == '.' {
		hasDot = true
		i++
		for i < n && isDigit(buf[i]) {
			i++
		}
	}
	if i < n && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < n && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		k := j
		for k < n && isDigit(buf[k]) {
			k++
		}
		if k > j {
			expAt = i
			hasExp = true
			i = k
		}
	}
	return i, hasDot, hasExp, expAt
}

func matchFloat(buf string) bool {
	end, hasDot, hasExp, expAt := scanFloat(buf)
	if end != len(buf) {
		return false
	}
	if !hasDot && !hasExp {
		return false
	}
	// The body before any exponent marker needs at least one digit, so a
	// bare "." or "e10" is not a FLOAT.
	body := buf
	if hasExp {
		body = buf[:expAt]
	}
	for i := 0; i < len(body); i++ {
		if isDigit(body[i]) {
			return true
		}
	}
	return false
}

func floatAttrs(text string) map[string]string {
	end, _, hasExp, expAt := scanFloat(text)
	if end != len(text) {
		return nil
	}
	attrs := map[string]string{}
	if hasExp {
		attrs["body"] = text[:expAt]
		attrs["exponent"] = text[expAt+1:]
	} else {
		attrs["body"] = text
	}
	return attrs
}
