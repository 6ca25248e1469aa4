// Package extract locates JSON fragments embedded in semi-structured page
// markup. Understat pages carry their data either as legacy script blocks
// (var shotsData = JSON.parse('...')) or inside a window.__NUXT__
// hydration blob; callers chain the strategies and treat a miss as
// absence, not an error.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Block returns the embedded JSON text assigned to the named script
// variable, trying the escaped JSON.parse form first and the literal
// object/array form second. The boolean is false when neither form
// matches; only the first declaration of the name is considered.
func Block(markup, name string) (string, bool) {
	if s, ok := parseBlock(markup, name); ok {
		return s, true
	}
	return literalBlock(markup, name)
}

// parseBlock matches: var <name> = JSON.parse('<escaped>');
func parseBlock(markup, name string) (string, bool) {
	re := regexp.MustCompile(`(?s)var\s+` + regexp.QuoteMeta(name) + `\s*=\s*JSON\.parse\('(.+?)'\);`)
	m := re.FindStringSubmatch(markup)
	if m == nil {
		return "", false
	}
	return Unescape(m[1]), true
}

// literalBlock matches: var <name> = {...};  or  var <name> = [...];
// The span is non-greedy to the first plausible terminator, same as the
// page has always been laid out.
func literalBlock(markup, name string) (string, bool) {
	re := regexp.MustCompile(`(?s)var\s+` + regexp.QuoteMeta(name) + `\s*=\s*(\{.*?\}|\[.*?\]);`)
	m := re.FindStringSubmatch(markup)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Unescape decodes the backslash escapes of a single-quoted JS string
// literal: \', \", \\, \/, \n, \r, \t, \b, \f, \xNN and \uXXXX
// (including surrogate pairs). strconv.Unquote is not usable here
// because it rejects \' and the \xNN form inside double quotes.
// Unknown escapes and a trailing lone backslash are kept verbatim.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		switch e := s[i+1]; e {
		case '\'', '"', '\\', '/':
			b.WriteByte(e)
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'x':
			if i+4 <= len(s) {
				if n, err := hexVal(s[i+2 : i+4]); err == nil {
					b.WriteRune(rune(n))
					i += 4
					continue
				}
			}
			b.WriteByte(c)
			i++
		case 'u':
			r, size, ok := decodeUnicode(s[i:])
			if !ok {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteRune(r)
			i += size
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// decodeUnicode consumes \uXXXX at the start of s, pairing a high
// surrogate with a following \uXXXX low surrogate when present.
// Returns the rune, the number of bytes consumed and whether it decoded.
func decodeUnicode(s string) (rune, int, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0, false
	}
	n1, err := hexVal(s[2:6])
	if err != nil {
		return 0, 0, false
	}
	r1 := rune(n1)
	if utf16.IsSurrogate(r1) && len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		if n2, err := hexVal(s[8:12]); err == nil {
			if r := utf16.DecodeRune(r1, rune(n2)); r != utf8.RuneError {
				return r, 12, true
			}
		}
	}
	if utf16.IsSurrogate(r1) {
		return utf8.RuneError, 6, true
	}
	return r1, 6, true
}

func hexVal(s string) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			n = n<<4 | int(c-'0')
		case c >= 'a' && c <= 'f':
			n = n<<4 | int(c-'a'+10)
		case c >= 'A' && c <= 'F':
			n = n<<4 | int(c-'A'+10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
	}
	return n, nil
}
