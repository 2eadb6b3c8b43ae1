package soup

import (
	"strconv"
	"strings"
)

// namedEntities covers the set spec.md section 4.1 requires. Keys include
// the leading "&" and trailing ";" so lookup is a single map hit against
// the already-lowercased entity span.
var namedEntities = map[string]string{
	"&amp;":              "&",
	"&lt;":                "<",
	"&gt;":                ">",
	"&nbsp;":              " ",
	"&nonbreakingspace;":  " ",
	"&quot;":              "\"",
	"&apos;":              "'",
	"&cent;":              "¢",
	"&pound;":             "£",
	"&yen;":               "¥",
	"&euro;":              "€",
	"&copy;":              "©",
	"&reg;":               "®",
}

// decodeEntity expands a syntactically recognized entity span (already
// lowercased, including "&" and ";") to its textual representation.
// Unknown named entities and unparseable numeric references round-trip
// unchanged — this parser never errors on decode.
func decodeEntity(content string) string {
	if repr, ok := namedEntities[content]; ok {
		return repr
	}

	if strings.HasPrefix(content, "&#x") && strings.HasSuffix(content, ";") {
		digits := content[3 : len(content)-1]
		if digits == "" {
			return content
		}
		code, err := strconv.ParseInt(digits, 16, 32)
		if err != nil || !validRune(code) {
			return content
		}
		return string(rune(code))
	}

	if strings.HasPrefix(content, "&#") && strings.HasSuffix(content, ";") {
		digits := content[2 : len(content)-1]
		if digits == "" {
			return content
		}
		code, err := strconv.ParseInt(digits, 10, 32)
		if err != nil || !validRune(code) {
			return content
		}
		return string(rune(code))
	}

	return content
}

func validRune(code int64) bool {
	return code >= 0 && code <= 0x10FFFF
}
