package soup

import "strings"

func lower(s string) string {
	return strings.ToLower(s)
}

// stripBOM removes a leading UTF-8 byte-order mark, if present (spec.md
// section 6, "Input pre-processing").
func stripBOM(s string) string {
	const bom = "\xef\xbb\xbf"
	if strings.HasPrefix(s, bom) {
		return s[len(bom):]
	}
	return s
}
