package soup

import (
	"errors"
	"strings"
	"unicode"
)

// maxEntityLength bounds how far an entity scan looks for the terminating
// ";" before giving up and demoting the span to text (spec.md section 4.1).
const maxEntityLength = 20

// errTagEOF signals that a tag-like construct ran off the end of the input
// before a closing ">" was found. errTagNestedStart signals a "<" was
// encountered while still scanning a tag's parameters. Both are purely
// internal control flow: scanToken always converts them into a verbatim
// TextToken before a token leaves the tokenizer (spec.md section 7 — no
// parse error ever escapes to a caller).
var (
	errTagEOF         = errors.New("tokenizer: end of input while parsing tag")
	errTagNestedStart = errors.New("tokenizer: nested tag start before tag closed")
)

// tokenizer is the character-driven scanner. It operates on runes, not
// bytes, so multi-byte text never gets sliced mid-codepoint.
type tokenizer struct {
	runes []rune
	pos   int
	end   int // index of the last valid rune, -1 for empty input
	char  rune
	cfg   *config
}

// tokenize runs the full scan over text and returns the merged token
// stream: Entity tokens are folded into adjacent Text, adjacent Text
// tokens are concatenated, and any configured raw-text tag (script/style
// by default) has its body captured as one opaque Text run instead of
// being rescanned for nested "<"/"&" (spec.md section 9's open question,
// resolved in SPEC_FULL.md to avoid corrupting the surrounding parse).
func tokenize(text string, cfg *config) []Token {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	tz := &tokenizer{runes: runes, pos: 0, end: len(runes) - 1, char: runes[0], cfg: cfg}

	var out []Token
	appendMerged := func(tok Token) {
		if txt, ok := tok.(TextToken); ok {
			if n := len(out); n > 0 {
				if prev, ok2 := out[n-1].(TextToken); ok2 {
					out[n-1] = TextToken{Content: prev.Content + txt.Content}
					return
				}
			}
		}
		out = append(out, tok)
	}

	for {
		tok := tz.scanToken()

		if ent, ok := tok.(EntityToken); ok {
			appendMerged(TextToken{Content: ent.ToText()})
		} else {
			appendMerged(tok)

			if tag, ok := tok.(TagToken); ok && !tag.IsEndTag && !tag.IsNonPair && cfg.rawTextTags[lower(tag.Name)] {
				rawText, closeTag, found := tz.consumeRawText(tag.Name)
				if rawText != "" {
					appendMerged(TextToken{Content: rawText})
				}
				if found {
					appendMerged(closeTag)
				}
			}
		}

		if tz.isAtEnd() {
			break
		}
	}

	return out
}

func (tz *tokenizer) isAtEnd() bool {
	return tz.pos > tz.end
}

func (tz *tokenizer) advance() rune {
	tz.pos++
	if tz.pos > tz.end {
		tz.char = 0
		return 0
	}
	tz.char = tz.runes[tz.pos]
	return tz.char
}

func (tz *tokenizer) peek() rune {
	if tz.pos < tz.end {
		return tz.runes[tz.pos+1]
	}
	return 0
}

func (tz *tokenizer) peekTwo() rune {
	if tz.pos+1 < tz.end {
		return tz.runes[tz.pos+2]
	}
	return 0
}

func (tz *tokenizer) peekIs(r rune) bool     { return tz.peek() == r }
func (tz *tokenizer) peekTwoIs(r rune) bool  { return tz.peekTwo() == r }

func isWhitespace(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }

func (tz *tokenizer) skipWhitespace() {
	if !isWhitespace(tz.char) {
		return
	}
	for !tz.isAtEnd() {
		if !isWhitespace(tz.char) {
			return
		}
		tz.advance()
	}
}

// scanToken dispatches on the current character and always returns a
// token — tag scans that fail (unclosed, or interrupted by a nested "<")
// are caught here and turned into the offending span re-emitted as Text,
// with the appropriate recoveryLogger call.
func (tz *tokenizer) scanToken() Token {
	switch tz.char {
	case '<':
		start := tz.pos
		tok, err := tz.consumeTag()
		if err == nil {
			return tok
		}
		span := string(tz.runes[start:tz.pos])
		if errors.Is(err, errTagNestedStart) {
			tz.cfg.logger.nestedTagStart(start, span)
		} else {
			tz.cfg.logger.unclosedTag(start, span)
		}
		return TextToken{Content: span}

	case '&':
		return tz.consumeEntity()

	default:
		return tz.consumeText()
	}
}

func (tz *tokenizer) consumeTag() (Token, error) {
	tz.advance() // consume '<'
	tz.skipWhitespace()

	isEndTag := false
	if tz.char == '/' {
		isEndTag = true
		tz.advance()
	}

	if tz.char == '>' {
		tz.advance()
		return TextToken{Content: "<>"}, nil
	}

	if tz.char == '!' && tz.peekIs('-') && tz.peekTwoIs('-') {
		return tz.consumeComment(), nil
	}

	name, err := tz.consumeTagName()
	if err != nil {
		return nil, err
	}
	tag := TagToken{Name: name, IsEndTag: isEndTag}

	for !tz.isAtEnd() {
		tz.skipWhitespace()

		if tz.char == '>' {
			tz.advance()
			return tag, nil
		}
		if tz.char == '<' {
			return nil, errTagNestedStart
		}

		paramName, err := tz.consumeParameterName()
		if err != nil {
			return nil, err
		}
		tz.skipWhitespace()

		switch tz.char {
		case '/':
			tz.advance()
			if paramName != "" {
				tag.Parameters = append(tag.Parameters, ParameterToken{Key: paramName})
			}
			tag.IsNonPair = true

		case '>':
			tag.Parameters = append(tag.Parameters, ParameterToken{Key: paramName})

		case '=':
			tz.advance()
			tz.skipWhitespace()
			value, err := tz.consumeParameterValue()
			if err != nil {
				return nil, err
			}
			tag.Parameters = append(tag.Parameters, ParameterToken{Key: paramName, Value: value})
		}
	}

	return nil, errTagEOF
}

func isTagNameStop(r rune) bool {
	switch r {
	case '>', ' ', '\n', '\t', '<', '/':
		return true
	}
	return false
}

func (tz *tokenizer) consumeTagName() (string, error) {
	var b strings.Builder
	b.WriteRune(tz.char)
	for !tz.isAtEnd() {
		if isTagNameStop(tz.peek()) {
			tz.advance()
			return b.String(), nil
		}
		b.WriteRune(tz.advance())
	}
	return "", errTagEOF
}

func isParamNameStop(r rune) bool {
	switch r {
	case ' ', '<', '=', '/', '>', '\t', '\n':
		return true
	}
	return false
}

func (tz *tokenizer) consumeParameterName() (string, error) {
	if tz.char == '/' {
		return "", nil
	}
	var b strings.Builder
	b.WriteRune(tz.char)
	for !tz.isAtEnd() {
		if isParamNameStop(tz.peek()) {
			tz.advance()
			return b.String(), nil
		}
		b.WriteRune(tz.advance())
	}
	return "", errTagEOF
}

func isUnquotedValueStop(r rune) bool {
	switch r {
	case ' ', '<', '/', '>', '\'', '"', '\t', '\n':
		return true
	}
	return false
}

func (tz *tokenizer) consumeParameterValue() (string, error) {
	if tz.char == '"' || tz.char == '\'' {
		return tz.consumeQuotedParameterValue()
	}
	var b strings.Builder
	b.WriteRune(tz.char)
	for !tz.isAtEnd() {
		p := tz.peek()
		if isUnquotedValueStop(p) {
			if p == '\'' || p == '"' {
				tz.advance()
			}
			tz.advance()
			return b.String(), nil
		}
		b.WriteRune(tz.advance())
	}
	return "", errTagEOF
}

// consumeQuotedParameterValue honors backslash escapes: "\\" toggles an
// escaped flag, an escaped quote or backslash is absorbed as a literal
// character, anything else clears the flag (spec.md section 4.1, "Quote
// escaping").
func (tz *tokenizer) consumeQuotedParameterValue() (string, error) {
	quote := tz.char
	tz.advance()

	if tz.char == quote {
		tz.advance()
		return "", nil
	}

	var b strings.Builder
	escaped := false
	for !tz.isAtEnd() {
		if tz.char == quote && !escaped {
			tz.advance()
			return b.String(), nil
		}

		if tz.char == '\\' {
			escaped = !escaped
			if escaped && (tz.peekIs(quote) || tz.peekIs('\\')) {
				tz.advance()
				continue
			}
		} else {
			escaped = false
		}

		b.WriteRune(tz.char)
		tz.advance()
	}
	return "", errTagEOF
}

// consumeComment never fails: an unterminated comment re-emits everything
// from "<!--" onward as Text (spec.md section 4.1's comment-scan rule).
func (tz *tokenizer) consumeComment() Token {
	tz.advance() // consume '!'
	tz.advance() // consume the first '-'

	var b strings.Builder
	for !tz.isAtEnd() {
		ch := tz.advance()
		if tz.isAtEnd() {
			break
		}
		if ch == '-' && tz.peekIs('-') && tz.peekTwoIs('>') {
			tz.advance() // consume '-'
			tz.advance() // consume '-'
			tz.advance() // consume '>'
			return CommentToken{Content: b.String()}
		}
		b.WriteRune(ch)
	}

	tz.cfg.logger.unclosedComment(tz.pos)
	return TextToken{Content: "<!--" + b.String()}
}

// consumeEntity never fails: a space, length overflow, or missing
// terminator demotes the span scanned so far to Text.
func (tz *tokenizer) consumeEntity() Token {
	start := tz.pos
	length := 0
	var b strings.Builder
	b.WriteRune(tz.char)

	for !tz.isAtEnd() {
		ch := tz.advance()
		if tz.isAtEnd() {
			break
		}
		length++

		if ch == ' ' {
			span := b.String()
			tz.cfg.logger.overlongEntity(start, span)
			return TextToken{Content: span}
		}
		if length > maxEntityLength {
			span := b.String()
			tz.cfg.logger.overlongEntity(start, span)
			return TextToken{Content: span}
		}

		b.WriteRune(ch)

		if ch == ';' {
			span := b.String()
			if span == "&;" {
				return TextToken{Content: span}
			}
			if !tz.isAtEnd() {
				tz.advance()
			}
			return EntityToken{Content: lower(span)}
		}
	}

	return TextToken{Content: b.String()}
}

func (tz *tokenizer) consumeText() TextToken {
	var b strings.Builder
	b.WriteRune(tz.char)
	for !tz.isAtEnd() {
		ch := tz.advance()
		if tz.isAtEnd() || ch == '<' || ch == '&' {
			return TextToken{Content: b.String()}
		}
		b.WriteRune(ch)
	}
	return TextToken{Content: b.String()}
}

// consumeRawText scans forward, ignoring tag/entity syntax entirely, for
// the first case-insensitive "</name" (optional whitespace, then ">").
// On success it consumes through that closing ">" and returns the body
// text plus a synthetic end-tag token; on failure (no matching close
// before EOF) it consumes the remainder as text and reports found=false.
func (tz *tokenizer) consumeRawText(name string) (body string, closeTag TagToken, found bool) {
	if tz.isAtEnd() {
		return "", TagToken{}, false
	}

	start := tz.pos
	target := []rune(lower(name))

	for i := tz.pos; i <= tz.end; i++ {
		if tz.runes[i] != '<' || i+1 > tz.end || tz.runes[i+1] != '/' {
			continue
		}

		j := i + 2
		matched := true
		for _, r := range target {
			if j > tz.end || unicode.ToLower(tz.runes[j]) != r {
				matched = false
				break
			}
			j++
		}
		if !matched {
			continue
		}

		k := j
		for k <= tz.end && unicode.IsSpace(tz.runes[k]) {
			k++
		}
		if k > tz.end || tz.runes[k] != '>' {
			continue
		}

		text := string(tz.runes[start:i])
		tz.pos = k + 1
		if tz.pos > tz.end {
			tz.char = 0
		} else {
			tz.char = tz.runes[tz.pos]
		}
		return text, TagToken{Name: name, IsEndTag: true}, true
	}

	text := string(tz.runes[start : tz.end+1])
	tz.pos = tz.end + 1
	tz.char = 0
	return text, TagToken{}, false
}
