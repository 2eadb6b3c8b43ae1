package soup

import "strings"

// ToString renders the tag and its subtree back to markup: void tags as
// "<name params />", paired tags as "<name params>...</name>". Content
// strings are HTML-escaped except under script/style, where raw text is
// preserved verbatim (spec.md section 4.3, "Serialization").
func (t *Tag) ToString() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Tag) writeTo(b *strings.Builder) {
	if t.Name == "" {
		t.writeContent(b, false)
		return
	}

	b.WriteByte('<')
	b.WriteString(t.Name)
	t.writeParameters(b)

	if t.IsNonPair {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	t.writeContent(b, dontEscapeTags[lower(t.Name)])
	b.WriteString("</")
	b.WriteString(t.Name)
	b.WriteByte('>')
}

func (t *Tag) writeParameters(b *strings.Builder) {
	t.Parameters.ForEach(func(key, value string) bool {
		b.WriteByte(' ')
		b.WriteString(key)
		if value != "" {
			b.WriteString(`="`)
			b.WriteString(escapeAttr(value))
			b.WriteByte('"')
		}
		return true
	})
}

func (t *Tag) writeContent(b *strings.Builder, raw bool) {
	for _, item := range t.Content {
		switch v := item.(type) {
		case *Tag:
			v.writeTo(b)
		case Comment:
			b.WriteString(v.String())
		case string:
			if raw {
				b.WriteString(v)
			} else {
				b.WriteString(escapeText(v))
			}
		}
	}
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}

func escapeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

// Prettify renders the subtree with two-space indentation per depth
// level. pre/script/style bodies are emitted verbatim, matching ToString's
// raw-text handling plus whitespace preservation (spec.md section 4.3).
func (t *Tag) Prettify(depth int) string {
	var b strings.Builder
	t.prettifyTo(&b, depth)
	return b.String()
}

func (t *Tag) prettifyTo(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)

	if t.Name == "" {
		for _, item := range t.Content {
			t.prettifyChild(b, item, depth)
		}
		return
	}

	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(t.Name)
	t.writeParameters(b)

	if t.IsNonPair {
		b.WriteString(" />\n")
		return
	}
	b.WriteByte('>')

	if dontFormatTags[lower(t.Name)] {
		t.writeContent(b, dontEscapeTags[lower(t.Name)])
		b.WriteString("</")
		b.WriteString(t.Name)
		b.WriteString(">\n")
		return
	}

	if !t.hasTagChild() {
		t.writeContent(b, false)
		b.WriteString("</")
		b.WriteString(t.Name)
		b.WriteString(">\n")
		return
	}

	if len(t.Content) > 0 {
		b.WriteByte('\n')
		for _, item := range t.Content {
			t.prettifyChild(b, item, depth+1)
		}
		b.WriteString(indent)
	}
	b.WriteString("</")
	b.WriteString(t.Name)
	b.WriteString(">\n")
}

func (t *Tag) hasTagChild() bool {
	for _, item := range t.Content {
		if _, ok := item.(*Tag); ok {
			return true
		}
	}
	return false
}

func (t *Tag) prettifyChild(b *strings.Builder, item any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := item.(type) {
	case *Tag:
		v.prettifyTo(b, depth)
	case Comment:
		b.WriteString(indent)
		b.WriteString(v.String())
		b.WriteByte('\n')
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return
		}
		b.WriteString(indent)
		b.WriteString(escapeText(trimmed))
		b.WriteByte('\n')
	}
}
