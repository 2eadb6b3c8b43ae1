// Package soup implements a forgiving HTML/XML parser for scraping
// workloads: a tokenizer, a tree builder, and a query engine on the
// resulting DOM. It never aborts on malformed input — it recovers locally
// and keeps going so the rest of the document stays usable.
package soup

import "fmt"

// Token is the tagged variant the tokenizer emits. Every concrete type
// below implements it; callers type-switch on the concrete type rather
// than calling methods on the interface.
type Token interface {
	tokenMarker()
}

// TextToken is any run of literal characters outside a tag or comment.
type TextToken struct {
	Content string
}

func (TextToken) tokenMarker() {}

func (t TextToken) String() string {
	return fmt.Sprintf("TextToken(%q)", t.Content)
}

// ParameterToken is a single attribute parsed inside a tag. It never
// reaches the tree builder on its own — it only lives inside a TagToken's
// Parameters slice.
type ParameterToken struct {
	Key   string
	Value string
}

func (t ParameterToken) String() string {
	return fmt.Sprintf("ParameterToken(key=%q, value=%q)", t.Key, t.Value)
}

// TagToken is an opening tag, end tag, or self-closing tag produced from
// `<…>` syntax.
type TagToken struct {
	Name       string
	Parameters []ParameterToken
	IsNonPair  bool
	IsEndTag   bool
}

func (TagToken) tokenMarker() {}

func (t TagToken) String() string {
	return fmt.Sprintf("TagToken(%q, parameters=%v, nonpair=%v, is_end_tag=%v)",
		t.Name, t.Parameters, t.IsNonPair, t.IsEndTag)
}

// toTag converts a TagToken into a tree node. caseInsensitive controls how
// the resulting Tag's Parameters fold keys.
func (t TagToken) toTag(caseInsensitive bool) *Tag {
	tag := newTag(t.Name, caseInsensitive)
	tag.IsNonPair = t.IsNonPair
	for _, p := range t.Parameters {
		tag.Parameters.Set(p.Key, p.Value)
	}
	return tag
}

// CommentToken is the body between `<!--` and `-->`.
type CommentToken struct {
	Content string
}

func (CommentToken) tokenMarker() {}

func (t CommentToken) String() string {
	return fmt.Sprintf("CommentToken(%q)", t.Content)
}

// EntityToken is a syntactically recognized `&name;` or numeric reference.
// It is always folded into a TextToken before reaching the tree builder;
// it exists as its own type only inside the tokenizer.
type EntityToken struct {
	// Content is the full span, lowercased, e.g. "&amp;" or "&#x1f600;".
	Content string
}

func (EntityToken) tokenMarker() {}

func (t EntityToken) String() string {
	return fmt.Sprintf("EntityToken(%q)", t.Content)
}

// ToText decodes the entity to its textual representation. Unknown but
// syntactically valid named entities round-trip unchanged; malformed
// numeric references (no parseable digits) also round-trip unchanged
// rather than erroring, consistent with this parser's never-fail design.
func (t EntityToken) ToText() string {
	return decodeEntity(t.Content)
}
