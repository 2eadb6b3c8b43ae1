package soup

// Tag is the DOM node. An empty Name denotes the synthetic root container
// a document with zero or more than one top-level tag is wrapped in
// (spec.md section 3/4.2).
//
// Content holds, in source order, a mix of *Tag, string (decoded text),
// and Comment values. parent is a non-owning back-reference populated by
// the tree builder and by DoubleLink — it must never be used to manage
// lifetime (spec.md section 9).
type Tag struct {
	Name       string
	Parameters *Params
	Content    []any
	IsNonPair  bool

	parent *Tag
	// wfindOnlyOnContent marks a container Tag produced by Wfind: the next
	// Wfind call on it restricts matches to direct children of the
	// previous match set rather than running a fresh descendant search.
	wfindOnlyOnContent bool
}

// dontEscapeTags tags do not escape their text content on serialization
// (spec.md section 4.3).
var dontEscapeTags = map[string]bool{"script": true, "style": true}

// dontFormatTags preserve raw formatting verbatim under Prettify.
var dontFormatTags = map[string]bool{"pre": true, "script": true, "style": true}

func newTag(name string, caseInsensitive bool) *Tag {
	return &Tag{
		Name:       name,
		Parameters: NewParams(!caseInsensitive),
	}
}

// NewTag creates a standalone Tag with case-insensitive parameters, ready
// to be inserted into a tree via InsertAt or used as an argument to
// ReplaceWith/RemoveItem.
func NewTag(name string) *Tag {
	return newTag(name, true)
}

// Parent returns the node's parent, or nil for the root or for a node
// whose tree has not been DoubleLink'd.
func (t *Tag) Parent() *Tag {
	return t.parent
}

// Tags returns the subset of Content that are *Tag, in order — shorthand
// for iterating the real DOM structure while ignoring text and comments.
func (t *Tag) Tags() []*Tag {
	out := make([]*Tag, 0, len(t.Content))
	for _, item := range t.Content {
		if tg, ok := item.(*Tag); ok {
			out = append(out, tg)
		}
	}
	return out
}

// DoubleLink populates parent back-references through the whole subtree.
// Parse already calls this on the tree it builds; a tree that was
// assembled or mutated by hand can call it to restore the invariant.
func (t *Tag) DoubleLink() {
	for _, item := range t.Content {
		if tg, ok := item.(*Tag); ok {
			tg.parent = t
			tg.DoubleLink()
		}
	}
}

// ContentWithoutTags recursively concatenates every text run under this
// node, dropping tag boundaries and comments entirely.
func (t *Tag) ContentWithoutTags() string {
	var out []byte
	for _, item := range t.Content {
		switch v := item.(type) {
		case *Tag:
			out = append(out, v.ContentWithoutTags()...)
		case string:
			out = append(out, v...)
		}
	}
	return string(out)
}

// Equal compares name, parameters, and the non-pair flag — not content or
// parent. It mirrors the teacher's shallow Tag equality; selectors do not
// use it (they match with name/parameter-subset containment instead).
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Name != other.Name {
		return false
	}
	if t.IsNonPair != other.IsNonPair {
		return false
	}
	return t.Parameters.Equal(other.Parameters)
}

func (t *Tag) isAlmostEqual(name string, p *Params, fn func(*Tag) bool, caseSensitive bool) bool {
	tagName := t.Name
	if !caseSensitive {
		tagName = lower(tagName)
		name = lower(name)
	}
	if name != "" && tagName != name {
		return false
	}
	if p != nil && !t.Parameters.ContainsSubset(p) {
		return false
	}
	if fn != nil && !fn(t) {
		return false
	}
	return true
}
