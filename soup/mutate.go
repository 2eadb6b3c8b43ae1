package soup

// Remove removes one identity-equal descendant anywhere in the tree: a
// *Tag is matched by pointer identity, a string or Comment by value
// equality (the closest Go analogue of the teacher's `is`-based identity
// match, since strings and Comment are plain values here). Returns true
// if something was removed.
func (t *Tag) Remove(target any) bool {
	for i, item := range t.Content {
		if sameContentNode(item, target) {
			t.Content = append(t.Content[:i], t.Content[i+1:]...)
			return true
		}
		if tg, ok := item.(*Tag); ok {
			if tg.Remove(target) {
				return true
			}
		}
	}
	return false
}

func sameContentNode(item, target any) bool {
	switch a := item.(type) {
	case *Tag:
		b, ok := target.(*Tag)
		return ok && a == b
	case string:
		b, ok := target.(string)
		return ok && a == b
	case Comment:
		b, ok := target.(Comment)
		return ok && a == b
	}
	return false
}

// RemoveItem removes item from this node's own Content, not descendants.
// A string is removed by equality, first occurrence only. A Comment
// removes every comment with equal Content. A *Tag removes every tag
// whose name matches (case-insensitively) and whose Parameters are a
// superset of item's — the same containment Find uses — which is why it
// can remove more than one node. Any other type is ErrInvalidArgument.
func (t *Tag) RemoveItem(item any) error {
	switch v := item.(type) {
	case string:
		for i, c := range t.Content {
			if s, ok := c.(string); ok && s == v {
				t.Content = append(t.Content[:i], t.Content[i+1:]...)
				return nil
			}
		}
		return nil

	case Comment:
		out := t.Content[:0]
		for _, c := range t.Content {
			if cm, ok := c.(Comment); ok && cm.Content == v.Content {
				continue
			}
			out = append(out, c)
		}
		t.Content = out
		return nil

	case *Tag:
		out := t.Content[:0]
		for _, c := range t.Content {
			if tg, ok := c.(*Tag); ok && tg.isAlmostEqual(v.Name, v.Parameters, nil, false) {
				continue
			}
			out = append(out, c)
		}
		t.Content = out
		return nil

	default:
		return &OpError{Op: "RemoveItem", Err: ErrInvalidArgument}
	}
}

// ReplaceWith replaces this Tag in place with item, which must be a
// string or *Tag. For a *Tag, name/parameters/non-pair-flag are copied in;
// content is replaced unless keepContent is true. Returns
// ErrInvalidArgument for any other type.
func (t *Tag) ReplaceWith(item any, keepContent bool) error {
	switch v := item.(type) {
	case string:
		unusedRoot := t.parent != nil && t.parent.Name == "" && len(t.parent.Content) == 1
		if t.parent != nil && !unusedRoot {
			for i, c := range t.parent.Content {
				if tg, ok := c.(*Tag); ok && tg == t {
					t.parent.Content[i] = v
					return nil
				}
			}
			return nil
		}
		t.Name = ""
		t.Parameters.Clear()
		t.IsNonPair = true
		t.Content = []any{v}
		return nil

	case *Tag:
		t.Name = v.Name
		t.Parameters = v.Parameters.Copy()
		if !keepContent {
			t.Content = append([]any(nil), v.Content...)
		}
		t.IsNonPair = v.IsNonPair
		t.wfindOnlyOnContent = v.wfindOnlyOnContent
		return nil

	default:
		return &OpError{Op: "ReplaceWith", Err: ErrInvalidArgument}
	}
}

// Get returns this tag's value for a parameter key.
func (t *Tag) Get(key string) (string, error) {
	v, ok := t.Parameters.Get(key)
	if !ok {
		return "", &OpError{Op: "Get", Subject: key, Err: ErrKeyNotFound}
	}
	return v, nil
}

// SetParam sets a parameter value.
func (t *Tag) SetParam(key, value string) {
	t.Parameters.Set(key, value)
}

// TagAt returns the i-th Tag-only child (skipping strings/comments), the
// index-style access spec.md section 4.3 describes.
func (t *Tag) TagAt(i int) (*Tag, error) {
	tags := t.Tags()
	if i < 0 || i >= len(tags) {
		return nil, &OpError{Op: "TagAt", Err: ErrIndexOutOfRange}
	}
	return tags[i], nil
}

// Insert position sentinels for InsertAt, matching the slice-assignment
// forms spec.md section 4.3 describes: [-1:] = x (append), [0:] = x
// (prepend, unconditionally at content position 0), [i:] = x (insert
// before the i-th tag-child).
const (
	InsertAppend  = -1
	InsertPrepend = 0
)

// InsertAt inserts value into Content. index == InsertAppend appends at
// the end; index == InsertPrepend always inserts at the very front of
// Content (even before any leading text, not just before the first tag
// child); any other non-negative index inserts immediately before the
// index-th tag-child (which may not be the same content position as
// InsertPrepend, if there is leading text or comments before that tag).
// If value is a *Tag, its parent back-reference is set to t.
func (t *Tag) InsertAt(index int, value any) error {
	switch {
	case index == InsertAppend:
		t.Content = append(t.Content, value)

	case index == InsertPrepend:
		t.Content = append([]any{value}, t.Content...)

	default:
		tags := t.Tags()
		if index < 0 || index >= len(tags) {
			return &OpError{Op: "InsertAt", Err: ErrIndexOutOfRange}
		}
		target := tags[index]
		pos := -1
		for i, c := range t.Content {
			if tg, ok := c.(*Tag); ok && tg == target {
				pos = i
				break
			}
		}
		if pos < 0 {
			return &OpError{Op: "InsertAt", Err: ErrIndexOutOfRange}
		}
		out := make([]any, 0, len(t.Content)+1)
		out = append(out, t.Content[:pos]...)
		out = append(out, value)
		out = append(out, t.Content[pos:]...)
		t.Content = out
	}

	if tg, ok := value.(*Tag); ok {
		tg.parent = t
	}
	return nil
}
