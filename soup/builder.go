package soup

// builder turns a token stream into a tree using an explicit open-element
// stack (spec.md section 4.2).
type builder struct {
	stack []*Tag
	cfg   *config
}

// Parse runs the full pipeline: strip a leading UTF-8 BOM, tokenize, and
// build the tree. If the root's content is exactly one item and that item
// is a tag, that tag is returned directly; otherwise (including one tag
// next to top-level text or a comment) the synthetic empty-named root is
// returned, holding every top-level item as its content (spec.md
// section 4.2, "Return shape").
func Parse(text string, opts ...Option) *Tag {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	text = stripBOM(text)
	tokens := tokenize(text, cfg)

	b := &builder{cfg: cfg}
	root := newTag("", !cfg.strictParameters)
	b.stack = []*Tag{root}

	for _, tok := range tokens {
		b.consume(tok)
	}
	b.closeRemaining(root)

	root.DoubleLink()

	if len(root.Content) == 1 {
		if only, ok := root.Content[0].(*Tag); ok {
			only.parent = nil
			return only
		}
	}
	return root
}

func (b *builder) top() *Tag {
	return b.stack[len(b.stack)-1]
}

func (b *builder) isVoid(name string) bool {
	return b.cfg.voidTags[lower(name)]
}

func (b *builder) consume(tok Token) {
	switch t := tok.(type) {
	case TextToken:
		b.top().Content = append(b.top().Content, t.Content)

	case CommentToken:
		b.top().Content = append(b.top().Content, Comment{Content: t.Content})

	case TagToken:
		if t.IsEndTag {
			b.closeTag(t.Name)
			return
		}

		tag := t.toTag(!b.cfg.strictParameters)
		if b.isVoid(tag.Name) {
			tag.IsNonPair = true
		}
		b.top().Content = append(b.top().Content, tag)

		if !tag.IsNonPair {
			b.stack = append(b.stack, tag)
		}
	}
}

// closeTag handles a Tag end-token: find the nearest open element with a
// matching name; discard spurious closers that match nothing; pop a
// same-top match directly; reshape everything else.
func (b *builder) closeTag(name string) {
	idx := -1
	for i := len(b.stack) - 1; i >= 1; i-- {
		if lower(b.stack[i].Name) == lower(name) {
			idx = i
			break
		}
	}
	if idx == -1 {
		b.cfg.logger.spuriousCloseTag(name)
		return
	}
	if idx == len(b.stack)-1 {
		b.stack = b.stack[:idx]
		return
	}
	b.reshape(idx)
}

// reshape implements spec.md section 4.2's reshape step: the elements
// above idx were opened but never properly closed before this end tag
// arrived. Each is converted to a non-pair (void) node in place and its
// children are hoisted into the element immediately below it, deepest
// first, so nothing is lost — e.g. "<div><br><img><hr></div>" yields
// three void siblings directly inside div rather than br nesting img
// nesting hr.
func (b *builder) reshape(idx int) {
	nonPairs := append([]*Tag(nil), b.stack[idx+1:]...)
	b.stack = b.stack[:idx+1]

	b.cfg.logger.reshape(b.stack[idx].Name, len(nonPairs))

	// parents[i] is the element nonPairs[i]'s children get hoisted into:
	// the surviving stack top for nonPairs[0] (the shallowest, opened
	// first), and the previous nonPair for every element opened after it.
	parents := make([]*Tag, len(nonPairs))
	below := b.stack[idx]
	for i, np := range nonPairs {
		parents[i] = below
		below = np
	}

	for i := len(nonPairs) - 1; i >= 0; i-- {
		np := nonPairs[i]
		parent := parents[i]
		hoistAfter(parent, np, np.Content)
		np.Content = nil
		np.IsNonPair = true
	}

	b.stack = b.stack[:idx]
}

// hoistAfter splices children immediately after np in parent's Content.
func hoistAfter(parent, np *Tag, children []any) {
	pos := -1
	for i, c := range parent.Content {
		if tg, ok := c.(*Tag); ok && tg == np {
			pos = i
			break
		}
	}
	if pos == -1 || len(children) == 0 {
		return
	}
	out := make([]any, 0, len(parent.Content)+len(children))
	out = append(out, parent.Content[:pos+1]...)
	out = append(out, children...)
	out = append(out, parent.Content[pos+1:]...)
	parent.Content = out
}

// closeRemaining reshapes every element still open at EOF into root, the
// same procedure closeTag(root.Name) would run against the bottom of the
// stack.
func (b *builder) closeRemaining(root *Tag) {
	if len(b.stack) <= 1 {
		return
	}
	b.reshape(0)
}
