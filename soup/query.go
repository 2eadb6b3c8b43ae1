package soup

// DepthFirst calls visit for this node, then recursively for each child,
// in source order. visit returning false stops the walk immediately.
// When tagsOnly is true, bare strings and comments are skipped.
func (t *Tag) DepthFirst(tagsOnly bool, visit func(any) bool) bool {
	if !visit(t) {
		return false
	}
	for _, item := range t.Content {
		if tg, ok := item.(*Tag); ok {
			if !tg.DepthFirst(tagsOnly, visit) {
				return false
			}
			continue
		}
		if tagsOnly {
			continue
		}
		if !visit(item) {
			return false
		}
	}
	return true
}

// BreadthFirst calls visit for this node, then for all direct children,
// then recurses level by level. visit returning false stops the walk.
func (t *Tag) BreadthFirst(tagsOnly bool, visit func(any) bool) bool {
	if !visit(t) {
		return false
	}
	return t.breadthFirstChildren(tagsOnly, visit)
}

func (t *Tag) breadthFirstChildren(tagsOnly bool, visit func(any) bool) bool {
	level := []*Tag{t}
	for len(level) > 0 {
		var next []*Tag
		for _, parent := range level {
			for _, item := range parent.Content {
				if tg, ok := item.(*Tag); ok {
					if !visit(tg) {
						return false
					}
					next = append(next, tg)
					continue
				}
				if tagsOnly {
					continue
				}
				if !visit(item) {
					return false
				}
			}
		}
		level = next
	}
	return true
}

// DepthFirstTags collects every *Tag reachable via DepthFirst, self
// included.
func (t *Tag) DepthFirstTags() []*Tag {
	var out []*Tag
	t.DepthFirst(true, func(item any) bool {
		out = append(out, item.(*Tag))
		return true
	})
	return out
}

// BreadthFirstTags collects every *Tag reachable via BreadthFirst, self
// included.
func (t *Tag) BreadthFirstTags() []*Tag {
	var out []*Tag
	t.BreadthFirst(true, func(item any) bool {
		out = append(out, item.(*Tag))
		return true
	})
	return out
}

// FindOptions narrows a Find/Findb/Wfind/Match query. A zero value matches
// any tag name, carries no parameter filter, and folds case.
type FindOptions struct {
	Params        *Params
	Predicate     func(*Tag) bool
	CaseSensitive bool
}

// Find collects, depth-first, every descendant (self included) whose name
// matches (case-folded unless CaseSensitive), whose Parameters are a
// superset of Params, and for which Predicate is truthy. An empty name
// matches any name.
func (t *Tag) Find(name string, opts ...FindOptions) []*Tag {
	o := mergeFindOptions(opts)
	var out []*Tag
	for _, tg := range t.DepthFirstTags() {
		if tg.isAlmostEqual(name, o.Params, o.Predicate, o.CaseSensitive) {
			out = append(out, tg)
		}
	}
	return out
}

// Findb is Find using breadth-first order.
func (t *Tag) Findb(name string, opts ...FindOptions) []*Tag {
	o := mergeFindOptions(opts)
	var out []*Tag
	for _, tg := range t.BreadthFirstTags() {
		if tg.isAlmostEqual(name, o.Params, o.Predicate, o.CaseSensitive) {
			out = append(out, tg)
		}
	}
	return out
}

func mergeFindOptions(opts []FindOptions) FindOptions {
	if len(opts) == 0 {
		return FindOptions{}
	}
	return opts[0]
}

// Wfind returns a synthetic container Tag (empty Name) holding the
// matches for name/opts as its Content. Calling Wfind again on that
// container restricts the next match to direct children of the previous
// matches only, so `a.Wfind("x").Wfind("y")` finds a "y" whose immediate
// parent is a matched "x" (spec.md section 4.3/9).
func (t *Tag) Wfind(name string, opts ...FindOptions) *Tag {
	o := mergeFindOptions(opts)
	container := &Tag{Parameters: NewParams(true), wfindOnlyOnContent: true}

	if !t.wfindOnlyOnContent {
		for _, tg := range t.Find(name, o) {
			container.Content = append(container.Content, tg)
		}
		return container
	}

	for _, item := range t.Content {
		parent, ok := item.(*Tag)
		if !ok {
			continue
		}
		for _, child := range parent.Content {
			tg, ok := child.(*Tag)
			if !ok {
				continue
			}
			if tg.isAlmostEqual(name, o.Params, o.Predicate, o.CaseSensitive) {
				container.Content = append(container.Content, tg)
			}
		}
	}
	return container
}

// MatchStep is one element of a Match/MatchPaths chain: a bare tag name,
// or a name plus narrowing options.
type MatchStep struct {
	Name string
	FindOptions
}

// Match runs a descendant-chained Find: the first step searches the
// receiver, and every subsequent step searches the descendants of every
// match found by the previous step. Returns the flat list of leaves
// matched at the final step (spec.md section 4.3/9 — Match is the
// descendant-chain interpretation, as opposed to Wfind's direct-child
// interpretation).
func (t *Tag) Match(steps ...MatchStep) []*Tag {
	if len(steps) == 0 {
		return nil
	}
	matched := t.Find(steps[0].Name, steps[0].FindOptions)
	for _, step := range steps[1:] {
		var next []*Tag
		for _, m := range matched {
			next = append(next, m.Find(step.Name, step.FindOptions)...)
		}
		matched = next
	}
	return matched
}

// MatchPaths runs a direct-child-chained Wfind for every step and returns
// the final container's content as tags. Unlike Match, a tag only matches
// if it sits at exactly that path — wrapping it in an extra intermediate
// tag breaks the match.
func (t *Tag) MatchPaths(steps ...MatchStep) []*Tag {
	item := t
	for _, step := range steps {
		item = item.Wfind(step.Name, step.FindOptions)
	}
	return item.Tags()
}
