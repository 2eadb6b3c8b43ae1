package soup

// Comment is the body between `<!--` and `-->`, stored by value in a
// Tag's Content.
type Comment struct {
	Content string
}

// String renders the comment back to `<!--…-->` form.
func (c Comment) String() string {
	if c.Content == " " {
		return "<!-- -->"
	}
	return "<!--" + c.Content + "-->"
}
