package soup

import "github.com/sirupsen/logrus"

// recoveryLogger emits Debug-level structured events for every local
// recovery the tokenizer and tree builder perform. Its logrus logger is
// nil by default, so every method is a no-op — parsing has no logging
// surface of its own (spec.md section 5/7) — and it only writes when a
// caller opts in via WithLogger, typically while
// debugging why a scrape stopped matching a target site.
type recoveryLogger struct {
	log *logrus.Logger
}

func (l *recoveryLogger) unclosedTag(pos int, span string) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event": "unclosed_tag",
		"pos":   pos,
	}).Debugf("tag scan reached end of input, re-emitting %q as text", span)
}

func (l *recoveryLogger) nestedTagStart(pos int, span string) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event": "nested_tag_start",
		"pos":   pos,
	}).Debugf("'<' encountered while still inside a tag, aborting and re-emitting %q as text", span)
}

func (l *recoveryLogger) overlongEntity(pos int, span string) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event": "overlong_entity",
		"pos":   pos,
	}).Debugf("entity span exceeded MAX_ENTITY_LENGTH or hit whitespace, demoting %q to text", span)
}

func (l *recoveryLogger) unclosedComment(pos int) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event": "unclosed_comment",
		"pos":   pos,
	}).Debug("comment never closed before end of input, re-emitting as text")
}

func (l *recoveryLogger) spuriousCloseTag(name string) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event": "spurious_close_tag",
		"tag":   name,
	}).Debugf("</%s> matched nothing on the open-element stack, discarding", name)
}

func (l *recoveryLogger) reshape(closedTag string, hoisted int) {
	if l == nil || l.log == nil {
		return
	}
	l.log.WithFields(logrus.Fields{
		"event":   "reshape",
		"tag":     closedTag,
		"hoisted": hoisted,
	}).Debugf("</%s> closed a non-top element, reshaping %d unclosed descendant(s)", closedTag, hoisted)
}
