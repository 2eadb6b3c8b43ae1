package soup

import "github.com/sirupsen/logrus"

// defaultVoidTags is the default set of tags always treated as non-pair
// even when written without a trailing "/" (spec.md section 4.2). It is
// configurable via WithVoidTags but not otherwise exposed.
var defaultVoidTags = map[string]bool{
	"br":      true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"meta":    true,
	"spacer":  true,
	"frame":   true,
	"base":    true,
}

// defaultRawTextTags is the set of tags whose body the tokenizer scans as
// a single opaque run of text, ignoring '<' and '&', until the matching
// close tag. This resolves the Open Question in spec.md section 9 in
// favor of not letting script/style bodies corrupt the surrounding parse.
var defaultRawTextTags = map[string]bool{
	"script": true,
	"style":  true,
}

type config struct {
	strictParameters bool
	voidTags         map[string]bool
	rawTextTags      map[string]bool
	logger           *recoveryLogger
}

func newConfig() *config {
	return &config{
		voidTags:    defaultVoidTags,
		rawTextTags: defaultRawTextTags,
		logger:      &recoveryLogger{},
	}
}

// Option configures Parse.
type Option func(*config)

// WithStrictParameters disables case folding on every Tag's Parameters.
// The default is case-insensitive, matching spec.md's Tag.parameters.
func WithStrictParameters() Option {
	return func(c *config) { c.strictParameters = true }
}

// WithVoidTags overrides the default void-element set (spec.md section
// 4.2's "Default void-element set"). Names are matched case-insensitively.
func WithVoidTags(names ...string) Option {
	return func(c *config) {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[lower(n)] = true
		}
		c.voidTags = set
	}
}

// WithRawTextTags overrides the set of tags whose body is tokenized as
// raw text (resolving the Open Question in spec.md section 9).
func WithRawTextTags(names ...string) Option {
	return func(c *config) {
		set := make(map[string]bool, len(names))
		for _, n := range names {
			set[lower(n)] = true
		}
		c.rawTextTags = set
	}
}

// WithLogger opts into Debug-level structured logging of every recovery
// branch the tokenizer and tree builder take. Parsing never fails either
// way; this is purely diagnostic (see soup/logging.go).
func WithLogger(log *logrus.Logger) Option {
	return func(c *config) { c.logger = &recoveryLogger{log: log} }
}
