package parser

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// DefaultMaxDepth is the default maximum nesting depth for parsing.
const DefaultMaxDepth = 500

// Option is a configuration function for a Parser.
type Option func(*Parser)

type options struct {
	ranges        bool
	locations     bool
	comments      bool
	attachComment bool
	tokens        bool
	tolerant      bool
	source        string
	features      syntax.Features
	overrides     map[string]bool
	maxDepth      int
	logger        zerolog.Logger
	err           error
}

func defaultOptions() options {
	return options{
		features: syntax.DefaultFeatures,
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
}

// WithRange records [start, end) byte ranges on nodes, tokens and comments.
func WithRange(on bool) Option {
	return func(p *Parser) {
		p.opts.ranges = on
	}
}

// WithLoc records line/column locations on nodes, tokens and comments.
func WithLoc(on bool) Option {
	return func(p *Parser) {
		p.opts.locations = on
	}
}

// WithComments collects every comment into Program.Comments.
func WithComments(on bool) Option {
	return func(p *Parser) {
		p.opts.comments = on
	}
}

// WithAttachComment attaches comments to the nodes they lead or trail.
// It implies WithRange and WithComments.
func WithAttachComment(on bool) Option {
	return func(p *Parser) {
		p.opts.attachComment = on
	}
}

// WithTokens collects the token stream into Program.Tokens.
func WithTokens(on bool) Option {
	return func(p *Parser) {
		p.opts.tokens = on
	}
}

// WithTolerant records recoverable syntax errors instead of failing.
func WithTolerant(on bool) Option {
	return func(p *Parser) {
		p.opts.tolerant = on
	}
}

// WithSource sets the label copied into every location's source field.
// The label also names the input in error messages.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.opts.source = source
	}
}

// WithFeatures replaces the enabled language extensions.
func WithFeatures(features syntax.Features) Option {
	return func(p *Parser) {
		p.opts.features = features
	}
}

// WithFeature turns a single named extension on or off, on top of the
// feature set in effect.
func WithFeature(name string, on bool) Option {
	return func(p *Parser) {
		if p.opts.overrides == nil {
			p.opts.overrides = map[string]bool{}
		}
		p.opts.overrides[name] = on
	}
}

// WithMaxDepth sets the maximum nesting depth for the parser.
// This prevents stack overflow on deeply nested input.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.opts.maxDepth = depth
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.opts.logger = logger
	}
}

// Config holds parse options in a form that configuration files and
// environment variables can populate.
type Config struct {
	Range         bool            `json:"range" mapstructure:"range"`
	Loc           bool            `json:"loc" mapstructure:"loc"`
	Comment       bool            `json:"comment" mapstructure:"comment"`
	AttachComment bool            `json:"attachComment" mapstructure:"attachComment"`
	Tokens        bool            `json:"tokens" mapstructure:"tokens"`
	Tolerant      bool            `json:"tolerant" mapstructure:"tolerant"`
	Source        string          `json:"source" mapstructure:"source"`
	Preset        string          `json:"preset" mapstructure:"preset"`
	Features      map[string]bool `json:"features" mapstructure:"features"`
	MaxDepth      int             `json:"maxDepth" mapstructure:"maxDepth"`
}

// WithConfig applies every setting of cfg. An empty preset keeps the
// current feature set; Features are applied on top of it.
func WithConfig(cfg Config) Option {
	return func(p *Parser) {
		p.opts.ranges = cfg.Range
		p.opts.locations = cfg.Loc
		p.opts.comments = cfg.Comment
		p.opts.attachComment = cfg.AttachComment
		p.opts.tokens = cfg.Tokens
		p.opts.tolerant = cfg.Tolerant
		p.opts.source = cfg.Source
		if cfg.MaxDepth > 0 {
			p.opts.maxDepth = cfg.MaxDepth
		}
		if cfg.Preset != "" {
			features, ok := syntax.Presets[cfg.Preset]
			if !ok {
				p.opts.err = unknownPreset(cfg.Preset)
				return
			}
			p.opts.features = features
		}
		for name, on := range cfg.Features {
			WithFeature(name, on)(p)
		}
	}
}

func unknownPreset(name string) error {
	names := make([]string, 0, len(syntax.Presets))
	for preset := range syntax.Presets {
		names = append(names, preset)
	}
	if hint := errors.FormatSuggestions(errors.SuggestSimilar(name, names)); hint != "" {
		return fmt.Errorf("unknown preset %q: %s", name, hint)
	}
	return fmt.Errorf("unknown preset %q", name)
}
