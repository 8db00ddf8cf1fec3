package types

// ParserConfig holds tunable knobs for the extraction pipeline. The zero
// value is usable: Normalize fills in the canonical defaults.
type ParserConfig struct {
	// BaseConfidence is the heuristic scorer's starting score (default 55).
	BaseConfidence int `json:"base_confidence" yaml:"base_confidence" mapstructure:"base_confidence"`

	// MinConfidence and MaxConfidence clamp the heuristic score
	// (defaults 20 and 95).
	MinConfidence int `json:"min_confidence" yaml:"min_confidence" mapstructure:"min_confidence"`
	MaxConfidence int `json:"max_confidence" yaml:"max_confidence" mapstructure:"max_confidence"`

	// ListConfidence is the flat score for list-derived candidates
	// (default 70). List membership is itself a strong signal, so these
	// skip the additive formula.
	ListConfidence int `json:"list_confidence" yaml:"list_confidence" mapstructure:"list_confidence"`

	// MinTitleLength is the shortest cleaned title accepted (default 5).
	MinTitleLength int `json:"min_title_length" yaml:"min_title_length" mapstructure:"min_title_length"`

	// MaxTitleLength caps cleaned titles (default 150).
	MaxTitleLength int `json:"max_title_length" yaml:"max_title_length" mapstructure:"max_title_length"`

	// MaxLineBytes caps the input handed to any pattern rule. Longer
	// lines are truncated before matching so pathological input cannot
	// trigger runaway backtracking (default 4096).
	MaxLineBytes int `json:"max_line_bytes" yaml:"max_line_bytes" mapstructure:"max_line_bytes"`
}

// Canonical scorer defaults. One baseline and one clamp range are used
// everywhere; variant scorers with divergent values are deliberately
// not reproduced.
const (
	DefaultBaseConfidence = 55
	DefaultMinConfidence  = 20
	DefaultMaxConfidence  = 95
	DefaultListConfidence = 70
	DefaultMinTitleLength = 5
	DefaultMaxTitleLength = 150
	DefaultMaxLineBytes   = 4096
)

// Normalize returns a copy of the config with zero or out-of-range fields
// replaced by the canonical defaults.
func (c ParserConfig) Normalize() ParserConfig {
	if c.BaseConfidence <= 0 || c.BaseConfidence > 100 {
		c.BaseConfidence = DefaultBaseConfidence
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 100 {
		c.MinConfidence = DefaultMinConfidence
	}
	if c.MaxConfidence <= 0 || c.MaxConfidence > 100 {
		c.MaxConfidence = DefaultMaxConfidence
	}
	if c.MaxConfidence < c.MinConfidence {
		c.MinConfidence = DefaultMinConfidence
		c.MaxConfidence = DefaultMaxConfidence
	}
	if c.ListConfidence <= 0 || c.ListConfidence > 100 {
		c.ListConfidence = DefaultListConfidence
	}
	if c.MinTitleLength <= 0 {
		c.MinTitleLength = DefaultMinTitleLength
	}
	if c.MaxTitleLength <= 0 {
		c.MaxTitleLength = DefaultMaxTitleLength
	}
	if c.MaxLineBytes <= 0 {
		c.MaxLineBytes = DefaultMaxLineBytes
	}
	return c
}

// EnrichmentConfig holds settings for the optional enrichment stage.
type EnrichmentConfig struct {
	// Enabled controls whether enrichment runs at all.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// ContextBoost is the confidence adjustment applied when a document
	// flag is present and relevant (default 10).
	ContextBoost int `json:"context_boost" yaml:"context_boost" mapstructure:"context_boost"`
}

// DefaultContextBoost is the canonical enrichment confidence boost.
const DefaultContextBoost = 10

// Normalize returns a copy with defaults applied.
func (c EnrichmentConfig) Normalize() EnrichmentConfig {
	if c.ContextBoost <= 0 || c.ContextBoost > 100 {
		c.ContextBoost = DefaultContextBoost
	}
	return c
}
