package types

import "time"

// HTTPConfig holds shared HTTP settings used by the provider clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "refkit/0.1 (mailto:user@example.com)").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// RatePerSecond caps how many requests per second are sent to any one
	// provider (default 1). Zero or negative disables the limit.
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second" mapstructure:"rate_per_second"`

	// Burst is the number of requests allowed back to back before the rate
	// limit applies (default 1).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// ProvidersConfig holds endpoints and query settings for the metadata providers.
type ProvidersConfig struct {
	// ArxivBase is the arXiv API query endpoint.
	ArxivBase string `json:"arxiv_base" yaml:"arxiv_base" mapstructure:"arxiv_base"`

	// CrossRefBase is the CrossRef REST API base URL (the works collection lives under it).
	CrossRefBase string `json:"crossref_base" yaml:"crossref_base" mapstructure:"crossref_base"`

	// CrossRefRows is the number of free-text search results requested (default 10).
	CrossRefRows int `json:"crossref_rows" yaml:"crossref_rows" mapstructure:"crossref_rows"`

	// Mailto is the contact address sent to CrossRef to join its polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty" mapstructure:"mailto"`
}

// ResolveConfig holds settings for reference resolution.
type ResolveConfig struct {
	// AutoMin is the minimum overlap score for accepting a free-text match
	// without asking (default 0.99).
	AutoMin float64 `json:"auto_min" yaml:"auto_min" mapstructure:"auto_min"`

	// AutoMax is the maximum ratio of the runner-up score to the best score
	// for accepting a free-text match without asking (default 0.7).
	AutoMax float64 `json:"auto_max" yaml:"auto_max" mapstructure:"auto_max"`

	// Interactive enables terminal prompts for disambiguation and manual entry.
	Interactive bool `json:"interactive" yaml:"interactive" mapstructure:"interactive"`
}

// RenderConfig controls how a record is rendered as citation text.
type RenderConfig struct {
	// MaxNames limits the printed author or editor list. Values below 2 print
	// every name; otherwise MaxNames-1 names are printed followed by "et al.".
	MaxNames int `json:"max_names" yaml:"max_names" mapstructure:"max_names"`

	// AbbreviateJournal prints the abbreviated journal title (default true).
	AbbreviateJournal bool `json:"abbreviate_journal" yaml:"abbreviate_journal" mapstructure:"abbreviate_journal"`

	// AbbreviateNames reduces given names to initials.
	AbbreviateNames bool `json:"abbreviate_names" yaml:"abbreviate_names" mapstructure:"abbreviate_names"`

	// FamilyNameFirst prints names as "Family, Given".
	FamilyNameFirst bool `json:"family_name_first" yaml:"family_name_first" mapstructure:"family_name_first"`

	// ForceTitle prints the title for journal and arXiv references too.
	ForceTitle bool `json:"force_title" yaml:"force_title" mapstructure:"force_title"`

	// FirstPageOnly prints only the start page of a page range.
	FirstPageOnly bool `json:"first_page_only" yaml:"first_page_only" mapstructure:"first_page_only"`

	// JournalsFile replaces the bundled journal abbreviation dictionary
	// with a YAML dictionary of the same shape.
	JournalsFile string `json:"journals_file,omitempty" yaml:"journals_file,omitempty" mapstructure:"journals_file"`
}

// DefaultRenderConfig returns the rendering defaults: abbreviated journal
// titles, full given names, given name first, no forced title.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{AbbreviateJournal: true}
}

// LibraryConfig holds settings for the local reference library.
type LibraryConfig struct {
	// Path is the SQLite database file (default "refkit.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// MaxResults is the default maximum number of list or search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is stderr or stdout (default stderr).
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Config groups every setting of the refkit CLI.
type Config struct {
	Resolve   ResolveConfig   `json:"resolve" yaml:"resolve" mapstructure:"resolve"`
	HTTP      HTTPConfig      `json:"http" yaml:"http" mapstructure:"http"`
	Providers ProvidersConfig `json:"providers" yaml:"providers" mapstructure:"providers"`
	Render    RenderConfig    `json:"render" yaml:"render" mapstructure:"render"`
	Library   LibraryConfig   `json:"library" yaml:"library" mapstructure:"library"`
	Logging   LoggingConfig   `json:"logging" yaml:"logging" mapstructure:"logging"`
}
