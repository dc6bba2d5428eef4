// SPDX-License-Identifier: MIT

package dataio

import (
	"io"
	"log/slog"
	"slices"

	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/tokenizer"
	"github.com/katalvlaran/lvdata/variable"
)

// Reader defaults.
const (
	DefaultMissingMarker       = "*"
	DefaultMaxIntegralDiscrete = 4
)

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter sets the cell delimiter (whitespace by default).
func WithDelimiter(d tokenizer.Delimiter) Option {
	return func(r *Reader) { r.delimiter = d }
}

// WithCommentMarker sets the comment-line prefix; "" disables comments.
func WithCommentMarker(marker string) Option {
	return func(r *Reader) { r.commentMarker = marker }
}

// WithQuote sets the quote byte; 0 disables quoting.
func WithQuote(q byte) Option {
	return func(r *Reader) { r.quote = q }
}

// WithMissingMarker sets the token that denotes a missing cell besides the empty token.
func WithMissingMarker(marker string) Option {
	return func(r *Reader) { r.missing = marker }
}

// WithHeader states whether the first data line holds variable names.
func WithHeader(on bool) Option {
	return func(r *Reader) { r.header = on }
}

// WithMaxIntegralDiscrete sets how many distinct integral values a column may have
// and still be discrete. -1 makes every integral column continuous; lower values are ignored.
func WithMaxIntegralDiscrete(n int) Option {
	return func(r *Reader) {
		if n >= -1 {
			r.maxIntegralDiscrete = n
		}
	}
}

// WithIDColumn names the column whose tokens become case IDs.
func WithIDColumn(label string) Option {
	return func(r *Reader) { r.idColumn, r.idLabel = true, label }
}

// WithUnlabeledIDColumn declares a leading ID column that the header does not name.
func WithUnlabeledIDColumn() Option {
	return func(r *Reader) { r.idColumn, r.idLabel = true, "" }
}

// WithKnownVariables fixes the type of the named columns, bypassing inference.
func WithKnownVariables(vars ...variable.Variable) Option {
	return func(r *Reader) { r.known = append(r.known, vars...) }
}

// WithStorage selects the databox storage of loaded datasets.
func WithStorage(s databox.Storage) Option {
	return func(r *Reader) { r.storage, r.storageSet = s, true }
}

// WithSinglePass buffers the source in memory so it is opened only once.
func WithSinglePass() Option {
	return func(r *Reader) { r.singlePass = true }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records reads on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Reader) { r.metrics = m }
}

// WithKnowledgeOptions configures knowledge parsed from /knowledge sections.
func WithKnowledgeOptions(opts ...knowledge.Option) Option {
	return func(r *Reader) { r.knowledgeOpts = append(r.knowledgeOpts, opts...) }
}

// Reader parses tabular, covariance and knowledge text. A Reader is immutable after
// NewReader and safe for concurrent use.
type Reader struct {
	delimiter           tokenizer.Delimiter
	commentMarker       string
	quote               byte
	missing             string
	header              bool
	maxIntegralDiscrete int
	idColumn            bool
	idLabel             string
	known               []variable.Variable
	storage             databox.Storage
	storageSet          bool
	singlePass          bool
	logger              *slog.Logger
	metrics             *Metrics
	knowledgeOpts       []knowledge.Option
}

// NewReader returns a Reader with whitespace delimiters, "//" comments, '"' quotes,
// "*" missing markers, a header line and at most four integral discrete values.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		delimiter:           tokenizer.WhitespaceDelimiter,
		commentMarker:       tokenizer.DefaultCommentMarker,
		quote:               tokenizer.DefaultQuote,
		missing:             DefaultMissingMarker,
		header:              true,
		maxIntegralDiscrete: DefaultMaxIntegralDiscrete,
		logger:              slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.known = slices.Clone(r.known)
	return r
}

// with returns a copy of r with opts applied.
func (r *Reader) with(opts ...Option) *Reader {
	cp := *r
	cp.known = slices.Clone(r.known)
	cp.knowledgeOpts = slices.Clone(r.knowledgeOpts)
	for _, opt := range opts {
		opt(&cp)
	}
	return &cp
}

func (r *Reader) isMissing(token string) bool {
	return token == "" || token == r.missing
}

func (r *Reader) split(line string) []string {
	return tokenizer.Split(line, r.delimiter, r.quote)
}

func (r *Reader) lineizer(src io.Reader) *tokenizer.Lineizer {
	return tokenizer.NewLineizer(src, r.commentMarker)
}
