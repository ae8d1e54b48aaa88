package detection

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"plagscan/internal/features"
	"plagscan/internal/logging"
	"plagscan/internal/similarity"
	"plagscan/internal/textutil"
)

// Pipeline stage names used in log fields.
const (
	stageFilter    = "filter"
	stageNormalize = "normalize"
	stageVectorize = "vectorize"
	stageSimilar   = "similarity"
	stageSelect    = "select"
)

// Analyze runs the pipeline over docs and returns the suspicious pairs.
// The threshold is validated before any work is done.
func Analyze(ctx context.Context, docs []Document, opts Options) ([]SuspiciousPair, error) {
	res, err := run(ctx, docs, opts, logging.NewNop())
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}

// Analyzer wraps Options with a logger for command-line use.
type Analyzer struct {
	opts   Options
	logger *slog.Logger
}

// NewAnalyzer constructs an Analyzer. A nil logger discards output.
func NewAnalyzer(opts Options, logger *slog.Logger) *Analyzer {
	return &Analyzer{opts: opts, logger: logging.NewComponentLogger(logger, "detection")}
}

// Options returns the options the analyzer was built with.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Run analyzes docs and reports counts alongside the flagged pairs.
func (a *Analyzer) Run(ctx context.Context, docs []Document) (*Result, error) {
	return run(ctx, docs, a.opts, a.logger)
}

func run(ctx context.Context, docs []Document, opts Options, logger *slog.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	started := time.Now()

	res := &Result{
		RunID:     runID,
		Threshold: opts.Threshold,
		Documents: len(docs),
		Pairs:     make([]SuspiciousPair, 0),
	}

	corpus := filterShort(docs, opts.MinDocLength)
	res.Analyzed = len(corpus)
	res.Skipped = len(docs) - len(corpus)
	stageLogger(ctx, logger, stageFilter).Debug("documents filtered",
		logging.Int("kept", res.Analyzed),
		logging.Int("skipped", res.Skipped),
		logging.Int("min_doc_length", opts.MinDocLength),
	)
	if len(corpus) < 2 {
		logging.WithContext(ctx, logger).Info("not enough documents to compare", logging.Int("analyzed", res.Analyzed))
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ids := make([]string, len(corpus))
	texts := make([]string, len(corpus))
	for i, doc := range corpus {
		ids[i] = doc.ID
		texts[i] = doc.Text
	}
	normalized := textutil.NormalizeCorpus(texts)
	stageLogger(ctx, logger, stageNormalize).Debug("corpus normalized", logging.Int("documents", len(normalized)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vocab, matrix, err := features.Build(normalized)
	if errors.Is(err, features.ErrEmptyVocabulary) {
		logging.WarnWithContext(stageLogger(ctx, logger, stageVectorize), "batch has no usable tokens", "empty_vocabulary",
			logging.String(logging.FieldErrorHint, "documents contain only punctuation or single-character words"),
		)
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	stageLogger(ctx, logger, stageVectorize).Debug("tf-idf matrix built",
		logging.Int("rows", matrix.Rows()),
		logging.Int("vocabulary", vocab.Len()),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sim := similarity.Cosine(matrix)
	stageLogger(ctx, logger, stageSimilar).Debug("similarity computed", logging.Int("size", sim.Size()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res.Pairs = SelectPairs(ids, sim, opts.Threshold)
	stageLogger(ctx, logger, stageSelect).Debug("pairs selected", logging.Int("pairs", len(res.Pairs)))

	logging.WithContext(ctx, logger).Info("analysis complete",
		logging.Int("documents", res.Documents),
		logging.Int("analyzed", res.Analyzed),
		logging.Int("pairs", len(res.Pairs)),
		logging.Float64("threshold", opts.Threshold),
		logging.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}

// filterShort keeps documents whose text has at least minLen characters.
func filterShort(docs []Document, minLen int) []Document {
	kept := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if utf8.RuneCountInString(doc.Text) >= minLen {
			kept = append(kept, doc)
		}
	}
	return kept
}

func stageLogger(ctx context.Context, logger *slog.Logger, stage string) *slog.Logger {
	return logging.WithContext(logging.WithStage(ctx, stage), logger)
}
