package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gohilite/pkg/bracket"
	"github.com/yaklabco/gohilite/pkg/document"
	"github.com/yaklabco/gohilite/pkg/fsutil"
	"github.com/yaklabco/gohilite/pkg/highlight"
	"github.com/yaklabco/gohilite/pkg/langdetect"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// Skip reasons reported in FileResult.SkipReason.
const (
	SkipTooLarge        = "file exceeds highlight limit"
	SkipUnknownLanguage = "no language profile"
)

// Runner orchestrates multi-file highlighting with a shared Engine.
type Runner struct {
	// Engine highlights every file and owns the compile cache.
	Engine *highlight.Engine
}

// New creates a new Runner with the given engine.
func New(engine *highlight.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; collect by path.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		fr, err := r.ProcessFile(ctx, path, opts)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = fr
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile reads, detects and highlights one file.
func (r *Runner) ProcessFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	content, info, err := fsutil.ReadSource(ctx, path, opts.maxBytes())
	if err != nil {
		if errors.Is(err, fsutil.ErrTooLarge) {
			return &FileResult{Skipped: true, SkipReason: SkipTooLarge}, nil
		}
		return nil, err
	}

	lang := opts.Language
	if lang == syntax.LanguageNone {
		lang = langdetect.Detect(path, content)
	}

	fr := &FileResult{
		Language: lang,
		Bytes:    len(content),
		Digest:   info.Digest(),
	}
	if lang == syntax.LanguageNone {
		fr.Skipped = true
		fr.SkipReason = SkipUnknownLanguage
		return fr, nil
	}

	doc := document.New(string(content), lang)
	r.Engine.Open(lang)
	spans := r.Engine.HighlightDocument(doc)
	r.Engine.Close(lang)

	runes := []rune(doc.Text)
	fr.Lines = doc.Index().LineCount()
	fr.Spans = len(spans)
	fr.SpansByKind = highlight.CountByKind(spans)
	fr.Brackets = bracket.Audit(runes, literalMask(spans, len(runes)))
	fr.Issues = locateIssues(doc.Index(), runes, fr.Brackets.Unmatched)

	return fr, nil
}

// locateIssues resolves unmatched bracket offsets to line positions.
func locateIssues(index *document.Index, runes []rune, offsets []int) []BracketIssue {
	if len(offsets) == 0 {
		return nil
	}
	issues := make([]BracketIssue, 0, len(offsets))
	for _, off := range offsets {
		line, col := index.LineAt(off)
		issues = append(issues, BracketIssue{
			Offset: off,
			Line:   line,
			Column: col,
			Char:   string(runes[off]),
			Source: index.LineContent(line),
		})
	}
	return issues
}

// literalMask returns a predicate that is true for offsets inside string
// or comment spans.
func literalMask(spans []highlight.Span, n int) func(int) bool {
	mask := make([]bool, n)
	for _, s := range spans {
		if s.Kind != syntax.KindString && s.Kind != syntax.KindComment {
			continue
		}
		for i := max(0, s.Start); i < min(n, s.End); i++ {
			mask[i] = true
		}
	}
	return func(i int) bool { return mask[i] }
}
