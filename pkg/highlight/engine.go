package highlight

import (
	"io"
	"regexp"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gohilite/pkg/document"
	"github.com/yaklabco/gohilite/pkg/syntax"
)

// DefaultMaxBytes is the largest input highlighted by default.
const DefaultMaxBytes = 8 << 20

// Options configures an Engine.
type Options struct {
	// Mode selects overlap resolution. Empty means ModeExclusive.
	Mode Mode

	// MaxBytes caps the input size; larger texts yield no spans.
	// Zero means unlimited.
	MaxBytes int

	// ReleaseOnClose purges a language's compiled patterns when its last
	// open document is closed.
	ReleaseOnClose bool

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Mode:     ModeExclusive,
		MaxBytes: DefaultMaxBytes,
	}
}

// Engine produces highlight spans. It owns the compiled-pattern cache and
// is safe for concurrent use.
type Engine struct {
	opts   Options
	cache  *syntax.Cache
	logger *log.Logger

	mu   sync.Mutex
	open map[syntax.Language]int
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options) *Engine {
	if opts.Mode == "" {
		opts.Mode = ModeExclusive
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Engine{
		opts:   opts,
		cache:  syntax.NewCache(),
		logger: logger,
		open:   make(map[syntax.Language]int),
	}
}

// Mode returns the engine's overlap resolution mode.
func (e *Engine) Mode() Mode {
	return e.opts.Mode
}

// Cache exposes the engine's compile cache.
func (e *Engine) Cache() *syntax.Cache {
	return e.cache
}

// HighlightDocument highlights a document snapshot.
func (e *Engine) HighlightDocument(doc document.Document) []Span {
	return e.Highlight(doc.Text, doc.Language)
}

// Highlight returns the spans of text under the rules of lang.
//
// Spans are grouped by rule in rule-table order (lowest precedence first)
// and ordered by start within a rule. Offsets are codepoints. Unknown
// languages, empty text and text over the size cap yield nil.
func (e *Engine) Highlight(text string, lang syntax.Language) []Span {
	rules := syntax.RulesFor(lang)
	if len(rules) == 0 || text == "" {
		return nil
	}
	if e.opts.MaxBytes > 0 && len(text) > e.opts.MaxBytes {
		e.logger.Debug("text exceeds highlight limit",
			"language", lang, "bytes", len(text), "max_bytes", e.opts.MaxBytes)
		return nil
	}

	compiled := e.compileAll(lang, rules)
	perRule := make([][]byteRange, len(rules))

	var masks []byteRange
	if e.opts.Mode == ModeExclusive {
		var participants []maskRule
		for i, rule := range rules {
			if rule.Mask && compiled[i] != nil {
				participants = append(participants, maskRule{index: i, re: compiled[i], group: rule.Group})
			}
		}
		var byRule map[int][]byteRange
		byRule, masks = tokenize(text, participants)
		for i, ranges := range byRule {
			perRule[i] = ranges
		}
	}

	for i, rule := range rules {
		if compiled[i] == nil {
			continue
		}
		if e.opts.Mode == ModeExclusive && rule.Mask {
			continue
		}

		perRule[i] = scanAll(text, compiled[i], rule.Group, masks)
	}

	offsets := document.NewOffsets(text)
	var spans []Span
	for i, rule := range rules {
		for _, r := range perRule[i] {
			spans = append(spans, Span{
				Kind:  rule.Kind,
				Start: offsets.RuneOffset(r.start),
				End:   offsets.RuneOffset(r.end),
				Rule:  rule.Name,
			})
		}
	}
	return spans
}

func (e *Engine) compileAll(lang syntax.Language, rules []syntax.Rule) []*regexp.Regexp {
	before := e.cache.Compilations()

	compiled := make([]*regexp.Regexp, len(rules))
	for i, rule := range rules {
		re, err := e.cache.Compiled(lang, rule)
		if err != nil {
			// Unreachable for the validated built-in tables.
			e.logger.Error("skipping rule", "language", lang, "rule", rule.Name, "error", err)
			continue
		}
		compiled[i] = re
	}

	if n := e.cache.Compilations() - before; n > 0 {
		e.logger.Debug("compiled rules", "language", lang, "count", n)
	}
	return compiled
}

// Open records that a document in lang was opened.
func (e *Engine) Open(lang syntax.Language) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open[lang]++
}

// Close records that a document in lang was closed. When the last one
// closes and ReleaseOnClose is set, the language's patterns are purged.
// Closing a language with no open documents is a no-op.
func (e *Engine) Close(lang syntax.Language) {
	e.mu.Lock()
	defer e.mu.Unlock()

	count, ok := e.open[lang]
	if !ok {
		return
	}
	if count > 1 {
		e.open[lang] = count - 1
		return
	}

	delete(e.open, lang)
	if e.opts.ReleaseOnClose {
		removed := e.cache.Purge(lang)
		e.logger.Debug("released compiled rules", "language", lang, "count", removed)
	}
}

// OpenCount returns the number of open documents in lang.
func (e *Engine) OpenCount(lang syntax.Language) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.open[lang]
}

// Reset forgets all open documents and flushes the compile cache.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.open)
	e.cache.Flush()
	e.logger.Debug("highlight engine reset")
}
