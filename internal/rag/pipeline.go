// Package rag retrieves catalog text by embedding similarity and asks a
// hosted model for schedules and course suggestions. Every failure falls
// back to the deterministic planner or a fixed advisory.
package rag

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/gradplan/internal/catalog"
	"github.com/yigit/gradplan/internal/planner"
)

// State is the lifecycle state of a Pipeline
type State string

const (
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"
	StateDisabled      State = "disabled"
)

const (
	// MaxBatchSize is the most documents embedded in one request
	MaxBatchSize = 100
	// DefaultRetrievalK is the number of documents retrieved per query
	DefaultRetrievalK = 20
	// DefaultConcurrency bounds parallel embedding requests during indexing
	DefaultConcurrency = 4
)

const (
	AdviceUnavailable = "AI suggestions unavailable. Please ensure the system is properly configured."
	AdviceFailed      = "Unable to generate suggestions at this time. Please try again later."
)

// Observer receives the outcome of model calls
type Observer interface {
	ObserveRAG(operation, outcome string, elapsed time.Duration)
}

// Options tunes a Pipeline
type Options struct {
	RetrievalK     int
	RequestTimeout time.Duration
	BatchSize      int
	Concurrency    int
	Observer       Observer
}

func (o Options) withDefaults() Options {
	if o.RetrievalK <= 0 {
		o.RetrievalK = DefaultRetrievalK
	}
	if o.BatchSize <= 0 || o.BatchSize > MaxBatchSize {
		o.BatchSize = MaxBatchSize
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	return o
}

// Pipeline is the retrieval-augmented generation layer
type Pipeline struct {
	cat       *catalog.Catalog
	embedder  Embedder
	generator Generator
	opts      Options
	log       zerolog.Logger
	index     *Index

	once   sync.Once
	mu     sync.RWMutex
	state  State
	reason string
}

// NewPipeline creates an uninitialized pipeline. A nil embedder or generator
// leaves it disabled once initialized.
func NewPipeline(cat *catalog.Catalog, embedder Embedder, generator Generator, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cat:       cat,
		embedder:  embedder,
		generator: generator,
		opts:      opts.withDefaults(),
		log:       log,
		index:     NewIndex(),
		state:     StateUninitialized,
	}
}

// State returns the current state and, when disabled, why
func (p *Pipeline) State() (State, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.reason
}

func (p *Pipeline) ready() bool {
	state, _ := p.State()
	return state == StateReady
}

func (p *Pipeline) disable(reason string) {
	p.mu.Lock()
	p.state, p.reason = StateDisabled, reason
	p.mu.Unlock()
	p.log.Warn().Str("reason", reason).Msg("RAG pipeline disabled, deterministic plans only")
}

// Initialize embeds every catalog document and builds the index. It runs once;
// later calls return the settled state. Failures disable the pipeline.
func (p *Pipeline) Initialize(ctx context.Context) State {
	p.once.Do(func() { p.build(ctx) })
	state, _ := p.State()
	return state
}

func (p *Pipeline) build(ctx context.Context) {
	if p.embedder == nil || p.generator == nil {
		p.disable(ErrMissingAPIKey.Error())
		return
	}

	start := time.Now()
	docs := BuildDocuments(p.cat)
	if len(docs) == 0 {
		p.disable("no documents to index")
		return
	}

	vectors, err := p.embedAll(ctx, docs)
	if err == nil {
		err = p.index.Add(docs, vectors)
	}
	if err != nil {
		p.observe("index", "error", start)
		p.disable(err.Error())
		return
	}
	p.observe("index", "ok", start)

	p.mu.Lock()
	p.state, p.reason = StateReady, ""
	p.mu.Unlock()

	p.log.Info().Int("documents", len(docs)).Dur("elapsed", time.Since(start)).Msg("RAG index built")
}

func (p *Pipeline) embedAll(ctx context.Context, docs []Document) ([][]float32, error) {
	vectors := make([][]float32, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for start := 0; start < len(docs); start += p.opts.BatchSize {
		end := min(start+p.opts.BatchSize, len(docs))
		g.Go(func() error {
			texts := make([]string, 0, end-start)
			for _, d := range docs[start:end] {
				texts = append(texts, d.Text)
			}
			batch, err := p.embedder.EmbedDocuments(gctx, texts)
			if err != nil {
				return fmt.Errorf("embedding documents %d-%d: %w", start, end, err)
			}
			if len(batch) != len(texts) {
				return fmt.Errorf("embedding documents %d-%d: got %d vectors", start, end, len(batch))
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

func (p *Pipeline) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.opts.RequestTimeout > 0 {
		return context.WithTimeout(ctx, p.opts.RequestTimeout)
	}
	return context.WithCancel(ctx)
}

func (p *Pipeline) observe(operation, outcome string, start time.Time) {
	if p.opts.Observer != nil {
		p.opts.Observer.ObserveRAG(operation, outcome, time.Since(start))
	}
}

func (p *Pipeline) retrieve(ctx context.Context, query string, k int, filter func(Document) bool) ([]Hit, error) {
	vector, err := p.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	return p.index.Search(vector, k, filter)
}

// GenerateSchedule asks the model for a plan grounded on retrieved catalog
// text. Anything short of a strictly valid answer yields the assembled plan.
func (p *Pipeline) GenerateSchedule(ctx context.Context, req planner.Request) (*planner.Plan, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	major, ok := p.cat.Majors.Get(req.Major)
	if !ok {
		return nil, planner.ErrMajorNotFound
	}

	if !p.ready() {
		return planner.Assemble(p.cat, req)
	}

	start := time.Now()
	plan, err := p.generateSchedule(ctx, req, major)
	if err != nil {
		p.observe("schedule", "fallback", start)
		p.log.Warn().Err(err).Str("major", req.Major).Msg("RAG schedule failed, using assembled plan")
		return planner.Assemble(p.cat, req)
	}
	p.observe("schedule", "ok", start)
	return plan, nil
}

func (p *Pipeline) generateSchedule(ctx context.Context, req planner.Request, major catalog.Major) (*planner.Plan, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	vars := scheduleVars{
		Major:              req.Major,
		GraduationSemester: string(req.GraduationSemester),
		GraduationYear:     req.GraduationYear,
		CurrentYear:        req.CurrentYear,
		Completed:          req.CompletedCourses,
		Preferences:        req.Preferences,
	}

	query, err := render(scheduleQueryTmpl, vars)
	if err != nil {
		return nil, err
	}
	hits, err := p.retrieve(ctx, query, p.opts.RetrievalK, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieval: %w", err)
	}
	vars.Context = formatContext(hitDocuments(hits))

	system, err := render(scheduleSystemTmpl, vars)
	if err != nil {
		return nil, err
	}
	prompt, err := render(schedulePromptTmpl, vars)
	if err != nil {
		return nil, err
	}

	raw, err := p.generator.GenerateJSON(ctx, system, prompt, scheduleSchema())
	if err != nil {
		return nil, fmt.Errorf("generation: %w", err)
	}
	return parseSchedule(raw, req, major)
}

// SuggestionRequest asks for courses to add to one semester
type SuggestionRequest struct {
	Major          string
	Term           catalog.Term
	Year           int
	CurrentCourses []string
}

// SuggestCourses asks the model for additional courses for a semester. It
// never fails; problems surface as an empty list with an advisory.
func (p *Pipeline) SuggestCourses(ctx context.Context, req SuggestionRequest) Suggestions {
	if !p.ready() {
		return Suggestions{Suggestions: []Suggestion{}, Advice: AdviceUnavailable}
	}

	start := time.Now()
	out, err := p.suggestCourses(ctx, req)
	if err != nil {
		p.observe("suggestions", "fallback", start)
		p.log.Warn().Err(err).Str("major", req.Major).Msg("RAG suggestions failed")
		return Suggestions{Suggestions: []Suggestion{}, Advice: AdviceFailed}
	}
	p.observe("suggestions", "ok", start)
	return out
}

func (p *Pipeline) suggestCourses(ctx context.Context, req SuggestionRequest) (Suggestions, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	term := req.Term
	if term == "" {
		term = catalog.TermFall
	}
	vars := suggestionVars{
		Major:   req.Major,
		Term:    string(term),
		Year:    req.Year,
		Current: req.CurrentCourses,
	}

	query, err := render(suggestionQueryTmpl, vars)
	if err != nil {
		return Suggestions{}, err
	}
	hits, err := p.retrieve(ctx, query, p.opts.RetrievalK, nil)
	if err != nil {
		return Suggestions{}, fmt.Errorf("retrieval: %w", err)
	}
	vars.Context = formatContext(hitDocuments(hits))

	system, err := render(suggestionSystemTmpl, vars)
	if err != nil {
		return Suggestions{}, err
	}
	prompt, err := render(suggestionPromptTmpl, vars)
	if err != nil {
		return Suggestions{}, err
	}

	raw, err := p.generator.GenerateJSON(ctx, system, prompt, suggestionsSchema())
	if err != nil {
		return Suggestions{}, fmt.Errorf("generation: %w", err)
	}
	return parseSuggestions(raw)
}

// CourseHit is a semantic search result
type CourseHit struct {
	Code       string  `json:"code"`
	Subject    string  `json:"subject"`
	Number     string  `json:"number"`
	Department string  `json:"department"`
	Units      int     `json:"units"`
	Terms      string  `json:"terms"`
	Score      float64 `json:"score"`
}

// SearchCourses ranks course documents by similarity to query. It returns an
// empty list when the pipeline is not ready or the lookup fails.
func (p *Pipeline) SearchCourses(ctx context.Context, query string, limit int) []CourseHit {
	results := []CourseHit{}
	if !p.ready() || query == "" {
		return results
	}
	if limit <= 0 {
		limit = catalog.DefaultSearchLimit
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	hits, err := p.retrieve(ctx, query, limit, func(d Document) bool { return d.Kind == KindCourse })
	if err != nil {
		p.observe("search", "error", start)
		if !errors.Is(err, context.Canceled) {
			p.log.Warn().Err(err).Str("query", query).Msg("semantic course search failed")
		}
		return results
	}
	p.observe("search", "ok", start)

	for _, h := range hits {
		m := h.Document.Metadata
		units, _ := strconv.Atoi(m["units"])
		results = append(results, CourseHit{
			Code:       m["course_code"],
			Subject:    m["subject"],
			Number:     m["number"],
			Department: m["department"],
			Units:      units,
			Terms:      m["terms"],
			Score:      h.Score,
		})
	}
	return results
}

func hitDocuments(hits []Hit) []Document {
	docs := make([]Document, len(hits))
	for i, h := range hits {
		docs[i] = h.Document
	}
	return docs
}
