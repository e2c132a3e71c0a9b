package reconcile

import (
	"bytes"
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// DefaultConcurrency is the number of parallel fetches used when none is configured.
const DefaultConcurrency = 4

// Engine reconciles incoming gallery batches against persisted ones.
type Engine struct {
	fetcher     *Fetcher
	loader      ContentLoader
	logger      *zap.Logger
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithConcurrency sets the maximum number of parallel fetches.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine. fetcher resolves unfetched references and
// loader reads the bytes of existing entries during comparison.
func NewEngine(fetcher *Fetcher, loader ContentLoader, opts ...Option) *Engine {
	e := &Engine{
		fetcher:     fetcher,
		loader:      loader,
		logger:      zap.NewNop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile runs the three phases over req and returns the finalized batch.
// Any fetch or existing-content failure aborts the whole call; no partial
// result is returned.
func (e *Engine) Reconcile(ctx context.Context, req Request) (*Result, error) {
	rec := &recorder{
		result: Result{
			RunID:       uuid.NewString(),
			Diagnostics: []Diagnostic{},
		},
	}
	rec.logger = e.logger.With(zap.String("run_id", rec.result.RunID))
	rec.result.Summary.Incoming = len(req.Incoming)

	entries := cloneEntries(req.Incoming)

	// Phase A: content materialization
	if req.Flags.MediaFetchEnabled() {
		if err := e.materialize(ctx, entries, req.Flags.Policy(), rec); err != nil {
			rec.logger.Error("Content materialization failed", zap.Error(err))
			return nil, err
		}
	}

	// Phase B: dedup against the existing batch
	if req.Flags.SkipUnchangedEnabled() && len(req.Existing) > 0 {
		kept, err := e.dedup(ctx, entries, req.Existing, rec)
		if err != nil {
			rec.logger.Error("Deduplication failed", zap.Error(err))
			return nil, err
		}
		entries = kept
	}

	// Phase C
	rec.result.Entries = entries
	s := rec.result.Summary
	rec.logger.Info("Gallery reconciled",
		zap.Int("incoming", s.Incoming),
		zap.Int("result", len(entries)),
		zap.Int("fetched", s.Fetched),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("overrides", s.Overrides),
		zap.Int("warnings", s.Warnings),
	)
	return &rec.result, nil
}

// materialize fetches content for entries that only carry a reference.
// Fetches run concurrently; results are applied in input order.
func (e *Engine) materialize(ctx context.Context, entries []GalleryEntry, policy Policy, rec *recorder) error {
	if e.fetcher == nil {
		return nil
	}

	resolutions := make([]*Resolution, len(entries))
	p := pool.New().WithMaxGoroutines(e.concurrency).WithContext(ctx).WithCancelOnError().WithFirstError()

	for i := range entries {
		if entries[i].HasContent() || strings.TrimSpace(entries[i].File) == "" {
			continue
		}
		i := i
		ref := entries[i].File
		p.Go(func(ctx context.Context) error {
			res, err := e.fetcher.Resolve(ctx, ref, policy)
			if err != nil {
				return err
			}
			resolutions[i] = &res
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	for pos, res := range resolutions {
		if res == nil {
			continue
		}
		entry := &entries[pos]
		switch res.Kind {
		case ResolutionPassThrough:
			rec.add(Diagnostic{Kind: KindPassThrough, Position: pos, ID: entry.ID, File: entry.File})
			rec.result.Summary.PassThrough++
		case ResolutionFetched:
			content := res.Content()
			if content == nil {
				rec.add(Diagnostic{Kind: KindUnresolvable, Position: pos, ID: entry.ID, File: entry.File})
				rec.result.Summary.Unresolvable++
				entry.Content = nil
				entry.File = ""
				continue
			}
			entry.Content = content
			rec.result.Summary.Fetched++
		}
	}
	return nil
}

// dedup drops in-batch duplicates and strips content that is already stored.
// It is strictly sequential: which entry claims an existing id depends on
// the entries before it.
func (e *Engine) dedup(ctx context.Context, entries []GalleryEntry, existing []ExistingEntry, rec *recorder) ([]GalleryEntry, error) {
	cache := NewContentCache(e.loader)

	existingByID := make(map[int64]ExistingEntry, len(existing))
	for _, ex := range existing {
		if _, ok := existingByID[ex.ID]; !ok {
			existingByID[ex.ID] = ex
		}
	}

	// First explicit claim of an id wins.
	claims := make(map[int64]int)
	for pos, entry := range entries {
		if entry.ID == 0 {
			continue
		}
		if _, ok := claims[entry.ID]; !ok {
			claims[entry.ID] = pos
		}
	}

	kept := make([]GalleryEntry, 0, len(entries))
	for pos, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.HasContent() {
			kept = append(kept, entry)
			continue
		}

		if entry.ID != 0 {
			if _, ok := existingByID[entry.ID]; !ok {
				rec.add(Diagnostic{Kind: KindWarning, Position: pos, ID: entry.ID, File: entry.File})
				rec.result.Summary.Warnings++
			}
		}

		data, err := entry.Content.Bytes()
		if err != nil {
			return nil, &FetchError{Kind: KindReadError, Ref: entryRef(entry), Detail: "invalid base64 payload", Err: err}
		}
		if len(data) == 0 {
			kept = append(kept, entry)
			continue
		}

		matchID, found, err := e.match(ctx, cache, entry, data, existing, existingByID)
		if err != nil {
			return nil, err
		}

		if !found {
			rec.add(Diagnostic{Kind: KindOverride, Position: pos, ID: entry.ID, File: entry.File})
			rec.result.Summary.Overrides++
			kept = append(kept, entry)
			continue
		}

		if claimPos, claimed := claims[matchID]; claimed && claimPos != pos {
			rec.add(Diagnostic{Kind: KindDuplicate, Position: pos, ID: entry.ID, MatchID: matchID, File: entry.File})
			rec.result.Summary.Duplicates++
			continue
		}

		// An unchanged match claims the id so later entries with the same
		// bytes are dropped as duplicates.
		claims[matchID] = pos
		entry.Content = nil
		entry.File = existingByID[matchID].File
		entry.ID = matchID
		rec.add(Diagnostic{Kind: KindUnchanged, Position: pos, ID: entry.ID, MatchID: matchID, File: entry.File})
		rec.result.Summary.Unchanged++
		kept = append(kept, entry)
	}

	return kept, nil
}

// match finds the existing entry holding the same bytes as data. An entry
// with an id is compared only against that id; an entry without one is
// compared against every existing entry, first match in existing order.
func (e *Engine) match(ctx context.Context, cache *ContentCache, entry GalleryEntry, data []byte, existing []ExistingEntry, existingByID map[int64]ExistingEntry) (int64, bool, error) {
	if entry.ID != 0 {
		ex, ok := existingByID[entry.ID]
		if !ok {
			return 0, false, nil
		}
		existingData, err := cache.Load(ctx, ex)
		if err != nil {
			return 0, false, err
		}
		return ex.ID, bytes.Equal(existingData, data), nil
	}

	for _, ex := range existing {
		existingData, err := cache.Load(ctx, ex)
		if err != nil {
			return 0, false, err
		}
		if bytes.Equal(existingData, data) {
			return ex.ID, true, nil
		}
	}
	return 0, false, nil
}

// recorder accumulates diagnostics and mirrors them to the log.
type recorder struct {
	result Result
	logger *zap.Logger
}

func (r *recorder) add(d Diagnostic) {
	r.result.Diagnostics = append(r.result.Diagnostics, d)

	fields := []zap.Field{
		zap.String("kind", string(d.Kind)),
		zap.Int("position", d.Position),
		zap.Int64("id", d.ID),
		zap.String("file", d.File),
	}
	if d.MatchID != 0 {
		fields = append(fields, zap.Int64("match_id", d.MatchID))
	}
	if d.Kind == KindWarning || d.Kind == KindUnresolvable {
		r.logger.Warn(d.String(), fields...)
		return
	}
	r.logger.Debug(d.String(), fields...)
}

func entryRef(entry GalleryEntry) string {
	if entry.File != "" {
		return entry.File
	}
	if entry.Content != nil && entry.Content.Name != "" {
		return entry.Content.Name
	}
	return "inline content"
}

// cloneEntries copies the batch so the caller's entries are never mutated.
func cloneEntries(in []GalleryEntry) []GalleryEntry {
	out := make([]GalleryEntry, len(in))
	for i, entry := range in {
		if entry.Content != nil {
			c := *entry.Content
			entry.Content = &c
		}
		if entry.Types != nil {
			entry.Types = append([]string(nil), entry.Types...)
		}
		out[i] = entry
	}
	return out
}
