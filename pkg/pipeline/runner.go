package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/form"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so caching behaves the same everywhere.
//
// The Runner holds no results between calls. Multiple goroutines can use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout and render for f with caching.
func (r *Runner) Execute(ctx context.Context, f *form.Form, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}
	if hash, err := FormHash(f); err == nil {
		result.FormHash = hash
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	fr, layoutHit, err := r.LayoutWithCacheInfo(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Frame = fr
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Components = len(fr.Elements)
	result.Stats.Rows = len(fr.Rows)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"size", fmt.Sprintf("%dx%d", fr.Width, fr.Height),
		"rows", len(fr.Rows),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, fr, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// FormHash returns the content hash of a form, taken over its canonical JSON
// encoding so TOML and JSON sources of the same form share cache entries.
func FormHash(f *form.Form) (string, error) {
	data, err := form.Marshal(f, form.FormatJSON)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// LayoutWithCacheInfo computes the frame for f with caching and reports
// whether it came from the cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, f *form.Form, opts Options) (fr *frame.Frame, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}

	hooks := observability.Layout()
	start := time.Now()
	hooks.OnLayoutStart(ctx, f.Title, f.Count())
	defer func() {
		rows := 0
		if fr != nil {
			rows = len(fr.Rows)
		}
		hooks.OnLayoutComplete(ctx, f.Title, rows, time.Since(start), err)
	}()

	formHash, err := FormHash(f)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.LayoutKey(formHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, ok := r.lookup(ctx, "layout", cacheKey); ok {
			if cached, err := frame.Unmarshal(data); err == nil {
				return cached, true, nil
			}
			// Undecodable entries are recomputed and overwritten.
		}
	}

	fr, err = ComputeLayout(f, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := frame.Marshal(fr); err == nil {
		r.store(ctx, "layout", cacheKey, data, cache.TTLLayout)
	}
	return fr, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Layout(ctx context.Context, f *form.Form, opts Options) (*frame.Frame, error) {
	fr, _, err := r.LayoutWithCacheInfo(ctx, f, opts)
	return fr, err
}

// RenderWithCacheInfo exports fr with caching and reports whether every
// artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, fr *frame.Frame, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if err := opts.ValidateCanvas(fr); err != nil {
		return nil, false, err
	}

	hooks := observability.Layout()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	frameData, err := frame.Marshal(fr)
	if err != nil {
		return nil, false, fmt.Errorf("serialize frame for cache key: %w", err)
	}
	frameHash := cache.Hash(frameData)

	if !opts.Refresh {
		artifacts = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.lookup(ctx, "artifact", r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format)))
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	artifacts, err = RenderFrame(fr, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range artifacts {
		r.store(ctx, "artifact", r.Keyer.ArtifactKey(frameHash, opts.ArtifactKeyOpts(format)), data, cache.TTLArtifact)
	}
	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, fr *frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, fr, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads a cache entry. Backend errors count as misses and are logged.
func (r *Runner) lookup(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "err", err)
	}
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) store(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
