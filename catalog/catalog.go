// Package catalog turns a tree of on-disk content documents (one directory
// per country, one file per program) into typed, queryable records with
// section-level compiled content, avoiding redundant re-parsing through a
// staleness-aware cache.
package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/migratio/contentcatalog/config"
	cerrors "github.com/migratio/contentcatalog/errors"
	"github.com/migratio/contentcatalog/internal/logfields"
	"github.com/migratio/contentcatalog/internal/staleness"
	"github.com/migratio/contentcatalog/internal/util/sets"
	"github.com/migratio/contentcatalog/metrics"
	"github.com/migratio/contentcatalog/records"
	"github.com/migratio/contentcatalog/sections"
)

// CountryDocName is the reserved file holding a country's metadata and
// overview body inside its directory.
const CountryDocName = "_country.md"

// docExt is the extension of content documents; everything else in a
// country directory is ignored.
const docExt = ".md"

// Catalog is the content repository for one category root. It exclusively
// owns the cache for that root; the check-then-rebuild sequence is
// serialized behind a mutex so concurrent readers never trigger duplicate
// rebuilds.
type Catalog struct {
	root     string // e.g. content/skilled
	category string // e.g. "skilled"

	norm           records.Normalizer
	compiler       sections.Compiler
	recorder       metrics.Recorder
	compileTimeout time.Duration

	mu    sync.Mutex
	cache *cacheEntry
}

// cacheEntry is one cache generation: the staleness stamp it was built from
// plus the derived record collections. Records are stored drafts-included;
// the listing surface filters.
type cacheEntry struct {
	stamp     time.Time
	countries []records.CountryRecord
	programs  []records.ProgramRecord

	// draftCountries holds the slugs of draft countries so aggregate views
	// can hide their programs too, not just the country entries.
	draftCountries sets.Set[string]
}

// Option configures a Catalog.
type Option func(*options)

type options struct {
	assetRoot      string
	compileWorkers int
	compileTimeout time.Duration
	recorder       metrics.Recorder
}

// WithAssetRoot sets the prefix for normalized hero asset references.
func WithAssetRoot(root string) Option {
	return func(o *options) { o.assetRoot = root }
}

// WithCompileWorkers bounds the per-document section compilation fan-out.
func WithCompileWorkers(n int) Option {
	return func(o *options) { o.compileWorkers = n }
}

// WithCompileTimeout bounds a single document's compilation fan-in.
func WithCompileTimeout(d time.Duration) Option {
	return func(o *options) { o.compileTimeout = d }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// New creates a Catalog serving the category rooted at root. The cache is
// created lazily on first query.
func New(root, category string, opts ...Option) *Catalog {
	o := options{
		compileTimeout: config.DefaultCompileTimeout,
		recorder:       metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Catalog{
		root:           root,
		category:       category,
		norm:           records.NewNormalizer(o.assetRoot),
		compiler:       sections.NewCompiler(o.compileWorkers),
		recorder:       o.recorder,
		compileTimeout: o.compileTimeout,
	}
}

// NewFromConfig creates a Catalog for category under cfg.ContentDir,
// carrying the config's asset root and compilation knobs.
func NewFromConfig(cfg config.Config, category string, opts ...Option) *Catalog {
	base := []Option{
		WithAssetRoot(cfg.AssetRoot),
		WithCompileWorkers(cfg.CompileWorkers),
		WithCompileTimeout(cfg.CompileTimeout),
	}
	return New(filepath.Join(cfg.ContentDir, category), category, append(base, opts...)...)
}

// Root returns the category root path.
func (c *Catalog) Root() string { return c.root }

// Category returns the category tag.
func (c *Catalog) Category() string { return c.category }

// Invalidate drops all cached state for the root unconditionally. Intended
// for development-time use when content changes outside normal process
// restarts.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = nil
	slog.Debug("catalog cache invalidated", logfields.Category(c.category), logfields.Root(c.root))
}

// snapshot returns the current cache generation, rebuilding it first when
// the staleness stamp has drifted. Stale generations are recomputed
// transparently; callers never observe an explicit invalid state.
func (c *Catalog) snapshot(ctx context.Context) (*cacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stamp := staleness.Stamp(c.root)
	if c.cache != nil && c.cache.stamp.Equal(stamp) {
		c.recorder.IncCacheLookup(c.category, metrics.CacheHit)
		return c.cache, nil
	}
	c.recorder.IncCacheLookup(c.category, metrics.CacheMiss)

	entry, err := c.rebuild(ctx, stamp)
	if err != nil {
		return nil, err
	}
	c.cache = entry
	c.recorder.IncCacheLookup(c.category, metrics.CacheRebuild)
	c.recorder.SetCachedCountries(c.category, len(entry.countries))
	c.recorder.SetCachedPrograms(c.category, len(entry.programs))
	return entry, nil
}

// rebuild re-scans the root and derives fresh record collections. It is a
// pure function of the file tree, so a rebuild racing an edit converges on
// the next stamp check.
func (c *Catalog) rebuild(ctx context.Context, stamp time.Time) (*cacheEntry, error) {
	started := time.Now()
	rebuildID := uuid.NewString()
	slog.Info("rebuilding catalog cache",
		logfields.Category(c.category),
		logfields.Root(c.root),
		logfields.RebuildID(rebuildID))

	entry := &cacheEntry{stamp: stamp, draftCountries: sets.New[string]()}

	dirs, err := os.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			// Absent categories are valid and simply empty.
			return entry, nil
		}
		return nil, scanFailed(c.root, err)
	}

	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !dir.IsDir() || strings.HasPrefix(dir.Name(), ".") {
			continue
		}
		slug := dir.Name()

		country, _, err := c.loadCountry(slug)
		if err != nil {
			// A directory without a readable country document is not a
			// country; keep the listing available and move on.
			slog.Warn("skipping country directory",
				logfields.Category(c.category),
				logfields.Country(slug),
				logfields.RebuildID(rebuildID),
				logfields.Error(err))
			continue
		}
		entry.countries = append(entry.countries, country)
		if country.Draft {
			entry.draftCountries.Add(slug)
		}

		programs, err := c.loadCountryPrograms(ctx, slug)
		if err != nil {
			return nil, err
		}
		entry.programs = append(entry.programs, programs...)
	}

	sortCountries(entry.countries)
	sortPrograms(entry.programs)

	slog.Info("catalog cache rebuilt",
		logfields.Category(c.category),
		logfields.RebuildID(rebuildID),
		logfields.Count(len(entry.countries)),
		logfields.DurationMS(float64(time.Since(started).Microseconds())/1000.0))
	c.recorder.ObserveRebuildDuration(c.category, time.Since(started))
	return entry, nil
}

// loadCountryPrograms reads and normalizes every program document in one
// country directory (frontmatter only, no compilation).
func (c *Catalog) loadCountryPrograms(ctx context.Context, countrySlug string) ([]records.ProgramRecord, error) {
	dir := filepath.Join(c.root, countrySlug)
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.DocumentNotFound(cerrors.KindCountry, c.category, countrySlug, "", dir)
		}
		return nil, scanFailed(dir, err)
	}

	var out []records.ProgramRecord
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slug, ok := programSlugFromFile(f)
		if !ok {
			continue
		}
		program, _, err := c.loadProgram(countrySlug, slug)
		if err != nil {
			slog.Warn("skipping unreadable program document",
				logfields.Category(c.category),
				logfields.Country(countrySlug),
				logfields.Program(slug),
				logfields.Error(err))
			continue
		}
		out = append(out, program)
	}
	return out, nil
}

// programSlugFromFile maps a directory entry to a program slug. The reserved
// country document and non-markdown files yield false.
func programSlugFromFile(f os.DirEntry) (string, bool) {
	name := f.Name()
	if f.IsDir() || name == CountryDocName ||
		!strings.HasSuffix(name, docExt) || strings.HasPrefix(name, ".") {
		return "", false
	}
	return strings.TrimSuffix(name, docExt), true
}

func sortCountries(list []records.CountryRecord) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Title != list[j].Title {
			return list[i].Title < list[j].Title
		}
		return list[i].CountrySlug < list[j].CountrySlug
	})
}

func sortPrograms(list []records.ProgramRecord) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CountrySlug != list[j].CountrySlug {
			return list[i].CountrySlug < list[j].CountrySlug
		}
		if list[i].Title != list[j].Title {
			return list[i].Title < list[j].Title
		}
		return list[i].ProgramSlug < list[j].ProgramSlug
	})
}
