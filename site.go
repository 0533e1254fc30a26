// Package contentcatalog is the composition root for the content
// repository of an advisory marketing site.
//
// Content lives on disk as one directory tree per category (an advisory
// product line, e.g. "skilled" or "corporate"), one subdirectory per
// country, one markdown document per program. This package wires the
// pieces together:
//
//   - catalog: the staleness-cached, typed query surface over one category
//   - records: normalized country and program records
//   - sections: heading-addressed segmentation and parallel compilation
//   - watch: optional fsnotify-driven cache invalidation for development
//
// Usage:
//
//	cfg, _ := config.Load()
//	site := contentcatalog.Open(cfg, "skilled", "corporate")
//	countries, err := site.Catalog("skilled").ListCountries(ctx)
package contentcatalog

import (
	"context"
	"sort"

	"github.com/migratio/contentcatalog/catalog"
	"github.com/migratio/contentcatalog/config"
	"github.com/migratio/contentcatalog/watch"
)

// Site holds one Catalog per category, all rooted under the configured
// content directory.
type Site struct {
	cfg      config.Config
	order    []string
	catalogs map[string]*catalog.Catalog
}

// Open builds a Site with one catalog per category. Categories whose
// directories do not exist yet are still valid (they list as empty).
func Open(cfg config.Config, categories ...string) *Site {
	s := &Site{
		cfg:      cfg,
		order:    append([]string(nil), categories...),
		catalogs: make(map[string]*catalog.Catalog, len(categories)),
	}
	for _, category := range categories {
		s.catalogs[category] = catalog.NewFromConfig(cfg, category)
	}
	return s
}

// Catalog returns the catalog for category, or nil when the category was
// not opened.
func (s *Site) Catalog(category string) *catalog.Catalog {
	return s.catalogs[category]
}

// Categories returns the opened categories in their configured order.
func (s *Site) Categories() []string {
	return append([]string(nil), s.order...)
}

// SitemapURLs aggregates sitemap URLs across every category, sorted.
func (s *Site) SitemapURLs(ctx context.Context) ([]string, error) {
	var urls []string
	for _, category := range s.order {
		part, err := s.catalogs[category].SitemapURLs(ctx)
		if err != nil {
			return nil, err
		}
		urls = append(urls, part...)
	}
	sort.Strings(urls)
	return urls, nil
}

// InvalidateAll drops every category's cached state.
func (s *Site) InvalidateAll() {
	for _, c := range s.catalogs {
		c.Invalidate()
	}
}

// Watch starts an fsnotify watcher over every category root that
// invalidates the matching catalog on content changes. It blocks until ctx
// is done. Development-time convenience; the staleness check already keeps
// reads correct without it.
func (s *Site) Watch(ctx context.Context) error {
	w, err := watch.New(watch.DefaultDebounce)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	for _, category := range s.order {
		if err := w.Add(s.catalogs[category].Root(), s.catalogs[category]); err != nil {
			return err
		}
	}
	w.Run(ctx)
	return nil
}
