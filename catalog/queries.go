package catalog

import (
	"context"
	"html/template"
	"time"

	cerrors "github.com/migratio/contentcatalog/errors"
	"github.com/migratio/contentcatalog/markdown"
	"github.com/migratio/contentcatalog/records"
	"github.com/migratio/contentcatalog/sections"
)

// Listing surface. Drafts are excluded from every listing; they remain
// reachable through the direct Get* calls so editors can preview them.

// ListCountrySlugs returns the slugs of all published countries, ordered by
// display title.
func (c *Catalog) ListCountrySlugs(ctx context.Context) ([]string, error) {
	countries, err := c.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(countries))
	for _, country := range countries {
		slugs = append(slugs, country.CountrySlug)
	}
	return slugs, nil
}

// ListCountries returns all published countries sorted by display title.
func (c *Catalog) ListCountries(ctx context.Context) ([]records.CountryRecord, error) {
	entry, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]records.CountryRecord, 0, len(entry.countries))
	for _, country := range entry.countries {
		if country.Draft {
			continue
		}
		out = append(out, country)
	}
	return out, nil
}

// ListProgramSlugs returns the published program slugs for one country in
// (country, title) order. It reads the directory directly, bypassing the
// aggregate cache: a narrower, always-fresh query.
func (c *Catalog) ListProgramSlugs(ctx context.Context, countrySlug string) ([]string, error) {
	programs, err := c.listCountryProgramsFresh(ctx, countrySlug)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(programs))
	for _, p := range programs {
		slugs = append(slugs, p.ProgramSlug)
	}
	return slugs, nil
}

// ListPrograms returns published programs sorted by (countrySlug, title).
// With an empty countrySlug it aggregates across the whole root and serves
// from the cache, hiding programs whose parent country is a draft; with a
// slug it reads that country's directory directly and only the program's own
// draft flag applies.
func (c *Catalog) ListPrograms(ctx context.Context, countrySlug string) ([]records.ProgramRecord, error) {
	if countrySlug != "" {
		return c.listCountryProgramsFresh(ctx, countrySlug)
	}

	entry, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]records.ProgramRecord, 0, len(entry.programs))
	for _, p := range entry.programs {
		if p.Draft || entry.draftCountries.Has(p.CountrySlug) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Catalog) listCountryProgramsFresh(ctx context.Context, countrySlug string) ([]records.ProgramRecord, error) {
	programs, err := c.loadCountryPrograms(ctx, countrySlug)
	if err != nil {
		return nil, err
	}
	out := programs[:0]
	for _, p := range programs {
		if p.Draft {
			continue
		}
		out = append(out, p)
	}
	sortPrograms(out)
	return out, nil
}

// Single-document surface. These read the file directly (no cache), segment
// the body, and compile. Draft documents are served.

// GetCountry returns a country's compiled overview content and record.
func (c *Catalog) GetCountry(ctx context.Context, countrySlug string) (template.HTML, records.CountryRecord, error) {
	country, body, err := c.loadCountry(countrySlug)
	if err != nil {
		return "", records.CountryRecord{}, err
	}
	overview, err := c.compileOverview(ctx, c.docID(countrySlug, ""), body)
	if err != nil {
		return "", records.CountryRecord{}, err
	}
	return overview, country, nil
}

// GetProgram returns a program's compiled overview content and record.
func (c *Catalog) GetProgram(ctx context.Context, countrySlug, programSlug string) (template.HTML, records.ProgramRecord, error) {
	program, body, err := c.loadProgram(countrySlug, programSlug)
	if err != nil {
		return "", records.ProgramRecord{}, err
	}
	overview, err := c.compileOverview(ctx, c.docID(countrySlug, programSlug), body)
	if err != nil {
		return "", records.ProgramRecord{}, err
	}
	return overview, program, nil
}

// GetProgramSections returns every compiled section of a program document,
// keyed by slugified heading, plus the record. All sections compile
// concurrently; one failed section fails the call.
func (c *Catalog) GetProgramSections(ctx context.Context, countrySlug, programSlug string) (map[string]template.HTML, records.ProgramRecord, error) {
	program, body, err := c.loadProgram(countrySlug, programSlug)
	if err != nil {
		return nil, records.ProgramRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.compileTimeout)
	defer cancel()

	started := time.Now()
	compiled, err := c.compiler.Compile(ctx, c.docID(countrySlug, programSlug), sections.SplitByHeading(body))
	c.recorder.ObserveCompileDuration(c.category, time.Since(started), err == nil)
	if err != nil {
		return nil, records.ProgramRecord{}, err
	}
	return compiled, program, nil
}

// CountryFrontmatter returns a country's record without compiling anything.
// Cheap metadata-only read for sitemaps and link builders.
func (c *Catalog) CountryFrontmatter(_ context.Context, countrySlug string) (records.CountryRecord, error) {
	country, _, err := c.loadCountry(countrySlug)
	return country, err
}

// ProgramFrontmatter returns a program's record without compiling anything.
func (c *Catalog) ProgramFrontmatter(_ context.Context, countrySlug, programSlug string) (records.ProgramRecord, error) {
	program, _, err := c.loadProgram(countrySlug, programSlug)
	return program, err
}

// compileOverview segments a body and compiles only its overview segment.
func (c *Catalog) compileOverview(_ context.Context, docID, body string) (template.HTML, error) {
	raw, _ := sections.SplitByHeading(body).Get(sections.OverviewKey)
	out, err := markdown.Compile([]byte(raw))
	if err != nil {
		return "", cerrors.SectionCompileFailed(docID, sections.OverviewKey, err)
	}
	return out, nil
}

func (c *Catalog) docID(countrySlug, programSlug string) string {
	if programSlug == "" {
		return c.category + "/" + countrySlug
	}
	return c.category + "/" + countrySlug + "/" + programSlug
}
