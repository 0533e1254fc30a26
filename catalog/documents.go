package catalog

import (
	"os"
	"path/filepath"

	cerrors "github.com/migratio/contentcatalog/errors"
	"github.com/migratio/contentcatalog/internal/frontmatter"
	"github.com/migratio/contentcatalog/records"
)

// countryDocPath resolves the reserved country document for a country slug.
func (c *Catalog) countryDocPath(countrySlug string) string {
	return filepath.Join(c.root, countrySlug, CountryDocName)
}

// programDocPath resolves a program document from its slug pair.
func (c *Catalog) programDocPath(countrySlug, programSlug string) string {
	return filepath.Join(c.root, countrySlug, programSlug+docExt)
}

// loadCountry reads, parses, and normalizes one country document, returning
// the record and the raw body.
func (c *Catalog) loadCountry(countrySlug string) (records.CountryRecord, string, error) {
	path := c.countryDocPath(countrySlug)
	fields, body, err := c.readDocument(path, cerrors.KindCountry, countrySlug, "")
	if err != nil {
		return records.CountryRecord{}, "", err
	}
	return c.norm.Country(fields, countrySlug, c.category), body, nil
}

// loadProgram reads, parses, and normalizes one program document, returning
// the record and the raw body.
func (c *Catalog) loadProgram(countrySlug, programSlug string) (records.ProgramRecord, string, error) {
	path := c.programDocPath(countrySlug, programSlug)
	fields, body, err := c.readDocument(path, cerrors.KindProgram, countrySlug, programSlug)
	if err != nil {
		return records.ProgramRecord{}, "", err
	}
	return c.norm.Program(fields, countrySlug, programSlug, c.category), body, nil
}

// readDocument reads a document file and splits its frontmatter. A missing
// file is a not-found error carrying the resolved path and document kind;
// malformed frontmatter and I/O failures keep their own categories so the
// page layer can tell 404s from internal errors.
func (c *Catalog) readDocument(path string, kind cerrors.DocumentKind, countrySlug, programSlug string) (map[string]any, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", cerrors.DocumentNotFound(kind, c.category, countrySlug, programSlug, path)
		}
		return nil, "", cerrors.ReadFailed(path, err)
	}

	fields, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, "", cerrors.FrontmatterInvalid(path, err)
	}
	return fields, string(body), nil
}

func scanFailed(root string, err error) error {
	return cerrors.ScanFailed(root, err)
}
