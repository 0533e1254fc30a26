package errors

// Convenience constructors for the catalog's recurring error shapes.

// DocumentKind identifies what kind of content document an error refers to.
type DocumentKind string

const (
	KindCountry DocumentKind = "country"
	KindProgram DocumentKind = "program"
)

// DocumentNotFound reports a required document file that does not exist on
// disk. It carries the resolved path so callers never re-derive it.
func DocumentNotFound(kind DocumentKind, category, countrySlug, programSlug, path string) *CatalogError {
	e := New(CategoryNotFound, SeverityFatal, "content document not found").
		WithContext("kind", string(kind)).
		WithContext("category", category).
		WithContext("country", countrySlug).
		WithContext("path", path)
	if programSlug != "" {
		e = e.WithContext("program", programSlug)
	}
	return e
}

// SectionCompileFailed reports a single section whose markdown compilation
// failed. Never reinterpreted as an absent section.
func SectionCompileFailed(docID, sectionKey string, cause error) *CatalogError {
	return Wrap(cause, CategoryCompile, SeverityFatal, "section compilation failed").
		WithContext("document", docID).
		WithContext("section", sectionKey)
}

// FrontmatterInvalid reports a document whose frontmatter block could not be
// parsed at all (truncated delimiter, invalid YAML).
func FrontmatterInvalid(path string, cause error) *CatalogError {
	return Wrap(cause, CategoryMetadata, SeverityFatal, "frontmatter parse failed").
		WithContext("path", path)
}

// ReadFailed reports an I/O failure on an existing document file.
func ReadFailed(path string, cause error) *CatalogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "content file read failed").
		WithContext("path", path)
}

// ScanFailed reports a directory listing failure during catalog rebuild.
func ScanFailed(root string, cause error) *CatalogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "content root scan failed").
		WithContext("root", root)
}

// ConfigInvalid reports an invalid configuration value.
func ConfigInvalid(field, reason string) *CatalogError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}
