package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogError_ErrorString(t *testing.T) {
	e := New(CategoryCompile, SeverityFatal, "section compilation failed")
	require.Equal(t, "compile (fatal): section compilation failed", e.Error())

	wrapped := Wrap(errors.New("boom"), CategoryFileSystem, SeverityError, "read failed")
	require.Equal(t, "filesystem (error): read failed: boom", wrapped.Error())
}

func TestCatalogError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	e := Wrap(cause, CategoryInternal, SeverityFatal, "wrapped")
	require.ErrorIs(t, e, cause)
}

func TestIsNotFound(t *testing.T) {
	nf := DocumentNotFound(KindProgram, "skilled", "malta", "golden-visa", "/content/skilled/malta/golden-visa.md")
	require.True(t, IsNotFound(nf))
	require.True(t, IsNotFound(fmt.Errorf("fetch: %w", nf)))
	require.False(t, IsNotFound(errors.New("plain")))
	require.False(t, IsNotFound(New(CategoryCompile, SeverityFatal, "x")))
	require.False(t, IsNotFound(nil))
}

func TestDocumentNotFound_CarriesContext(t *testing.T) {
	e := DocumentNotFound(KindCountry, "corporate", "fiji", "", "/content/corporate/fiji/_country.md")
	require.Equal(t, "country", e.Context["kind"])
	require.Equal(t, "corporate", e.Context["category"])
	require.Equal(t, "fiji", e.Context["country"])
	require.Equal(t, "/content/corporate/fiji/_country.md", e.Context["path"])
	_, hasProgram := e.Context["program"]
	require.False(t, hasProgram)
}

func TestSectionCompileFailed_CarriesIdentity(t *testing.T) {
	cause := errors.New("bad directive")
	e := SectionCompileFailed("skilled/malta/golden-visa", "benefits", cause)
	require.Equal(t, CategoryCompile, e.Category)
	require.Equal(t, "skilled/malta/golden-visa", e.Context["document"])
	require.Equal(t, "benefits", e.Context["section"])
	require.ErrorIs(t, e, cause)
}

func TestCategoryOf(t *testing.T) {
	require.Equal(t, CategoryMetadata, CategoryOf(FrontmatterInvalid("/x", errors.New("y"))))
	require.Equal(t, CategoryInternal, CategoryOf(errors.New("plain")))
}
