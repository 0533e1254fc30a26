package records

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/migratio/contentcatalog/internal/util/sets"
)

// DefaultAssetRoot is the path prefix under which hero assets are served.
const DefaultAssetRoot = "/images"

// Normalizer converts raw frontmatter field maps into typed records.
//
// Normalization is a fixed point: feeding a normalized record's own fields
// back through produces an identical record.
type Normalizer struct {
	assetRoot string
}

// NewNormalizer returns a Normalizer rooting asset references at assetRoot
// (DefaultAssetRoot when empty).
func NewNormalizer(assetRoot string) Normalizer {
	if assetRoot == "" {
		assetRoot = DefaultAssetRoot
	}
	return Normalizer{assetRoot: strings.TrimSuffix(assetRoot, "/")}
}

// Country normalizes a raw country frontmatter map. The slug and category
// come from directory context and fill any fields the author omitted.
func (n Normalizer) Country(raw map[string]any, slug, category string) CountryRecord {
	if raw == nil {
		raw = map[string]any{}
	}
	countrySlug := firstString(raw, "slug")
	if countrySlug == "" {
		countrySlug = slug
	}

	rec := CountryRecord{
		Title:       asString(raw["title"]),
		Country:     asString(raw["country"]),
		CountrySlug: countrySlug,
		Category:    asString(raw["category"]),
		Summary:     asString(raw["summary"]),
		Tagline:     asString(raw["tagline"]),
		Tags:        dedupeTags(asStringList(raw["tags"])),
		SEO:         n.seo(raw["seo"]),
		Draft:       asBool(raw["draft"]),
		LastUpdated: asTime(raw["lastUpdated"]),
	}
	if rec.Category == "" {
		rec.Category = category
	}
	if rec.Title == "" {
		rec.Title = TitleFromSlug(countrySlug)
	}
	if rec.Country == "" {
		rec.Country = TitleFromSlug(countrySlug)
	}
	rec.HeroImage = n.assetPath(raw["heroImage"], countrySlug+"-hero.jpg")
	rec.HeroPoster = n.assetPath(raw["heroPoster"], countrySlug+"-hero-poster.jpg")
	rec.HeroVideo = n.optionalAssetPath(raw["heroVideo"])
	return rec
}

// Program normalizes a raw program frontmatter map. countrySlug and
// programSlug come from file-position context.
func (n Normalizer) Program(raw map[string]any, countrySlug, programSlug, category string) ProgramRecord {
	if raw == nil {
		raw = map[string]any{}
	}
	cSlug := firstString(raw, "countrySlug")
	if cSlug == "" {
		cSlug = countrySlug
	}
	pSlug := firstString(raw, "slug")
	if pSlug == "" {
		pSlug = programSlug
	}

	rec := ProgramRecord{
		Title:       asString(raw["title"]),
		Country:     asString(raw["country"]),
		CountrySlug: cSlug,
		ProgramSlug: pSlug,
		Category:    asString(raw["category"]),
		Route:       asString(raw["route"]),
		Summary:     asString(raw["summary"]),
		Tagline:     asString(raw["tagline"]),
		Tags:        dedupeTags(asStringList(raw["tags"])),
		SEO:         n.seo(raw["seo"]),
		Draft:       asBool(raw["draft"]),
		LastUpdated: asTime(raw["lastUpdated"]),

		MinInvestment:  asNumber(raw["minInvestment"]),
		TimelineMonths: asNumber(raw["timelineMonths"]),
		Currency:       strings.ToUpper(asString(raw["currency"])),

		Benefits:       asStringList(raw["benefits"]),
		Requirements:   asStringList(raw["requirements"]),
		Disqualifiers:  asStringList(raw["disqualifiers"]),
		Prices:         asPriceRows(raw["prices"]),
		ProofOfFunds:   asPriceRows(raw["proofOfFunds"]),
		GovernmentFees: asPriceRows(raw["governmentFees"]),
	}
	if rec.Category == "" {
		rec.Category = category
	}
	if rec.Title == "" {
		rec.Title = TitleFromSlug(pSlug)
	}
	if rec.Country == "" {
		rec.Country = TitleFromSlug(cSlug)
	}
	rec.HeroImage = n.assetPath(raw["heroImage"], pSlug+"-hero.jpg")
	rec.HeroPoster = n.assetPath(raw["heroPoster"], pSlug+"-hero-poster.jpg")
	rec.HeroVideo = n.optionalAssetPath(raw["heroVideo"])

	if m := asMap(raw["familyEligibility"]); m != nil {
		rec.Family = &FamilyEligibility{
			Spouse:      asBool(m["spouse"]),
			Children:    asBool(m["children"]),
			Parents:     asBool(m["parents"]),
			Siblings:    asBool(m["siblings"]),
			MaxChildAge: asNumber(m["maxChildAge"]),
			Notes:       asString(m["notes"]),
		}
	}
	if m := asMap(raw["quickCheck"]); m != nil {
		rec.QuickCheck = &QuickCheck{
			Enabled:   asBool(m["enabled"]),
			Questions: asStringList(m["questions"]),
		}
	}
	if m := asMap(raw["costEstimator"]); m != nil {
		rec.CostEstimator = &CostEstimator{
			Enabled:      asBool(m["enabled"]),
			BaseAmount:   asNumber(m["baseAmount"]),
			PerDependent: asNumber(m["perDependent"]),
			Currency:     strings.ToUpper(asString(m["currency"])),
		}
	}
	return rec
}

// TitleFromSlug derives a display title from a slug: hyphens become spaces
// and each token is capitalized ("golden-visa" -> "Golden Visa").
func TitleFromSlug(slug string) string {
	if slug == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

func (n Normalizer) seo(v any) SEO {
	m := asMap(v)
	if m == nil {
		return SEO{}
	}
	return SEO{
		Title:       asString(m["title"]),
		Description: asString(m["description"]),
		Keywords:    asStringList(m["keywords"]),
	}
}

// assetPath normalizes an asset reference to an absolute or fully-qualified
// path. Empty input gets the deterministic fallback so every record carries
// a renderable image reference.
func (n Normalizer) assetPath(v any, fallbackName string) string {
	s := asString(v)
	if s == "" {
		return n.assetRoot + "/" + fallbackName
	}
	return n.qualify(s)
}

// optionalAssetPath normalizes like assetPath but leaves empty input empty
// (videos have no meaningful fallback).
func (n Normalizer) optionalAssetPath(v any) string {
	s := asString(v)
	if s == "" {
		return ""
	}
	return n.qualify(s)
}

func (n Normalizer) qualify(s string) string {
	if strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") {
		return s
	}
	return n.assetRoot + "/" + s
}

func dedupeTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	seen := sets.New[string]()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen.Has(tag) {
			continue
		}
		seen.Add(tag)
		out = append(out, tag)
	}
	return out
}
