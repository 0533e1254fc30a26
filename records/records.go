// Package records defines the typed content records backing the catalog and
// the normalization pipeline that produces them from raw frontmatter.
//
// Frontmatter arrives as a loosely-typed field map (authors hand-edit YAML,
// so any field can carry the wrong shape). Normalization coerces every field
// into the strict record types below; the loose map never escapes this
// package.
package records

import "time"

// SEO holds per-document search metadata.
type SEO struct {
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
}

// CountryRecord is the normalized form of a country document's frontmatter.
type CountryRecord struct {
	Title       string    `yaml:"title"`
	Country     string    `yaml:"country"`
	CountrySlug string    `yaml:"slug"`
	Category    string    `yaml:"category"`
	Summary     string    `yaml:"summary,omitempty"`
	Tagline     string    `yaml:"tagline,omitempty"`
	HeroImage   string    `yaml:"heroImage"`
	HeroPoster  string    `yaml:"heroPoster"`
	HeroVideo   string    `yaml:"heroVideo,omitempty"`
	Tags        []string  `yaml:"tags,omitempty"`
	SEO         SEO       `yaml:"seo,omitempty"`
	Draft       bool      `yaml:"draft"`
	LastUpdated time.Time `yaml:"lastUpdated,omitempty"`
}

// PriceRow is one row of a cost table (prices, proof-of-funds,
// government fees).
type PriceRow struct {
	Label    string   `yaml:"label"`
	Amount   *float64 `yaml:"amount,omitempty"`
	Currency string   `yaml:"currency,omitempty"`
	Note     string   `yaml:"note,omitempty"`
}

// FamilyEligibility describes which family members a program covers.
type FamilyEligibility struct {
	Spouse      bool     `yaml:"spouse"`
	Children    bool     `yaml:"children"`
	Parents     bool     `yaml:"parents"`
	Siblings    bool     `yaml:"siblings"`
	MaxChildAge *float64 `yaml:"maxChildAge,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`
}

// QuickCheck configures the quick-eligibility-check widget for a program.
type QuickCheck struct {
	Enabled   bool     `yaml:"enabled"`
	Questions []string `yaml:"questions,omitempty"`
}

// CostEstimator configures the cost-estimator widget for a program.
type CostEstimator struct {
	Enabled      bool     `yaml:"enabled"`
	BaseAmount   *float64 `yaml:"baseAmount,omitempty"`
	PerDependent *float64 `yaml:"perDependent,omitempty"`
	Currency     string   `yaml:"currency,omitempty"`
}

// ProgramRecord is the normalized form of a program document's frontmatter.
//
// Numeric fields are either a finite number or nil, never NaN and never a
// junk zero.
type ProgramRecord struct {
	Title       string    `yaml:"title"`
	Country     string    `yaml:"country"`
	CountrySlug string    `yaml:"countrySlug"`
	ProgramSlug string    `yaml:"slug"`
	Category    string    `yaml:"category"`
	Route       string    `yaml:"route,omitempty"`
	Summary     string    `yaml:"summary,omitempty"`
	Tagline     string    `yaml:"tagline,omitempty"`
	HeroImage   string    `yaml:"heroImage"`
	HeroPoster  string    `yaml:"heroPoster"`
	HeroVideo   string    `yaml:"heroVideo,omitempty"`
	Tags        []string  `yaml:"tags,omitempty"`
	SEO         SEO       `yaml:"seo,omitempty"`
	Draft       bool      `yaml:"draft"`
	LastUpdated time.Time `yaml:"lastUpdated,omitempty"`

	MinInvestment  *float64 `yaml:"minInvestment,omitempty"`
	TimelineMonths *float64 `yaml:"timelineMonths,omitempty"`
	Currency       string   `yaml:"currency,omitempty"`

	Benefits       []string   `yaml:"benefits,omitempty"`
	Requirements   []string   `yaml:"requirements,omitempty"`
	Disqualifiers  []string   `yaml:"disqualifiers,omitempty"`
	Prices         []PriceRow `yaml:"prices,omitempty"`
	ProofOfFunds   []PriceRow `yaml:"proofOfFunds,omitempty"`
	GovernmentFees []PriceRow `yaml:"governmentFees,omitempty"`

	Family        *FamilyEligibility `yaml:"familyEligibility,omitempty"`
	QuickCheck    *QuickCheck        `yaml:"quickCheck,omitempty"`
	CostEstimator *CostEstimator     `yaml:"costEstimator,omitempty"`
}
