package catalog

import "context"

// SitemapURLs enumerates the flat URL set for this category root:
// "/<category>", "/<category>/<countrySlug>", and
// "/<category>/<countrySlug>/<programSlug>". Drafts are excluded; the list
// follows the catalog's listing order.
func (c *Catalog) SitemapURLs(ctx context.Context) ([]string, error) {
	entry, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	urls := []string{"/" + c.category}
	for _, country := range entry.countries {
		if country.Draft {
			continue
		}
		urls = append(urls, "/"+c.category+"/"+country.CountrySlug)
	}
	for _, program := range entry.programs {
		if program.Draft || entry.draftCountries.Has(program.CountrySlug) {
			continue
		}
		urls = append(urls, "/"+c.category+"/"+program.CountrySlug+"/"+program.ProgramSlug)
	}
	return urls, nil
}
