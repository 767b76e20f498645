package wikipedia

import (
	"context"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Article is the intermediate shape cached by the search core: the best
// matching non-disambiguation article for a query.
type Article struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Summary       string `json:"summary"`
	FeaturedImage string `json:"featured_image,omitempty"`
}

// Detail selects how much of the article is returned
type Detail string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DetailConcise  Detail = "concise"
	DetailDetailed Detail = "detailed"
)

// How many search hits to try before giving up on a non-disambiguation
// article
const searchLimit = 3

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ArticleFetcher returns an adapter producing at most one article for a
// query: the first search hit whose summary is not a disambiguation page.
// With the detailed level the full introduction section replaces the REST
// summary extract when it can be fetched.
func (c *Client) ArticleFetcher(detail Detail) searchtool.Fetcher[Article] {
	return func(ctx context.Context, query string, count int) ([]Article, error) {
		hits, err := c.Search(ctx, query, searchLimit)
		if err != nil {
			return nil, err
		}

		summary := c.bestSummary(ctx, hits)
		if summary == nil {
			return nil, nil
		}

		extract := summary.Extract
		if detail == DetailDetailed {
			if intro, err := c.GetIntro(ctx, summary.Title); err == nil && intro != "" {
				extract = intro
			}
		}

		article := Article{
			Title:   summary.Title,
			URL:     summary.ContentUrls.Desktop.Page,
			Summary: extract,
		}
		if summary.Thumbnail != nil {
			article.FeaturedImage = summary.Thumbnail.Source
		}
		return []Article{article}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// bestSummary returns the first search hit which resolves to an actual
// article. Summary fetch failures skip to the next hit.
func (c *Client) bestSummary(ctx context.Context, hits []SearchResult) *Summary {
	for _, hit := range hits {
		summary, err := c.GetSummary(ctx, hit.Title)
		if err != nil {
			continue
		}
		if summary.Type == "disambiguation" {
			continue
		}
		return summary
	}
	return nil
}
