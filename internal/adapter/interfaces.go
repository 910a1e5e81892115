// Package adapter implements the outbound HTTP integrations of the
// application: the MediaWiki query API that provides page summaries and
// the DBpedia Spotlight service that links free text to entities.
//
// Adapters are constructed once at startup from [config.Upstream] and are
// safe for concurrent use. All round-trips honour the request context and
// retry transport failures up to the configured retry count before
// reporting [ErrUnreachable].
package adapter

import (
	"context"

	"github.com/jankohoener/asknow/models"
)

// EntityLinker extracts encyclopedia entity titles from free text using a
// confidence-thresholded third-party annotation service.
type EntityLinker interface {
	// Annotate returns the titles of all entities found in text, derived
	// from the trailing path segment of each returned resource URI. An
	// empty result with a nil error means the service found nothing.
	Annotate(ctx context.Context, text string) ([]string, error)
}

// SummaryFetcher retrieves summary records for a batch of entity titles.
type SummaryFetcher interface {
	// QuerySummaries resolves the given titles to summary records,
	// following the API's continuation tokens until it signals batch
	// completion. Results are ordered by title so repeated calls against
	// the same upstream snapshot are byte-identical.
	//
	// When the pagination bound trips before completion the collected
	// summaries are returned together with [ErrPaginationLimit].
	QuerySummaries(ctx context.Context, titles []string) ([]models.Summary, error)
}
