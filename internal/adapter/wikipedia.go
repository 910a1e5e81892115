package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jankohoener/asknow/models"
)

// WikipediaConfig carries the connection settings for the MediaWiki
// action API.
type WikipediaConfig struct {
	BaseURL     string
	RetryCount  int
	MaxContinue int
	Timeout     time.Duration
}

type wikipediaClient struct {
	client      *resty.Client
	maxContinue int
}

// NewWikipediaClient returns a SummaryFetcher backed by the MediaWiki
// action API.
func NewWikipediaClient(cfg WikipediaConfig) SummaryFetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://en.wikipedia.org/w/api.php"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxContinue <= 0 {
		cfg.MaxContinue = 10
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)

	return &wikipediaClient{client: cli, maxContinue: cfg.MaxContinue}
}

type wikipediaPage struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	FullURL   string `json:"fullurl"`
	Thumbnail *struct {
		Original string `json:"original"`
	} `json:"thumbnail"`
}

type wikipediaError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type wikipediaResponse struct {
	// BatchComplete stays nil until the API signals that all requested
	// properties arrived; format=json sends it as an empty string.
	BatchComplete *string `json:"batchcomplete"`
	// Continue values mix strings and numbers, e.g. excontinue.
	Continue map[string]any  `json:"continue"`
	Error    *wikipediaError `json:"error"`
	Query    *struct {
		Pages map[string]wikipediaPage `json:"pages"`
	} `json:"query"`
}

func (w *wikipediaClient) QuerySummaries(ctx context.Context, titles []string) ([]models.Summary, error) {
	params := map[string]string{
		"action":          "query",
		"prop":            "info|pageimages|extracts",
		"titles":          strings.Join(titles, "|"),
		"inprop":          "url",
		"piprop":          "original",
		"exintro":         "true",
		"exsectionformat": "raw",
		"format":          "json",
		"indexpageids":    "true",
		"redirects":       "true",
	}

	// Page properties trickle in across continuation batches, so results
	// are merged by page id until batchcomplete shows up.
	pages := make(map[string]*models.Summary)
	for i := 0; i < w.maxContinue; i++ {
		resp, err := w.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get("")
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("%w: http %d", ErrUpstreamStatus, resp.StatusCode())
		}

		var body wikipediaResponse
		if err = json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, fmt.Errorf("decode wikipedia response: %w", err)
		}
		if body.Error != nil {
			return nil, &APIError{Info: body.Error.Info}
		}
		if body.Query != nil {
			mergePages(pages, body.Query.Pages)
		}

		if body.BatchComplete != nil {
			return sortedSummaries(pages), nil
		}
		for key, value := range body.Continue {
			params[key] = fmt.Sprint(value)
		}
	}

	return sortedSummaries(pages), ErrPaginationLimit
}

func mergePages(dst map[string]*models.Summary, src map[string]wikipediaPage) {
	for pageID, page := range src {
		summary, ok := dst[pageID]
		if !ok {
			summary = &models.Summary{}
			dst[pageID] = summary
		}
		if page.Title != "" {
			summary.Title = page.Title
		}
		if page.Extract != "" {
			summary.Abstract = page.Extract
		}
		if page.FullURL != "" {
			summary.WPLink = page.FullURL
		}
		if page.Thumbnail != nil && page.Thumbnail.Original != "" {
			summary.ImgSrc = page.Thumbnail.Original
		}
	}
}

func sortedSummaries(pages map[string]*models.Summary) []models.Summary {
	summaries := make([]models.Summary, 0, len(pages))
	for _, summary := range pages {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Title < summaries[j].Title
	})
	return summaries
}
