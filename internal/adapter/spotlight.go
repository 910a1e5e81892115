package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// SpotlightConfig carries the connection settings for the DBpedia
// Spotlight annotation endpoint.
type SpotlightConfig struct {
	BaseURL    string
	Confidence float64
	RetryCount int
	Timeout    time.Duration
}

type spotlightClient struct {
	client     *resty.Client
	confidence float64
}

// NewSpotlightClient returns an EntityLinker backed by DBpedia Spotlight.
func NewSpotlightClient(cfg SpotlightConfig) EntityLinker {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://model.dbpedia-spotlight.org/en/annotate"
	}
	if cfg.Confidence <= 0 {
		cfg.Confidence = 0.75
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)

	return &spotlightClient{client: cli, confidence: cfg.Confidence}
}

type spotlightResponse struct {
	Resources []struct {
		URI string `json:"@URI"`
	} `json:"Resources"`
}

func (s *spotlightClient) Annotate(ctx context.Context, text string) ([]string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("text", text).
		SetQueryParam("confidence", strconv.FormatFloat(s.confidence, 'f', -1, 64)).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: http %d", ErrUpstreamStatus, resp.StatusCode())
	}

	var body spotlightResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode spotlight response: %w", err)
	}

	// Entity URIs look like http://dbpedia.org/resource/Barack_Obama; the
	// last path segment doubles as a Wikipedia title.
	var titles []string
	for _, resource := range body.Resources {
		if resource.URI == "" {
			continue
		}
		titles = append(titles, path.Base(resource.URI))
	}
	return titles, nil
}
