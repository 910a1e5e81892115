// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Janko Höner

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling in
// defaults for anything no source provided.
//
// Only the token sign key has no sane default: sessions signed with a
// well-known key would validate across deployments.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.DB.Dialect == "" {
		cfg.Storage.DB.Dialect = DefaultDialect
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.DB.Dialect != "postgres" && cfg.Storage.DB.Dialect != "sqlite" {
		return ErrUnknownDialect
	}

	if cfg.Upstream.WikipediaURL == "" {
		cfg.Upstream.WikipediaURL = DefaultWikipediaURL
	}
	if cfg.Upstream.SpotlightURL == "" {
		cfg.Upstream.SpotlightURL = DefaultSpotlightURL
	}
	if cfg.Upstream.Confidence == 0 {
		cfg.Upstream.Confidence = DefaultConfidence
	}
	if cfg.Upstream.RetryCount == 0 {
		cfg.Upstream.RetryCount = DefaultRetryCount
	}
	if cfg.Upstream.MaxContinue == 0 {
		cfg.Upstream.MaxContinue = DefaultMaxContinue
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = DefaultTimeout
	}

	return nil
}
