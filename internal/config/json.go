package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] wrapper so that config files can write
// durations as "30s" or "24h".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			Dialect string `json:"dialect"`
			DSN     string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Upstream struct {
		WikipediaURL string   `json:"wikipedia_url"`
		SpotlightURL string   `json:"spotlight_url"`
		Confidence   float64  `json:"confidence"`
		RetryCount   int      `json:"retry_count"`
		MaxContinue  int      `json:"max_continue"`
		Timeout      Duration `json:"timeout"`
	} `json:"upstream,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Dialect: jsonCfg.Storage.DB.Dialect,
				DSN:     jsonCfg.Storage.DB.DSN,
			},
		},
		Upstream: Upstream{
			WikipediaURL: jsonCfg.Upstream.WikipediaURL,
			SpotlightURL: jsonCfg.Upstream.SpotlightURL,
			Confidence:   jsonCfg.Upstream.Confidence,
			RetryCount:   jsonCfg.Upstream.RetryCount,
			MaxContinue:  jsonCfg.Upstream.MaxContinue,
			Timeout:      time.Duration(jsonCfg.Upstream.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
