package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/codebyfaisal/e-store-pos/internal/flagx"
	"github.com/codebyfaisal/e-store-pos/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify timeouts either as strings like "15s" or
// as integer nanoseconds.
type JSONConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RefreshTimeout timex.Duration `json:"refresh_timeout"`
}

// parseJSON overlays Config with values loaded from a JSON file whose path is
// taken from the -c/-config flags. Missing keys leave the current value in
// place, so a partial file only overrides what it names. Panics on read or
// unmarshal errors.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.RefreshTimeout.Duration != 0 {
		cfg.RefreshTimeout = time.Duration(jc.RefreshTimeout.Duration)
	}
}
