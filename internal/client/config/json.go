package config

import (
	"encoding/json"
	"os"

	"github.com/vpotapovs/roamer/internal/flagx"
	"github.com/vpotapovs/roamer/internal/timex"
)

// jsonConfig is a DTO used only for unmarshalling. timex.Duration lets the
// timeout be written either as "15s" or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No flag, no file, no overlay. Unset fields in the file keep their current
// values. Panics on a file that names itself but cannot be read or parsed;
// a broken config is not something to limp past.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := overlayJSON(cfg, data); err != nil {
		panic(err)
	}
}

// overlayJSON applies one JSON document on top of cfg. Unset fields keep
// their current values.
func overlayJSON(cfg *Config, data []byte) error {
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	return nil
}
