// Package config loads the Concord client engine's configuration, the
// ambient counterpart to the teacher's models.ConfigFile / main.readConfigFile.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// File is the on-disk shape of the engine's configuration, decoded with
// encoding/json exactly as the teacher's main.readConfigFile does.
type File struct {
	Address  string `json:"address"`
	UseTLS   bool   `json:"useTls"`
	LogLevel string `json:"logLevel"`
	LogToFile bool  `json:"logToFile"`

	ReconnectMinBackoff Duration `json:"reconnectMinBackoff"`
	ReconnectMaxBackoff Duration `json:"reconnectMaxBackoff"`
	HeartbeatInterval   Duration `json:"heartbeatInterval"`

	// SelfContained mirrors internal/keyValue's selfContained flag: when
	// true, server-folder persistence lives in an embedded sqlite file;
	// when false, it lives in the RedisAddr instance instead.
	SelfContained bool   `json:"selfContained"`
	RedisAddr     string `json:"redisAddr,omitempty"`
	RedisPassword string `json:"redisPassword,omitempty"`
	RedisDB       int    `json:"redisDb,omitempty"`
	SqlitePath    string `json:"sqlitePath,omitempty"`
}

// Duration unmarshals from a Go duration string ("5s", "1m") instead of a
// raw integer, so config files stay human-editable.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Value() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no config file is present.
func Default() File {
	return File{
		Address:             "localhost:8080",
		LogLevel:            "info",
		ReconnectMinBackoff: Duration(time.Second),
		ReconnectMaxBackoff: Duration(30 * time.Second),
		HeartbeatInterval:   Duration(30 * time.Second),
		SelfContained:       true,
		SqlitePath:          "concord-client.db",
	}
}

// Load reads and decodes a config file at path, falling back to Default()
// entirely when the file does not exist (the teacher's readConfigFile
// instead hard-fails; the CSE is a library embedded in a larger process
// and must tolerate running config-less).
func Load(path string) (File, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
