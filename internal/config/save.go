package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sysgraph/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = "# sysgraph configuration\n# See 'sysgraph graph --help' for the meaning of each field.\n"

// Marshal renders the config as YAML with a short header comment.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}
	return buf.Bytes(), nil
}

// Save writes the config to path, creating parent directories as needed.
// An existing file is only replaced when overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config already exists: "+path,
				"Pass --force to overwrite it")
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file",
			"Check permissions on "+path)
	}
	return nil
}
