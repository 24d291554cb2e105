package configutil

import (
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// decodeFile unmarshals a single json5 file into out. The boolean reports
// whether the file existed. Empty files are treated as absent.
func decodeFile(path string, out any) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	return true, json5.Unmarshal(contents, out)
}

// ReadConfig reads the configuration file at `name` along with a
// `<name>.local.<ext>` sibling when one exists. Values set in the local
// file take priority over values from the base file. os.ErrNotExist is
// returned when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T

	ext := filepath.Ext(name)
	localName := name[:len(name)-len(ext)] + ".local" + ext

	found, err := decodeFile(name, &out)
	if err != nil {
		return out, err
	}

	var local T
	foundLocal, err := decodeFile(localName, &local)
	if err != nil {
		return out, err
	}
	if foundLocal {
		if err := mergo.Merge(&out, local, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localName)
	}

	if !found && !foundLocal {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory up to the filesystem
// root looking for a configuration file matching `name`, reading the first
// one it finds with ReadConfig.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	current, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		config, err := ReadConfig[T](filepath.Join(current, name))
		if err == nil {
			return config, nil
		}
		if !os.IsNotExist(err) {
			return zero, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return zero, os.ErrNotExist
		}
		current = parent
	}
}
