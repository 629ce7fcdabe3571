package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "felix.toml"

// projectConfig mirrors felix.toml. Pointer fields distinguish "absent" from zero values.
type projectConfig struct {
	Diagnostics struct {
		Max   *int    `toml:"max"`
		Color *string `toml:"color"`
	} `toml:"diagnostics"`
	Parse struct {
		Format *string `toml:"format"`
		Jobs   *int    `toml:"jobs"`
		Cache  *bool   `toml:"cache"`
		UI     *string `toml:"ui"`
	} `toml:"parse"`
	Trace struct {
		Level  *string `toml:"level"`
		Output *string `toml:"output"`
	} `toml:"trace"`
}

// findConfig ищет felix.toml от start вверх до корня; "" если файла нет.
func findConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		st, err := os.Stat(candidate)
		switch {
		case err == nil && !st.IsDir():
			return candidate, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func loadConfig(path string) (*projectConfig, error) {
	var cfg projectConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}

// applyConfigFile loads --config or the nearest felix.toml and applies it to cmd.
func applyConfigFile(cmd *cobra.Command) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		if path, err = findConfig(wd); err != nil {
			return fmt.Errorf("config lookup: %w", err)
		}
		if path == "" {
			return nil
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	return applyConfig(cmd, cfg)
}

// applyConfig переносит значения из файла во флаги, которые не заданы явно.
// Флаги, которых нет у команды, пропускаются.
func applyConfig(cmd *cobra.Command, cfg *projectConfig) error {
	flags := cmd.Flags()
	set := func(name, value string) error {
		if flags.Lookup(name) == nil || flags.Changed(name) {
			return nil
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("%s: %s: %w", configFileName, name, err)
		}
		return nil
	}

	var errs []error
	if v := cfg.Diagnostics.Max; v != nil {
		errs = append(errs, set("max-diagnostics", strconv.Itoa(*v)))
	}
	if v := cfg.Diagnostics.Color; v != nil {
		errs = append(errs, set("color", *v))
	}
	// [parse] относится только к команде parse: у tokenize свой --format.
	if cmd.Name() == "parse" {
		if v := cfg.Parse.Format; v != nil {
			errs = append(errs, set("format", *v))
		}
		if v := cfg.Parse.Jobs; v != nil {
			errs = append(errs, set("jobs", strconv.Itoa(*v)))
		}
		if v := cfg.Parse.Cache; v != nil {
			errs = append(errs, set("cache", strconv.FormatBool(*v)))
		}
		if v := cfg.Parse.UI; v != nil {
			errs = append(errs, set("ui", *v))
		}
	}
	if v := cfg.Trace.Level; v != nil {
		errs = append(errs, set("trace-level", *v))
	}
	if v := cfg.Trace.Output; v != nil {
		errs = append(errs, set("trace", *v))
	}
	return errors.Join(errs...)
}
