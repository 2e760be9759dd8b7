package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls where icons go and how they are drawn. The palette and
// proportions are not configurable.
type Config struct {
	OutDir         string   `toml:"out_dir"`
	Sizes          []int    `toml:"sizes"`
	NameFormat     string   `toml:"name_format"`
	Backend        string   `toml:"backend"`
	InstallCommand []string `toml:"install_command"`
}

func Default() Config {
	return Config{
		OutDir:     "public",
		Sizes:      []int{192, 512},
		NameFormat: "pwa-%[1]dx%[1]d.png",
		Backend:    "raster",
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.OutDir == "" {
		return errors.New("config: out_dir is empty")
	}
	if len(c.Sizes) == 0 {
		return errors.New("config: no sizes")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("config: size %d is not positive", s)
		}
	}
	if c.Backend == "" {
		return errors.New("config: backend is empty")
	}
	name := c.FileName(1)
	if strings.Contains(name, "%!") || name == c.NameFormat {
		return fmt.Errorf("config: name_format %q must use the size", c.NameFormat)
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("config: name_format %q must not contain a directory", c.NameFormat)
	}
	return nil
}

// FileName formats the output file name for one size.
func (c Config) FileName(size int) string {
	return fmt.Sprintf(c.NameFormat, size)
}

// Path is the output path for one size.
func (c Config) Path(size int) string {
	return filepath.Join(c.OutDir, c.FileName(size))
}

// ParseSizes parses a comma separated list such as "192,512".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", f, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
