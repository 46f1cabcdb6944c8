// Package config resolves the genome window and naming convention from
// built-in defaults, an optional TOML file and CONTIGMAP_* environment
// variables, in that order. Flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"contigmap/internal/blocks"
	"contigmap/internal/classify"
	"contigmap/internal/contigs"
	"contigmap/internal/landmarks"
)

const Help = `
The configuration file is TOML. Every field is optional:

[window]
  min_start  = 638    # hits starting before this are discarded
  max_end    = 9604   # interval ends are clamped to this
  breakpoint = 6623   # hits ending near this are fused with the next hit
  tolerance  = 50

[labels]
  delimiter = "::"    # contig headers look like "name::Label"
  token     = 1       # position of the label after splitting

[colors]              # per-label colors; unlisted labels use their bucket color
  Intact = "green"

reference = "HIV1-B-FR-K03455-seed"

Environment overrides: CONTIGMAP_MIN_START, CONTIGMAP_MAX_END,
CONTIGMAP_BREAKPOINT, CONTIGMAP_TOLERANCE, CONTIGMAP_DELIMITER,
CONTIGMAP_TOKEN, CONTIGMAP_REFERENCE (a .env file in the working directory
is read first).
`

// Config is the resolved run configuration.
type Config struct {
	Window    blocks.Window
	Scheme    classify.Scheme
	Reference string

	// Undecoded lists keys in the TOML file that matched no field.
	Undecoded []string
}

type fileWindow struct {
	MinStart   *int `toml:"min_start"`
	MaxEnd     *int `toml:"max_end"`
	Breakpoint *int `toml:"breakpoint"`
	Tolerance  *int `toml:"tolerance"`
}

type fileLabels struct {
	Delimiter *string `toml:"delimiter"`
	Token     *int    `toml:"token"`
}

type file struct {
	Reference *string           `toml:"reference"`
	Window    fileWindow        `toml:"window"`
	Labels    fileLabels        `toml:"labels"`
	Colors    map[string]string `toml:"colors"`
}

// Default returns the HXB2 configuration.
func Default() Config {
	return Config{
		Window:    blocks.DefaultWindow,
		Scheme:    classify.DefaultScheme(),
		Reference: landmarks.DefaultReference,
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the process environment.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	c := Default()
	if path != "" {
		if err := c.applyFile(path); err != nil {
			return c, err
		}
	}
	if err := c.applyEnv(os.Getenv); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyFile(path string) error {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		c.Undecoded = append(c.Undecoded, k.String())
	}
	sort.Strings(c.Undecoded)

	setInt(&c.Window.MinStart, f.Window.MinStart)
	setInt(&c.Window.MaxEnd, f.Window.MaxEnd)
	setInt(&c.Window.Breakpoint, f.Window.Breakpoint)
	setInt(&c.Window.Tolerance, f.Window.Tolerance)
	setInt(&c.Scheme.Token, f.Labels.Token)
	if f.Labels.Delimiter != nil {
		c.Scheme.Delimiter = *f.Labels.Delimiter
	}
	if f.Reference != nil {
		c.Reference = *f.Reference
	}
	for label, color := range f.Colors {
		c.Scheme.Palette[label] = color
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func (c *Config) applyEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"CONTIGMAP_MIN_START", &c.Window.MinStart},
		{"CONTIGMAP_MAX_END", &c.Window.MaxEnd},
		{"CONTIGMAP_BREAKPOINT", &c.Window.Breakpoint},
		{"CONTIGMAP_TOLERANCE", &c.Window.Tolerance},
		{"CONTIGMAP_TOKEN", &c.Scheme.Token},
	}
	for _, e := range ints {
		raw := strings.TrimSpace(getenv(e.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = v
	}
	if v := getenv("CONTIGMAP_DELIMITER"); v != "" {
		c.Scheme.Delimiter = v
	}
	if v := strings.TrimSpace(getenv("CONTIGMAP_REFERENCE")); v != "" {
		c.Reference = v
	}
	return nil
}

// Validate checks the window and label settings.
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if c.Scheme.Delimiter == "" {
		return errors.New("label delimiter must not be empty")
	}
	if c.Scheme.Token < 0 {
		return errors.New("label token must be ≥ 0")
	}
	return nil
}

// Options converts the config into grouping options.
func (c Config) Options() contigs.Options {
	return contigs.Options{Window: c.Window, Scheme: c.Scheme}
}
