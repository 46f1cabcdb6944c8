// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"
)

// Common holds CLI fields shared by contigmap and contigmap-landmarks.
type Common struct {
	ConfigFile string

	// Output
	Output string
	Header bool

	// Misc
	Quiet   bool
	Version bool
	Help    bool
}

// Register wires shared flags onto fs and returns a pointer to the “no-header” bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common, defaultOutput string) *bool {
	fs.StringVar(&c.ConfigFile, "config", "", "TOML configuration file")

	fs.StringVar(&c.Output, "output", defaultOutput, "output format")
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help message [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help message [false]")

	return &noHeader
}

// AfterParse finalizes the header flag and validates the output format.
func AfterParse(c *Common, noHeader *bool, formats ...string) error {
	c.Header = !*noHeader
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
