package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/schematicscan/internal/ctxlog"
	"github.com/specialistvlad/schematicscan/internal/schematic"
)

// Profile is the decoded content of a profile file.
type Profile struct {
	// Path is the file the profile came from, empty for the built-in default.
	Path    string
	Scanner *Scanner
}

// Scanner is the `scanner` block. Nil fields were not set in the file.
type Scanner struct {
	Separator *string  `hcl:"separator,optional"`
	Gear      *string  `hcl:"gear,optional"`
	Symbols   []string `hcl:"symbols,optional"`
}

// fileRoot is used to decode the top level of a profile file. Unknown blocks
// and attributes are rejected by gohcl.
type fileRoot struct {
	Scanner *Scanner `hcl:"scanner,block"`
}

// Default returns the profile used when no file is given.
func Default() *Profile {
	return &Profile{}
}

// LoadProfile parses and decodes the HCL file at path.
func LoadProfile(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scanner profile.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}
	p, err := decode(file, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Scanner profile loaded.", "path", path, "has_scanner_block", p.Scanner != nil)
	return p, nil
}

// ParseProfile decodes a profile held in memory. filename is only used in
// diagnostics.
func ParseProfile(src []byte, filename string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, path string) (*Profile, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}
	return &Profile{Path: path, Scanner: root.Scanner}, nil
}

// Alphabet builds the schematic alphabet described by the profile.
func (p *Profile) Alphabet() (schematic.Alphabet, error) {
	separator := byte(schematic.DefaultSeparator)
	gear := byte(schematic.DefaultGear)
	symbols := []byte(schematic.DefaultSymbols)

	if s := p.Scanner; s != nil {
		var err error
		if s.Separator != nil {
			if separator, err = singleChar("separator", *s.Separator); err != nil {
				return schematic.Alphabet{}, p.wrap(err)
			}
		}
		if s.Gear != nil {
			if gear, err = singleChar("gear", *s.Gear); err != nil {
				return schematic.Alphabet{}, p.wrap(err)
			}
		}
		if s.Symbols != nil {
			symbols = make([]byte, 0, len(s.Symbols))
			for i, sym := range s.Symbols {
				ch, err := singleChar(fmt.Sprintf("symbols[%d]", i), sym)
				if err != nil {
					return schematic.Alphabet{}, p.wrap(err)
				}
				symbols = append(symbols, ch)
			}
		}
	}

	a, err := schematic.NewAlphabet(separator, gear, symbols)
	if err != nil {
		return schematic.Alphabet{}, p.wrap(err)
	}
	return a, nil
}

func (p *Profile) wrap(err error) error {
	if p.Path == "" {
		return fmt.Errorf("invalid scanner profile: %w", err)
	}
	return fmt.Errorf("invalid scanner profile %s: %w", p.Path, err)
}

func singleChar(name, v string) (byte, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("%s must be exactly one ASCII character, got %q", name, v)
	}
	return v[0], nil
}
