package optfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/optkit/optkit"
	"gopkg.in/yaml.v3"
)

// Definition is one option entry of an optfile document.
type Definition struct {
	Short       string   `yaml:"short,omitempty"`
	Long        string   `yaml:"long,omitempty"`
	TakesArg    bool     `yaml:"takes_arg,omitempty"`
	Conflicts   []string `yaml:"conflicts,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// File is a declarative option registry: program metadata plus the
// option list, as stored on disk in YAML.
type File struct {
	Program      string       `yaml:"program"`
	Version      string       `yaml:"version,omitempty"`
	Author       string       `yaml:"author,omitempty"`
	Year         int          `yaml:"year,omitempty"`
	Description  string       `yaml:"description,omitempty"`
	VersionExtra string       `yaml:"version_extra,omitempty"`
	Synopses     []string     `yaml:"synopses,omitempty"`
	Options      []Definition `yaml:"options,omitempty"`
}

func Load(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse optfile: %w", err)
	}

	if f.Program == "" {
		return nil, fmt.Errorf("optfile is missing a program name")
	}

	return &f, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read optfile: %w", err)
	}

	return Load(data)
}

// Marshal renders the document back to YAML.
func (f *File) Marshal() ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("failed to marshal optfile: %w", err)
	}

	return buf.Bytes(), nil
}

// App builds a ready-to-parse application from the document. Conflict
// references are resolved in a second pass, by long name first and then
// by short name; an unknown reference fails.
func (f *File) App(mode optkit.Mode) (*optkit.App, error) {
	app := optkit.New(optkit.Info{
		Program:      f.Program,
		Version:      f.Version,
		Author:       f.Author,
		Year:         f.Year,
		Description:  f.Description,
		VersionExtra: f.VersionExtra,
		Synopses:     f.Synopses,
	}, mode)

	opts := make([]*optkit.Option, len(f.Options))
	for i, def := range f.Options {
		var short byte
		if def.Short != "" {
			if len(def.Short) != 1 {
				return nil, fmt.Errorf("option %d: short name %q must be a single character", i, def.Short)
			}
			short = def.Short[0]
		}

		var flags optkit.Flags
		if def.TakesArg {
			flags |= optkit.FlagTakesArg
		}

		opt, err := app.Register(short, def.Long, flags, nil, def.Description)
		if err != nil {
			return nil, err
		}

		opts[i] = opt
	}

	registry := app.Registry()
	for i, def := range f.Options {
		for _, ref := range def.Conflicts {
			other := registry.LookupLong(ref)
			if other == nil && len(ref) == 1 {
				other = registry.LookupShort(ref[0])
			}
			if other == nil {
				return nil, fmt.Errorf("option %s: unknown conflict reference %q", opts[i], ref)
			}

			opts[i].Conflicts = append(opts[i].Conflicts, other)
		}
	}

	return app, nil
}
