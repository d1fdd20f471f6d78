package typegen

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gitlab.com/accumulatenetwork/ircgen/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	TableFormatLines = "lines"
	TableFormatYAML  = "yaml"
)

type FileReader struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
	Rename  []string `mapstructure:"rename"`
	Format  string   `mapstructure:"table-format" validate:"oneof=lines yaml"`
	Strict  bool     `mapstructure:"strict"`

	Logger *zerolog.Logger `mapstructure:"-"`
}

func (f *FileReader) SetFlags(flags *pflag.FlagSet, label string) {
	flags.StringSliceVarP(&f.Include, "include", "i", nil, "Include only specific "+label)
	flags.StringSliceVarP(&f.Exclude, "exclude", "x", nil, "Exclude specific "+label)
	flags.StringSliceVar(&f.Rename, "rename", nil, "Rename "+label+", e.g. 'FOO:BAR'")
	flags.StringVar(&f.Format, "table-format", TableFormatLines, "Table format (lines or yaml)")
	flags.BoolVar(&f.Strict, "strict", false, "Fail if the table ends with a name that has no value")
}

// ReadCodes reads, parses, and filters the code table in file.
func (f *FileReader) ReadCodes(file string) ([]*Code, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, errors.ResourceUnavailable.WithFormat("opening %q: %w", file, err)
	}
	defer fd.Close()

	st, err := fd.Stat()
	switch {
	case err != nil:
		return nil, errors.ResourceUnavailable.WithFormat("stat %q: %w", file, err)
	case st.IsDir():
		return nil, errors.ResourceUnavailable.WithFormat("%q is a directory", file)
	}

	codes, err := f.Parse(fd)
	if err != nil {
		return nil, errors.UnknownError.WithCauseAndFormat(err, "reading %q: %v", file, err)
	}

	return f.Filter(codes)
}

// Parse parses a code table in the reader's format.
func (f *FileReader) Parse(r io.Reader) ([]*Code, error) {
	switch f.Format {
	case "", TableFormatLines:
		return f.parseLines(r)
	case TableFormatYAML:
		return f.parseYAML(r)
	default:
		return nil, errors.BadRequest.WithFormat("unknown table format %q", f.Format)
	}
}

// parseLines reads the table two lines at a time, a name and then a value.
// Lines may be of any length.
func (f *FileReader) parseLines(r io.Reader) ([]*Code, error) {
	rd := bufio.NewReader(r)

	var codes []*Code
	var line int
	for {
		name, ok, err := readLine(rd)
		if err != nil || !ok {
			return codes, err
		}
		line++

		value, ok, err := readLine(rd)
		if err != nil {
			return nil, err
		}
		if !ok {
			return codes, f.trailing(name, line)
		}
		line++

		c := NewCode(name, value)
		c.Line = line - 1
		codes = append(codes, c)
	}
}

// readLine returns the next line with surrounding space trimmed. ok is false
// at the end of the input.
func readLine(rd *bufio.Reader) (string, bool, error) {
	s, err := rd.ReadString('\n')
	switch {
	case err == io.EOF:
		if s == "" {
			return "", false, nil
		}
	case err != nil:
		return "", false, errors.ResourceUnavailable.WithFormat("read: %w", err)
	}
	return strings.TrimSpace(s), true, nil
}

// trailing handles a name at the end of the table with no value. A blank
// trailing line is always tolerated.
func (f *FileReader) trailing(name string, line int) error {
	if f.Strict && name != "" {
		return errors.MalformedTrailingEntry.WithFormat("line %d: %q has no value", line, name)
	}
	if f.Logger != nil {
		f.Logger.Debug().Int("line", line).Str("name", name).Msg("Discarding unpaired trailing line")
	}
	return nil
}

type yamlEntry struct {
	Name  string  `yaml:"name"`
	Value *string `yaml:"value"`
}

// parseYAML reads the table as a sequence of name/value mappings.
func (f *FileReader) parseYAML(r io.Reader) ([]*Code, error) {
	var entries []yamlEntry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&entries)
	switch {
	case err == io.EOF:
		return nil, nil
	case err != nil:
		return nil, errors.EncodingError.WithFormat("decoding table: %w", err)
	}

	codes := make([]*Code, 0, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, errors.EncodingError.WithFormat("entry %d has no name", i)
		}
		if e.Value == nil {
			if i < len(entries)-1 {
				return nil, errors.EncodingError.WithFormat("entry %d: %q has no value", i, name)
			}
			err := f.trailing(name, i)
			if err != nil {
				return nil, err
			}
			break
		}

		codes = append(codes, NewCode(name, strings.TrimSpace(*e.Value)))
	}
	return codes, nil
}

// Filter applies the include, exclude, and rename options, preserving order.
func (f *FileReader) Filter(codes []*Code) ([]*Code, error) {
	codes, err := f.include(codes)
	if err != nil {
		return nil, err
	}

	codes, err = f.exclude(codes)
	if err != nil {
		return nil, err
	}

	return f.rename(codes)
}

func (f *FileReader) include(all []*Code) ([]*Code, error) {
	if len(f.Include) == 0 {
		return all, nil
	}

	want := map[string]bool{}
	for _, name := range f.Include {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if !hasName(all, name) {
			return nil, errors.BadRequest.WithFormat("%q is not a code", name)
		}
		want[name] = true
	}

	var included []*Code
	for _, c := range all {
		if want[c.Name] {
			included = append(included, c)
		}
	}
	return included, nil
}

func (f *FileReader) exclude(all []*Code) ([]*Code, error) {
	drop := map[string]bool{}
	for _, name := range f.Exclude {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if !hasName(all, name) {
			return nil, errors.BadRequest.WithFormat("%q is not a code", name)
		}
		drop[name] = true
	}
	if len(drop) == 0 {
		return all, nil
	}

	kept := make([]*Code, 0, len(all))
	for _, c := range all {
		if !drop[c.Name] {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// rename replaces the name of a code. The code is reclassified under its new
// name.
func (f *FileReader) rename(all []*Code) ([]*Code, error) {
	for _, spec := range f.Rename {
		bits := strings.Split(spec, ":")
		if len(bits) != 2 {
			return nil, errors.BadRequest.WithFormat("invalid rename: want 'X:Y', got '%s'", spec)
		}

		from, to := bits[0], bits[1]
		if !hasName(all, from) {
			return nil, errors.BadRequest.WithFormat("%q is not a code", from)
		}

		for i, c := range all {
			if c.Name != from {
				continue
			}
			d := NewCode(to, c.Value)
			d.Line = c.Line
			all[i] = d
		}
	}
	return all, nil
}

func hasName(codes []*Code, name string) bool {
	for _, c := range codes {
		if c.Name == name {
			return true
		}
	}
	return false
}
