package cases

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/skyline/histogram"
	"github.com/katalvlaran/skyline/rectangle"
)

var (
	// ErrNoCases indicates a suite without a single case.
	ErrNoCases = errors.New("cases: suite has no cases")
	// ErrBadCase indicates a case that cannot be run as written.
	ErrBadCase = errors.New("cases: invalid case")
	// ErrUnknownKey indicates a key the suite format does not define.
	ErrUnknownKey = errors.New("cases: unknown key")
)

// Options are the suite-wide run settings.
type Options struct {
	Workers         int `toml:"workers"`
	FilledThreshold int `toml:"filled_threshold"`
}

// HistogramCase is one largest-rectangle-in-histogram check.
type HistogramCase struct {
	Name    string `toml:"name"`
	Heights []int  `toml:"heights"`
	Expect  int    `toml:"expect"`
}

// MaximalCase is one maximal-rectangle check.
type MaximalCase struct {
	Name   string   `toml:"name"`
	Rows   []string `toml:"rows"`
	Values [][]int  `toml:"values"`
	Expect int      `toml:"expect"`
}

// ZeroFillCase is one zero-filled-subarray check.
type ZeroFillCase struct {
	Name   string `toml:"name"`
	Nums   []int  `toml:"nums"`
	Expect int64  `toml:"expect"`
}

// Suite is a decoded case file.
type Suite struct {
	Options   Options         `toml:"options"`
	Histogram []HistogramCase `toml:"histogram"`
	Maximal   []MaximalCase   `toml:"maximal"`
	ZeroFill  []ZeroFillCase  `toml:"zerofill"`
}

// DefaultOptions mirrors rectangle.DefaultGridOptions.
func DefaultOptions() Options {
	d := rectangle.DefaultGridOptions()

	return Options{Workers: d.Workers, FilledThreshold: d.FilledThreshold}
}

// Load reads and parses the suite at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a suite, rejects unknown keys and validates every case.
// Options missing from the document keep their DefaultOptions values.
func Parse(data []byte) (*Suite, error) {
	s := &Suite{Options: DefaultOptions()}
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Len returns the total number of cases.
func (s *Suite) Len() int {
	return len(s.Histogram) + len(s.Maximal) + len(s.ZeroFill)
}

// Validate checks suite-level invariants. Problems inside a single grid
// (shape, markers) are reported per case by Run instead.
func (s *Suite) Validate() error {
	if s.Len() == 0 {
		return ErrNoCases
	}
	if s.Options.Workers < 0 {
		return fmt.Errorf("options: %w", rectangle.ErrBadWorkers)
	}
	for i, c := range s.Histogram {
		if err := histogram.Validate(c.Heights); err != nil {
			return fmt.Errorf("histogram[%d] %q: %w: %w", i, c.Name, ErrBadCase, err)
		}
	}
	for i, c := range s.Maximal {
		if len(c.Rows) > 0 && len(c.Values) > 0 {
			return fmt.Errorf("maximal[%d] %q: %w: rows and values are exclusive", i, c.Name, ErrBadCase)
		}
	}

	return nil
}
