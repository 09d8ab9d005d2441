package strats_api

import (
	"os"
	"regexp"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Name of the build added to references that don't define any
const DefaultBuildKey = "default"

// Read the configuration file, cast it to its struct and validate
func ReadConfig(path string) (*Config, error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the config file")
	}
	return ParseConfig(configFile)
}

// ParseConfig reads a configuration from YAML.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		if IsConfigError(err) {
			return nil, err
		}
		return nil, &ConfigError{err: errors.Wrap(err, "failed to parse the config file")}
	}

	config.defineMissing()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Define all missing optional fields
func (config *Config) defineMissing() {
	if config.References == nil {
		config.References = map[string]*RefConfig{}
	}
	for key, ref := range config.References {
		if ref == nil {
			ref = &RefConfig{}
			config.References[key] = ref
		}
		if ref.Ref.Source == nil {
			ref.Ref.Source = HapChrSource{ChrPattern: DefaultHapChrPattern()}
		}
		if len(ref.Builds) == 0 {
			ref.Builds = map[string]BuildConfig{DefaultBuildKey: {}}
		}
		if ref.Inputs == nil {
			ref.Inputs = map[string]BedFileConfig{}
		}
	}
}

// Validate checks every pattern and parser setting of the configuration.
func (config *Config) Validate() error {
	for _, refKey := range sortedKeys(config.References) {
		ref := config.References[refKey]
		if err := validateSource(ref.Ref.Source); err != nil {
			return errors.Wrapf(err, "reference %s", refKey)
		}
		for _, inputKey := range sortedKeys(ref.Inputs) {
			input := ref.Inputs[inputKey]
			if err := validateSource(input.Source); err != nil {
				return errors.Wrapf(err, "reference %s, input %s", refKey, inputKey)
			}
			if err := input.Params.Validate(); err != nil {
				return errors.Wrapf(err, "reference %s, input %s", refKey, inputKey)
			}
		}
	}
	return nil
}

// Reference looks up a reference by name.
func (config *Config) Reference(refKey string) (*RefConfig, error) {
	ref, ok := config.References[refKey]
	if !ok {
		return nil, configErrorf("unknown reference '%s'", refKey)
	}
	return ref, nil
}

// Build looks up a build of the reference by name.
func (ref *RefConfig) Build(buildKey string) (BuildConfig, error) {
	build, ok := ref.Builds[buildKey]
	if !ok {
		return BuildConfig{}, configErrorf("unknown build '%s'", buildKey)
	}
	return build, nil
}

// Input looks up an input file of the reference by name.
func (ref *RefConfig) Input(inputKey string) (BedFileConfig, error) {
	input, ok := ref.Inputs[inputKey]
	if !ok {
		return BedFileConfig{}, configErrorf("unknown input '%s'", inputKey)
	}
	return input, nil
}

// Chrs returns the chromosomes of the build.
func (build BuildConfig) Chrs() []ChrIndex {
	return BuildChrs(build.ChrFilter)
}

func DefaultBedParams() BedParams {
	return BedParams{
		Columns: BedColumns{Chr: 0, Start: 1, End: 2},
		Sep:     "\t",
	}
}

// Validate checks that the coordinate and extra columns are usable.
func (p BedParams) Validate() error {
	cols := []int{p.Columns.Chr, p.Columns.Start, p.Columns.End}
	cols = append(cols, p.More...)
	seen := map[int]bool{}
	for _, c := range cols {
		if c < 0 {
			return configErrorf("column %d must not be negative", c)
		}
		if seen[c] {
			return configErrorf("column %d is used more than once", c)
		}
		seen[c] = true
	}
	if p.SkipLines < 0 {
		return configErrorf("skip_lines must not be negative")
	}
	if p.Sep == "" {
		return configErrorf("column separator must not be empty")
	}
	if _, err := regexp.Compile(p.Sep); err != nil {
		return &ConfigError{err: errors.Wrapf(err, "invalid column separator '%s'", p.Sep)}
	}
	return nil
}

func (s *SourceConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	head := struct {
		Layout Layout `yaml:"layout"`
	}{Layout: LayoutHaploid}
	if err := unmarshal(&head); err != nil {
		return err
	}

	switch head.Layout {
	case LayoutHaploid:
		body := struct {
			ChrPattern HapChrPattern `yaml:"chr_pattern"`
		}{ChrPattern: DefaultHapChrPattern()}
		if err := unmarshal(&body); err != nil {
			return err
		}
		s.Source = HapChrSource{ChrPattern: body.ChrPattern}
	case LayoutDiploidCombined:
		body := struct {
			ChrPattern DipChrPattern `yaml:"chr_pattern"`
		}{ChrPattern: DefaultDipChrPattern()}
		if err := unmarshal(&body); err != nil {
			return err
		}
		s.Source = Dip1ChrSource{ChrPattern: body.ChrPattern}
	case LayoutDiploidSplit:
		body := struct {
			ChrPattern Diploid[HapChrPattern] `yaml:"chr_pattern"`
		}{ChrPattern: NewDiploid(func(Haplotype) HapChrPattern { return DefaultHapChrPattern() })}
		if err := unmarshal(&body); err != nil {
			return err
		}
		s.Source = Dip2ChrSource{ChrPattern: body.ChrPattern}
	default:
		return designErrorf("unhandled layout %s", head.Layout)
	}
	return nil
}

func (f *BedFileConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var source SourceConfig
	if err := unmarshal(&source); err != nil {
		return err
	}
	body := struct {
		Params BedParams `yaml:"params"`
	}{Params: DefaultBedParams()}
	if err := unmarshal(&body); err != nil {
		return err
	}
	f.Source = source.Source
	f.Params = body.Params
	return nil
}

func validateSource(source ChrSource) error {
	switch s := source.(type) {
	case HapChrSource:
		return s.ChrPattern.Validate()
	case Dip1ChrSource:
		return s.ChrPattern.Validate()
	case Dip2ChrSource:
		for _, h := range Haplotypes {
			if err := s.ChrPattern.Choose(h).Validate(); err != nil {
				return errors.Wrap(err, h.Name())
			}
		}
		return nil
	}
	return configErrorf("missing chromosome source")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
