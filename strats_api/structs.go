package strats_api

//
// Config structs
//

// The struct representing the configuration file
// The config file is a YAML file
type Config struct {
	// All references to build stratifications for, keyed by reference name
	References map[string]*RefConfig `yaml:"references"`
}

// A struct representing one reference and everything normalized against it
type RefConfig struct {
	// How the chromosomes of the reference are named and laid out
	Ref SourceConfig `yaml:"ref"`

	// The builds of this reference, keyed by build name
	Builds map[string]BuildConfig `yaml:"builds"`

	// The input files that get normalized to this reference, keyed by name
	Inputs map[string]BedFileConfig `yaml:"inputs"`
}

// A struct representing one build of a reference
type BuildConfig struct {
	// The chromosomes to include in the build
	// An empty filter includes every chromosome
	ChrFilter []ChrIndex `yaml:"chr_filter"`
}

// A struct representing the chromosome naming of a reference or input file
// The YAML holds a layout and a chr_pattern whose shape depends on it
type SourceConfig struct {
	Source ChrSource
}

// A struct representing an input file
type BedFileConfig struct {
	// How the chromosomes of the file are named and laid out
	Source ChrSource

	// How to parse the file
	Params BedParams
}

// A struct representing how to parse a BED-like file
type BedParams struct {
	// The columns holding the coordinates
	Columns BedColumns `yaml:"bed_cols"`

	// The number of lines to skip at the start of the file
	SkipLines int `yaml:"skip_lines"`

	// A regular expression separating the columns
	Sep string `yaml:"sep"`

	// Extra columns to keep, in output order
	More []int `yaml:"more"`

	// Keep every non-coordinate column in file order instead of only those
	// listed in More
	KeepAll bool `yaml:"keep_all"`
}

// A struct representing the 0-based coordinate columns of a BED-like file
type BedColumns struct {
	Chr   int `yaml:"chr"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}
