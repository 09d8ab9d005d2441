package strats_api

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
)

// ChrIndex is the canonical identity of a chromosome. Values run from 1 to 24
// where 23 and 24 are X and Y, which is also the order chromosomes take in
// every output file.
type ChrIndex uint8

const (
	ChrX ChrIndex = 23
	ChrY ChrIndex = 24

	// Number of chromosomes per haplotype
	NumChrs = 24
)

// AllChrIndices returns 1..22, X, Y in ascending order.
func AllChrIndices() []ChrIndex {
	all := make([]ChrIndex, NumChrs)
	for i := range all {
		all[i] = ChrIndex(i + 1)
	}
	return all
}

// ChrIndexFromName parses the short name of a chromosome, which must be
// exactly one of "1".."22", "X" or "Y".
func ChrIndexFromName(name string) (ChrIndex, error) {
	switch name {
	case "X":
		return ChrX, nil
	case "Y":
		return ChrY, nil
	}
	// Reject anything strconv would otherwise accept, like "+1" or "01"
	if name == "" || name[0] < '1' || name[0] > '9' {
		return 0, errors.Errorf("could not make chromosome index from name '%s'", name)
	}
	i, err := strconv.Atoi(name)
	if err != nil || i < 1 || i > 22 {
		return 0, errors.Errorf("could not make chromosome index from name '%s'", name)
	}
	return ChrIndex(i), nil
}

// Valid reports whether c is one of the 24 canonical chromosomes.
func (c ChrIndex) Valid() bool {
	return c >= 1 && c <= ChrY
}

// Name returns the short name of the chromosome ("1".."22", "X", "Y").
func (c ChrIndex) Name() string {
	switch c {
	case ChrX:
		return "X"
	case ChrY:
		return "Y"
	}
	return strconv.Itoa(int(c))
}

func (c ChrIndex) String() string {
	return "chr" + c.Name()
}

// ToInternalIndex combines the chromosome with a haplotype into its global
// sort key.
func (c ChrIndex) ToInternalIndex(hap Haplotype) InternalChrIndex {
	return InternalChrIndex(int(hap)*NumChrs + int(c) - 1)
}

func (c ChrIndex) IsSexChr() bool {
	return c == ChrX || c == ChrY
}

// ChooseXY returns x for chromosome X and y for chromosome Y. Asking an
// autosome to choose is a DesignError.
func ChooseXY[T any](c ChrIndex, x T, y T) (T, error) {
	switch c {
	case ChrX:
		return x, nil
	case ChrY:
		return y, nil
	}
	var zero T
	return zero, designErrorf("I am not an X or Y, I am a %s", c)
}

// XYToHap returns the haplotype that carries a sex chromosome: X comes from
// the maternal (second) haplotype and Y from the paternal (first) one.
func (c ChrIndex) XYToHap() (Haplotype, error) {
	return ChooseXY(c, Hap2, Hap1)
}

// UnmarshalYAML reads a chromosome from its short name. Bare numbers in YAML
// are accepted as well as quoted strings.
func (c *ChrIndex) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	i, err := ChrIndexFromName(name)
	if err != nil {
		return &ConfigError{err: err}
	}
	*c = i
	return nil
}

// Haplotype tags one of the two copies of a diploid genome. For haploid data
// everything is treated as Hap1.
type Haplotype uint8

const (
	Hap1 Haplotype = 0
	Hap2 Haplotype = 1
)

// Haplotypes lists both haplotypes in order.
var Haplotypes = [2]Haplotype{Hap1, Hap2}

// HaplotypeFromName parses "hap1" or "hap2", ignoring case.
func HaplotypeFromName(name string) (Haplotype, error) {
	switch cases.Fold().String(name) {
	case "hap1":
		return Hap1, nil
	case "hap2":
		return Hap2, nil
	}
	return 0, errors.Errorf("could not make haplotype from name '%s'", name)
}

func (h Haplotype) Name() string {
	return fmt.Sprintf("hap%d", int(h)+1)
}

func (h Haplotype) String() string {
	return h.Name()
}

// Choose returns left for Hap1 and right for Hap2.
func Choose[T any](h Haplotype, left T, right T) T {
	if h == Hap1 {
		return left
	}
	return right
}

// Diploid holds one value per haplotype.
type Diploid[T any] struct {
	Hap1 T `yaml:"hap1"`
	Hap2 T `yaml:"hap2"`
}

// NewDiploid builds a Diploid by calling f once per haplotype.
func NewDiploid[T any](f func(Haplotype) T) Diploid[T] {
	return Diploid[T]{Hap1: f(Hap1), Hap2: f(Hap2)}
}

func (d Diploid[T]) Choose(h Haplotype) T {
	return Choose(h, d.Hap1, d.Hap2)
}

// MapDiploid applies f to both halves of d.
func MapDiploid[T any, U any](d Diploid[T], f func(Haplotype, T) U) Diploid[U] {
	return Diploid[U]{Hap1: f(Hap1, d.Hap1), Hap2: f(Hap2, d.Hap2)}
}

// InternalChrIndex is the global sort key of a (chromosome, haplotype) pair.
// Every Hap1 key is lower than every Hap2 key.
type InternalChrIndex int

func (i InternalChrIndex) Haplotype() Haplotype {
	return Haplotype(int(i) / NumChrs)
}

func (i InternalChrIndex) ChrIndex() ChrIndex {
	return ChrIndex(int(i)%NumChrs + 1)
}

func (i InternalChrIndex) String() string {
	return fmt.Sprintf("%s_%s", i.ChrIndex(), i.Haplotype())
}

// BuildChrs turns a user chromosome filter into the set used by one build:
// sorted, without duplicates, and every chromosome when the filter is empty.
func BuildChrs(filter []ChrIndex) []ChrIndex {
	if len(filter) == 0 {
		return AllChrIndices()
	}
	seen := map[ChrIndex]bool{}
	chrs := make([]ChrIndex, 0, len(filter))
	for _, c := range filter {
		if seen[c] {
			continue
		}
		seen[c] = true
		chrs = append(chrs, c)
	}
	sort.Slice(chrs, func(i, j int) bool { return chrs[i] < chrs[j] })
	return chrs
}
