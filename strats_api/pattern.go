package strats_api

import (
	"strings"
)

// A HapChrPattern describes how the chromosomes of one haplotype are named in
// a file. Names come from Template with %i replaced by the short chromosome
// name, unless Special overrides the name of that chromosome. Chromosomes in
// Exclusions have no name at all.
type HapChrPattern struct {
	Template   string              `yaml:"template"`
	Special    map[ChrIndex]string `yaml:"special"`
	Exclusions []ChrIndex          `yaml:"exclusions"`
}

// A DipChrPattern describes the chromosome names of a file holding both
// haplotypes. The template has both a %i and a %h placeholder; the latter is
// replaced by the name given to each haplotype. Special names may also
// contain %h to tell the haplotypes apart.
type DipChrPattern struct {
	Template   string              `yaml:"template"`
	Special    map[ChrIndex]string `yaml:"special"`
	HapNames   Diploid[string]     `yaml:"hapnames"`
	Exclusions Diploid[[]ChrIndex] `yaml:"exclusions"`
}

// A chrPair is one named chromosome of a pattern.
type chrPair struct {
	Index InternalChrIndex
	Name  string
}

func DefaultHapChrPattern() HapChrPattern {
	return HapChrPattern{Template: "chr%i"}
}

func DefaultDipChrPattern() DipChrPattern {
	return DipChrPattern{
		Template: "chr%i_%h",
		HapNames: Diploid[string]{Hap1: "PATERNAL", Hap2: "MATERNAL"},
		Exclusions: Diploid[[]ChrIndex]{
			Hap1: []ChrIndex{ChrX},
			Hap2: []ChrIndex{ChrY},
		},
	}
}

// NewHapChrPattern builds and validates a haploid pattern.
func NewHapChrPattern(template string, special map[ChrIndex]string, exclusions []ChrIndex) (HapChrPattern, error) {
	p := HapChrPattern{Template: template, Special: special, Exclusions: exclusions}
	if err := p.Validate(); err != nil {
		return HapChrPattern{}, err
	}
	return p, nil
}

// NewDipChrPattern builds and validates a diploid pattern.
func NewDipChrPattern(template string, special map[ChrIndex]string, hapNames Diploid[string], exclusions Diploid[[]ChrIndex]) (DipChrPattern, error) {
	p := DipChrPattern{Template: template, Special: special, HapNames: hapNames, Exclusions: exclusions}
	if err := p.Validate(); err != nil {
		return DipChrPattern{}, err
	}
	return p, nil
}

//
// Haploid patterns
//

// Validate checks that the pattern can produce a one-to-one mapping.
func (p HapChrPattern) Validate() error {
	if err := checkPlaceholder(p.Template, ChrIndexPlaceholder); err != nil {
		return err
	}
	if err := validateSpecial(p.Special, false); err != nil {
		return err
	}
	if err := validateExclusions(p.Exclusions); err != nil {
		return err
	}
	return checkUniqueNames(p.toPairs(AllChrIndices(), Hap1))
}

func (p HapChrPattern) isExcluded(c ChrIndex) bool {
	for _, e := range p.Exclusions {
		if e == c {
			return true
		}
	}
	return false
}

// ToChrName returns the name of a chromosome in this pattern, and false if
// the chromosome is excluded.
func (p HapChrPattern) ToChrName(c ChrIndex) (string, bool) {
	if p.isExcluded(c) {
		return "", false
	}
	if name, ok := p.Special[c]; ok {
		return name, true
	}
	return resolveChr(p.Template, c), true
}

func (p HapChrPattern) toPairs(chrs []ChrIndex, hap Haplotype) []chrPair {
	pairs := make([]chrPair, 0, len(chrs))
	for _, c := range chrs {
		if name, ok := p.ToChrName(c); ok {
			pairs = append(pairs, chrPair{Index: c.ToInternalIndex(hap), Name: name})
		}
	}
	return pairs
}

// ToNames lists the names of the given chromosomes in canonical order.
func (p HapChrPattern) ToNames(chrs []ChrIndex) []string {
	return pairNames(p.toPairs(BuildChrs(chrs), Hap1))
}

// InitMapper maps names of this pattern to sort keys of the given haplotype.
func (p HapChrPattern) InitMapper(chrs []ChrIndex, hap Haplotype) InitMapper {
	return newInitMapper(p.toPairs(chrs, hap))
}

// FinalMapper maps sort keys of the given haplotype back to names.
func (p HapChrPattern) FinalMapper(chrs []ChrIndex, hap Haplotype) FinalMapper {
	return newFinalMapper(p.toPairs(chrs, hap))
}

//
// Diploid patterns
//

// Validate checks that the pattern can produce a one-to-one mapping.
func (p DipChrPattern) Validate() error {
	if err := checkPlaceholder(p.Template, ChrIndexPlaceholder); err != nil {
		return err
	}
	if err := checkPlaceholder(p.Template, ChrHapPlaceholder); err != nil {
		return err
	}
	for _, h := range Haplotypes {
		name := p.HapNames.Choose(h)
		if name == "" {
			return configErrorf("haplotype name for %s must not be empty", h)
		}
		if strings.Contains(name, "%") {
			return configErrorf("haplotype name '%s' must not contain a placeholder", name)
		}
		if err := validateExclusions(p.Exclusions.Choose(h)); err != nil {
			return err
		}
	}
	if p.HapNames.Hap1 == p.HapNames.Hap2 {
		return configErrorf("haplotype names must differ, both are '%s'", p.HapNames.Hap1)
	}
	if err := validateSpecial(p.Special, true); err != nil {
		return err
	}
	return checkUniqueNames(p.toPairs(AllChrIndices()))
}

func (p DipChrPattern) isExcluded(c ChrIndex, h Haplotype) bool {
	for _, e := range p.Exclusions.Choose(h) {
		if e == c {
			return true
		}
	}
	return false
}

// ToChrName returns the name of a chromosome on one haplotype, and false if
// it is excluded from that haplotype.
func (p DipChrPattern) ToChrName(c ChrIndex, h Haplotype) (string, bool) {
	if p.isExcluded(c, h) {
		return "", false
	}
	hapName := p.HapNames.Choose(h)
	if name, ok := p.Special[c]; ok {
		return resolveHap(name, hapName), true
	}
	return resolveHap(resolveChr(p.Template, c), hapName), true
}

// toPairs returns the named chromosomes of both haplotypes sorted by key.
func (p DipChrPattern) toPairs(chrs []ChrIndex) []chrPair {
	pairs := make([]chrPair, 0, 2*len(chrs))
	for _, h := range Haplotypes {
		for _, c := range chrs {
			if name, ok := p.ToChrName(c, h); ok {
				pairs = append(pairs, chrPair{Index: c.ToInternalIndex(h), Name: name})
			}
		}
	}
	return pairs
}

// ToNames lists the names of the given chromosomes on both haplotypes,
// first haplotype first.
func (p DipChrPattern) ToNames(chrs []ChrIndex) []string {
	return pairNames(p.toPairs(BuildChrs(chrs)))
}

func (p DipChrPattern) InitMapper(chrs []ChrIndex) InitMapper {
	return newInitMapper(p.toPairs(chrs))
}

func (p DipChrPattern) FinalMapper(chrs []ChrIndex) FinalMapper {
	return newFinalMapper(p.toPairs(chrs))
}

// ToHapPattern specialises the pattern to one haplotype by fixing the
// haplotype placeholder and keeping only that haplotype's exclusions.
func (p DipChrPattern) ToHapPattern(h Haplotype) HapChrPattern {
	hapName := p.HapNames.Choose(h)
	var special map[ChrIndex]string
	if p.Special != nil {
		special = make(map[ChrIndex]string, len(p.Special))
		for c, name := range p.Special {
			special[c] = resolveHap(name, hapName)
		}
	}
	return HapChrPattern{
		Template:   resolveHap(p.Template, hapName),
		Special:    special,
		Exclusions: append([]ChrIndex(nil), p.Exclusions.Choose(h)...),
	}
}

//
// Validation helpers
//

func validateSpecial(special map[ChrIndex]string, diploid bool) error {
	for c, name := range special {
		if !c.Valid() {
			return configErrorf("invalid chromosome index %d in special names", int(c))
		}
		if name == "" {
			return configErrorf("special name for %s must not be empty", c)
		}
		if strings.Contains(name, ChrIndexPlaceholder) {
			return configErrorf("special name '%s' must not contain '%s'", name, ChrIndexPlaceholder)
		}
		if n := strings.Count(name, ChrHapPlaceholder); n > 1 || (n == 1 && !diploid) {
			return configErrorf("special name '%s' has a misplaced '%s'", name, ChrHapPlaceholder)
		}
	}
	return nil
}

func validateExclusions(exclusions []ChrIndex) error {
	seen := map[ChrIndex]bool{}
	for _, c := range exclusions {
		if !c.Valid() {
			return configErrorf("invalid chromosome index %d in exclusions", int(c))
		}
		if seen[c] {
			return configErrorf("%s is excluded more than once", c)
		}
		seen[c] = true
	}
	return nil
}

// checkUniqueNames rejects patterns that give two identities the same name,
// since names could then not be mapped back.
func checkUniqueNames(pairs []chrPair) error {
	seen := map[string]InternalChrIndex{}
	for _, pair := range pairs {
		if other, ok := seen[pair.Name]; ok {
			return configErrorf("%s and %s are both named '%s'", other, pair.Index, pair.Name)
		}
		seen[pair.Name] = pair.Index
	}
	return nil
}

func pairNames(pairs []chrPair) []string {
	names := make([]string, len(pairs))
	for i, pair := range pairs {
		names[i] = pair.Name
	}
	return names
}
