package strats_api

import (
	"golang.org/x/text/cases"
)

// Layout says how the haplotypes of a genome are laid out in files.
type Layout int

const (
	// One file, one haplotype
	LayoutHaploid Layout = iota
	// One file holding both haplotypes
	LayoutDiploidCombined
	// Two files, one per haplotype
	LayoutDiploidSplit
)

var layoutNames = map[Layout]string{
	LayoutHaploid:         "haploid",
	LayoutDiploidCombined: "diploid_combined",
	LayoutDiploidSplit:    "diploid_split",
}

func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLayout reads a layout name, ignoring case.
func ParseLayout(name string) (Layout, error) {
	folded := cases.Fold().String(name)
	for l, n := range layoutNames {
		if n == folded {
			return l, nil
		}
	}
	return 0, configErrorf("unknown layout '%s', must be one of: haploid, diploid_combined, diploid_split", name)
}

func (l *Layout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseLayout(name)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// A ChrSource is the naming of either a reference or an input file. It is one
// of HapChrSource, Dip1ChrSource or Dip2ChrSource.
type ChrSource interface {
	Layout() Layout
	// The number of files making up the source
	NumFiles() int
	isChrSource()
}

// HapChrSource is a haploid file.
type HapChrSource struct {
	ChrPattern HapChrPattern
}

// Dip1ChrSource is one file holding both haplotypes, told apart by name.
type Dip1ChrSource struct {
	ChrPattern DipChrPattern
}

// Dip2ChrSource is two files, one per haplotype. Which haplotype a file holds
// is determined by its position, not by its chromosome names.
type Dip2ChrSource struct {
	ChrPattern Diploid[HapChrPattern]
}

func (HapChrSource) Layout() Layout  { return LayoutHaploid }
func (Dip1ChrSource) Layout() Layout { return LayoutDiploidCombined }
func (Dip2ChrSource) Layout() Layout { return LayoutDiploidSplit }

func (HapChrSource) NumFiles() int  { return 1 }
func (Dip1ChrSource) NumFiles() int { return 1 }
func (Dip2ChrSource) NumFiles() int { return 2 }

func (HapChrSource) isChrSource()  {}
func (Dip1ChrSource) isChrSource() {}
func (Dip2ChrSource) isChrSource() {}

// Pairing names the five supported (input, reference) layout combinations.
type Pairing int

const (
	PairHapToHap Pairing = iota
	PairDip1ToDip1
	PairDip1ToDip2
	PairDip2ToDip1
	PairDip2ToDip2
)

func (p Pairing) String() string {
	switch p {
	case PairHapToHap:
		return "haploid -> haploid"
	case PairDip1ToDip1:
		return "diploid_combined -> diploid_combined"
	case PairDip1ToDip2:
		return "diploid_combined -> diploid_split (split)"
	case PairDip2ToDip1:
		return "diploid_split -> diploid_combined (merge)"
	case PairDip2ToDip2:
		return "diploid_split -> diploid_split"
	}
	return "unknown"
}

// An Output is one normalized table produced by a plan. Split outputs belong
// to one haplotype of a split reference.
type Output struct {
	Split     bool
	Haplotype Haplotype
	Bed       BedTable
}

// Key names the output after the reference it belongs to, adding the
// haplotype for split references.
func (o Output) Key(refKey string) string {
	if o.Split {
		return refKey + "_" + o.Haplotype.Name()
	}
	return refKey
}

// A Plan normalizes the input tables of one pairing. Run either returns every
// output or an error.
type Plan interface {
	Pairing() Pairing
	NumInputs() int
	NumOutputs() int
	Run(inputs []BedTable) ([]Output, error)
}

// HapPlan: one haploid input, one haploid output.
type HapPlan struct {
	Conversion HapToHapConversion
}

// Dip1to1Plan: one combined input, one combined output.
type Dip1to1Plan struct {
	Conversion DipToDipConversion
}

// Dip1to2Plan: one combined input split into one output per haplotype.
type Dip1to2Plan struct {
	Conversion DipToHapConversion
}

// Dip2to1Plan: one input per haplotype merged into one combined output.
type Dip2to1Plan struct {
	Conversion HapToDipConversion
}

// Dip2to2Plan: one input per haplotype, each converted to the output of the
// same haplotype.
type Dip2to2Plan struct {
	Conversions Diploid[HapToHapConversion]
}

func (HapPlan) Pairing() Pairing     { return PairHapToHap }
func (Dip1to1Plan) Pairing() Pairing { return PairDip1ToDip1 }
func (Dip1to2Plan) Pairing() Pairing { return PairDip1ToDip2 }
func (Dip2to1Plan) Pairing() Pairing { return PairDip2ToDip1 }
func (Dip2to2Plan) Pairing() Pairing { return PairDip2ToDip2 }

func (HapPlan) NumInputs() int     { return 1 }
func (Dip1to1Plan) NumInputs() int { return 1 }
func (Dip1to2Plan) NumInputs() int { return 1 }
func (Dip2to1Plan) NumInputs() int { return 2 }
func (Dip2to2Plan) NumInputs() int { return 2 }

func (HapPlan) NumOutputs() int     { return 1 }
func (Dip1to1Plan) NumOutputs() int { return 1 }
func (Dip1to2Plan) NumOutputs() int { return 2 }
func (Dip2to1Plan) NumOutputs() int { return 1 }
func (Dip2to2Plan) NumOutputs() int { return 2 }

func checkInputs(p Plan, inputs []BedTable) error {
	if len(inputs) != p.NumInputs() {
		return designErrorf("%s needs %d input(s), got %d", p.Pairing(), p.NumInputs(), len(inputs))
	}
	return nil
}

func (p HapPlan) Run(inputs []BedTable) ([]Output, error) {
	if err := checkInputs(p, inputs); err != nil {
		return nil, err
	}
	c := p.Conversion
	bed, err := FilterSortBed(c.InitMapper(), c.FinalMapper(), inputs[0])
	if err != nil {
		return nil, err
	}
	return []Output{{Bed: bed}}, nil
}

func (p Dip1to1Plan) Run(inputs []BedTable) ([]Output, error) {
	if err := checkInputs(p, inputs); err != nil {
		return nil, err
	}
	c := p.Conversion
	bed, err := FilterSortBed(c.InitMapper(), c.FinalMapper(), inputs[0])
	if err != nil {
		return nil, err
	}
	return []Output{{Bed: bed}}, nil
}

func (p Dip1to2Plan) Run(inputs []BedTable) ([]Output, error) {
	if err := checkInputs(p, inputs); err != nil {
		return nil, err
	}
	c := p.Conversion
	beds, err := SplitBed(c.InitMapper(), c.SplitMapper(), c.FinalMappers(), inputs[0])
	if err != nil {
		return nil, err
	}
	return []Output{
		{Split: true, Haplotype: Hap1, Bed: beds.Hap1},
		{Split: true, Haplotype: Hap2, Bed: beds.Hap2},
	}, nil
}

func (p Dip2to1Plan) Run(inputs []BedTable) ([]Output, error) {
	if err := checkInputs(p, inputs); err != nil {
		return nil, err
	}
	c := p.Conversion
	ims := c.InitMappers()
	bed, err := MergeBeds(
		c.FinalMapper(),
		BedSource{InitMapper: ims.Hap1, Bed: inputs[0]},
		BedSource{InitMapper: ims.Hap2, Bed: inputs[1]},
	)
	if err != nil {
		return nil, err
	}
	return []Output{{Bed: bed}}, nil
}

func (p Dip2to2Plan) Run(inputs []BedTable) ([]Output, error) {
	if err := checkInputs(p, inputs); err != nil {
		return nil, err
	}
	outputs := make([]Output, 0, 2)
	for n, h := range Haplotypes {
		c := p.Conversions.Choose(h)
		bed, err := FilterSortBed(c.InitMapper(), c.FinalMapper(), inputs[n])
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, Output{Split: true, Haplotype: h, Bed: bed})
	}
	return outputs, nil
}

// Dispatch picks the plan converting input files laid out like input into
// outputs laid out like ref. nInputs is the number of input files supplied;
// any combination not covered by the five plans is a DesignError.
func Dispatch(ref ChrSource, input ChrSource, chrs []ChrIndex, nInputs int) (Plan, error) {
	chrs = BuildChrs(chrs)
	var plan Plan
	switch r := ref.(type) {
	case HapChrSource:
		if i, ok := input.(HapChrSource); ok {
			plan = HapPlan{Conversion: HapToHapConversion{From: i.ChrPattern, To: r.ChrPattern, Chrs: chrs, Hap: Hap1}}
		}
	case Dip1ChrSource:
		switch i := input.(type) {
		case Dip1ChrSource:
			plan = Dip1to1Plan{Conversion: DipToDipConversion{From: i.ChrPattern, To: r.ChrPattern, Chrs: chrs}}
		case Dip2ChrSource:
			plan = Dip2to1Plan{Conversion: HapToDipConversion{From: i.ChrPattern, To: r.ChrPattern, Chrs: chrs}}
		}
	case Dip2ChrSource:
		switch i := input.(type) {
		case Dip1ChrSource:
			plan = Dip1to2Plan{Conversion: DipToHapConversion{From: i.ChrPattern, To: r.ChrPattern, Chrs: chrs}}
		case Dip2ChrSource:
			plan = Dip2to2Plan{Conversions: NewDiploid(func(h Haplotype) HapToHapConversion {
				return HapToHapConversion{
					From: i.ChrPattern.Choose(h),
					To:   r.ChrPattern.Choose(h),
					Chrs: chrs,
					Hap:  h,
				}
			})}
		}
	}
	if plan == nil {
		return nil, designErrorf("cannot convert %s input into a %s reference", layoutOf(input), layoutOf(ref))
	}
	if plan.NumInputs() != nInputs {
		return nil, designErrorf("%s needs %d input file(s), got %d", plan.Pairing(), plan.NumInputs(), nInputs)
	}
	Logger.Debugf("Using %s conversion for %d chromosome(s)", plan.Pairing(), len(chrs))
	return plan, nil
}

func layoutOf(s ChrSource) string {
	if s == nil {
		return "missing"
	}
	return s.Layout().String()
}
