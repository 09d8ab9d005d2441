package strats_api

// The four ways chromosome names get converted between an input file and a
// reference. Each holds the pattern of the input ("From"), the pattern of
// the reference ("To") and the chromosomes of the build. Init mappers are
// always restricted to what the destination can name, so chromosomes excluded
// by the reference are dropped while reading.

// HapToHapConversion converts one haploid file into one haploid output.
type HapToHapConversion struct {
	From HapChrPattern
	To   HapChrPattern
	Chrs []ChrIndex
	// Haplotype stamped into the sort keys; Hap1 unless this conversion
	// produces one half of a split diploid reference.
	Hap Haplotype
}

func (c HapToHapConversion) InitMapper() InitMapper {
	return c.From.InitMapper(c.Chrs, c.Hap).Restrict(c.FinalMapper())
}

func (c HapToHapConversion) FinalMapper() FinalMapper {
	return c.To.FinalMapper(c.Chrs, c.Hap)
}

// DipToDipConversion converts a combined diploid file into a combined
// diploid output.
type DipToDipConversion struct {
	From DipChrPattern
	To   DipChrPattern
	Chrs []ChrIndex
}

func (c DipToDipConversion) InitMapper() InitMapper {
	return c.From.InitMapper(c.Chrs).Restrict(c.FinalMapper())
}

func (c DipToDipConversion) FinalMapper() FinalMapper {
	return c.To.FinalMapper(c.Chrs)
}

// Split narrows the conversion to one haplotype of both patterns.
func (c DipToDipConversion) Split(h Haplotype) HapToHapConversion {
	return HapToHapConversion{
		From: c.From.ToHapPattern(h),
		To:   c.To.ToHapPattern(h),
		Chrs: c.Chrs,
		Hap:  h,
	}
}

// HapToDipConversion merges two haploid files into one combined diploid
// output.
type HapToDipConversion struct {
	From Diploid[HapChrPattern]
	To   DipChrPattern
	Chrs []ChrIndex
}

// InitMappers returns one mapper per source haplotype; both feed the same
// final mapper.
func (c HapToDipConversion) InitMappers() Diploid[InitMapper] {
	fm := c.FinalMapper()
	return MapDiploid(c.From, func(h Haplotype, p HapChrPattern) InitMapper {
		return p.InitMapper(c.Chrs, h).Restrict(fm)
	})
}

func (c HapToDipConversion) FinalMapper() FinalMapper {
	return c.To.FinalMapper(c.Chrs)
}

// DipToHapConversion splits a combined diploid file into two haploid
// outputs.
type DipToHapConversion struct {
	From DipChrPattern
	To   Diploid[HapChrPattern]
	Chrs []ChrIndex
}

func (c DipToHapConversion) InitMapper() InitMapper {
	fms := c.FinalMappers()
	return c.From.InitMapper(c.Chrs).Restrict(fms.Hap1, fms.Hap2)
}

func (c DipToHapConversion) SplitMapper() SplitMapper {
	return NewSplitMapper()
}

func (c DipToHapConversion) FinalMappers() Diploid[FinalMapper] {
	return MapDiploid(c.To, func(h Haplotype, p HapChrPattern) FinalMapper {
		return p.FinalMapper(c.Chrs, h)
	})
}
