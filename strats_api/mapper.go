package strats_api

import (
	"sort"
)

// InitMapper translates chromosome names found in an input file into sort
// keys. Names absent from the mapper are not wanted and get dropped.
type InitMapper map[string]InternalChrIndex

// FinalMapper translates sort keys into the chromosome names of an output.
type FinalMapper map[InternalChrIndex]string

// SplitMapper assigns a sort key to the haplotype it belongs to. Since every
// first haplotype key is below every second haplotype key this only needs
// the lowest key of the second haplotype.
type SplitMapper struct {
	boundary InternalChrIndex
}

func newInitMapper(pairs []chrPair) InitMapper {
	m := make(InitMapper, len(pairs))
	for _, pair := range pairs {
		m[pair.Name] = pair.Index
	}
	return m
}

func newFinalMapper(pairs []chrPair) FinalMapper {
	m := make(FinalMapper, len(pairs))
	for _, pair := range pairs {
		m[pair.Index] = pair.Name
	}
	return m
}

// NewSplitMapper returns the mapper separating the two haplotypes.
func NewSplitMapper() SplitMapper {
	return SplitMapper{boundary: ChrIndex(1).ToInternalIndex(Hap2)}
}

// Haplotype returns the haplotype of a sort key.
func (s SplitMapper) Haplotype(i InternalChrIndex) Haplotype {
	if i < s.boundary {
		return Hap1
	}
	return Hap2
}

// Restrict drops every name whose key the final mapper cannot name. This is
// how a chromosome excluded at the destination is dropped at the source.
func (m InitMapper) Restrict(fms ...FinalMapper) InitMapper {
	restricted := make(InitMapper, len(m))
	for name, i := range m {
		for _, fm := range fms {
			if _, ok := fm[i]; ok {
				restricted[name] = i
				break
			}
		}
	}
	return restricted
}

// Reverse inverts a final mapper, giving the names an output may contain.
func (m FinalMapper) Reverse() InitMapper {
	reversed := make(InitMapper, len(m))
	for i, name := range m {
		reversed[name] = i
	}
	return reversed
}

// Indices returns the keys of the mapper in ascending order.
func (m FinalMapper) Indices() []InternalChrIndex {
	indices := make([]InternalChrIndex, 0, len(m))
	for i := range m {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(a, b int) bool { return indices[a] < indices[b] })
	return indices
}
