package strats_api

import (
	"fmt"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/pkg/errors"
)

// RefFinalMappers returns the final mapper of every file of a reference
// build: one for haploid and combined references, one per haplotype for
// split references.
func RefFinalMappers(ref ChrSource, chrs []ChrIndex) []FinalMapper {
	chrs = BuildChrs(chrs)
	switch r := ref.(type) {
	case HapChrSource:
		return []FinalMapper{r.ChrPattern.FinalMapper(chrs, Hap1)}
	case Dip1ChrSource:
		return []FinalMapper{r.ChrPattern.FinalMapper(chrs)}
	case Dip2ChrSource:
		return []FinalMapper{
			r.ChrPattern.Hap1.FinalMapper(chrs, Hap1),
			r.ChrPattern.Hap2.FinalMapper(chrs, Hap2),
		}
	}
	return nil
}

// ReverseMapper returns the mapper from names to sort keys that a checked
// file must follow. hap picks the file of a split reference and is ignored
// otherwise.
func ReverseMapper(ref ChrSource, chrs []ChrIndex, hap Haplotype) InitMapper {
	fms := RefFinalMappers(ref, chrs)
	if len(fms) == 0 {
		return InitMapper{}
	}
	if len(fms) == 1 {
		return fms[0].Reverse()
	}
	return fms[hap].Reverse()
}

// CheckBed tests a final stratification table: three columns, chromosomes
// known to the reference and in order, non-empty regions, and regions
// separated by at least one base. It returns a description of the first
// problem, or nil.
func CheckBed(bed BedTable, reverse InitMapper) error {
	prevChrom := ""
	prevIndex := InternalChrIndex(-1)
	var prevStart, prevEnd uint64
	for n, row := range bed {
		if len(row.Other) != 0 {
			return errors.Errorf("bed file has wrong number of columns")
		}
		index, ok := reverse[row.Chrom]
		if !ok {
			return errors.Errorf("invalid chr: %s", row.Chrom)
		}
		if index < prevIndex {
			return errors.Errorf("chrom column not sorted")
		}
		if row.Start >= row.End {
			return errors.Errorf("invalid region: %s", row)
		}
		if n > 0 && index == prevIndex && row.Start <= prevEnd {
			return errors.Errorf("non-disjoint regions: %s %d %d and %s", prevChrom, prevStart, prevEnd, row)
		}
		prevChrom = row.Chrom
		prevIndex = index
		prevStart = row.Start
		prevEnd = row.End
	}
	return nil
}

// CheckBgzip returns an error unless path is bgzip compressed.
func CheckBgzip(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	bgReader, err := bgzf.NewReader(file, 1)
	if err != nil {
		return errors.Errorf("is not bgzip file")
	}
	return bgReader.Close()
}

// CheckFile runs every check on one output file and returns the problems
// found, prefixed by the file name.
func CheckFile(path string, reverse InitMapper) []string {
	var failures []string
	fail := func(err error) {
		failures = append(failures, fmt.Sprintf("%s: %v", path, err))
	}

	var bed BedTable
	if err := CheckBgzip(path); err != nil {
		fail(err)
		b, err := ReadBedFile(path, allColumnsParams())
		if err != nil {
			fail(err)
			return failures
		}
		bed = b
	} else {
		b, err := readBgzipBed(path)
		if err != nil {
			fail(err)
			return failures
		}
		bed = b
	}

	if err := CheckBed(bed, reverse); err != nil {
		fail(err)
	}
	return failures
}

// readBgzipBed reads a bgzip file keeping any columns after the third.
func readBgzipBed(path string) (BedTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	bgReader, err := bgzf.NewReader(file, 1)
	if err != nil {
		return nil, err
	}
	defer bgReader.Close()
	return ReadBed(bgReader, path, allColumnsParams())
}

// Parameters for a plain BED file keeping every column after the third, so
// that extra columns can be reported.
func allColumnsParams() BedParams {
	params := DefaultBedParams()
	params.KeepAll = true
	return params
}
