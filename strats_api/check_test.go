package strats_api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBed(t *testing.T) {
	reverse := DefaultHapChrPattern().FinalMapper(AllChrIndices(), Hap1).Reverse()
	tests := []struct {
		bed  BedTable
		want string
	}{
		{BedTable{row("chr1", 0, 10), row("chr1", 11, 20), row("chr2", 0, 5)}, ""},
		{BedTable{}, ""},
		{BedTable{row("chr1", 0, 10, "extra")}, "bed file has wrong number of columns"},
		{BedTable{row("1", 0, 10)}, "invalid chr: 1"},
		{BedTable{row("chr2", 0, 10), row("chr1", 0, 10)}, "chrom column not sorted"},
		{BedTable{row("chr1", 10, 10)}, "invalid region"},
		{BedTable{row("chr1", 0, 10), row("chr1", 5, 20)}, "non-disjoint regions"},
		// Touching regions should have been merged
		{BedTable{row("chr1", 0, 10), row("chr1", 10, 20)}, "non-disjoint regions"},
		// Starts may decrease on a new chromosome
		{BedTable{row("chr1", 50, 60), row("chr2", 0, 10)}, ""},
	}
	for i, test := range tests {
		err := CheckBed(test.bed, reverse)
		if test.want == "" {
			assert.NoError(t, err, "test %d", i)
		} else {
			require.Error(t, err, "test %d", i)
			assert.Contains(t, err.Error(), test.want, "test %d", i)
		}
	}
}

func TestReverseMapper(t *testing.T) {
	ref := Dip2ChrSource{ChrPattern: Diploid[HapChrPattern]{
		Hap1: HapChrPattern{Template: "chr%i", Exclusions: []ChrIndex{ChrX}},
		Hap2: HapChrPattern{Template: "chr%i", Exclusions: []ChrIndex{ChrY}},
	}}
	chrs := []ChrIndex{1, ChrX, ChrY}
	fms := RefFinalMappers(ref, chrs)
	require.Len(t, fms, 2)
	assert.Equal(t, InitMapper{"chr1": 0, "chrY": 23}, ReverseMapper(ref, chrs, Hap1))
	assert.Equal(t, InitMapper{"chr1": 24, "chrX": 46}, ReverseMapper(ref, chrs, Hap2))

	hap := HapChrSource{ChrPattern: DefaultHapChrPattern()}
	assert.Len(t, RefFinalMappers(hap, nil), 1)
	assert.Equal(t, ReverseMapper(hap, chrs, Hap1), ReverseMapper(hap, chrs, Hap2))

	dip := Dip1ChrSource{ChrPattern: DefaultDipChrPattern()}
	assert.Len(t, RefFinalMappers(dip, nil), 1)
	assert.Equal(t, InitMapper{
		"chr1_PATERNAL": 0,
		"chrY_PATERNAL": 23,
		"chr1_MATERNAL": 24,
		"chrX_MATERNAL": 46,
	}, ReverseMapper(dip, chrs, Hap1))
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	reverse := DefaultHapChrPattern().FinalMapper(AllChrIndices(), Hap1).Reverse()

	good := filepath.Join(dir, "good.bed.gz")
	require.NoError(t, WriteOutputs([]Output{{Bed: BedTable{row("chr1", 0, 10), row("chrX", 0, 10)}}}, []string{good}))
	assert.Empty(t, CheckFile(good, reverse))

	unsorted := filepath.Join(dir, "unsorted.bed.gz")
	require.NoError(t, WriteOutputs([]Output{{Bed: BedTable{row("chrX", 0, 10), row("chr1", 0, 10)}}}, []string{unsorted}))
	assert.Equal(t, []string{unsorted + ": chrom column not sorted"}, CheckFile(unsorted, reverse))

	plain := filepath.Join(dir, "plain.bed")
	require.NoError(t, os.WriteFile(plain, []byte("chr1\t0\t10\tname\n"), 0o644))
	assert.Equal(t, []string{
		plain + ": is not bgzip file",
		plain + ": bed file has wrong number of columns",
	}, CheckFile(plain, reverse))

	missing := filepath.Join(dir, "missing.bed.gz")
	failures := CheckFile(missing, reverse)
	assert.Len(t, failures, 2)
}
