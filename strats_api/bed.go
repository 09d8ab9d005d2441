package strats_api

import (
	"sort"
)

// A row of a BED-like file. Only the coordinate columns are interpreted, any
// other column is carried along untouched.
type BedRow struct {
	Chrom string
	Start uint64
	End   uint64
	Other []string
}

// BedTable is an ordered list of rows.
type BedTable []BedRow

// A row whose chromosome name has been replaced by its sort key
type indexedRow struct {
	Index InternalChrIndex
	Row   BedRow
}

// A BedSource pairs the rows of one input with the mapper for its names.
type BedSource struct {
	InitMapper InitMapper
	Bed        BedTable
}

// FilterSortBed maps the chromosome names of bed to sort keys, dropping rows
// with names the mapper does not know, sorts the rows and gives them the
// names of the final mapper.
func FilterSortBed(im InitMapper, fm FinalMapper, bed BedTable) (BedTable, error) {
	rows := mapChromosomes(im, bed)
	sortRows(rows)
	return renameChromosomes(fm, rows)
}

// MergeBeds combines several inputs into one output. Each input is mapped
// with its own init mapper before everything is sorted together.
func MergeBeds(fm FinalMapper, sources ...BedSource) (BedTable, error) {
	var rows []indexedRow
	for _, src := range sources {
		rows = append(rows, mapChromosomes(src.InitMapper, src.Bed)...)
	}
	sortRows(rows)
	return renameChromosomes(fm, rows)
}

// SplitBed divides one diploid input into one output per haplotype.
func SplitBed(im InitMapper, sm SplitMapper, fms Diploid[FinalMapper], bed BedTable) (Diploid[BedTable], error) {
	var parts Diploid[[]indexedRow]
	for _, row := range mapChromosomes(im, bed) {
		if sm.Haplotype(row.Index) == Hap1 {
			parts.Hap1 = append(parts.Hap1, row)
		} else {
			parts.Hap2 = append(parts.Hap2, row)
		}
	}

	var out Diploid[BedTable]
	var err error
	sortRows(parts.Hap1)
	if out.Hap1, err = renameChromosomes(fms.Hap1, parts.Hap1); err != nil {
		return Diploid[BedTable]{}, err
	}
	sortRows(parts.Hap2)
	if out.Hap2, err = renameChromosomes(fms.Hap2, parts.Hap2); err != nil {
		return Diploid[BedTable]{}, err
	}
	return out, nil
}

// mapChromosomes replaces names by sort keys. Rows with unknown names are
// either off-target contigs or filtered chromosomes; neither is an error.
func mapChromosomes(im InitMapper, bed BedTable) []indexedRow {
	rows := make([]indexedRow, 0, len(bed))
	for _, row := range bed {
		i, ok := im[row.Chrom]
		if !ok {
			continue
		}
		rows = append(rows, indexedRow{Index: i, Row: row})
	}
	if dropped := len(bed) - len(rows); dropped > 0 {
		Logger.Debugf("Dropped %d of %d rows with unmapped chromosomes", dropped, len(bed))
	}
	return rows
}

// sortRows orders rows by sort key, start and end. Ties keep their input
// order.
func sortRows(rows []indexedRow) {
	sort.SliceStable(rows, func(a, b int) bool {
		x, y := &rows[a], &rows[b]
		if x.Index != y.Index {
			return x.Index < y.Index
		}
		if x.Row.Start != y.Row.Start {
			return x.Row.Start < y.Row.Start
		}
		return x.Row.End < y.Row.End
	})
}

// renameChromosomes gives every row its output name. A key the final mapper
// cannot name means the mappers were built from mismatched patterns.
func renameChromosomes(fm FinalMapper, rows []indexedRow) (BedTable, error) {
	bed := make(BedTable, len(rows))
	for n, row := range rows {
		name, ok := fm[row.Index]
		if !ok {
			return nil, designErrorf("no final name for chromosome %s", row.Index)
		}
		bed[n] = row.Row
		bed[n].Chrom = name
	}
	return bed, nil
}
