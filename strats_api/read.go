package strats_api

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// ReadBedFile reads a BED-like file, decompressing it when its name ends in
// .gz (plain gzip and bgzip both work).
func ReadBedFile(path string, params BedParams) (BedTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the input file")
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decompress %s", path)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	bed, err := ReadBed(reader, path, params)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Read %d rows from %s", len(bed), path)
	return bed, nil
}

// ReadBed parses the rows of a BED-like stream. name is only used in error
// messages. Blank lines and lines starting with '#' are skipped.
func ReadBed(reader io.Reader, name string, params BedParams) (BedTable, error) {
	sep, err := regexp.Compile(params.Sep)
	if err != nil {
		return nil, &ConfigError{err: errors.Wrapf(err, "invalid column separator '%s'", params.Sep)}
	}
	minColumns := params.minColumns()

	bed := BedTable{}
	scanner := bufio.NewScanner(reader)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, 0, 64*1024), maxCapacity)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= params.SkipLines {
			continue
		}
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseBedLine(sep.Split(line, -1), params, minColumns)
		if err != nil {
			return nil, lineError(err, name, lineNo)
		}
		bed = append(bed, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return bed, nil
}

// The number of columns a line needs for every configured column to exist
func (p BedParams) minColumns() int {
	last := p.Columns.Chr
	for _, c := range append([]int{p.Columns.Start, p.Columns.End}, p.More...) {
		if c > last {
			last = c
		}
	}
	return last + 1
}

func parseBedLine(fields []string, params BedParams, minColumns int) (BedRow, error) {
	if len(fields) < minColumns {
		return BedRow{}, errors.Errorf("found %d column(s), need at least %d", len(fields), minColumns)
	}

	row := BedRow{Chrom: fields[params.Columns.Chr]}
	var err error
	if row.Start, err = strconv.ParseUint(fields[params.Columns.Start], 10, 64); err != nil {
		return BedRow{}, errors.Wrap(err, "invalid start coordinate")
	}
	if row.End, err = strconv.ParseUint(fields[params.Columns.End], 10, 64); err != nil {
		return BedRow{}, errors.Wrap(err, "invalid end coordinate")
	}
	if params.KeepAll {
		for i, field := range fields {
			if i != params.Columns.Chr && i != params.Columns.Start && i != params.Columns.End {
				row.Other = append(row.Other, field)
			}
		}
	} else if len(params.More) > 0 {
		row.Other = make([]string, len(params.More))
		for i, c := range params.More {
			row.Other[i] = fields[c]
		}
	}
	return row, nil
}
