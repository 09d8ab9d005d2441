package strats_api

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/pkg/errors"
)

// WriteBed writes the rows as tab separated lines.
func WriteBed(w io.Writer, bed BedTable) error {
	writer := bufio.NewWriter(w)
	for _, row := range bed {
		if _, err := writer.WriteString(row.String() + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// Convert a row to its BED line without the trailing newline
func (row BedRow) String() string {
	fields := make([]string, 0, 3+len(row.Other))
	fields = append(fields,
		row.Chrom,
		strconv.FormatUint(row.Start, 10),
		strconv.FormatUint(row.End, 10),
	)
	fields = append(fields, row.Other...)
	return strings.Join(fields, "\t")
}

// writeBedFile writes bed to path, bgzip compressed if the path ends in .gz.
func writeBedFile(path string, bed BedTable) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create the output file")
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "failed to close %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return errors.Wrapf(WriteBed(file, bed), "failed to write %s", path)
	}
	bgWriter := bgzf.NewWriter(file, 1)
	if err := WriteBed(bgWriter, bed); err != nil {
		bgWriter.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(bgWriter.Close(), "failed to write %s", path)
}

// WriteOutputs writes every output to its path. Files are first written next
// to their destination and only moved into place once all of them have been
// written, so a failed run leaves no output behind.
func WriteOutputs(outputs []Output, paths []string) error {
	if len(outputs) != len(paths) {
		return designErrorf("%d output(s) but %d path(s)", len(outputs), len(paths))
	}

	tmpPaths := make([]string, len(paths))
	cleanup := func() {
		for _, tmp := range tmpPaths {
			if tmp != "" {
				os.Remove(tmp)
			}
		}
	}
	for i, path := range paths {
		// Keep the extension so compression is chosen the same way
		tmpPaths[i] = filepath.Join(filepath.Dir(path), ".tmp."+filepath.Base(path))
		if err := writeBedFile(tmpPaths[i], outputs[i].Bed); err != nil {
			cleanup()
			return err
		}
	}
	for i, path := range paths {
		if err := os.Rename(tmpPaths[i], path); err != nil {
			cleanup()
			return errors.Wrapf(err, "failed to move output into %s", path)
		}
		tmpPaths[i] = ""
		Logger.Infof("Wrote %d rows to %s", len(outputs[i].Bed), path)
	}
	return nil
}

// OutputPaths decides where the outputs of a plan go. Given one path per
// output they are used as is; a single path for two haplotype outputs gets
// the haplotype inserted before its extensions.
func OutputPaths(outputs []Output, paths []string) ([]string, error) {
	if len(paths) == len(outputs) {
		return paths, nil
	}
	if len(paths) == 1 && len(outputs) > 1 {
		derived := make([]string, len(outputs))
		for i, out := range outputs {
			if !out.Split {
				return nil, designErrorf("cannot derive a path for an output without haplotype")
			}
			derived[i] = insertSuffix(paths[0], "_"+out.Haplotype.Name())
		}
		return derived, nil
	}
	return nil, errors.Errorf("got %d output path(s) for %d output(s)", len(paths), len(outputs))
}

// insertSuffix adds suffix to the file name before all of its extensions,
// so out.bed.gz becomes out_hap1.bed.gz.
func insertSuffix(path string, suffix string) string {
	dir, base := filepath.Split(path)
	if i := strings.Index(base, "."); i > 0 {
		return dir + base[:i] + suffix + base[i:]
	}
	return dir + base + suffix
}
