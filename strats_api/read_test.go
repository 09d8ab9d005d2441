package strats_api

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBed(t *testing.T) {
	input := strings.Join([]string{
		"chrom\tstart\tend",
		"chr1\t10\t20\tgene",
		"",
		"# comment",
		"chr2\t30\t40",
	}, "\n")
	params := DefaultBedParams()
	params.SkipLines = 1
	bed, err := ReadBed(strings.NewReader(input), "test", params)
	require.NoError(t, err)
	assert.Equal(t, BedTable{row("chr1", 10, 20), row("chr2", 30, 40)}, bed)

	// Without skipping, the header is not a valid row
	_, err = ReadBed(strings.NewReader(input), "test", DefaultBedParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test: line 1")
}

func TestReadBedColumns(t *testing.T) {
	input := "x  chr1 \t 5 10 a b\nx chr2 6 7 c d\n"
	params := BedParams{
		Columns: BedColumns{Chr: 1, Start: 2, End: 3},
		Sep:     `\s+`,
		More:    []int{5, 0},
	}
	bed, err := ReadBed(strings.NewReader(input), "test", params)
	require.NoError(t, err)
	assert.Equal(t, BedTable{
		row("chr1", 5, 10, "b", "x"),
		row("chr2", 6, 7, "d", "x"),
	}, bed)

	params.More = nil
	params.KeepAll = true
	bed, err = ReadBed(strings.NewReader(input), "test", params)
	require.NoError(t, err)
	assert.Equal(t, BedTable{
		row("chr1", 5, 10, "x", "a", "b"),
		row("chr2", 6, 7, "x", "c", "d"),
	}, bed)
}

func TestReadBedErrors(t *testing.T) {
	tests := []struct {
		input string
		line  string
	}{
		{"chr1\t1\n", "line 1"},
		{"chr1\t1\t2\nchr1\tone\t2\n", "line 2"},
		{"chr1\t1\t2\nchr1\t1\t2\nchr1\t1\t-2\n", "line 3"},
	}
	for _, test := range tests {
		_, err := ReadBed(strings.NewReader(test.input), "in.bed", DefaultBedParams())
		require.Error(t, err, test.input)
		assert.Contains(t, err.Error(), "in.bed: "+test.line)
	}

	params := DefaultBedParams()
	params.More = []int{5}
	_, err := ReadBed(strings.NewReader("chr1\t1\t2\tx\n"), "in.bed", params)
	assert.Error(t, err)

	params = DefaultBedParams()
	params.Sep = "("
	_, err = ReadBed(strings.NewReader(""), "in.bed", params)
	assert.True(t, IsConfigError(err))
}

func TestReadBedFile(t *testing.T) {
	dir := t.TempDir()
	content := "chr1\t1\t2\nchrX\t3\t4\n"
	want := BedTable{row("chr1", 1, 2), row("chrX", 3, 4)}

	plain := filepath.Join(dir, "plain.bed")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0o644))
	bed, err := ReadBedFile(plain, DefaultBedParams())
	require.NoError(t, err)
	assert.Equal(t, want, bed)

	gz := filepath.Join(dir, "compressed.bed.gz")
	file, err := os.Create(gz)
	require.NoError(t, err)
	gzWriter := gzip.NewWriter(file)
	_, err = gzWriter.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gzWriter.Close())
	require.NoError(t, file.Close())
	bed, err = ReadBedFile(gz, DefaultBedParams())
	require.NoError(t, err)
	assert.Equal(t, want, bed)

	// bgzip output can be read back
	out := filepath.Join(dir, "out.bed.gz")
	require.NoError(t, WriteOutputs([]Output{{Bed: want}}, []string{out}))
	require.NoError(t, CheckBgzip(out))
	bed, err = ReadBedFile(out, DefaultBedParams())
	require.NoError(t, err)
	assert.Equal(t, want, bed)

	_, err = ReadBedFile(filepath.Join(dir, "missing.bed"), DefaultBedParams())
	assert.Error(t, err)
}

func TestWriteBed(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteBed(&b, BedTable{row("chr1", 0, 10, "a", "b"), row("chr2", 5, 6)}))
	assert.Equal(t, "chr1\t0\t10\ta\tb\nchr2\t5\t6\n", b.String())
}

func TestWriteOutputs(t *testing.T) {
	dir := t.TempDir()
	outputs := []Output{
		{Split: true, Haplotype: Hap1, Bed: BedTable{row("chr1", 0, 1)}},
		{Split: true, Haplotype: Hap2, Bed: BedTable{row("chr1", 2, 3)}},
	}
	paths := []string{filepath.Join(dir, "a.bed"), filepath.Join(dir, "b.bed")}
	require.NoError(t, WriteOutputs(outputs, paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, outputs[i].Bed[0].String()+"\n", string(data))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// A failure on the second output leaves neither in place
	failDir := t.TempDir()
	paths = []string{filepath.Join(failDir, "a.bed"), filepath.Join(failDir, "missing", "b.bed")}
	assert.Error(t, WriteOutputs(outputs, paths))
	entries, err = os.ReadDir(failDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.True(t, IsDesignError(WriteOutputs(outputs, paths[:1])))
}

func TestOutputPaths(t *testing.T) {
	split := []Output{{Split: true, Haplotype: Hap1}, {Split: true, Haplotype: Hap2}}

	paths, err := OutputPaths(split, []string{"out/x.bed.gz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"out/x_hap1.bed.gz", "out/x_hap2.bed.gz"}, paths)

	paths, err = OutputPaths(split, []string{"a.bed", "b.bed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bed", "b.bed"}, paths)

	paths, err = OutputPaths([]Output{{}}, []string{"c.bed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.bed"}, paths)

	_, err = OutputPaths([]Output{{}}, []string{"a.bed", "b.bed"})
	assert.Error(t, err)
	_, err = OutputPaths(split, []string{"a", "b", "c"})
	assert.Error(t, err)
}

func TestInsertSuffix(t *testing.T) {
	assert.Equal(t, "x_hap1.bed.gz", insertSuffix("x.bed.gz", "_hap1"))
	assert.Equal(t, "dir.d/x_hap2", insertSuffix("dir.d/x", "_hap2"))
	assert.Equal(t, ".hidden_hap1", insertSuffix(".hidden", "_hap1"))
}
