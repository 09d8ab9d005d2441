package strats_api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChrIndexFromName(t *testing.T) {
	tests := []struct {
		name string
		want ChrIndex
		ok   bool
	}{
		{"1", 1, true},
		{"9", 9, true},
		{"10", 10, true},
		{"22", 22, true},
		{"X", ChrX, true},
		{"Y", ChrY, true},
		{"0", 0, false},
		{"23", 0, false},
		{"01", 0, false},
		{"+1", 0, false},
		{"x", 0, false},
		{"chr1", 0, false},
		{"M", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		got, err := ChrIndexFromName(test.name)
		if !test.ok {
			assert.Error(t, err, "name %q", test.name)
			continue
		}
		require.NoError(t, err, "name %q", test.name)
		assert.Equal(t, test.want, got)
		assert.Equal(t, test.name, got.Name())
	}
}

func TestInternalIndexOrder(t *testing.T) {
	var keys []InternalChrIndex
	for _, h := range Haplotypes {
		for _, c := range AllChrIndices() {
			keys = append(keys, c.ToInternalIndex(h))
		}
	}
	require.Len(t, keys, 48)
	for i, k := range keys {
		assert.Equal(t, InternalChrIndex(i), k)
	}

	assert.Equal(t, InternalChrIndex(0), ChrIndex(1).ToInternalIndex(Hap1))
	assert.Equal(t, InternalChrIndex(22), ChrX.ToInternalIndex(Hap1))
	assert.Equal(t, InternalChrIndex(23), ChrY.ToInternalIndex(Hap1))
	assert.Equal(t, InternalChrIndex(24), ChrIndex(1).ToInternalIndex(Hap2))
	assert.Equal(t, InternalChrIndex(47), ChrY.ToInternalIndex(Hap2))

	// Decoding gives back the pieces
	for _, h := range Haplotypes {
		for _, c := range AllChrIndices() {
			i := c.ToInternalIndex(h)
			assert.Equal(t, c, i.ChrIndex())
			assert.Equal(t, h, i.Haplotype())
		}
	}
}

func TestHaplotype(t *testing.T) {
	assert.Equal(t, "hap1", Hap1.Name())
	assert.Equal(t, "hap2", Hap2.Name())
	assert.True(t, Hap1 < Hap2)

	h, err := HaplotypeFromName("HAP2")
	require.NoError(t, err)
	assert.Equal(t, Hap2, h)
	_, err = HaplotypeFromName("hap3")
	assert.Error(t, err)

	d := Diploid[string]{Hap1: "a", Hap2: "b"}
	assert.Equal(t, "a", d.Choose(Hap1))
	assert.Equal(t, "b", d.Choose(Hap2))
	assert.Equal(t, Diploid[string]{Hap1: "hap1a", Hap2: "hap2b"},
		MapDiploid(d, func(h Haplotype, s string) string { return h.Name() + s }))
}

func TestBuildChrs(t *testing.T) {
	assert.Equal(t, AllChrIndices(), BuildChrs(nil))
	assert.Equal(t, AllChrIndices(), BuildChrs([]ChrIndex{}))
	assert.Equal(t, []ChrIndex{1, 5, ChrX}, BuildChrs([]ChrIndex{ChrX, 5, 1, 5}))
}

func TestXY(t *testing.T) {
	h, err := ChrX.XYToHap()
	require.NoError(t, err)
	assert.Equal(t, Hap2, h)
	h, err = ChrY.XYToHap()
	require.NoError(t, err)
	assert.Equal(t, Hap1, h)

	_, err = ChrIndex(7).XYToHap()
	assert.True(t, IsDesignError(err))

	s, err := ChooseXY(ChrY, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, "y", s)
	assert.True(t, ChrX.IsSexChr())
	assert.False(t, ChrIndex(22).IsSexChr())
}
