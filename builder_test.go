package hufftree

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tree := makeWideTestTree()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tEncode(0) = \"11001\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"\tEncode(256) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Codes().Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuild_Scenario(t *testing.T) {
	codes := makeTestTree().Codes().Strings()
	require.Equal(t, map[Symbol]string{
		'a':       "0",
		'c':       "100",
		'd':       "101",
		EOFSymbol: "110",
		'b':       "111",
	}, codes)
}

func TestBuild_SingleSymbol(t *testing.T) {
	frequencies := make([]uint32, 256)
	frequencies['a'] = 7
	tree := Build(frequencies)

	require.False(t, tree.IsDegenerate())
	require.Equal(t, 2, tree.NumSymbols())
	require.Equal(t, map[Symbol]string{EOFSymbol: "0", 'a': "1"}, tree.Codes().Strings())
}

func TestBuild_Empty(t *testing.T) {
	for _, frequencies := range [][]uint32{nil, make([]uint32, 256)} {
		tree := Build(frequencies)
		require.True(t, tree.IsDegenerate())
		require.Equal(t, EOFSymbol, tree.Root().Symbol())

		hc, found := tree.Codes().Lookup(EOFSymbol)
		require.True(t, found)
		require.Equal(t, 0, hc.Len())
	}
}

func TestBuild_Panics(t *testing.T) {
	require.Panics(t, func() { Build(make([]uint32, 257)) })
}

func TestCountFrequencies(t *testing.T) {
	frequencies := CountFrequencies([]byte("abracadabra"))
	require.Len(t, frequencies, 256)
	require.Equal(t, uint32(5), frequencies['a'])
	require.Equal(t, uint32(2), frequencies['b'])
	require.Equal(t, uint32(2), frequencies['r'])
	require.Equal(t, uint32(1), frequencies['c'])
	require.Equal(t, uint32(1), frequencies['d'])
	require.Equal(t, uint32(0), frequencies['z'])

	fromReader, err := ReadFrequencies(strings.NewReader("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, frequencies, fromReader)
}

// huffmanCost computes the minimum weighted path length for a set of weights
// by repeatedly merging the two smallest.
func huffmanCost(weights []uint64) uint64 {
	list := append([]uint64(nil), weights...)
	var cost uint64
	for len(list) > 1 {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		sum := list[0] + list[1]
		cost += sum
		list = append(list[2:], sum)
	}
	return cost
}

func randomFrequencies(rng *rand.Rand) []uint32 {
	frequencies := make([]uint32, 256)
	numSymbols := 1 + rng.Intn(256)
	for i := 0; i < numSymbols; i++ {
		frequencies[rng.Intn(256)] = uint32(rng.Intn(1000))
	}
	return frequencies
}

func TestBuild_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		frequencies := randomFrequencies(rng)
		tree := Build(frequencies)
		ct := tree.Codes()

		weights := []uint64{1}
		var expectSymbols []Symbol
		for symbol, freq := range frequencies {
			if freq != 0 {
				weights = append(weights, uint64(freq))
				expectSymbols = append(expectSymbols, Symbol(symbol))
			}
		}
		expectSymbols = append(expectSymbols, EOFSymbol)
		require.Equal(t, expectSymbols, ct.Symbols())

		// Minimum weighted path length.
		var cost uint64
		for _, symbol := range ct.Symbols() {
			hc, _ := ct.Lookup(symbol)
			weight := uint64(1)
			if symbol != EOFSymbol {
				weight = uint64(frequencies[symbol])
			}
			cost += weight * uint64(hc.Len())
		}
		require.Equal(t, huffmanCost(weights), cost, "iteration %d", iter)

		// Prefix-free.
		symbols := ct.Symbols()
		for _, a := range symbols {
			for _, b := range symbols {
				if a == b {
					continue
				}
				ca, _ := ct.Lookup(a)
				cb, _ := ct.Lookup(b)
				require.False(t, ca.HasPrefix(cb), "code %s for %d has prefix %s for %d", ca, a, cb, b)
			}
		}
	}
}
