package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredEngines(t *testing.T) {
	assert.Equal(t, []string{"bm", "dfagap", "kmp", "regexp", "shiftor"}, Names())

	for _, name := range []string{"kmp", "bm", "shiftor"} {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name())
	}
	for _, name := range []string{"dfagap", "regexp"} {
		e, ok := LookupGap(name)
		require.True(t, ok, name)
		assert.Equal(t, name, e.Name())
	}

	_, ok := Lookup("dfagap") // gap engines are not exact engines
	assert.False(t, ok)
}

func TestEnginesAgreeThroughRegistry(t *testing.T) {
	text := []byte("ACGTACGTACGT")
	pattern := []byte("ACGT")

	var counts []int
	for _, name := range []string{"kmp", "bm", "shiftor"} {
		e, ok := Lookup(name)
		require.True(t, ok)
		c, err := e.Compile(pattern)
		require.NoError(t, err)
		counts = append(counts, c.Count(text))
	}
	assert.Equal(t, []int{3, 3, 3}, counts)

	for _, name := range []string{"dfagap", "regexp"} {
		e, ok := LookupGap(name)
		require.True(t, ok)
		c, err := e.Compile(pattern, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Count(text), name)
	}
}
