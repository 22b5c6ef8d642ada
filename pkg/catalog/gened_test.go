package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGenEdVocabulary(t *testing.T) {
	codes := GenEdCodes()
	require.Len(t, codes, 15)

	for _, code := range codes {
		g, ok := ParseGenEd(code)
		require.True(t, ok, "expected %s to be recognized", code)
		require.Equal(t, code, g.Code())
		require.NotEmpty(t, g.Name())
	}
}

func TestParseGenEdFamilies(t *testing.T) {
	g, ok := ParseGenEd("PE-H")
	require.True(t, ok)
	require.Equal(t, PE{Area: PEHuman}, g)

	g, ok = ParseGenEd("PR-E")
	require.True(t, ok)
	require.Equal(t, PR{Area: PRCreative}, g)

	g, ok = ParseGenEd("SR")
	require.True(t, ok)
	require.Equal(t, SR, g)
}

func TestParseGenEdUnrecognized(t *testing.T) {
	for _, code := range []string{"ZZ", "", "pe-h", "PE-X", "PE", " MF"} {
		g, ok := ParseGenEd(code)
		require.False(t, ok, "expected %q to be rejected", code)
		require.Nil(t, g)
	}
}
