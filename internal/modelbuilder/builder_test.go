package modelbuilder

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teluguspell/internal/speller"
)

func TestTokenize(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("no telugu 123"))
	assert.Equal(t,
		[]string{"తెలుగు", "భాష"},
		Tokenize("the తెలుగు language, భాష!"))
}

const sampleDump = `<mediawiki xmlns="http://www.mediawiki.org/xml/export-0.10/">
  <page>
    <title>One</title>
    <revision>
      <text>తెలుగు భాష తెలుగు</text>
    </revision>
  </page>
  <page>
    <title>Two</title>
    <revision>
      <text>భాష and some english</text>
    </revision>
  </page>
</mediawiki>`

func TestBuildCounts(t *testing.T) {
	counts, err := BuildCounts(strings.NewReader(sampleDump))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"తెలుగు": 2, "భాష": 2}, counts)
}

func TestBuildCountsMalformedCorpus(t *testing.T) {
	_, err := BuildCounts(strings.NewReader("<mediawiki><page>"))
	assert.Error(t, err)
}

func TestWriteModelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	counts := map[string]int{"తెలుగు": 2, "భాష": 1}
	require.NoError(t, WriteModel(path, counts))

	m, err := speller.LoadModel(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 3, m.Total())
	assert.Equal(t, 2, m.Frequency("తెలుగు"))
	assert.Equal(t, 1, m.Frequency("భాష"))
}
