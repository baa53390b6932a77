package manifest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAttributes(t *testing.T) {
	result, err := Query([]byte(vodManifest), "//Representation/@bandwidth")
	require.NoError(t, err)

	require.Len(t, result.Nodes, 3)
	assert.Equal(t, QueryNode{Type: "attribute", Name: "bandwidth", Value: "900000"}, result.Nodes[0])
	assert.False(t, result.Truncated)
	assert.Nil(t, result.Value)
}

func TestQueryElements(t *testing.T) {
	result, err := Query([]byte(vodManifest), "//AdaptationSet[@contentType='audio']/Representation")
	require.NoError(t, err)

	require.Len(t, result.Nodes, 1)
	assert.Equal(t, "element", result.Nodes[0].Type)
	assert.Equal(t, "Representation", result.Nodes[0].Name)
	assert.Contains(t, result.Nodes[0].XML, `id="a128"`)
}

func TestQueryScalar(t *testing.T) {
	result, err := Query([]byte(vodManifest), "sum(//AdaptationSet[@contentType='video']/Representation/@bandwidth)")
	require.NoError(t, err)
	assert.Equal(t, float64(4400000), result.Value)
	assert.Nil(t, result.Nodes)

	result, err = Query([]byte(vodManifest), "string(/MPD/@type)")
	require.NoError(t, err)
	assert.Equal(t, "static", result.Value)
}

func TestQueryNoMatch(t *testing.T) {
	result, err := Query([]byte(vodManifest), "//SegmentTemplate")
	require.NoError(t, err)
	assert.NotNil(t, result.Nodes)
	assert.Empty(t, result.Nodes)
}

func TestQueryErrors(t *testing.T) {
	_, err := Query([]byte(vodManifest), "//Representation[")
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, err = Query([]byte("<MPD><Period>"), "//Period")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidQuery)
}

func TestQueryTruncates(t *testing.T) {
	var b strings.Builder
	b.WriteString("<MPD><Period><AdaptationSet>")
	for i := 0; i < MaxQueryNodes+5; i++ {
		fmt.Fprintf(&b, `<Representation id="r%d" bandwidth="1"/>`, i)
	}
	b.WriteString("</AdaptationSet></Period></MPD>")

	result, err := Query([]byte(b.String()), "//Representation/@id")
	require.NoError(t, err)
	assert.Len(t, result.Nodes, MaxQueryNodes)
	assert.True(t, result.Truncated)
}
