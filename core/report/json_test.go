package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takaraplatform/apiparity/core/models"
)

func TestJSONRender_RoundTrips(t *testing.T) {
	res := failingResult()
	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Render(&buf, res))
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))

	var got models.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, *res, got)
}

func TestJSONRender_CarriesVerdict(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSON{}).Render(&buf, passingResult()))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, true, got["passed"])
	require.NotContains(t, buf.String(), "🔍")
}

func TestForFormat(t *testing.T) {
	textRenderer, err := ForFormat("text", PlainStyle())
	require.NoError(t, err)
	require.IsType(t, &Text{}, textRenderer)

	def, err := ForFormat("", PlainStyle())
	require.NoError(t, err)
	require.IsType(t, &Text{}, def)

	jsonRenderer, err := ForFormat("json", PlainStyle())
	require.NoError(t, err)
	require.IsType(t, &JSON{}, jsonRenderer)

	_, err = ForFormat("yaml", PlainStyle())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown report format")
}
