package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONRoundTripsRawScene(t *testing.T) {
	raw := minimalRawScene()
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	got, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, raw.Shapes["ball"].Kind, got.Shapes["ball"].Kind)
	assert.Equal(t, raw.BSDFMapping["ball"], got.BSDFMapping["ball"])
	assert.Equal(t, raw.Camera.Variant.XFov, got.Camera.Variant.XFov)
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestParseYAMLRoundTripsViaMarshalYAML(t *testing.T) {
	raw := minimalRawScene()
	data, err := MarshalYAML(raw)
	require.NoError(t, err)

	got, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, raw.Shapes["ball"].Radius, got.Shapes["ball"].Radius)
	assert.Equal(t, raw.Lights[0].Kind, got.Lights[0].Kind)
}

func TestParseYAMLRejectsGarbage(t *testing.T) {
	_, err := ParseYAML([]byte(":\n  - not: [valid"))
	assert.Error(t, err)
}
