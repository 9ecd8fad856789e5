package airports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	registry := Get()

	require.Len(t, registry, 6)
	assert.Equal(t, "Heathrow", registry[0].Name)
	assert.Equal(t, "Southend", registry[5].Name)

	for _, airport := range registry {
		assert.NotEmpty(t, airport.LocationToken)
	}
}

func TestFind(t *testing.T) {
	airport, found := Find("gatwick")
	require.True(t, found)
	assert.Equal(t, "Gatwick", airport.Name)

	_, found = Find("Narita")
	assert.False(t, found)
}

func TestLoadFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "airports.yaml")
	err := os.WriteFile(filename, []byte(`
- name: Heathrow
  location_token: "940GZZLUHR4"
- name: Gatwick
  location_token: "51.1537,-0.1821"
`), 0644)
	require.NoError(t, err)

	t.Setenv("SKYHOP_AIRPORTS_FILE", filename)
	defer func() { registry = defaultAirports }()

	Load()

	loaded := Get()
	require.Len(t, loaded, 2)
	assert.Equal(t, "940GZZLUHR4", loaded[0].LocationToken)

	airport, found := Find("Gatwick")
	require.True(t, found)
	assert.Equal(t, "51.1537,-0.1821", airport.LocationToken)
}
