package openelevation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLookupClassifiesTerrain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.RawQuery, "locations=")
		w.Write([]byte(`{"results": [{"elevation": 1523.46}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	sample, err := client.Lookup(context.Background(), 46.85, -121.76)
	require.NoError(t, err)
	require.Equal(t, 1523.5, sample.ElevationM)
	require.Equal(t, "mountains", sample.TerrainType)
}

func TestLookupEmptyResultsIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Lookup(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Lookup(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

func TestTerrainTypeBands(t *testing.T) {
	require.Equal(t, "lowland", terrainType(0))
	require.Equal(t, "hills", terrainType(300))
	require.Equal(t, "mountains", terrainType(1000))
	require.Equal(t, "high_mountains", terrainType(2500))
}
