package openaq

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, locationsBody string, latestBodies map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/locations" {
			fmt.Fprint(w, locationsBody)
			return
		}
		if body, ok := latestBodies[r.URL.Path]; ok {
			fmt.Fprint(w, body)
			return
		}
		http.NotFound(w, r)
	}))
}

func TestLatestAveragesAcrossStations(t *testing.T) {
	locations := `{"results": [
		{"id": 1, "sensors": [{"id": 11, "parameter": {"name": "pm25"}}, {"id": 12, "parameter": {"name": "no2"}}]},
		{"id": 2, "sensors": [{"id": 21, "parameter": {"name": "pm25"}}, {"id": 22, "parameter": {"name": "o3"}}]}
	]}`
	latest := map[string]string{
		"/locations/1/latest": `{"results": [
			{"sensorsId": 11, "value": 10.0, "datetime": {"utc": "2026-08-29T09:00:00Z"}},
			{"sensorsId": 12, "value": 37.6, "datetime": {"utc": "2026-08-29T09:30:00Z"}}
		]}`,
		"/locations/2/latest": `{"results": [
			{"sensorsId": 21, "value": 14.0, "datetime": {"utc": "2026-08-29T08:00:00Z"}},
			{"sensorsId": 22, "value": 99.0, "datetime": {"utc": "2026-08-29T08:00:00Z"}}
		]}`,
	}
	server := newTestServer(t, locations, latest)
	defer server.Close()

	client := NewClient(server.URL, "test-key", 25, time.Second)
	sample, err := client.Latest(context.Background(), 47.6, -122.3)
	require.NoError(t, err)

	require.NotNil(t, sample.PM25)
	require.InDelta(t, 12.0, *sample.PM25, 0.001)
	// 37.6 ug/m3 converts to 20 ppb.
	require.NotNil(t, sample.NO2)
	require.InDelta(t, 20.0, *sample.NO2, 0.001)
	require.Equal(t, 2, sample.Stations)
	require.Equal(t, "2026-08-29T09:30:00Z", sample.LastUpdate)
}

func TestLatestConvertsPpmNO2(t *testing.T) {
	locations := `{"results": [{"id": 1, "sensors": [{"id": 12, "parameter": {"name": "no2"}}]}]}`
	latest := map[string]string{
		"/locations/1/latest": `{"results": [{"sensorsId": 12, "value": 0.02, "datetime": {"utc": "2026-08-29T09:00:00Z"}}]}`,
	}
	server := newTestServer(t, locations, latest)
	defer server.Close()

	client := NewClient(server.URL, "", 25, time.Second)
	sample, err := client.Latest(context.Background(), 0, 0)
	require.NoError(t, err)

	// 0.02 ppm -> 37.6 ug/m3 -> 20 ppb.
	require.NotNil(t, sample.NO2)
	require.InDelta(t, 20.0, *sample.NO2, 0.001)
}

func TestLatestNoStationsIsError(t *testing.T) {
	server := newTestServer(t, `{"results": []}`, nil)
	defer server.Close()

	client := NewClient(server.URL, "", 25, time.Second)
	_, err := client.Latest(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no openaq stations")
}

func TestLatestIgnoresIrrelevantSensors(t *testing.T) {
	locations := `{"results": [{"id": 1, "sensors": [{"id": 9, "parameter": {"name": "o3"}}]}]}`
	latest := map[string]string{
		"/locations/1/latest": `{"results": [{"sensorsId": 9, "value": 40.0, "datetime": {"utc": ""}}]}`,
	}
	server := newTestServer(t, locations, latest)
	defer server.Close()

	client := NewClient(server.URL, "", 25, time.Second)
	_, err := client.Latest(context.Background(), 0, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no pm25/no2 measurements")
}

func TestLatestSendsAPIKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", 25, time.Second)
	client.Latest(context.Background(), 0, 0)
	require.Equal(t, "secret", gotKey)
}

func TestLatestSkipsFailingStations(t *testing.T) {
	locations := `{"results": [
		{"id": 1, "sensors": [{"id": 11, "parameter": {"name": "pm25"}}]},
		{"id": 2, "sensors": [{"id": 21, "parameter": {"name": "pm25"}}]}
	]}`
	latest := map[string]string{
		// Location 1 has no latest endpoint registered and 404s.
		"/locations/2/latest": `{"results": [{"sensorsId": 21, "value": 9.0, "datetime": {"utc": ""}}]}`,
	}
	server := newTestServer(t, locations, latest)
	defer server.Close()

	client := NewClient(server.URL, "", 25, time.Second)
	sample, err := client.Latest(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, sample.Stations)
	require.InDelta(t, 9.0, *sample.PM25, 0.001)
}
