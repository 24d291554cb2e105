package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestInstrumentClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "messages")
	output := NewFilesystemOutput(dir)

	client := resty.New()
	client.SetBaseURL(srv.URL)
	InstrumentClient(client, output)

	_, err := client.R().Get("/status")
	require.NoError(t, err)
	_, err = client.R().Get("/status")
	require.NoError(t, err)

	// message ids count up from one
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "---- REQUEST ----")
	require.Contains(t, string(contents), "GET")
	require.Contains(t, string(contents), "---- RESPONSE ----")
	require.Contains(t, string(contents), `{"ok": true}`)

	_, err = os.Stat(filepath.Join(dir, "2"))
	require.NoError(t, err)

	// request bodies show up in the capture
	_, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"page": 1}`).
		Post("/search")
	require.NoError(t, err)

	contents, err = os.ReadFile(filepath.Join(dir, "3"))
	require.NoError(t, err)
	require.Contains(t, string(contents), "POST")
	require.Contains(t, string(contents), `{"page": 1}`)
}

func TestInstrumentClientNilOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := resty.New()
	client.SetBaseURL(srv.URL)
	InstrumentClient(client, nil)

	_, err := client.R().Get("/")
	require.NoError(t, err)
}
