package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const listing = `[
	{"id":1,"movie":"The Godfather","rating":9.2,"image":"godfather.jpg","imdb_url":"https://www.imdb.com/title/tt0068646/"},
	{"id":2,"movie":"Heat","rating":8.3,"image":"heat.jpg","imdb_url":"https://www.imdb.com/title/tt0113277/"}
]`

func listingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listing))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, interactive bool, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, interactive)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.toml"), "--log-level", "error"))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand_FiltersByTerm(t *testing.T) {
	srv := listingServer(t)

	out, err := execute(t, true, "list", "heat", "--endpoint", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "Heat")
	require.NotContains(t, out, "Godfather")
}

func TestRootCommand_NonInteractiveFallsBackToList(t *testing.T) {
	srv := listingServer(t)

	out, err := execute(t, false, "--endpoint", srv.URL)
	require.NoError(t, err)
	require.Contains(t, out, "The Godfather")
	require.Contains(t, out, "Heat")
}

func TestListCommand_RejectsExtraArgs(t *testing.T) {
	_, err := execute(t, false, "list", "a", "b")
	require.Error(t, err)
}

func TestListCommand_InvalidEndpoint(t *testing.T) {
	_, err := execute(t, false, "list", "--endpoint", "ftp://example.test/movies")
	require.Error(t, err)
}
