package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = parseEndpoint("  example.com/api/movies#frag ")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com" || u.Path != "/api/movies" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
}

func TestParseEndpoint_RejectsBadURLs(t *testing.T) {
	for _, in := range []string{"ftp://example.com/movies", "http://", "http://[::1"} {
		if _, err := parseEndpoint(in); err == nil {
			t.Fatalf("parseEndpoint(%q) returned nil error, want error", in)
		}
	}
}

func TestClient_FetchMovies(t *testing.T) {
	t.Parallel()

	var gotMethod, gotQuery, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"movie":"The Matrix","rating":8.7},{"id":2},{"id":3,"movie":"Inception"}]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/movies", WithUserAgent("marquee/test"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	movies, err := c.FetchMovies(ctx)
	if err != nil {
		t.Fatalf("FetchMovies returned error: %v", err)
	}
	if len(movies) != 2 || movies[0].Title != "The Matrix" || movies[1].Title != "Inception" {
		t.Fatalf("FetchMovies = %#v, want The Matrix and Inception", movies)
	}
	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotQuery != "" {
		t.Fatalf("query = %q, want none", gotQuery)
	}
	if gotUserAgent != "marquee/test" {
		t.Fatalf("User-Agent = %q, want marquee/test", gotUserAgent)
	}
}

func TestClient_NonSuccessStatusIsGenericFailure(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", code)
		}))

		c, err := NewClient(server.URL)
		if err != nil {
			server.Close()
			t.Fatalf("NewClient returned error: %v", err)
		}
		_, err = c.FetchMovies(context.Background())
		server.Close()

		if !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("status %d: error = %v, want ErrFetchFailed", code, err)
		}
		if err.Error() != "Failed to fetch movies" {
			t.Fatalf("status %d: message = %q, want generic failure", code, err.Error())
		}
		var statusErr *StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != code {
			t.Fatalf("status %d: error = %#v, want StatusError with code", code, err)
		}
	}
}

func TestClient_DecodeAndTransportErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchMovies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchMovies error = %v, want decode response error", err)
	}

	dead, err := NewClient("http://127.0.0.1:1", WithTimeout(time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = dead.FetchMovies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchMovies error = %v, want execute request error", err)
	}
	if errors.Is(err, ErrFetchFailed) {
		t.Fatalf("transport error should not match ErrFetchFailed")
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchMovies(context.Background()); err == nil {
		t.Fatalf("FetchMovies on nil client returned nil error")
	}
	if c.Endpoint() != "" {
		t.Fatalf("Endpoint on nil client = %q, want empty", c.Endpoint())
	}
}
