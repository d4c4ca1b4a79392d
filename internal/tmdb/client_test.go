package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByTVDBID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/find/81189", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "tvdb_id", r.URL.Query().Get("external_source"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"movie_results":[],"tv_results":[{"id":1396,"name":"Breaking Bad"}]}`))
	}))
	defer srv.Close()

	client := New("test-key", WithBaseURL(srv.URL))

	tmdbID, err := client.FindByTVDBID(context.Background(), 81189)
	require.NoError(t, err)
	assert.Equal(t, 1396, tmdbID)
}

func TestFindByTVDBIDNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"movie_results":[],"tv_results":[]}`))
	}))
	defer srv.Close()

	client := New("test-key", WithBaseURL(srv.URL))

	_, err := client.FindByTVDBID(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByTVDBIDBadAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New("wrong-key", WithBaseURL(srv.URL))

	_, err := client.FindByTVDBID(context.Background(), 81189)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFindByTVDBIDRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New("test-key", WithBaseURL(srv.URL))

	_, err := client.FindByTVDBID(context.Background(), 81189)
	assert.ErrorIs(t, err, ErrRateLimited)
}
