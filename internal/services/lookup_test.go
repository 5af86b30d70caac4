package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", r.URL.Query().Get("apikey"))
		}
		title := r.URL.Query().Get("t")
		if title != "The Matrix" {
			json.NewEncoder(w).Encode(MovieInfo{Response: "False", Error: "Movie not found!"})
			return
		}
		json.NewEncoder(w).Encode(MovieInfo{
			Title:    "The Matrix",
			Year:     "1999",
			ImdbID:   "tt0133093",
			Response: "True",
		})
	}))
	defer server.Close()

	os.Setenv("OMDB_BASE_URL", server.URL)
	os.Setenv("OMDB_API_KEY", "test-key")

	// Reset the singleton so the test config loads.
	movieService = nil
	s := GetMovieService()

	info, err := s.Lookup("The Matrix")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "tt0133093", info.ImdbID)

	// Unknown titles degrade to a nil result, not an error.
	info, err = s.Lookup("No Such Film")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestDictionaryDefine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/hello" {
			json.NewEncoder(w).Encode([]WordEntry{{Word: "hello", Phonetic: "/həˈloʊ/"}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	os.Setenv("DICTIONARY_BASE_URL", server.URL)
	dictionaryService = nil
	s := GetDictionaryService()

	entries, err := s.Define("hello")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Word)

	entries, err = s.Define("zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
