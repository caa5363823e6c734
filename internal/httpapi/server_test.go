package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/siftsearch/sift"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	docs := map[string]string{
		"a.txt": "fastapi sql",
		"b.txt": "flask",
	}
	engine, err := sift.NewSearchEngine(docs, sift.Tokenize)
	require.NoError(t, err)
	return New(engine, []string{"a.txt", "b.txt"}, zerolog.Nop())
}

func TestHandleSearchReturnsResults(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/search?q=fastapi", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []searchResultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, "a.txt", results[0].DocID)
}

func TestHandleSearchInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/search?q=fastapi&limit=-1", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSuggestSubstringMatch(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/suggest?q=a.t", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Contains(t, matches, "a.txt")
}

func TestHandleSuggestEchoFallback(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/suggest?q=zzzzz", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.ElementsMatch(t, []string{"zzzzz example", "zzzzz test"}, matches)
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	s.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
