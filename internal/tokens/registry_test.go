package tokens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listed = []Token{
	{Address: "So11111111111111111111111111111111111111112", Symbol: "SOL", Name: "Wrapped SOL", Decimals: 9},
	{Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
}

type tokenServer struct {
	*httptest.Server
	hits   atomic.Int32
	status atomic.Int32
}

func newTokenServer(t *testing.T) *tokenServer {
	t.Helper()
	ts := &tokenServer{}
	ts.status.Store(http.StatusOK)

	router := mux.NewRouter()
	router.HandleFunc("/tokens", func(w http.ResponseWriter, r *http.Request) {
		ts.hits.Add(1)
		if code := int(ts.status.Load()); code != http.StatusOK {
			http.Error(w, "unavailable", code)
			return
		}
		assert.Equal(t, "verified", r.URL.Query().Get("tags"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listed)
	}).Methods(http.MethodGet)
	router.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	ts.Server = httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func TestTokensFetchesAndCaches(t *testing.T) {
	srv := newTokenServer(t)
	reg := NewRegistry(srv.URL+"/tokens?tags=verified", time.Hour, time.Second, nil)

	got, err := reg.Tokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listed, got)

	_, err = reg.Tokens(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, srv.hits.Load())
}

func TestTokensReturnsCopyOfCache(t *testing.T) {
	srv := newTokenServer(t)
	reg := NewRegistry(srv.URL+"/tokens?tags=verified", time.Hour, time.Second, nil)

	first, err := reg.Tokens(context.Background())
	require.NoError(t, err)
	first[0].Symbol = "XXX"

	shown := Search(first, "")
	shown[1].Symbol = "YYY"
	assert.Equal(t, "USDC", first[1].Symbol)

	again, err := reg.Tokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listed, again)
	assert.EqualValues(t, 1, srv.hits.Load())
}

func TestTokensRefreshAfterTTL(t *testing.T) {
	srv := newTokenServer(t)
	reg := NewRegistry(srv.URL+"/tokens?tags=verified", time.Minute, time.Second, nil)
	now := time.Now()
	reg.now = func() time.Time { return now }

	_, err := reg.Tokens(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	srv.status.Store(http.StatusServiceUnavailable)

	got, err := reg.Tokens(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, listed, got, "stale list served on failure")
	assert.EqualValues(t, 2, srv.hits.Load())
}

func TestTokensFallsBackToDefaults(t *testing.T) {
	srv := newTokenServer(t)
	srv.status.Store(http.StatusInternalServerError)
	reg := NewRegistry(srv.URL+"/tokens?tags=verified", time.Hour, time.Second, nil)

	got, err := reg.Tokens(context.Background())
	require.Error(t, err)
	assert.Equal(t, DefaultTokens(), got)
}

func TestTokensEmptyListIsAnError(t *testing.T) {
	srv := newTokenServer(t)
	reg := NewRegistry(srv.URL+"/empty", time.Hour, time.Second, nil)

	got, err := reg.Tokens(context.Background())
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Equal(t, DefaultTokens(), got)
}

func TestTokensWithoutURL(t *testing.T) {
	reg := NewRegistry("", time.Hour, time.Second, nil)
	got, err := reg.Tokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultTokens(), got)
}

func TestSearch(t *testing.T) {
	all := DefaultTokens()

	assert.Equal(t, all, Search(all, "  "))

	usd := Search(all, "usd")
	require.Len(t, usd, 2)
	assert.Equal(t, "USDC", usd[0].Symbol)
	assert.Equal(t, "USDT", usd[1].Symbol)

	byName := Search(all, "jupiter")
	require.Len(t, byName, 2)
	assert.Equal(t, "JUP", byName[0].Symbol)
	assert.Equal(t, "JLP", byName[1].Symbol)

	byAddr := Search(all, "So11111111111111111111111111111111111111112")
	require.Len(t, byAddr, 1)
	assert.Equal(t, "SOL", byAddr[0].Symbol)

	assert.Empty(t, Search(all, "doge"))
}
