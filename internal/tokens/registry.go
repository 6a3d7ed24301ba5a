// Package tokens loads the list of tokens offered by the token picker.
package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrEmptyList = errors.New("token list is empty")

// Token is an entry of a Jupiter-style token list.
type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
	LogoURI  string `json:"logoURI"`
}

// DefaultTokens is used when no list URL is configured or the first fetch fails.
func DefaultTokens() []Token {
	return []Token{
		{Address: "So11111111111111111111111111111111111111112", Symbol: "SOL", Name: "Wrapped SOL", Decimals: 9},
		{Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
		{Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Symbol: "USDT", Name: "USDT", Decimals: 6},
		{Address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Symbol: "JUP", Name: "Jupiter", Decimals: 6},
		{Address: "jtojtomepa8beP8AuQc6eXt5FriJwfFMwQx2v2f9mCL", Symbol: "JTO", Name: "JITO", Decimals: 9},
		{Address: "27G8MtK7VtTcCHkpASjSDdkWWYfoqT6ggEuKidVJidD4", Symbol: "JLP", Name: "Jupiter Perps LP", Decimals: 6},
	}
}

// Registry fetches a token list over HTTP and caches it for ttl.
type Registry struct {
	url    string
	ttl    time.Duration
	client *http.Client
	log    *zap.Logger

	mu      sync.RWMutex
	tokens  []Token
	fetched time.Time
	now     func() time.Time
}

func NewRegistry(url string, ttl, timeout time.Duration, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		url:    url,
		ttl:    ttl,
		client: &http.Client{Timeout: timeout},
		log:    log,
		now:    time.Now,
	}
}

// Tokens returns the cached list, refreshing it once it is older than ttl.
// On a failed refresh it returns the last good list, or DefaultTokens, along
// with the error.
func (r *Registry) Tokens(ctx context.Context) ([]Token, error) {
	if r.url == "" {
		return DefaultTokens(), nil
	}

	r.mu.RLock()
	if r.tokens != nil && r.now().Sub(r.fetched) < r.ttl {
		cached := slices.Clone(r.tokens)
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// another caller may have refreshed while we waited
	if r.tokens != nil && r.now().Sub(r.fetched) < r.ttl {
		return slices.Clone(r.tokens), nil
	}

	fetched, err := r.fetch(ctx)
	if err != nil {
		r.log.Warn("token list fetch failed", zap.String("url", r.url), zap.Error(err))
		if r.tokens != nil {
			return slices.Clone(r.tokens), err
		}
		return DefaultTokens(), err
	}

	r.tokens = fetched
	r.fetched = r.now()
	r.log.Debug("token list refreshed", zap.Int("count", len(fetched)))
	return slices.Clone(fetched), nil
}

func (r *Registry) fetch(ctx context.Context) ([]Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build token list request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("token list API error: %s - %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var tokens []Token
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("failed to decode token list: %w", err)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyList
	}
	return tokens, nil
}

// Search filters tokens by case-insensitive symbol or name substring, or by
// exact address. An empty query matches everything.
func Search(tokens []Token, query string) []Token {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(tokens)
	}

	lower := strings.ToLower(query)
	var matches []Token
	for _, t := range tokens {
		if t.Address == query ||
			strings.Contains(strings.ToLower(t.Symbol), lower) ||
			strings.Contains(strings.ToLower(t.Name), lower) {
			matches = append(matches, t)
		}
	}
	return matches
}
