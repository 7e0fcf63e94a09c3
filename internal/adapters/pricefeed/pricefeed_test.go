package pricefeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/core"
	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/alejandrodnm/cyhole/internal/adapters/pricefeed"
	"github.com/alejandrodnm/cyhole/internal/domain"
	"github.com/alejandrodnm/cyhole/internal/ports"
	"github.com/alejandrodnm/cyhole/jupiter"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func server(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func byMint(quotes []domain.Quote) []domain.Quote {
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Mint < quotes[j].Mint })
	return quotes
}

func TestBirdeye_Prices(t *testing.T) {
	srv := server(t, `{"success":true,"data":{
		"`+token.SOL.Address+`":{"value":150.25,"updateUnixTime":1714564000,"updateHumanTime":"2024-05-01T11:46:40"},
		"`+token.BONK.Address+`":{"value":0,"updateUnixTime":0,"updateHumanTime":""}}}`)
	client := birdeye.New(core.Options{BaseURL: srv.URL, APIKey: "k", Clock: clockwork.NewFakeClockAt(now)})

	var p ports.PriceProvider = pricefeed.NewBirdeye(client)
	quotes, err := p.Prices(context.Background(), []string{token.SOL.Address, token.BONK.Address})
	require.NoError(t, err)

	require.Len(t, quotes, 1)
	q := quotes[0]
	assert.Equal(t, "SOL", q.Symbol)
	assert.Equal(t, birdeye.Name, q.Source)
	assert.True(t, decimal.RequireFromString("150.25").Equal(q.Price))
	assert.Equal(t, time.Unix(1714564000, 0).UTC(), q.FetchedAt)
}

func TestBirdeye_PricesError(t *testing.T) {
	t.Setenv(birdeye.KeyEnv, "")
	client := birdeye.New(core.Options{BaseURL: "http://127.0.0.1:1"})

	_, err := pricefeed.NewBirdeye(client).Prices(context.Background(), []string{token.SOL.Address})
	assert.ErrorIs(t, err, core.KindAuthentication)
}

func TestJupiter_PricesAsync(t *testing.T) {
	srv := server(t, `{"data":{
		"`+token.JUP.Address+`":{"id":"`+token.JUP.Address+`","type":"derivedPrice","price":"1.0213"},
		"unknown":null},"timeTaken":0.002}`)
	client := jupiter.New(core.Options{BaseURL: srv.URL, Clock: clockwork.NewFakeClockAt(now)})
	require.NoError(t, client.Open())
	defer client.Close()

	p := pricefeed.NewJupiter(client, "")
	assert.Equal(t, 100, p.BatchSize())
	quotes, err := p.Prices(context.Background(), []string{token.JUP.Address, "unknown"})
	require.NoError(t, err)

	quotes = byMint(quotes)
	require.Len(t, quotes, 1)
	assert.Equal(t, "JUP", quotes[0].Symbol)
	assert.Equal(t, jupiter.Name, quotes[0].Source)
	assert.Equal(t, now, quotes[0].FetchedAt)
	assert.True(t, decimal.RequireFromString("1.0213").Equal(quotes[0].Price))
}

func TestJupiter_PricesWithoutSession(t *testing.T) {
	client := jupiter.New(core.Options{BaseURL: "http://127.0.0.1:1"})

	_, err := pricefeed.NewJupiter(client, "").Prices(context.Background(), []string{token.JUP.Address})
	assert.ErrorIs(t, err, core.ErrSessionClosed)
}
