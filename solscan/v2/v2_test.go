package v2_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/cyhole/core"
	"github.com/alejandrodnm/cyhole/core/token"
	v2 "github.com/alejandrodnm/cyhole/solscan/v2"
)

const account = "AK2VbkdYLHSiJKS6AGUfNZYNaejABkV6VYDX1Vrgxfo"

func newClient(t *testing.T, h http.HandlerFunc) (*v2.Client, *atomic.Int32) {
	t.Helper()
	var callCount atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c := v2.New(core.Options{
		BaseURL: srv.URL,
		APIKey:  "v2-key",
		Clock:   clockwork.NewFakeClockAt(time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)),
	})
	require.NoError(t, c.Open())
	t.Cleanup(func() { c.Close() })
	return c, &callCount
}

func TestClient_AccountTransfers(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/account/transfer", r.URL.Path)
		assert.Equal(t, "v2-key", r.Header.Get("token"))
		assert.Equal(t, account, q.Get("address"))
		assert.Equal(t, []string{"ACTIVITY_SPL_TRANSFER", "ACTIVITY_SPL_BURN"}, q["activity_type[]"])
		assert.Equal(t, []string{"1717200000", "1717286400"}, q["block_time[]"])
		assert.Equal(t, []string{"10", "500"}, q["amount[]"])
		assert.Equal(t, "out", q.Get("flow"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))
		assert.False(t, q.Has("exclude_amount_zero"))
		w.Write([]byte(`{"success":true,"data":[{"block_id":270000000,"trans_id":"sig","block_time":1717200100,
			"activity_type":"ACTIVITY_SPL_TRANSFER","from_address":"` + account + `","to_address":"dst",
			"token_address":"` + token.USDC.Address + `","token_decimals":6,"amount":250,"flow":"out",
			"time":"2024-06-01T00:01:40.000Z"}]}`))
	})
	opts := v2.AccountTransfersOptions{Flow: v2.FlowOut}
	opts.ActivityTypes = []v2.ActivityTransfer{v2.ActivitySplTransfer, v2.ActivitySplBurn}
	opts.Amount = v2.AmountRange{Min: 10, Max: 500}
	opts.BlockTime = v2.TimeRange{From: from, To: from.Add(24 * time.Hour)}

	resp, err := c.AccountTransfers(account, opts).Do(context.Background())
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, uint64(250), resp.Data[0].Amount)
	assert.Equal(t, 2024, resp.Data[0].Time.Year())
}

func TestClient_ParameterErrors(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()
	now := time.Now()

	var filter v2.TransferFilter
	filter.BlockTime = v2.TimeRange{From: now, To: now.Add(-time.Hour)}
	_, err := c.TokenTransfer(token.JUP.Address, filter).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)
	assert.ErrorIs(t, err, v2.ErrInvalidTimeRange)

	_, err = c.TokenHolders(token.JUP.Address, v2.AmountRange{Min: 100, Max: 1}, v2.Pagination{}).Do(ctx)
	assert.ErrorIs(t, err, v2.ErrInvalidAmountRange)

	_, err = c.TokenList(v2.TokenListOptions{Pagination: v2.Pagination{PageSize: 50}}).Do(ctx)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "page_size", e.Field)
	assert.Equal(t, []string{"10", "20", "30", "40", "60", "100"}, e.Allowed)

	var defi v2.DefiOptions
	defi.ActivityTypes = []v2.ActivityDefi{"ACTIVITY_NFT_SOLD"}
	_, err = c.AccountDefiActivities(account, defi).Go(ctx).Await(ctx)
	e, ok = core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "activity_type", e.Field)

	_, err = c.AccountTransactions(account, "", 15).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	_, err = c.NFTNews(1, 20).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	_, err = c.TransactionLast(0, "votes").Do(ctx)
	e, ok = core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "filter", e.Field)

	_, err = c.AccountTokenAccounts(account, "coin", v2.Pagination{}, false).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	_, err = c.BlockDetail(0).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	assert.Equal(t, int32(0), callCount.Load())
}

func TestClient_AccountTokenAccountsHidesZero(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "token", q.Get("type"))
		assert.Equal(t, "true", q.Get("hide_zero"))
		assert.Equal(t, "20", q.Get("page_size"))
		w.Write([]byte(`{"success":true,"data":[{"token_account":"ta","token_address":"` + token.BONK.Address + `",
			"amount":1000,"token_decimals":5,"owner":"` + account + `"}]}`))
	})

	resp, err := c.AccountTokenAccounts(account, v2.AccountToken, v2.Pagination{PageSize: v2.PageSize20}, false).
		Do(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5, resp.Data[0].TokenDecimals)
}

func TestClient_TokenPriceUsesClock(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"20240615"}, r.URL.Query()["time[]"])
		w.Write([]byte(`{"success":true,"data":[{"date":20240615,"price":1.02}]}`))
	})

	resp, err := c.TokenPrice(token.JUP.Address, time.Time{}, time.Time{}).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 20240615, resp.Data[0].Date)
}

func TestClient_TokenPriceRange(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"20240601", "20240607"}, r.URL.Query()["time[]"])
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.TokenPrice(token.JUP.Address, from, from.AddDate(0, 0, 6)).Do(context.Background())
	require.NoError(t, err)
}

func TestClient_TokenMarketsRepeatsTokens(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{token.SOL.Address, token.USDC.Address}, q["token[]"])
		assert.False(t, q.Has("program[]"))
		w.Write([]byte(`{"success":true,"data":[{"pool_id":"pool","program_id":"prog","token_1":"a","token_2":"b",
			"token_account_1":"ta","token_account_2":"tb","total_volume_24h":1200.5,"total_trades_24h":42}]}`))
	})

	resp, err := c.TokenMarkets([]string{token.SOL.Address, token.USDC.Address}, nil, v2.Pagination{}).
		Do(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(42), resp.Data[0].TotalTrades24h)
}

func TestClient_TokenHoldersSchemaError(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"total":1,"items":[{"address":"a","amount":1,"decimals":6,"owner":"o","rank":0}]}}`))
	})

	_, err := c.TokenHolders(token.JUP.Address, v2.AmountRange{}, v2.Pagination{}).Do(context.Background())
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, core.KindSchema, e.Kind)
	assert.Equal(t, "data.items[0].rank", e.Field)
}

func TestClient_RewardsExportRaw(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/account/reward/export", r.URL.Path)
		assert.Equal(t, "1717200000", q.Get("time_from"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("Epoch,Reward\n600,12345\n"))
	})

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	csv, err := c.AccountRewardsExport(account, from, from.AddDate(0, 0, 10)).Do(context.Background())
	require.NoError(t, err)
	assert.Contains(t, csv, "600,12345")
}

func TestClient_ErrorBody(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"errors":{"code":1100,"message":"Validation Error"}}`))
	})

	_, err := c.BlockDetail(270000000).Do(context.Background())
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, core.KindHTTP, e.Kind)
	assert.Equal(t, "1100", e.Code)
	assert.Equal(t, "Validation Error", e.Message)
}

func TestClient_Unauthorized(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"errors":{"code":401,"message":"Unauthorized"}}`))
	})

	_, err := c.TokenMeta(token.JUP.Address).Do(context.Background())
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestClient_MissingKey(t *testing.T) {
	t.Setenv(v2.KeyEnv, "")
	c := v2.New(core.Options{BaseURL: "http://127.0.0.1:1"})

	_, err := c.TokenTrending(0).Do(context.Background())
	assert.ErrorIs(t, err, core.KindAuthentication)
}

func TestClient_AmountRangeWithoutEnd(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()

	var filter v2.TransferFilter
	filter.Amount = v2.AmountRange{Min: 500}
	_, err := c.AccountTransfers(account, v2.AccountTransfersOptions{TransferFilter: filter}).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)
	assert.ErrorIs(t, err, v2.ErrInvalidAmountRange)

	_, err = c.TokenHolders(token.JUP.Address, v2.AmountRange{Min: 500}, v2.Pagination{}).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)
	assert.ErrorIs(t, err, v2.ErrInvalidAmountRange)
	e, _ := core.AsError(err)
	assert.Equal(t, "from_amount", e.Field)

	assert.Equal(t, int32(0), callCount.Load())
}

func TestClient_NFTActivities(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/nft/activities", r.URL.Path)
		assert.Equal(t, []string{"ACTIVITY_NFT_SOLD", "ACTIVITY_NFT_LISTING"}, q["activity_type[]"])
		assert.Equal(t, []string{"1", "1000000000"}, q["price[]"])
		assert.Equal(t, []string{"1717200000", "1717286400"}, q["block_time[]"])
		assert.Equal(t, token.SOL.Address, q.Get("currency_token"))
		assert.Equal(t, "20", q.Get("page_size"))
		assert.False(t, q.Has("collection"))
		w.Write([]byte(`{"success":true,"data":[{"block_id":270000000,"trans_id":"sig","block_time":1717200100,
			"time":"2024-06-01T00:01:40.000Z","activity_type":"ACTIVITY_NFT_SOLD","from_address":"seller",
			"to_address":"buyer","token_address":"nft","marketplace_address":"m","collection_address":"col",
			"amount":1,"price":2500000000,"currency_token":"` + token.SOL.Address + `","currency_decimals":9}]}`))
	})

	resp, err := c.NFTActivities(v2.NFTActivitiesOptions{
		ActivityTypes: []v2.ActivityNFT{v2.ActivityNFTSold, v2.ActivityNFTListing},
		CurrencyToken: token.SOL.Address,
		Amount:        v2.AmountRange{Min: 1, Max: 1_000_000_000},
		BlockTime:     v2.TimeRange{From: from, To: from.Add(24 * time.Hour)},
		Pagination: v2.Pagination{PageSize: v2.PageSize20},
	}).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, v2.ActivityNFTSold, resp.Data[0].ActivityType)
	assert.Equal(t, "col", resp.Data[0].CollectionAddress)
}

func TestClient_NFTActivitiesInvalidFilters(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()
	now := time.Now()

	_, err := c.NFTActivities(v2.NFTActivitiesOptions{Amount: v2.AmountRange{Min: 100_000_000, Max: 1}}).Do(ctx)
	assert.ErrorIs(t, err, v2.ErrInvalidAmountRange)

	_, err = c.NFTActivities(v2.NFTActivitiesOptions{BlockTime: v2.TimeRange{From: now, To: now.Add(-time.Hour)}}).Do(ctx)
	assert.ErrorIs(t, err, v2.ErrInvalidTimeRange)

	_, err = c.NFTActivities(v2.NFTActivitiesOptions{ActivityTypes: []v2.ActivityNFT{"ACTIVITY_SPL_TRANSFER"}}).Do(ctx)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "activity_type", e.Field)
	assert.Equal(t, int32(0), callCount.Load())
}

func TestClient_NFTCollectionLists(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/nft/collection/lists", r.URL.Path)
		assert.Equal(t, "7", q.Get("range"))
		assert.Equal(t, "volumes", q.Get("sort_by"))
		assert.Equal(t, "desc", q.Get("sort_order"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))
		w.Write([]byte(`{"success":true,"data":[{"collection_id":"col","name":"Mad Lads","symbol":"MAD",
			"floor_price":95.5,"items":10000,"marketplaces":["magiceden_v2","tensor"],"volumes":1234.5}]}`))
	})
	ctx := context.Background()

	resp, err := c.NFTCollectionLists(v2.NFTCollectionListsOptions{
		Range:  v2.NFTDays7,
		SortBy: v2.NFTSortVolumes,
	}).Do(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Mad Lads", resp.Data[0].Name)
	assert.Equal(t, int64(10000), resp.Data[0].Items)

	_, err = c.NFTCollectionLists(v2.NFTCollectionListsOptions{Range: 14}).Do(ctx)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindParameter, e.Kind)
	assert.Equal(t, "range", e.Field)
	assert.Equal(t, []string{"1", "7", "30"}, e.Allowed)

	_, err = c.NFTCollectionLists(v2.NFTCollectionListsOptions{PageSize: 12}).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)
	assert.Equal(t, int32(1), callCount.Load())
}
