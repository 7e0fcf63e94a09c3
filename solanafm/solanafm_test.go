package solanafm_test

import (
	"context"
	"encoding/json"
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
	"github.com/alejandrodnm/cyhole/solanafm"
)

const account = "AK2VbkdYLHSiJKS6AGUfNZYNaejABkV6VYDX1Vrgxfo"

func newClient(t *testing.T, h http.HandlerFunc) (*solanafm.Client, *atomic.Int32) {
	t.Helper()
	var callCount atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount.Add(1)
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c := solanafm.New(core.Options{
		BaseURL: srv.URL,
		APIKey:  "fm-key",
		Clock:   clockwork.NewFakeClockAt(time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, c.Open())
	t.Cleanup(func() { c.Close() })
	return c, &callCount
}

func TestClient_AccountTransactions(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v0/accounts/"+account+"/transactions", r.URL.Path)
		assert.Equal(t, "fm-key", r.Header.Get("ApiKey"))
		assert.Equal(t, token.SOL.Address+","+token.USDC.Address, q.Get("mints"))
		assert.Equal(t, "false", q.Get("inflow"))
		assert.Equal(t, "1704067200", q.Get("utcFrom"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.False(t, q.Has("page"))
		w.Write([]byte(`{"status":"success","message":"ok","result":{"data":[{"blockTime":1704067300,
			"confirmationStatus":"finalized","err":null,"memo":null,"signature":"sig","slot":240000000}],
			"pagination":{"currentPage":1,"totalPages":3}}}`))
	})
	inflow := false

	resp, err := c.AccountTransactions(account, solanafm.TransactionsOptions{
		From:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Inflow: &inflow,
		Mints:  []string{token.SOL.Address, token.USDC.Address},
		Limit:  20,
	}).Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	require.Len(t, resp.Result.Data, 1)
	assert.Nil(t, resp.Result.Data[0].Err)
	assert.Equal(t, 3, resp.Result.Pagination.TotalPages)
}

func TestClient_AccountTransactionsRanges(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx := context.Background()
	now := time.Now()

	_, err := c.AccountTransactions(account, solanafm.TransactionsOptions{From: now, To: now.Add(-time.Minute)}).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)
	assert.ErrorIs(t, err, solanafm.ErrTimeRange)

	_, err = c.AccountTransactions(account, solanafm.TransactionsOptions{AmountFrom: 10, AmountTo: 5}).Do(ctx)
	assert.ErrorIs(t, err, solanafm.ErrAmountRange)

	_, err = c.AccountTransactions(account, solanafm.TransactionsOptions{Limit: 1001}).Do(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	_, err = c.AccountTransfers(account, solanafm.TransfersOptions{Limit: 101}).Go(ctx).Await(ctx)
	assert.ErrorIs(t, err, core.KindParameter)

	assert.Equal(t, int32(0), callCount.Load())
}

func TestClient_AccountTransfersCSV(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/accounts/"+account+"/transfers/csv", r.URL.Path)
		assert.Empty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("transactionHash,action,amount\nsig,transfer,100\n"))
	})

	csv, err := c.AccountTransfersCSV(account, solanafm.TransactionsOptions{}).Do(context.Background())
	require.NoError(t, err)
	assert.Contains(t, csv, "sig,transfer,100")
}

func TestClient_BlocksDefaults(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "50", q.Get("pageSize"))
		assert.Equal(t, "blockNumber", q.Get("paginationType"))
		assert.False(t, q.Has("from"))
		w.Write([]byte(`{"status":"success","message":"ok","result":{"data":[],"pagination":{"next":10,"previous":null}}}`))
	})

	resp, err := c.Blocks(solanafm.BlocksOptions{}).Do(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Result.Pagination.Next)
	assert.Equal(t, int64(10), *resp.Result.Pagination.Next)
}

func TestClient_BlocksBadPagination(t *testing.T) {
	c, callCount := newClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Blocks(solanafm.BlocksOptions{PaginationType: "slot"}).Do(context.Background())
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, "paginationType", e.Field)
	assert.Equal(t, []string{"blockNumber", "blockTime"}, e.Allowed)
	assert.Equal(t, int32(0), callCount.Load())
}

const blockData = `"epoch":600,"previousHash":"p","hash":"h","parentNumber":99,"number":100,"dataSize":1,
	"numberOfTransactions":10,"successfulTransactions":9,"voteTransactions":5,"totalTxFees":5000,"numberOfRewards":1,
	"totalRewardAmount":1,"totalComputeUnitsConsumed":1,"totalComputeUnitsLimit":2,"blockTime":1709830000`

func TestClient_MultipleBlocksProducer(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Hydration struct {
				AccountHash bool `json:"accountHash"`
			} `json:"hydration"`
			BlockNumbers []int64 `json:"blockNumbers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Hydration.AccountHash)
		assert.Equal(t, []int64{100, 101}, body.BlockNumbers)
		w.Write([]byte(`{"status":"success","message":"ok","result":[
			{"blockNumber":100,"data":{` + blockData + `,"producer":"validator"}},
			{"blockNumber":101,"data":{` + blockData + `,"producer":{"accountHash":"validator","data":{"friendlyName":"Val",
				"abbreviation":"V","category":"validator","voteKey":"vote","network":"solana-mainnet","tags":[]}}}}]}`))
	})

	resp, err := c.MultipleBlocks([]int64{100, 101}, true).Do(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Result, 2)

	assert.Equal(t, "validator", resp.Result[0].Data.Producer.AccountHash)
	assert.Nil(t, resp.Result[0].Data.Producer.Details)
	require.NotNil(t, resp.Result[1].Data.Producer.Details)
	assert.Equal(t, "Val", resp.Result[1].Data.Producer.Details.FriendlyName)
}

func TestClient_DailyTransactionFeesUsesClock(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "07-03-2024", r.URL.Query().Get("date"))
		w.Write([]byte(`{"status":"success","message":"ok","result":{"totalTxFees":123456789,"date":"07-03-2024"}}`))
	})

	resp, err := c.DailyTransactionFees(time.Time{}).Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.March, resp.Result.Date.Month())
	assert.Equal(t, int64(123456789), resp.Result.TotalTxFees)
}

func TestClient_TokenSupplySchemaError(t *testing.T) {
	c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tokens/"+token.BONK.Address+"/supply", r.URL.Path)
		w.Write([]byte(`{"circulatingSupply":"lots","userTotalWithheldAmount":0,"totalWithheldAmount":0,"realCirculatingSupply":1,"decimals":5}`))
	})

	_, err := c.TokenSupply(token.BONK.Address).Do(context.Background())
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, core.KindSchema, e.Kind)
	assert.Equal(t, "circulatingSupply", e.Field)
}

func TestClient_WithoutKeySendsNoHeader(t *testing.T) {
	t.Setenv(solanafm.KeyEnv, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("ApiKey"))
		w.Write([]byte(`{"status":"success","message":"ok","result":{"transactionHash":"sig","data":[]}}`))
	}))
	defer srv.Close()

	c := solanafm.New(core.Options{BaseURL: srv.URL})
	resp, err := c.TransferTransaction("sig").Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sig", resp.Result.TransactionHash)
}
