package solanafm

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

// TransactionsOptions filtra transacciones de una cuenta. Los campos vacíos
// no se envían.
type TransactionsOptions struct {
	Actions    string
	From       time.Time
	To         time.Time
	Inflow     *bool
	Outflow    *bool
	Mints      []string
	AmountFrom uint64 `validate:"omitempty,gt=0"`
	AmountTo   uint64 `validate:"omitempty,gt=0"`
	Programs   []string
	Limit      int `validate:"omitempty,gt=0,lte=1000"`
	Page       int `validate:"omitempty,gt=0"`
}

func (o TransactionsOptions) params() (*core.Params, error) {
	err := core.FirstErr(
		core.ValidateStruct(o),
		core.CheckTimeRange("utcFrom", o.From, o.To, ErrTimeRange),
		amountRange(o.AmountFrom, o.AmountTo),
	)
	p := core.NewParams().
		Add("actions", o.Actions).
		Add("utcFrom", o.From).
		Add("utcTo", o.To).
		Add("inflow", o.Inflow).
		Add("outflow", o.Outflow).
		Join("mints", o.Mints).
		Add("amountFrom", o.AmountFrom).
		Add("amountTo", o.AmountTo).
		Join("programs", o.Programs).
		Add("limit", o.Limit).
		Add("page", o.Page)
	return p, err
}

func amountRange(from, to uint64) error {
	if from == 0 || to == 0 || from <= to {
		return nil
	}
	return core.InvalidParam("amountFrom", strconv.FormatUint(from, 10)+" > "+strconv.FormatUint(to, 10),
		"amount range start is greater than its end", ErrAmountRange)
}

func accountPath(account, suffix string) string {
	return "v0/accounts/" + core.PathEscape(account) + "/" + suffix
}

func requireValue(param, v string) error {
	if v == "" {
		return core.InvalidParam(param, v, param+" is required", nil)
	}
	return nil
}

// AccountTransactions devuelve las transacciones de una cuenta.
func (c *Client) AccountTransactions(account string, opts TransactionsOptions) *core.Call[Response[AccountTransactions]] {
	req := c.in.Request("account_transactions", http.MethodGet, accountPath(account, "transactions"))
	params, err := opts.params()
	req.Params = params
	return core.NewCall[Response[AccountTransactions]](c.in, req, core.FirstErr(requireValue("account", account), err))
}

// AccountTransactionsFees devuelve las fees diarias pagadas por una cuenta.
// Las fechas vacías no se envían.
func (c *Client) AccountTransactionsFees(account string, from, to time.Time) *core.Call[AccountFees] {
	req := c.in.Request("account_transactions_fees", http.MethodGet, accountPath(account, "fees"))
	req.Params = core.NewParams()
	if !from.IsZero() {
		req.Params.Add("from", from.Format(time.DateOnly))
	}
	if !to.IsZero() {
		req.Params.Add("to", to.Format(time.DateOnly))
	}
	err := core.FirstErr(requireValue("account", account), core.CheckTimeRange("from", from, to, ErrTimeRange))
	return core.NewCall[AccountFees](c.in, req, err)
}

// TransfersOptions filtra transferencias de una cuenta.
type TransfersOptions struct {
	From    time.Time
	To      time.Time
	Inflow  *bool
	Outflow *bool
	Mints   []string
	Limit   int `validate:"omitempty,gt=0,lte=100"`
	Page    int `validate:"omitempty,gt=0"`
}

// AccountTransfers devuelve las transferencias de una cuenta.
func (c *Client) AccountTransfers(account string, opts TransfersOptions) *core.Call[AccountTransfers] {
	req := c.in.Request("account_transfers", http.MethodGet, accountPath(account, "transfers"))
	req.Params = core.NewParams().
		Add("utcFrom", opts.From).
		Add("utcTo", opts.To).
		Add("inflow", opts.Inflow).
		Add("outflow", opts.Outflow).
		Join("mint", opts.Mints).
		Add("limit", opts.Limit).
		Add("page", opts.Page)
	err := core.FirstErr(
		requireValue("account", account),
		core.ValidateStruct(opts),
		core.CheckTimeRange("utcFrom", opts.From, opts.To, ErrTimeRange),
	)
	return core.NewCall[AccountTransfers](c.in, req, err)
}

// AccountTransfersCSV exporta las transferencias de una cuenta como CSV.
func (c *Client) AccountTransfersCSV(account string, opts TransactionsOptions) *core.Call[string] {
	req := c.in.Request("account_transfers_csv", http.MethodGet, accountPath(account, "transfers/csv"))
	params, err := opts.params()
	req.Params = params
	return core.NewRawCall(c.in, req, core.FirstErr(requireValue("account", account), err))
}

// BlocksOptions pagina /v0/blocks. PageSize vacío es 50.
type BlocksOptions struct {
	From           *int64 `validate:"omitempty,gte=0"`
	PageSize       int    `validate:"gte=0,lte=100"`
	PaginationType BlocksPaginationType
	Reverse        *bool
}

// Blocks lista bloques desde From, o desde el último si From es nil.
func (c *Client) Blocks(opts BlocksOptions) *core.Call[Response[Blocks]] {
	req := c.in.Request("blocks", http.MethodGet, "v0/blocks")
	if opts.PageSize == 0 {
		opts.PageSize = 50
	}
	if opts.PaginationType == "" {
		opts.PaginationType = PaginateBlockNumber
	}
	req.Params = core.NewParams().
		Add("from", opts.From).
		Add("pageSize", opts.PageSize).
		Add("paginationType", opts.PaginationType).
		Add("reverse", opts.Reverse)
	return core.NewCall[Response[Blocks]](c.in, req, core.FirstErr(core.ValidateStruct(opts), req.Params.Err()))
}

// Block devuelve un bloque por número.
func (c *Client) Block(number int64) *core.Call[Response[Block]] {
	req := c.in.Request("block", http.MethodGet, "v0/blocks/"+strconv.FormatInt(number, 10))
	var err error
	if number < 0 {
		err = core.InvalidParam("blockNumber", number, "block number must not be negative", nil)
	}
	return core.NewCall[Response[Block]](c.in, req, err)
}

type hydration struct {
	AccountHash bool `json:"accountHash"`
}

type multipleBlocksBody struct {
	Hydration    hydration `json:"hydration"`
	BlockNumbers []int64   `json:"blockNumbers"`
}

// MultipleBlocks devuelve varios bloques. Con producerDetails el productor
// llega hidratado.
func (c *Client) MultipleBlocks(numbers []int64, producerDetails bool) *core.Call[Response[[]Block]] {
	req := c.in.Request("multiple_blocks", http.MethodPost, "v0/blocks")
	req.Body = multipleBlocksBody{Hydration: hydration{AccountHash: producerDetails}, BlockNumbers: numbers}
	var err error
	if len(numbers) == 0 {
		err = core.InvalidParam("blockNumbers", "", "at least one block number is required", nil)
	}
	return core.NewCall[Response[[]Block]](c.in, req, err)
}

// DailyTransactionFees devuelve las fees totales de la red en un día.
// Un día vacío es hoy según el reloj del cliente, y su valor aún puede cambiar.
func (c *Client) DailyTransactionFees(day time.Time) *core.Call[Response[DailyFees]] {
	req := c.in.Request("daily_transaction_fees", http.MethodGet, "v0/stats/tx-fees")
	if day.IsZero() {
		day = c.in.Clock().Now()
	}
	req.Params = core.NewParams().Add("date", day.UTC().Format(dayLayout))
	return core.NewCall[Response[DailyFees]](c.in, req, nil)
}

// TokenInfoV0 devuelve la ficha de un token en la API v0.
func (c *Client) TokenInfoV0(mint string) *core.Call[Response[TokenV0]] {
	req := c.in.Request("token_info_v0", http.MethodGet, "v0/tokens/"+core.PathEscape(mint))
	return core.NewCall[Response[TokenV0]](c.in, req, requireValue("mint", mint))
}

// TokenInfoV1 devuelve la ficha extendida de un token.
func (c *Client) TokenInfoV1(mint string) *core.Call[TokenV1] {
	req := c.in.Request("token_info_v1", http.MethodGet, "v1/tokens/"+core.PathEscape(mint))
	return core.NewCall[TokenV1](c.in, req, requireValue("mint", mint))
}

type tokensBody struct {
	Tokens []string `json:"tokens"`
}

// MultipleTokenInfoV1 devuelve la ficha de varios tokens indexada por mint.
func (c *Client) MultipleTokenInfoV1(mints []string) *core.Call[map[string]TokenV1] {
	req := c.in.Request("multiple_token_info_v1", http.MethodPost, "v1/tokens")
	req.Body = tokensBody{Tokens: mints}
	var err error
	if len(mints) == 0 {
		err = core.InvalidParam("tokens", "", "at least one mint is required", nil)
	}
	return core.NewCall[map[string]TokenV1](c.in, req, err)
}

// TokenSupply devuelve el supply circulante de un token.
func (c *Client) TokenSupply(mint string) *core.Call[TokenSupply] {
	req := c.in.Request("token_supply", http.MethodGet, "v1/tokens/"+core.PathEscape(mint)+"/supply")
	return core.NewCall[TokenSupply](c.in, req, requireValue("mint", mint))
}

// TransferTransaction devuelve las transferencias de una transacción.
func (c *Client) TransferTransaction(hash string) *core.Call[Response[TransactionTransfers]] {
	req := c.in.Request("transfer_transaction", http.MethodGet, "v0/transfers/"+core.PathEscape(hash))
	return core.NewCall[Response[TransactionTransfers]](c.in, req, requireValue("hash", hash))
}

type transfersBody struct {
	TransactionHashes []string `json:"transactionHashes"`
}

// MultipleTransferTransactions devuelve las transferencias de varias transacciones.
func (c *Client) MultipleTransferTransactions(hashes []string) *core.Call[Response[[]TransactionTransfers]] {
	req := c.in.Request("multiple_transfer_transactions", http.MethodPost, "v0/transfers")
	req.Body = transfersBody{TransactionHashes: hashes}
	var err error
	if len(hashes) == 0 {
		err = core.InvalidParam("transactionHashes", "", "at least one hash is required", nil)
	}
	return core.NewCall[Response[[]TransactionTransfers]](c.in, req, err)
}
