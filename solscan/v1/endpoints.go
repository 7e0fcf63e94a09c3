package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

const defaultLimit = 10

func requireValue(param, v string) error {
	if v == "" {
		return core.InvalidParam(param, v, param+" is required", nil)
	}
	return nil
}

// Page pagina los listados. Limit vacío es 10.
type Page struct {
	Limit  int `validate:"gte=0,lte=50"`
	Offset int `validate:"gte=0"`
}

func (p Page) limit() int { return orDefault(p.Limit) }

func orDefault(limit int) int {
	if limit == 0 {
		return defaultLimit
	}
	return limit
}

// AccountTokens devuelve las token accounts de una cuenta.
func (c *Client) AccountTokens(account string) *core.Call[[]AccountToken] {
	req := c.in.Request("account_tokens", http.MethodGet, "account/tokens")
	req.Params = core.NewParams().Add("account", account)
	return core.NewCall[[]AccountToken](c.in, req, requireValue("account", account))
}

// AccountTransactions devuelve las transacciones de una cuenta anteriores a
// beforeHash. Limit vacío es 10.
func (c *Client) AccountTransactions(account, beforeHash string, limit int) *core.Call[[]AccountTransaction] {
	req := c.in.Request("account_transactions", http.MethodGet, "account/transactions")
	if limit == 0 {
		limit = defaultLimit
	}
	req.Params = core.NewParams().
		Add("account", account).
		Add("beforeHash", beforeHash).
		Add("limit", limit)
	var err error
	if limit < 0 || limit > 50 {
		err = core.InvalidParam("limit", limit, "limit must be between 1 and 50", nil)
	}
	return core.NewCall[[]AccountTransaction](c.in, req, core.FirstErr(requireValue("account", account), err))
}

// AccountStakeAccounts devuelve las stake accounts indexadas por dirección.
func (c *Client) AccountStakeAccounts(account string) *core.Call[map[string]StakeAccount] {
	req := c.in.Request("account_stake_accounts", http.MethodGet, "account/stakeAccounts")
	req.Params = core.NewParams().Add("account", account)
	return core.NewCall[map[string]StakeAccount](c.in, req, requireValue("account", account))
}

// TransfersOptions filtra transferencias SPL o SOL de una cuenta.
type TransfersOptions struct {
	From   time.Time
	To     time.Time
	Limit  int `validate:"gte=0,lte=50"`
	Offset int `validate:"gte=0"`
}

func (c *Client) transfersRequest(op, path, account string, opts TransfersOptions) (core.Request, error) {
	req := c.in.Request(op, http.MethodGet, path)
	req.Params = core.NewParams().
		Add("account", account).
		Add("fromTime", opts.From).
		Add("toTime", opts.To).
		Add("limit", orDefault(opts.Limit)).
		Add("offset", opts.Offset)
	err := core.FirstErr(
		requireValue("account", account),
		core.ValidateStruct(opts),
		core.CheckTimeRange("fromTime", opts.From, opts.To, ErrTimeRange),
	)
	return req, err
}

// AccountSplTransfers devuelve los cambios de balance SPL de una cuenta.
func (c *Client) AccountSplTransfers(account string, opts TransfersOptions) *core.Call[SplTransfers] {
	req, err := c.transfersRequest("account_spl_transfers", "account/splTransfers", account, opts)
	return core.NewCall[SplTransfers](c.in, req, err)
}

// AccountSolTransfers devuelve las transferencias de SOL de una cuenta.
func (c *Client) AccountSolTransfers(account string, opts TransfersOptions) *core.Call[SolTransfers] {
	req, err := c.transfersRequest("account_sol_transfers", "account/solTransfers", account, opts)
	return core.NewCall[SolTransfers](c.in, req, err)
}

// AccountExportTransactions exporta a CSV los movimientos de una cuenta
// entre from y to. Ambas fechas son obligatorias.
func (c *Client) AccountExportTransactions(account string, typ ExportType, from, to time.Time) *core.Call[string] {
	req := c.in.Request("account_export_transactions", http.MethodGet, "account/exportTransactions")
	req.Params = core.NewParams().
		Add("account", account).
		Add("type", typ).
		Add("fromTime", from).
		Add("toTime", to)
	err := core.FirstErr(
		requireValue("account", account),
		ExportTypes.Check("type", typ),
		exportRange(from, to),
	)
	return core.NewRawCall(c.in, req, err)
}

// AccountExportRewards exporta a CSV las recompensas de staking de una cuenta.
func (c *Client) AccountExportRewards(account string, from, to time.Time) *core.Call[string] {
	req := c.in.Request("account_export_rewards", http.MethodGet, "account/exportRewards")
	req.Params = core.NewParams().
		Add("account", account).
		Add("fromTime", from).
		Add("toTime", to)
	return core.NewRawCall(c.in, req, core.FirstErr(requireValue("account", account), exportRange(from, to)))
}

func exportRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return core.InvalidParam("fromTime", "", "fromTime and toTime are required", ErrTimeRange)
	}
	return core.CheckTimeRange("fromTime", from, to, ErrTimeRange)
}

// AccountDetail devuelve el estado de una cuenta.
func (c *Client) AccountDetail(account string) *core.Call[AccountDetail] {
	req := c.in.Request("account_detail", http.MethodGet, "account/"+core.PathEscape(account))
	return core.NewCall[AccountDetail](c.in, req, requireValue("account", account))
}

// HoldersOptions pagina los holders de un token y filtra por cantidad.
type HoldersOptions struct {
	FromAmount uint64
	ToAmount   uint64
	Limit      int `validate:"gte=0,lte=50"`
	Offset     int `validate:"gte=0"`
}

// TokenHolders devuelve los holders de un token.
func (c *Client) TokenHolders(token string, opts HoldersOptions) *core.Call[Holders] {
	req := c.in.Request("token_holders", http.MethodGet, "token/holders")
	req.Params = core.NewParams().
		Add("tokenAddress", token).
		Add("limit", orDefault(opts.Limit)).
		Add("offset", opts.Offset).
		Add("fromAmount", opts.FromAmount).
		Add("toAmount", opts.ToAmount)
	var rangeErr error
	if opts.FromAmount != 0 && opts.ToAmount != 0 && opts.FromAmount > opts.ToAmount {
		rangeErr = core.InvalidParam("fromAmount",
			strconv.FormatUint(opts.FromAmount, 10)+" > "+strconv.FormatUint(opts.ToAmount, 10),
			"amount range start is greater than its end", ErrAmountRange)
	}
	err := core.FirstErr(requireValue("tokenAddress", token), core.ValidateStruct(opts), rangeErr)
	return core.NewCall[Holders](c.in, req, err)
}

// TokenMeta devuelve los metadatos de un token.
func (c *Client) TokenMeta(token string) *core.Call[TokenMeta] {
	req := c.in.Request("token_meta", http.MethodGet, "token/meta")
	req.Params = core.NewParams().Add("tokenAddress", token)
	return core.NewCall[TokenMeta](c.in, req, requireValue("tokenAddress", token))
}

// TokenTransfer devuelve las transferencias de un token, opcionalmente
// filtradas por la cuenta owner.
func (c *Client) TokenTransfer(token, owner string, page Page) *core.Call[TokenTransfers] {
	req := c.in.Request("token_transfer", http.MethodGet, "token/transfer")
	req.Params = core.NewParams().
		Add("tokenAddress", token).
		Add("owner", owner).
		Add("limit", page.limit()).
		Add("offset", page.Offset)
	return core.NewCall[TokenTransfers](c.in, req, core.FirstErr(requireValue("tokenAddress", token), core.ValidateStruct(page)))
}

// TokenListOptions ordena /token/list. Por defecto market_cap desc.
type TokenListOptions struct {
	SortBy    Sort
	Direction Order
	Limit     int `validate:"gte=0,lte=50"`
	Offset    int `validate:"gte=0"`
}

// TokenList devuelve el listado de tokens ordenado.
func (c *Client) TokenList(opts TokenListOptions) *core.Call[TokenList] {
	req := c.in.Request("token_list", http.MethodGet, "token/list")
	if opts.SortBy == "" {
		opts.SortBy = SortMarketCap
	}
	if opts.Direction == "" {
		opts.Direction = OrderDesc
	}
	req.Params = core.NewParams().
		Add("sortBy", opts.SortBy).
		Add("direction", opts.Direction).
		Add("limit", orDefault(opts.Limit)).
		Add("offset", opts.Offset)
	return core.NewCall[TokenList](c.in, req, core.FirstErr(req.Params.Err(), core.ValidateStruct(opts)))
}

// MarketTokenDetail devuelve precio y mercados de un token.
func (c *Client) MarketTokenDetail(token string, page Page) *core.Call[MarketTokenDetail] {
	req := c.in.Request("market_token_detail", http.MethodGet, "market/token/"+core.PathEscape(token))
	req.Params = core.NewParams().
		Add("limit", page.limit()).
		Add("offset", page.Offset)
	return core.NewCall[MarketTokenDetail](c.in, req, core.FirstErr(requireValue("token", token), core.ValidateStruct(page)))
}

func lastLimit(limit int) (int, error) {
	if limit == 0 {
		return defaultLimit, nil
	}
	if limit < 0 || limit > 20 {
		return limit, core.InvalidParam("limit", limit, "limit must be between 1 and 20", nil)
	}
	return limit, nil
}

// TransactionLast devuelve las últimas transacciones de la red.
func (c *Client) TransactionLast(limit int) *core.Call[[]ChainTransaction] {
	req := c.in.Request("transaction_last", http.MethodGet, "transaction/last")
	limit, err := lastLimit(limit)
	req.Params = core.NewParams().Add("limit", limit)
	return core.NewCall[[]ChainTransaction](c.in, req, err)
}

// TransactionDetail devuelve el detalle parseado de una transacción.
func (c *Client) TransactionDetail(signature string) *core.Call[TransactionDetail] {
	req := c.in.Request("transaction_detail", http.MethodGet, "transaction/"+core.PathEscape(signature))
	return core.NewCall[TransactionDetail](c.in, req, requireValue("signature", signature))
}

// BlockLast devuelve los últimos bloques.
func (c *Client) BlockLast(limit int) *core.Call[[]Block] {
	req := c.in.Request("block_last", http.MethodGet, "block/last")
	limit, err := lastLimit(limit)
	req.Params = core.NewParams().Add("limit", limit)
	return core.NewCall[[]Block](c.in, req, err)
}

func blockErr(block int64) error {
	if block < 0 {
		return core.InvalidParam("block", block, "block must not be negative", nil)
	}
	return nil
}

// BlockDetail devuelve un bloque por slot.
func (c *Client) BlockDetail(block int64) *core.Call[Block] {
	req := c.in.Request("block_detail", http.MethodGet, "block/"+strconv.FormatInt(block, 10))
	return core.NewCall[Block](c.in, req, blockErr(block))
}

// BlockTransactions devuelve las transacciones de un bloque.
func (c *Client) BlockTransactions(block int64, page Page) *core.Call[[]ChainTransaction] {
	req := c.in.Request("block_transactions", http.MethodGet, "block/transactions")
	req.Params = core.NewParams().
		Add("block", block).
		Add("limit", page.limit()).
		Add("offset", page.Offset)
	return core.NewCall[[]ChainTransaction](c.in, req, core.FirstErr(blockErr(block), core.ValidateStruct(page)))
}
