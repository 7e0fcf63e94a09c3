package v2

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

const priceDateLayout = "20060102"

func requireValue(param, v string) error {
	if v == "" {
		return core.InvalidParam(param, v, param+" is required", nil)
	}
	return nil
}

// Pagination es la paginación page/page_size. Los valores vacíos son la
// página 1 y 10 elementos.
type Pagination struct {
	Page     int
	PageSize PageSize
}

func (p Pagination) add(params *core.Params) error {
	if p.Page < 0 {
		return core.InvalidParam("page", p.Page, "page must be positive", nil)
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = PageSize10
	}
	return params.Add("page", p.Page).Add("page_size", p.PageSize).Err()
}

// AmountRange filtra por cantidad. El valor vacío no filtra; cualquier
// otro se envía y exige Min <= Max.
type AmountRange struct {
	Min uint64
	Max uint64
}

func (r AmountRange) isZero() bool { return r == AmountRange{} }

func (r AmountRange) check(key string) error {
	if r.Min > r.Max {
		return core.InvalidParam(key, strconv.FormatUint(r.Min, 10)+" > "+strconv.FormatUint(r.Max, 10),
			"amount range start is greater than its end", ErrInvalidAmountRange)
	}
	return nil
}

func (r AmountRange) add(params *core.Params, key string) error {
	if r.isZero() {
		return nil
	}
	if err := r.check(key); err != nil {
		return err
	}
	params.Repeat(key, []string{strconv.FormatUint(r.Min, 10), strconv.FormatUint(r.Max, 10)})
	return nil
}

// TimeRange filtra por block_time. Se envía solo si ambos extremos están
// informados.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (r TimeRange) add(params *core.Params, key string) error {
	if r.From.IsZero() || r.To.IsZero() {
		return nil
	}
	if err := core.CheckTimeRange(key, r.From, r.To, ErrInvalidTimeRange); err != nil {
		return err
	}
	params.Repeat(key, []string{strconv.FormatInt(r.From.Unix(), 10), strconv.FormatInt(r.To.Unix(), 10)})
	return nil
}

// TransferFilter son los filtros comunes de /account/transfer y /token/transfer.
type TransferFilter struct {
	ActivityTypes     []ActivityTransfer
	From              string
	To                string
	Amount            AmountRange
	BlockTime         TimeRange
	ExcludeAmountZero bool
	Pagination
}

func (f TransferFilter) params() (*core.Params, error) {
	p := core.NewParams().
		Repeat("activity_type[]", core.Strings(f.ActivityTypes)).
		Add("from", f.From).
		Add("to", f.To).
		Add("exclude_amount_zero", f.ExcludeAmountZero)
	err := core.FirstErr(
		ActivityTransfers.CheckAll("activity_type", f.ActivityTypes),
		f.Amount.add(p, "amount[]"),
		f.BlockTime.add(p, "block_time[]"),
		f.Pagination.add(p),
	)
	return p, err
}

// AccountTransfersOptions añade a TransferFilter los filtros propios de una cuenta.
type AccountTransfersOptions struct {
	TransferFilter
	TokenAccount string
	Token        string
	Flow         Flow
}

// AccountTransfers devuelve las transferencias de una cuenta.
func (c *Client) AccountTransfers(account string, opts AccountTransfersOptions) *core.Call[Response[[]Transfer]] {
	req := c.in.Request("account_transfers", http.MethodGet, "account/transfer")
	params, err := opts.params()
	params.Add("address", account).
		Add("token_account", opts.TokenAccount).
		Add("token", opts.Token).
		Add("flow", opts.Flow)
	req.Params = params
	err = core.FirstErr(requireValue("address", account), err, params.Err())
	return core.NewCall[Response[[]Transfer]](c.in, req, err)
}

// AccountTokenAccounts devuelve las token accounts (o NFT) de una cuenta.
// Las cuentas con balance cero se ocultan salvo con showZero.
func (c *Client) AccountTokenAccounts(account string, typ AccountType, page Pagination, showZero bool) *core.Call[Response[[]TokenAccount]] {
	req := c.in.Request("account_token_accounts", http.MethodGet, "account/token-accounts")
	hideZero := !showZero
	params := core.NewParams().
		Add("address", account).
		Add("type", typ).
		Add("hide_zero", &hideZero)
	err := core.FirstErr(requireValue("address", account), AccountTypes.Check("type", typ), page.add(params))
	req.Params = params
	return core.NewCall[Response[[]TokenAccount]](c.in, req, err)
}

// DefiOptions filtra actividades DeFi de una cuenta o de un token.
type DefiOptions struct {
	ActivityTypes []ActivityDefi
	From          string
	Platforms     []string
	Sources       []string
	BlockTime     TimeRange
	Pagination
}

func (o DefiOptions) params(key, address string) (*core.Params, error) {
	p := core.NewParams().
		Add(key, address).
		Repeat("activity_type[]", core.Strings(o.ActivityTypes)).
		Add("from", o.From).
		Repeat("platform[]", o.Platforms).
		Repeat("source[]", o.Sources)
	err := core.FirstErr(
		requireValue(key, address),
		ActivityDefis.CheckAll("activity_type", o.ActivityTypes),
		o.BlockTime.add(p, "block_time[]"),
		o.Pagination.add(p),
	)
	return p, err
}

// AccountDefiActivities devuelve las actividades DeFi (swaps, liquidez,
// staking) de una cuenta.
func (c *Client) AccountDefiActivities(account string, opts DefiOptions) *core.Call[Response[[]DefiActivity]] {
	req := c.in.Request("account_defi_activities", http.MethodGet, "account/defi/activities")
	params, err := opts.params("address", account)
	req.Params = params
	return core.NewCall[Response[[]DefiActivity]](c.in, req, err)
}

// BalanceChangeOptions filtra /account/balance_change.
type BalanceChangeOptions struct {
	Token      string
	BlockTime  TimeRange
	RemoveSpam *bool
	Amount     AmountRange
	Flow       Flow
	Pagination
}

// AccountBalanceChange devuelve los cambios de balance de una cuenta.
func (c *Client) AccountBalanceChange(account string, opts BalanceChangeOptions) *core.Call[Response[[]BalanceChange]] {
	req := c.in.Request("account_balance_change", http.MethodGet, "account/balance_change")
	params := core.NewParams().
		Add("address", account).
		Add("token", opts.Token).
		Add("remove_spam", opts.RemoveSpam).
		Add("flow", opts.Flow)
	err := core.FirstErr(
		requireValue("address", account),
		params.Err(),
		opts.Amount.add(params, "amount[]"),
		opts.BlockTime.add(params, "block_time[]"),
		opts.Pagination.add(params),
	)
	req.Params = params
	return core.NewCall[Response[[]BalanceChange]](c.in, req, err)
}

func limitOrDefault(l ReturnLimit) ReturnLimit {
	if l == 0 {
		return Limit10
	}
	return l
}

// AccountTransactions devuelve las transacciones de una cuenta anteriores a
// la firma before.
func (c *Client) AccountTransactions(account, before string, limit ReturnLimit) *core.Call[Response[[]Transaction]] {
	req := c.in.Request("account_transactions", http.MethodGet, "account/transactions")
	req.Params = core.NewParams().
		Add("address", account).
		Add("before", before).
		Add("limit", limitOrDefault(limit))
	return core.NewCall[Response[[]Transaction]](c.in, req, core.FirstErr(requireValue("address", account), req.Params.Err()))
}

// AccountStake devuelve las stake accounts de una cuenta.
func (c *Client) AccountStake(account string, page int, limit ReturnLimit) *core.Call[Response[[]Stake]] {
	req := c.in.Request("account_stake", http.MethodGet, "account/stake")
	if page == 0 {
		page = 1
	}
	req.Params = core.NewParams().
		Add("address", account).
		Add("page", page).
		Add("page_size", limitOrDefault(limit))
	var pageErr error
	if page < 0 {
		pageErr = core.InvalidParam("page", page, "page must be positive", nil)
	}
	return core.NewCall[Response[[]Stake]](c.in, req, core.FirstErr(requireValue("address", account), pageErr, req.Params.Err()))
}

// AccountDetail devuelve el estado de una cuenta.
func (c *Client) AccountDetail(account string) *core.Call[Response[AccountDetail]] {
	req := c.in.Request("account_detail", http.MethodGet, "account/detail")
	req.Params = core.NewParams().Add("address", account)
	return core.NewCall[Response[AccountDetail]](c.in, req, requireValue("address", account))
}

// AccountRewardsExport exporta a CSV las recompensas de una cuenta entre
// from y to. La API admite una llamada por minuto y 5000 filas.
func (c *Client) AccountRewardsExport(account string, from, to time.Time) *core.Call[string] {
	req := c.in.Request("account_rewards_export", http.MethodGet, "account/reward/export")
	req.Params = core.NewParams().
		Add("address", account).
		Add("time_from", from).
		Add("time_to", to)
	var err error
	if from.IsZero() || to.IsZero() {
		err = core.InvalidParam("time_from", "", "time_from and time_to are required", ErrInvalidTimeRange)
	}
	err = core.FirstErr(requireValue("address", account), err, core.CheckTimeRange("time_from", from, to, ErrInvalidTimeRange))
	return core.NewRawCall(c.in, req, err)
}

// TokenTransfer devuelve las transferencias de un token.
func (c *Client) TokenTransfer(token string, filter TransferFilter) *core.Call[Response[[]Transfer]] {
	req := c.in.Request("token_transfer", http.MethodGet, "token/transfer")
	params, err := filter.params()
	params.Add("address", token)
	req.Params = params
	return core.NewCall[Response[[]Transfer]](c.in, req, core.FirstErr(requireValue("address", token), err))
}

// TokenDefiActivities devuelve las actividades DeFi de un token.
func (c *Client) TokenDefiActivities(token string, opts DefiOptions) *core.Call[Response[[]DefiActivity]] {
	req := c.in.Request("token_defi_activities", http.MethodGet, "token/defi/activities")
	params, err := opts.params("address", token)
	req.Params = params
	return core.NewCall[Response[[]DefiActivity]](c.in, req, err)
}

// TokenMarkets devuelve los pools de los tokens, opcionalmente filtrados
// por programa.
func (c *Client) TokenMarkets(tokens, programs []string, page Pagination) *core.Call[Response[[]TokenMarket]] {
	req := c.in.Request("token_markets", http.MethodGet, "token/markets")
	params := core.NewParams().
		Repeat("token[]", tokens).
		Repeat("program[]", programs)
	var err error
	if len(tokens) == 0 {
		err = core.InvalidParam("token[]", "", "at least one token is required", nil)
	}
	req.Params = params
	return core.NewCall[Response[[]TokenMarket]](c.in, req, core.FirstErr(err, page.add(params)))
}

// TokenListOptions ordena /token/list. Por defecto market_cap desc.
type TokenListOptions struct {
	SortBy    Sort
	SortOrder Order
	Pagination
}

// TokenList devuelve el listado de tokens.
func (c *Client) TokenList(opts TokenListOptions) *core.Call[Response[[]ListedToken]] {
	req := c.in.Request("token_list", http.MethodGet, "token/list")
	if opts.SortBy == "" {
		opts.SortBy = SortMarketCap
	}
	if opts.SortOrder == "" {
		opts.SortOrder = OrderDesc
	}
	params := core.NewParams().
		Add("sort_by", opts.SortBy).
		Add("sort_order", opts.SortOrder)
	err := core.FirstErr(params.Err(), opts.Pagination.add(params))
	req.Params = params
	return core.NewCall[Response[[]ListedToken]](c.in, req, err)
}

// TokenTrending devuelve los tokens en tendencia. Limit vacío es 10.
func (c *Client) TokenTrending(limit int) *core.Call[Response[[]TrendingToken]] {
	req := c.in.Request("token_trending", http.MethodGet, "token/trending")
	if limit == 0 {
		limit = 10
	}
	req.Params = core.NewParams().Add("limit", limit)
	var err error
	if limit < 0 {
		err = core.InvalidParam("limit", limit, "limit must be positive", nil)
	}
	return core.NewCall[Response[[]TrendingToken]](c.in, req, err)
}

// TokenPrice devuelve el precio diario de un token. Sin to devuelve el día
// from; sin from, el día de hoy según el reloj del cliente.
func (c *Client) TokenPrice(token string, from, to time.Time) *core.Call[Response[[]TokenPrice]] {
	req := c.in.Request("token_price", http.MethodGet, "token/price")
	if from.IsZero() {
		from = c.in.Clock().Now()
	}
	days := []string{from.UTC().Format(priceDateLayout)}
	if !to.IsZero() {
		days = append(days, to.UTC().Format(priceDateLayout))
	}
	req.Params = core.NewParams().Add("address", token).Repeat("time[]", days)
	err := core.FirstErr(requireValue("address", token), core.CheckTimeRange("time", from, to, ErrInvalidTimeRange))
	return core.NewCall[Response[[]TokenPrice]](c.in, req, err)
}

// TokenHolders devuelve los holders de un token.
func (c *Client) TokenHolders(token string, amount AmountRange, page Pagination) *core.Call[Response[Holders]] {
	req := c.in.Request("token_holders", http.MethodGet, "token/holders")
	params := core.NewParams().Add("address", token)
	var rangeErr error
	if !amount.isZero() {
		params.Add("from_amount", strconv.FormatUint(amount.Min, 10)).
			Add("to_amount", strconv.FormatUint(amount.Max, 10))
		rangeErr = amount.check("from_amount")
	}
	req.Params = params
	err := core.FirstErr(requireValue("address", token), rangeErr, page.add(params))
	return core.NewCall[Response[Holders]](c.in, req, err)
}

// TokenMeta devuelve los metadatos de un token.
func (c *Client) TokenMeta(token string) *core.Call[Response[TokenMeta]] {
	req := c.in.Request("token_meta", http.MethodGet, "token/meta")
	req.Params = core.NewParams().Add("address", token)
	return core.NewCall[Response[TokenMeta]](c.in, req, requireValue("address", token))
}

func nftPage(params *core.Params, page int, size NFTPageSize) error {
	if page < 0 {
		return core.InvalidParam("page", page, "page must be positive", nil)
	}
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = NFTPageSize12
	}
	params.Add("page", page).Add("page_size", size)
	return params.Err()
}

// NFTNews devuelve los últimos NFT creados.
func (c *Client) NFTNews(page int, size NFTPageSize) *core.Call[Response[[]NFTNews]] {
	req := c.in.Request("nft_news", http.MethodGet, "nft/news")
	req.Params = core.NewParams().Add("filter", "created_time")
	err := nftPage(req.Params, page, size)
	return core.NewCall[Response[[]NFTNews]](c.in, req, err)
}

// NFTCollectionItems devuelve los items de una colección. Por defecto
// ordena por last_trade.
func (c *Client) NFTCollectionItems(collection string, sortBy NFTItemSort, page int, size NFTPageSize) *core.Call[Response[[]NFTCollectionItem]] {
	req := c.in.Request("nft_collection_items", http.MethodGet, "nft/collection/items")
	if sortBy == "" {
		sortBy = NFTSortLastTrade
	}
	req.Params = core.NewParams().
		Add("collection", collection).
		Add("sort_by", sortBy)
	err := core.FirstErr(requireValue("collection", collection), nftPage(req.Params, page, size))
	return core.NewCall[Response[[]NFTCollectionItem]](c.in, req, err)
}

// NFTActivitiesOptions filtra /nft/activities. Amount filtra por precio.
type NFTActivitiesOptions struct {
	From          string
	To            string
	Sources       []string
	ActivityTypes []ActivityNFT
	Token         string
	Collection    string
	CurrencyToken string
	Amount        AmountRange
	BlockTime     TimeRange
	Pagination
}

// NFTActivities devuelve compras, listados y pujas de NFT.
func (c *Client) NFTActivities(opts NFTActivitiesOptions) *core.Call[Response[[]NFTActivity]] {
	req := c.in.Request("nft_activities", http.MethodGet, "nft/activities")
	params := core.NewParams().
		Add("from", opts.From).
		Add("to", opts.To).
		Repeat("source[]", opts.Sources).
		Repeat("activity_type[]", core.Strings(opts.ActivityTypes)).
		Add("token", opts.Token).
		Add("collection", opts.Collection).
		Add("currency_token", opts.CurrencyToken)
	req.Params = params
	err := core.FirstErr(
		ActivityNFTs.CheckAll("activity_type", opts.ActivityTypes),
		opts.Amount.add(params, "price[]"),
		opts.BlockTime.add(params, "block_time[]"),
		opts.Pagination.add(params),
	)
	return core.NewCall[Response[[]NFTActivity]](c.in, req, err)
}

// NFTCollectionListsOptions ordena el ranking de colecciones. Por defecto
// 1 día, por floor_price descendente y 10 por página.
type NFTCollectionListsOptions struct {
	Range      NFTDaysRange
	SortBy     NFTSort
	SortOrder  Order
	Collection string
	Page       int
	PageSize   NFTCollectionPageSize
}

// NFTCollectionLists devuelve el ranking de colecciones NFT.
func (c *Client) NFTCollectionLists(opts NFTCollectionListsOptions) *core.Call[Response[[]NFTCollection]] {
	req := c.in.Request("nft_collection_lists", http.MethodGet, "nft/collection/lists")
	if opts.Range == 0 {
		opts.Range = NFTDays1
	}
	if opts.SortBy == "" {
		opts.SortBy = NFTSortFloorPrice
	}
	if opts.SortOrder == "" {
		opts.SortOrder = OrderDesc
	}
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.PageSize == 0 {
		opts.PageSize = NFTCollectionPageSize10
	}
	var pageErr error
	if opts.Page < 0 {
		pageErr = core.InvalidParam("page", opts.Page, "page must be positive", nil)
	}
	req.Params = core.NewParams().
		Add("range", opts.Range).
		Add("sort_by", opts.SortBy).
		Add("sort_order", opts.SortOrder).
		Add("collection", opts.Collection).
		Add("page", opts.Page).
		Add("page_size", opts.PageSize)
	return core.NewCall[Response[[]NFTCollection]](c.in, req, core.FirstErr(pageErr, req.Params.Err()))
}

// TransactionLast devuelve las últimas transacciones. Por defecto 10 y sin
// votos.
func (c *Client) TransactionLast(limit ReturnLimit, filter TxFilter) *core.Call[Response[[]Transaction]] {
	req := c.in.Request("transaction_last", http.MethodGet, "transaction/last")
	if filter == "" {
		filter = TxExceptVote
	}
	req.Params = core.NewParams().
		Add("limit", limitOrDefault(limit)).
		Add("filter", filter)
	return core.NewCall[Response[[]Transaction]](c.in, req, req.Params.Err())
}

// TransactionActions devuelve las transferencias y actividades parseadas
// de una transacción.
func (c *Client) TransactionActions(tx string) *core.Call[Response[TransactionActions]] {
	req := c.in.Request("transaction_actions", http.MethodGet, "transaction/actions")
	req.Params = core.NewParams().Add("tx", tx)
	return core.NewCall[Response[TransactionActions]](c.in, req, requireValue("tx", tx))
}

// BlockLast devuelve los últimos bloques.
func (c *Client) BlockLast(limit PageSize) *core.Call[Response[[]Block]] {
	req := c.in.Request("block_last", http.MethodGet, "block/last")
	if limit == 0 {
		limit = PageSize10
	}
	req.Params = core.NewParams().Add("limit", limit)
	return core.NewCall[Response[[]Block]](c.in, req, req.Params.Err())
}

func blockErr(block int64) error {
	if block <= 0 {
		return core.InvalidParam("block", block, "block must be positive", nil)
	}
	return nil
}

// BlockTransactions devuelve las transacciones de un bloque.
func (c *Client) BlockTransactions(block int64, page Pagination) *core.Call[Response[BlockTransactions]] {
	req := c.in.Request("block_transactions", http.MethodGet, "block/transactions")
	params := core.NewParams().Add("block", block)
	req.Params = params
	return core.NewCall[Response[BlockTransactions]](c.in, req, core.FirstErr(blockErr(block), page.add(params)))
}

// BlockDetail devuelve un bloque.
func (c *Client) BlockDetail(block int64) *core.Call[Response[Block]] {
	req := c.in.Request("block_detail", http.MethodGet, "block/detail")
	req.Params = core.NewParams().Add("block", block)
	return core.NewCall[Response[Block]](c.in, req, blockErr(block))
}
