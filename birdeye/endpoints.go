package birdeye

import (
	"net/http"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

// TokenListOptions filtra /defi/tokenlist.
type TokenListOptions struct {
	SortBy   Sort
	SortType Order
	Offset   int `validate:"gte=0"`
	Limit    int `validate:"omitempty,gte=1,lte=50"`
}

// TokenList devuelve la lista de tokens de la red.
func (c *Client) TokenList(opts TokenListOptions) *core.Call[Response[TokenList]] {
	req, err := c.request("token_list", http.MethodGet, "defi/tokenlist")
	if err == nil {
		err = core.ValidateStruct(opts)
	}
	req.Params = core.NewParams().
		Add("sort_by", opts.SortBy).
		Add("sort_type", opts.SortType).
		Add("offset", opts.Offset).
		Add("limit", opts.Limit)
	return core.NewCall[Response[TokenList]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// TokenCreationInfo devuelve la transacción de creación de un token.
func (c *Client) TokenCreationInfo(address string) *core.Call[Response[TokenCreationInfo]] {
	return addressCall[TokenCreationInfo](c, "token_creation_info", "defi/token_creation_info", address)
}

// TokenSecurity devuelve los datos de seguridad de un token.
func (c *Client) TokenSecurity(address string) *core.Call[Response[TokenSecurity]] {
	return addressCall[TokenSecurity](c, "token_security", "defi/token_security", address)
}

// TokenOverview devuelve el resumen de mercado de un token.
func (c *Client) TokenOverview(address string) *core.Call[Response[TokenOverview]] {
	return addressCall[TokenOverview](c, "token_overview", "defi/token_overview", address)
}

func addressCall[T any](c *Client, op, path, address string) *core.Call[Response[T]] {
	req, err := c.request(op, http.MethodGet, path)
	if err == nil && address == "" {
		err = core.InvalidParam("address", address, "address is required", nil)
	}
	req.Params = core.NewParams().Add("address", address)
	return core.NewCall[Response[T]](c.in, req, err)
}

// Price devuelve el precio actual de un token.
func (c *Client) Price(address string, includeLiquidity bool) *core.Call[Response[Price]] {
	req, err := c.request("price", http.MethodGet, "defi/price")
	if err == nil && address == "" {
		err = core.InvalidParam("address", address, "address is required", nil)
	}
	req.Params = core.NewParams().
		Add("address", address).
		Add("include_liquidity", includeLiquidity)
	return core.NewCall[Response[Price]](c.in, req, err)
}

// PriceMultiple devuelve el precio de varios tokens en una llamada.
func (c *Client) PriceMultiple(addresses []string, includeLiquidity bool) *core.Call[Response[PriceMultiple]] {
	req, err := c.request("price_multiple", http.MethodGet, "defi/multi_price")
	if err == nil && len(addresses) == 0 {
		err = core.InvalidParam("list_address", "", "at least one address is required", nil)
	}
	req.Params = core.NewParams().
		Join("list_address", addresses).
		Add("include_liquidity", includeLiquidity)
	return core.NewCall[Response[PriceMultiple]](c.in, req, err)
}

// HistoryOptions describe una serie temporal de un token o par.
// To vacío es ahora y From vacío es To menos 24h.
type HistoryOptions struct {
	Address     string `validate:"required"`
	AddressType AddressType
	TimeFrame   TimeFrame
	From        time.Time
	To          time.Time
}

// PriceHistorical devuelve la serie de precios de un token o par.
func (c *Client) PriceHistorical(opts HistoryOptions) *core.Call[Response[PriceHistory]] {
	req, err := c.request("price_historical", http.MethodGet, "defi/history_price")
	if opts.AddressType == "" {
		opts.AddressType = AddressToken
	}
	if opts.TimeFrame == "" {
		opts.TimeFrame = TimeFrame15m
	}
	from, to, werr := c.window(opts.From, opts.To)
	err = core.FirstErr(err, core.ValidateStruct(opts), werr)
	req.Params = core.NewParams().
		Add("address", opts.Address).
		Add("address_type", opts.AddressType).
		Add("type", opts.TimeFrame).
		Add("time_from", from).
		Add("time_to", to)
	return core.NewCall[Response[PriceHistory]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// PriceVolumeSingle devuelve precio y volumen de un token en una ventana.
func (c *Client) PriceVolumeSingle(address string, tf HourTimeFrame) *core.Call[Response[PriceVolume]] {
	req, err := c.request("price_volume_single", http.MethodGet, "defi/price_volume/single")
	if tf == "" {
		tf = HourTimeFrame24h
	}
	if err == nil && address == "" {
		err = core.InvalidParam("address", address, "address is required", nil)
	}
	req.Params = core.NewParams().
		Add("address", address).
		Add("type", tf)
	return core.NewCall[Response[PriceVolume]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

type priceVolumeMultiBody struct {
	ListAddress string        `json:"list_address"`
	Type        HourTimeFrame `json:"type"`
}

// PriceVolumeMulti es la versión POST para varios tokens.
func (c *Client) PriceVolumeMulti(addresses []string, tf HourTimeFrame) *core.Call[Response[PriceVolumeMultiple]] {
	req, err := c.request("price_volume_multi", http.MethodPost, "defi/price_volume/multi")
	if tf == "" {
		tf = HourTimeFrame24h
	}
	err = core.FirstErr(err, tf.Valid())
	if err == nil && len(addresses) == 0 {
		err = core.InvalidParam("list_address", "", "at least one address is required", nil)
	}
	req.Body = priceVolumeMultiBody{ListAddress: joinAddresses(addresses), Type: tf}
	return core.NewCall[Response[PriceVolumeMultiple]](c.in, req, err)
}

// TradesOptions pagina los trades de un token o par.
type TradesOptions struct {
	Address  string `validate:"required"`
	TxType   TradeType
	SortType Order
	Offset   int `validate:"gte=0"`
	Limit    int `validate:"omitempty,gte=1,lte=50"`
}

// TradesToken devuelve los últimos trades de un token.
func (c *Client) TradesToken(opts TradesOptions) *core.Call[Response[TokenTrades]] {
	req, err := c.request("trades_token", http.MethodGet, "defi/txs/token")
	if opts.TxType == "" {
		opts.TxType = TradeSwap
	}
	err = core.FirstErr(err, core.ValidateStruct(opts))
	req.Params = core.NewParams().
		Add("address", opts.Address).
		Add("tx_type", opts.TxType).
		Add("offset", opts.Offset).
		Add("limit", opts.Limit)
	return core.NewCall[Response[TokenTrades]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// TradesPair devuelve los últimos trades de un par.
func (c *Client) TradesPair(opts TradesOptions) *core.Call[Response[PairTrades]] {
	req, err := c.request("trades_pair", http.MethodGet, "defi/txs/pair")
	if opts.TxType == "" {
		opts.TxType = TradeSwap
	}
	if opts.SortType == "" {
		opts.SortType = OrderDesc
	}
	err = core.FirstErr(err, core.ValidateStruct(opts))
	req.Params = core.NewParams().
		Add("address", opts.Address).
		Add("tx_type", opts.TxType).
		Add("sort_type", opts.SortType).
		Add("offset", opts.Offset).
		Add("limit", opts.Limit)
	return core.NewCall[Response[PairTrades]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// OHLCV devuelve velas de un token, o de un par si AddressType es pair.
func (c *Client) OHLCV(opts HistoryOptions) *core.Call[Response[OHLCV]] {
	path := "defi/ohlcv"
	if opts.AddressType == AddressPair {
		path = "defi/ohlcv/pair"
	}
	req, err := c.request("ohlcv", http.MethodGet, path)
	if opts.TimeFrame == "" {
		opts.TimeFrame = TimeFrame15m
	}
	from, to, werr := c.window(opts.From, opts.To)
	err = core.FirstErr(err, core.ValidateStruct(opts), werr)
	if err == nil && opts.AddressType != "" {
		err = opts.AddressType.Valid()
	}
	req.Params = core.NewParams().
		Add("address", opts.Address).
		Add("type", opts.TimeFrame).
		Add("time_from", from).
		Add("time_to", to)
	return core.NewCall[Response[OHLCV]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// BaseQuoteOptions describe velas de un par base/quote.
type BaseQuoteOptions struct {
	BaseAddress  string `validate:"required"`
	QuoteAddress string `validate:"required"`
	TimeFrame    TimeFrame
	From         time.Time
	To           time.Time
}

// OHLCVBaseQuote devuelve velas de base contra quote.
func (c *Client) OHLCVBaseQuote(opts BaseQuoteOptions) *core.Call[Response[OHLCVBaseQuote]] {
	req, err := c.request("ohlcv_base_quote", http.MethodGet, "defi/ohlcv/base_quote")
	if opts.TimeFrame == "" {
		opts.TimeFrame = TimeFrame15m
	}
	from, to, werr := c.window(opts.From, opts.To)
	err = core.FirstErr(err, core.ValidateStruct(opts), werr)
	req.Params = core.NewParams().
		Add("base_address", opts.BaseAddress).
		Add("quote_address", opts.QuoteAddress).
		Add("type", opts.TimeFrame).
		Add("time_from", from).
		Add("time_to", to)
	return core.NewCall[Response[OHLCVBaseQuote]](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// WalletSupportedNetworks lista las redes soportadas por la API de wallets.
func (c *Client) WalletSupportedNetworks() *core.Call[Response[[]string]] {
	req := c.in.Request("wallet_supported_networks", http.MethodGet, "v1/wallet/list_supported_chain")
	return core.NewCall[Response[[]string]](c.in, req, nil)
}
