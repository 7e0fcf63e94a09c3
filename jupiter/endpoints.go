package jupiter

import (
	"net/http"

	"github.com/alejandrodnm/cyhole/core"
)

// PriceOptions consulta precios contra USDC o contra VsToken.
// Con ExtraInfo el servidor ignora VsToken, así que no se envía.
// showExtraInfo viaja siempre, también en false.
type PriceOptions struct {
	IDs       []string `validate:"min=1,max=100"`
	VsToken   string
	ExtraInfo bool
}

// Price devuelve el precio unitario de compra de cada mint.
func (c *Client) Price(opts PriceOptions) *core.Call[PriceResponse] {
	req := c.in.Request("price", http.MethodGet, "price/v2")
	vs := opts.VsToken
	if opts.ExtraInfo {
		vs = ""
	}
	req.Params = core.NewParams().
		Join("ids", opts.IDs).
		Add("vsToken", vs).
		Add("showExtraInfo", &opts.ExtraInfo)
	return core.NewCall[PriceResponse](c.in, req, core.ValidateStruct(opts))
}

// QuoteOptions describe un GET quote. Amount va en unidades mínimas del
// token de entrada.
type QuoteOptions struct {
	InputMint                  string `validate:"required"`
	OutputMint                 string `validate:"required,nefield=InputMint"`
	Amount                     uint64 `validate:"gt=0"`
	SlippageBps                int    `validate:"gte=0,lte=10000"`
	SwapMode                   SwapMode
	Dexes                      []Dex
	ExcludeDexes               []Dex
	RestrictIntermediateTokens *bool
	OnlyDirectRoutes           bool
	AsLegacyTransaction        bool
	PlatformFeeBps             *int `validate:"omitempty,gte=0"`
	MaxAccounts                *int `validate:"omitempty,gt=0"`
}

const defaultSlippageBps = 50

// Quote pide la mejor ruta para un swap.
func (c *Client) Quote(opts QuoteOptions) *core.Call[Quote] {
	req := c.in.Request("quote", http.MethodGet, "swap/v1/quote")
	if opts.SlippageBps == 0 {
		opts.SlippageBps = defaultSlippageBps
	}
	err := core.FirstErr(
		core.ValidateStruct(opts),
		Dexes.CheckAll("dexes", opts.Dexes),
		Dexes.CheckAll("excludeDexes", opts.ExcludeDexes),
	)
	req.Params = core.NewParams().
		Add("inputMint", opts.InputMint).
		Add("outputMint", opts.OutputMint).
		Add("amount", opts.Amount).
		Add("slippageBps", opts.SlippageBps).
		Add("swapMode", opts.SwapMode).
		Join("dexes", core.Strings(opts.Dexes)).
		Join("excludeDexes", core.Strings(opts.ExcludeDexes)).
		Add("restrictIntermediateTokens", opts.RestrictIntermediateTokens).
		Add("onlyDirectRoutes", opts.OnlyDirectRoutes).
		Add("asLegacyTransaction", opts.AsLegacyTransaction).
		Add("platformFeeBps", opts.PlatformFeeBps).
		Add("maxAccounts", opts.MaxAccounts)
	return core.NewCall[Quote](c.in, req, core.FirstErr(err, req.Params.Err()))
}

// ProgramIDToLabel devuelve program id -> etiqueta de cada DEX soportado.
func (c *Client) ProgramIDToLabel() *core.Call[map[string]string] {
	req := c.in.Request("program_id_to_label", http.MethodGet, "swap/v1/program-id-to-label")
	return core.NewCall[map[string]string](c.in, req, nil)
}

// Swap devuelve la transacción serializada del quote.
func (c *Client) Swap(body SwapBody) *core.Call[SwapResponse] {
	req := c.in.Request("swap", http.MethodPost, "swap/v1/swap")
	req.Body = body
	return core.NewCall[SwapResponse](c.in, req, swapErr(body))
}

// SwapInstructions devuelve las instrucciones del swap en vez de la transacción.
func (c *Client) SwapInstructions(body SwapBody) *core.Call[SwapInstructions] {
	req := c.in.Request("swap_instructions", http.MethodPost, "swap/v1/swap-instructions")
	req.Body = body
	return core.NewCall[SwapInstructions](c.in, req, swapErr(body))
}

func swapErr(body SwapBody) error {
	if err := core.ValidateStruct(body); err != nil {
		return err
	}
	if body.QuoteResponse.InputMint == "" {
		return core.InvalidParam("quoteResponse", "", "quote response is required", nil)
	}
	return nil
}

// TokenInfo devuelve la ficha de un mint.
func (c *Client) TokenInfo(address string) *core.Call[TokenInfo] {
	req := c.in.Request("token_info", http.MethodGet, "tokens/v1/"+core.PathEscape(address))
	return core.NewCall[TokenInfo](c.in, req, requireAddress("address", address))
}

// TokenMarketMints devuelve los mints de un market o pool.
func (c *Client) TokenMarketMints(market string) *core.Call[[]string] {
	req := c.in.Request("token_market_mints", http.MethodGet, "tokens/v1/market/"+core.PathEscape(market)+"/mints")
	return core.NewCall[[]string](c.in, req, requireAddress("market", market))
}

// TokenTagged devuelve los tokens con una etiqueta.
func (c *Client) TokenTagged(tag TokenTag) *core.Call[[]TokenInfo] {
	req := c.in.Request("token_tagged", http.MethodGet, "tokens/v1/tagged/"+core.PathEscape(string(tag)))
	return core.NewCall[[]TokenInfo](c.in, req, tag.Valid())
}

// TokenNewOptions pagina los tokens nuevos. Limit vacío es 10.
type TokenNewOptions struct {
	Limit  int  `validate:"gte=0,lte=100"`
	Offset *int `validate:"omitempty,gte=0"`
}

// TokenNew devuelve los últimos tokens listados.
func (c *Client) TokenNew(opts TokenNewOptions) *core.Call[[]NewToken] {
	req := c.in.Request("token_new", http.MethodGet, "tokens/v1/new")
	if opts.Limit == 0 {
		opts.Limit = 10
	}
	req.Params = core.NewParams().
		Add("limit", opts.Limit).
		Add("offset", opts.Offset)
	return core.NewCall[[]NewToken](c.in, req, core.ValidateStruct(opts))
}

// LimitOrderCreate crea una orden límite y devuelve la tx sin firmar.
func (c *Client) LimitOrderCreate(body LimitOrderBody) *core.Call[LimitOrderCreated] {
	req := c.in.Request("limit_order_create", http.MethodPost, "limit/v2/createOrder")
	req.Body = body
	return core.NewCall[LimitOrderCreated](c.in, req, core.ValidateStruct(body))
}

// LimitOrderCancel cancela órdenes y devuelve la tx sin firmar.
func (c *Client) LimitOrderCancel(body CancelOrdersBody) *core.Call[LimitOrdersCancelled] {
	req := c.in.Request("limit_order_cancel", http.MethodPost, "limit/v2/cancelOrders")
	req.Body = body
	return core.NewCall[LimitOrdersCancelled](c.in, req, core.ValidateStruct(body))
}

// LimitOrderOpen lista las órdenes abiertas de una wallet, opcionalmente
// filtradas por mint.
func (c *Client) LimitOrderOpen(wallet, inputMint, outputMint string) *core.Call[[]OpenOrder] {
	req := c.in.Request("limit_order_open", http.MethodGet, "limit/v2/openOrders")
	req.Params = core.NewParams().
		Add("wallet", wallet).
		Add("inputMint", inputMint).
		Add("outputMint", outputMint)
	return core.NewCall[[]OpenOrder](c.in, req, requireAddress("wallet", wallet))
}

// LimitOrderHistory devuelve el histórico de órdenes de una wallet.
// page empieza en 1.
func (c *Client) LimitOrderHistory(wallet string, page int) *core.Call[LimitOrderHistory] {
	req := c.in.Request("limit_order_history", http.MethodGet, "limit/v2/orderHistory")
	if page == 0 {
		page = 1
	}
	err := requireAddress("wallet", wallet)
	if err == nil && page < 0 {
		err = core.InvalidParam("page", page, "page must be positive", nil)
	}
	req.Params = core.NewParams().
		Add("wallet", wallet).
		Add("page", page)
	return core.NewCall[LimitOrderHistory](c.in, req, err)
}

// UltraBalances devuelve los saldos de una wallet.
func (c *Client) UltraBalances(wallet string) *core.Call[UltraBalances] {
	req := c.in.Request("ultra_balances", http.MethodGet, "ultra/v1/balances/"+core.PathEscape(wallet))
	return core.NewCall[UltraBalances](c.in, req, requireAddress("wallet", wallet))
}

// UltraOrderOptions arma una orden Ultra. Amount va en unidades mínimas
// del token de entrada.
type UltraOrderOptions struct {
	InputMint  string `validate:"required"`
	OutputMint string `validate:"required,nefield=InputMint"`
	Amount     uint64 `validate:"gt=0"`
	Taker      string
}

// UltraOrder pide una orden de swap sin pasar por Quote.
func (c *Client) UltraOrder(opts UltraOrderOptions) *core.Call[UltraOrder] {
	req := c.in.Request("ultra_order", http.MethodGet, "ultra/v1/order")
	req.Params = core.NewParams().
		Add("inputMint", opts.InputMint).
		Add("outputMint", opts.OutputMint).
		Add("amount", opts.Amount).
		Add("taker", opts.Taker)
	return core.NewCall[UltraOrder](c.in, req, core.ValidateStruct(opts))
}

// UltraExecute ejecuta una orden Ultra ya firmada.
func (c *Client) UltraExecute(body ExecuteBody) *core.Call[UltraExecution] {
	req := c.in.Request("ultra_execute", http.MethodPost, "ultra/v1/execute")
	req.Body = body
	return core.NewCall[UltraExecution](c.in, req, core.ValidateStruct(body))
}

const defaultComputeUnitPrice = "auto"

// TriggerCreateOrder crea una orden trigger y devuelve la tx sin firmar.
func (c *Client) TriggerCreateOrder(body TriggerOrderBody) *core.Call[TriggerOrderCreated] {
	req := c.in.Request("trigger_create_order", http.MethodPost, "trigger/v1/createOrder")
	if body.ComputeUnitPrice == "" {
		body.ComputeUnitPrice = defaultComputeUnitPrice
	}
	req.Body = body
	return core.NewCall[TriggerOrderCreated](c.in, req, core.ValidateStruct(body))
}

// TriggerExecute envía la tx firmada de una creación o cancelación trigger.
func (c *Client) TriggerExecute(body ExecuteBody) *core.Call[TriggerExecution] {
	req := c.in.Request("trigger_execute", http.MethodPost, "trigger/v1/execute")
	req.Body = body
	return core.NewCall[TriggerExecution](c.in, req, core.ValidateStruct(body))
}

type cancelOrderBody struct {
	Maker            string   `json:"maker"`
	ComputeUnitPrice string   `json:"computeUnitPrice"`
	Order            string   `json:"order,omitempty"`
	Orders           []string `json:"orders,omitempty"`
}

// TriggerCancelOrder pide la tx que cancela una orden trigger.
func (c *Client) TriggerCancelOrder(maker, order string) *core.Call[TriggerCancelled] {
	req := c.in.Request("trigger_cancel_order", http.MethodPost, "trigger/v1/cancelOrder")
	req.Body = cancelOrderBody{Maker: maker, ComputeUnitPrice: defaultComputeUnitPrice, Order: order}
	err := core.FirstErr(requireAddress("maker", maker), requireAddress("order", order))
	return core.NewCall[TriggerCancelled](c.in, req, err)
}

// TriggerCancelOrders pide las tx que cancelan varias órdenes. Sin orders
// se cancelan todas las del maker.
func (c *Client) TriggerCancelOrders(maker string, orders []string) *core.Call[TriggerCancelled] {
	req := c.in.Request("trigger_cancel_orders", http.MethodPost, "trigger/v1/cancelOrders")
	req.Body = cancelOrderBody{Maker: maker, ComputeUnitPrice: defaultComputeUnitPrice, Orders: orders}
	return core.NewCall[TriggerCancelled](c.in, req, requireAddress("maker", maker))
}

func requireAddress(param, v string) error {
	if v == "" {
		return core.InvalidParam(param, v, param+" is required", nil)
	}
	return nil
}
