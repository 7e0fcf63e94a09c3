package jupiter

import (
	"github.com/shopspring/decimal"

	"github.com/alejandrodnm/cyhole/core"
)

// Price

type PriceDepthValues struct {
	Depth10   float64 `json:"10"`
	Depth100  float64 `json:"100"`
	Depth1000 float64 `json:"1000"`
}

type PriceDepthRatio struct {
	Timestamp int64            `json:"timestamp"`
	Depth     PriceDepthValues `json:"depth"`
}

type PriceDepth struct {
	BuyPriceImpactRatio  *PriceDepthRatio `json:"buyPriceImpactRatio"`
	SellPriceImpactRatio *PriceDepthRatio `json:"sellPriceImpactRatio"`
}

type LastSwappedPrice struct {
	LastJupiterSellAt    int64           `json:"lastJupiterSellAt"`
	LastJupiterSellPrice decimal.Decimal `json:"lastJupiterSellPrice"`
	LastJupiterBuyAt     int64           `json:"lastJupiterBuyAt"`
	LastJupiterBuyPrice  decimal.Decimal `json:"lastJupiterBuyPrice"`
}

type QuotedPrice struct {
	BuyPrice  decimal.Decimal  `json:"buyPrice"`
	BuyAt     int64            `json:"buyAt"`
	SellPrice *decimal.Decimal `json:"sellPrice"`
	SellAt    *int64           `json:"sellAt"`
}

type PriceExtraInfo struct {
	LastSwappedPrice *LastSwappedPrice `json:"lastSwappedPrice"`
	QuotedPrice      QuotedPrice       `json:"quotedPrice"`
	ConfidenceLevel  string            `json:"confidenceLevel"`
	Depth            PriceDepth        `json:"depth"`
}

type PriceData struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	ExtraInfo *PriceExtraInfo `json:"extraInfo"`
}

// PriceResponse indexa por mint. Un mint desconocido llega como nil.
type PriceResponse struct {
	Data      map[string]*PriceData `json:"data"`
	TimeTaken float64               `json:"timeTaken"`
}

// Quote

type PlatformFee struct {
	Amount string `json:"amount"`
	FeeBps int    `json:"feeBps"`
}

type SwapInfo struct {
	AmmKey     string `json:"ammKey"`
	Label      string `json:"label,omitempty"`
	InputMint  string `json:"inputMint"`
	InAmount   string `json:"inAmount"`
	OutputMint string `json:"outputMint"`
	OutAmount  string `json:"outAmount"`
	FeeMint    string `json:"feeMint"`
	FeeAmount  string `json:"feeAmount"`
}

type RoutePlan struct {
	SwapInfo SwapInfo `json:"swapInfo"`
	Percent  int      `json:"percent" validate:"gte=0,lte=100"`
}

// Quote se reenvía tal cual en el body de Swap.
type Quote struct {
	InputMint            string       `json:"inputMint"`
	InAmount             string       `json:"inAmount"`
	OutputMint           string       `json:"outputMint"`
	OutAmount            string       `json:"outAmount"`
	OtherAmountThreshold string       `json:"otherAmountThreshold"`
	SwapMode             SwapMode     `json:"swapMode"`
	SlippageBps          int          `json:"slippageBps"`
	PlatformFee          *PlatformFee `json:"platformFee"`
	PriceImpactPct       string       `json:"priceImpactPct"`
	RoutePlan            []RoutePlan  `json:"routePlan" validate:"dive"`
	ContextSlot          int64        `json:"contextSlot"`
	TimeTaken            float64      `json:"timeTaken"`
}

// Swap

// SwapBody es el body de swap y swap-instructions. Los campos vacíos no se envían.
type SwapBody struct {
	UserPublicKey                 string `json:"userPublicKey" validate:"required"`
	WrapAndUnwrapSol              *bool  `json:"wrapAndUnwrapSol,omitempty"`
	UseSharedAccounts             *bool  `json:"useSharedAccounts,omitempty"`
	FeeAccount                    string `json:"feeAccount,omitempty"`
	TrackingAccount               string `json:"trackingAccount,omitempty"`
	ComputeUnitPriceMicroLamports *int64 `json:"computeUnitPriceMicroLamports,omitempty"`
	PrioritizationFeeLamports     *int64 `json:"prioritizationFeeLamports,omitempty"`
	AsLegacyTransaction           *bool  `json:"asLegacyTransaction,omitempty"`
	UseTokenLedger                *bool  `json:"useTokenLedger,omitempty"`
	DestinationTokenAccount       string `json:"destinationTokenAccount,omitempty"`
	DynamicComputeUnitLimit       *bool  `json:"dynamicComputeUnitLimit,omitempty"`
	SkipUserAccountsRPCCalls      *bool  `json:"skipUserAccountsRpcCalls,omitempty"`
	QuoteResponse                 Quote  `json:"quoteResponse"`
}

type SwapResponse struct {
	SwapTransaction           string `json:"swapTransaction"`
	LastValidBlockHeight      int64  `json:"lastValidBlockHeight"`
	PrioritizationFeeLamports int64  `json:"prioritizationFeeLamports,omitempty"`
}

type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

type Instruction struct {
	ProgramID string        `json:"programId"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      string        `json:"data"`
}

type SwapInstructions struct {
	TokenLedgerInstruction      *Instruction  `json:"tokenLedgerInstruction"`
	ComputeBudgetInstructions   []Instruction `json:"computeBudgetInstructions,omitempty"`
	SetupInstructions           []Instruction `json:"setupInstructions,omitempty"`
	SwapInstruction             Instruction   `json:"swapInstruction"`
	CleanupInstruction          *Instruction  `json:"cleanupInstruction"`
	OtherInstructions           []Instruction `json:"otherInstructions,omitempty"`
	AddressLookupTableAddresses []string      `json:"addressLookupTableAddresses,omitempty"`
}

// Token

type TokenInfo struct {
	Name              string            `json:"name"`
	Address           string            `json:"address"`
	Symbol            string            `json:"symbol"`
	Decimals          int               `json:"decimals" validate:"gte=0"`
	CreatedAt         core.FlexTime     `json:"created_at"`
	LogoURI           *string           `json:"logoURI"`
	Tags              []string          `json:"tags,omitempty"`
	DailyVolume       *float64          `json:"daily_volume"`
	FreezeAuthority   *string           `json:"freeze_authority"`
	MintAuthority     *string           `json:"mint_authority"`
	MintedAt          *core.FlexTime    `json:"minted_at"`
	PermanentDelegate *string           `json:"permanent_delegate"`
	Extensions        map[string]string `json:"extensions,omitempty"`
}

type NewToken struct {
	Mint              string        `json:"mint"`
	Name              string        `json:"name"`
	Symbol            string        `json:"symbol"`
	Decimals          int           `json:"decimals"`
	CreatedAt         core.FlexTime `json:"created_at"`
	KnownMarkets      []string      `json:"known_markets"`
	MetadataUpdatedAt int64         `json:"metadata_updated_at"`
	LogoURI           *string       `json:"logo_uri"`
	MintAuthority     *string       `json:"mint_authority"`
	FreezeAuthority   *string       `json:"freeze_authority"`
}

// Limit orders

// LimitOrderBody crea una orden límite.
type LimitOrderBody struct {
	Owner           string `json:"owner" validate:"required"`
	InputMint       string `json:"inputMint" validate:"required"`
	InAmount        uint64 `json:"inAmount" validate:"gt=0"`
	OutputMint      string `json:"outputMint" validate:"required,nefield=InputMint"`
	OutAmount       uint64 `json:"outAmount" validate:"gt=0"`
	Base            string `json:"base" validate:"required"`
	ExpiredAt       *int64 `json:"expiredAt,omitempty"`
	ReferralAccount string `json:"referralAccount,omitempty"`
	ReferralName    string `json:"referralName,omitempty"`
}

type LimitOrderCreated struct {
	Tx          string `json:"tx"`
	OrderPubkey string `json:"orderPubkey"`
}

// CancelOrdersBody cancela órdenes. Sin Orders se cancelan todas las del owner.
type CancelOrdersBody struct {
	Owner    string   `json:"owner" validate:"required"`
	FeePayer string   `json:"feePayer" validate:"required"`
	Orders   []string `json:"orders,omitempty"`
}

type LimitOrdersCancelled struct {
	Tx string `json:"tx"`
}

type OpenOrderAccount struct {
	Maker        string `json:"maker"`
	InputMint    string `json:"inputMint"`
	InAmount     string `json:"inAmount"`
	OutputMint   string `json:"outputMint"`
	OutAmount    string `json:"outAmount"`
	OriInAmount  string `json:"oriInAmount"`
	OriOutAmount string `json:"oriOutAmount"`
	ExpiredAt    *int64 `json:"expiredAt"`
	Base         string `json:"base"`
}

type OpenOrder struct {
	PublicKey string           `json:"publicKey"`
	Account   OpenOrderAccount `json:"account"`
}

type HistoryOrder struct {
	ID           int64           `json:"id"`
	Maker        string          `json:"maker"`
	OrderKey     string          `json:"orderKey"`
	InputMint    string          `json:"inputMint"`
	InAmount     string          `json:"inAmount"`
	OutputMint   string          `json:"outputMint"`
	OutAmount    string          `json:"outAmount"`
	OriInAmount  string          `json:"oriInAmount"`
	OriOutAmount string          `json:"oriOutAmount"`
	ExpiredAt    *int64          `json:"expiredAt"`
	State        LimitOrderState `json:"state" validate:"oneof=Open Completed Cancelled"`
	CreateTxid   string          `json:"createTxid"`
	CancelTxid   *string         `json:"cancelTxid"`
	UpdatedAt    core.FlexTime   `json:"updatedAt"`
	CreatedAt    core.FlexTime   `json:"createdAt"`
}

type LimitOrderHistory struct {
	Orders []HistoryOrder `json:"orders" validate:"dive"`
}

// Ultra

type UltraBalance struct {
	Amount   string  `json:"amount"`
	UIAmount float64 `json:"uiAmount"`
	Slot     int64   `json:"slot"`
	IsFrozen bool    `json:"isFrozen"`
}

// UltraBalances indexa por mint; el SOL nativo viene bajo la clave "SOL".
type UltraBalances map[string]UltraBalance

// UltraOrder es la orden armada por Ultra. Sin taker no llega Transaction.
type UltraOrder struct {
	Mode                      string      `json:"mode"`
	InputMint                 string      `json:"inputMint"`
	OutputMint                string      `json:"outputMint"`
	InAmount                  string      `json:"inAmount"`
	OutAmount                 string      `json:"outAmount"`
	OtherAmountThreshold      string      `json:"otherAmountThreshold"`
	SwapMode                  SwapMode    `json:"swapMode"`
	SlippageBps               int         `json:"slippageBps"`
	PriceImpactPct            string      `json:"priceImpactPct"`
	RoutePlan                 []RoutePlan `json:"routePlan" validate:"dive"`
	FeeBps                    int         `json:"feeBps"`
	PrioritizationFeeLamports int64       `json:"prioritizationFeeLamports"`
	SwapType                  string      `json:"swapType"`
	Gasless                   bool        `json:"gasless"`
	Transaction               *string     `json:"transaction"`
	RequestID                 string      `json:"requestId" validate:"required"`
}

// ExecuteBody envía la transacción firmada de una orden Ultra o Trigger.
type ExecuteBody struct {
	SignedTransaction string `json:"signedTransaction" validate:"required"`
	RequestID         string `json:"requestId" validate:"required"`
}

type SwapEvent struct {
	InputMint    string `json:"inputMint"`
	InputAmount  string `json:"inputAmount"`
	OutputMint   string `json:"outputMint"`
	OutputAmount string `json:"outputAmount"`
}

type UltraExecution struct {
	Status             string      `json:"status"`
	Signature          string      `json:"signature"`
	Slot               string      `json:"slot"`
	Code               int         `json:"code"`
	Error              *string     `json:"error"`
	InputAmountResult  string      `json:"inputAmountResult,omitempty"`
	OutputAmountResult string      `json:"outputAmountResult,omitempty"`
	SwapEvents         []SwapEvent `json:"swapEvents,omitempty"`
}

// Trigger

type TriggerOrderParams struct {
	MakingAmount string `json:"makingAmount" validate:"required,numeric"`
	TakingAmount string `json:"takingAmount" validate:"required,numeric"`
	ExpiredAt    string `json:"expiredAt,omitempty" validate:"omitempty,numeric"`
	SlippageBps  string `json:"slippageBps,omitempty" validate:"omitempty,numeric"`
	FeeBps       string `json:"feeBps,omitempty" validate:"omitempty,numeric"`
}

// TriggerOrderBody crea una orden trigger. ComputeUnitPrice vacío es "auto".
type TriggerOrderBody struct {
	InputMint        string             `json:"inputMint" validate:"required"`
	OutputMint       string             `json:"outputMint" validate:"required,nefield=InputMint"`
	Maker            string             `json:"maker" validate:"required"`
	Payer            string             `json:"payer" validate:"required"`
	Params           TriggerOrderParams `json:"params"`
	ComputeUnitPrice string             `json:"computeUnitPrice"`
	FeeAccount       string             `json:"feeAccount,omitempty"`
	WrapAndUnwrapSol *bool              `json:"wrapAndUnwrapSol,omitempty"`
}

type TriggerOrderCreated struct {
	Order       string `json:"order"`
	Transaction string `json:"transaction"`
	RequestID   string `json:"requestId"`
}

type TriggerExecution struct {
	Signature string  `json:"signature"`
	Status    string  `json:"status"`
	Code      int     `json:"code,omitempty"`
	Error     *string `json:"error"`
}

// TriggerCancelled trae Transaction al cancelar una orden y Transactions
// al cancelar varias.
type TriggerCancelled struct {
	Transaction  string   `json:"transaction,omitempty"`
	Transactions []string `json:"transactions,omitempty"`
	RequestID    string   `json:"requestId"`
}
