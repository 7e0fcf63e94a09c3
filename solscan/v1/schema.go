package v1

import (
	"encoding/json"

	"github.com/alejandrodnm/cyhole/core"
)

// Account

type TokenAmount struct {
	Amount         string  `json:"amount"`
	Decimals       int     `json:"decimals"`
	UIAmount       float64 `json:"uiAmount"`
	UIAmountString string  `json:"uiAmountString"`
}

type AccountToken struct {
	TokenAccount string      `json:"tokenAccount"`
	TokenAddress string      `json:"tokenAddress"`
	TokenSymbol  *string     `json:"tokenSymbol"`
	TokenName    *string     `json:"tokenName"`
	TokenIcon    *string     `json:"tokenIcon"`
	TokenAmount  TokenAmount `json:"tokenAmount"`
	Decimals     int         `json:"decimals"`
	RentEpoch    int64       `json:"rentEpoch"`
	Lamports     uint64      `json:"lamports"`
}

type ParsedInstruction struct {
	ProgramID string  `json:"programId"`
	Program   *string `json:"program"`
	Type      string  `json:"type"`
}

type AccountTransaction struct {
	BlockTime          int64               `json:"blockTime"`
	Slot               int64               `json:"slot"`
	TxHash             string              `json:"txHash"`
	Fee                uint64              `json:"fee"`
	Status             string              `json:"status"`
	Lamport            int64               `json:"lamport"`
	Signer             []string            `json:"signer"`
	IncludeSPLTransfer *bool               `json:"includeSPLTransfer"`
	ParsedInstruction  []ParsedInstruction `json:"parsedInstruction"`
}

type StakeAccount struct {
	ActiveStakeAmount    uint64   `json:"activeStakeAmount"`
	Amount               uint64   `json:"amount"`
	DelegatedStakeAmount uint64   `json:"delegatedStakeAmount"`
	Role                 []string `json:"role"`
	SolBalance           uint64   `json:"solBalance"`
	TotalReward          string   `json:"totalReward"`
	Status               string   `json:"status"`
	StakeAccount         string   `json:"stakeAccount"`
	Type                 string   `json:"type"`
	Voter                string   `json:"voter"`
	ActivationEpoch      int64    `json:"activationEpoch"`
	StakeType            string   `json:"stakeType"`
}

type SplTransfer struct {
	Slot         int64    `json:"slot"`
	BlockTime    int64    `json:"blockTime"`
	Signature    []string `json:"signature"`
	ChangeType   string   `json:"changeType"`
	ChangeAmount string   `json:"changeAmount"`
	Decimals     int      `json:"decimals"`
	PostBalance  string   `json:"postBalance"`
	PreBalance   string   `json:"preBalance"`
	TokenAddress string   `json:"tokenAddress"`
	Owner        string   `json:"owner"`
	Fee          uint64   `json:"fee"`
	Address      string   `json:"address"`
	Symbol       string   `json:"symbol"`
	TokenName    string   `json:"tokenName"`
}

type SplTransfers struct {
	Total int           `json:"total"`
	Data  []SplTransfer `json:"data"`
}

type SolTransfer struct {
	Slot      int64  `json:"slot"`
	BlockTime int64  `json:"blockTime"`
	TxHash    string `json:"txHash"`
	Src       string `json:"src"`
	Decimals  int    `json:"decimals"`
	Dst       string `json:"dst"`
	Lamport   uint64 `json:"lamport"`
	Status    string `json:"status"`
	Fee       uint64 `json:"fee"`
}

type SolTransfers struct {
	Data []SolTransfer `json:"data"`
}

type AccountDetail struct {
	Lamports     uint64 `json:"lamports"`
	OwnerProgram string `json:"ownerProgram"`
	Type         string `json:"type"`
	RentEpoch    int64  `json:"rentEpoch"`
	Executable   bool   `json:"executable"`
	Account      string `json:"account"`
}

// Token

type Holder struct {
	Address  string `json:"address"`
	Amount   uint64 `json:"amount"`
	Decimals int    `json:"decimals"`
	Owner    string `json:"owner"`
	Rank     int    `json:"rank" validate:"gt=0"`
}

type Holders struct {
	Total int      `json:"total"`
	Data  []Holder `json:"data" validate:"dive"`
}

type TokenMeta struct {
	Name           *string `json:"name"`
	Symbol         *string `json:"symbol"`
	Icon           *string `json:"icon"`
	Price          float64 `json:"price"`
	Volume         int64   `json:"volume"`
	Decimals       int     `json:"decimals"`
	TokenAuthority *string `json:"tokenAuthority"`
	Supply         string  `json:"supply"`
	Type           string  `json:"type"`
	Address        string  `json:"address"`
}

type TransferTokenInfo struct {
	Symbol   *string `json:"symbol"`
	Address  string  `json:"address"`
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	Decimals int     `json:"decimals"`
}

type TokenTransfer struct {
	Slot               int64             `json:"slot"`
	BlockTime          int64             `json:"blockTime"`
	TxHash             string            `json:"txHash"`
	CommonType         string            `json:"commonType"`
	SourceOwnerAccount string            `json:"sourceOwnerAccount"`
	SourceTokenAccount string            `json:"sourceTokenAccount"`
	DestOwnerAccount   string            `json:"destOwnerAccount"`
	DestTokenAccount   string            `json:"destTokenAccount"`
	TokenAddress       string            `json:"tokenAddress"`
	Amount             uint64            `json:"amount"`
	TokenInfo          TransferTokenInfo `json:"tokenInfo"`
}

type TokenTransfers struct {
	Total int             `json:"total"`
	Items []TokenTransfer `json:"items"`
}

type TokenSupply struct {
	Amount         uint64  `json:"amount"`
	UIAmount       float64 `json:"uiAmount"`
	UIAmountString string  `json:"uiAmountString"`
}

type TokenExtensions struct {
	CoingeckoID     *string `json:"coingeckoId"`
	Discord         *string `json:"discord"`
	Medium          *string `json:"medium"`
	Telegram        *string `json:"telegram"`
	Twitter         *string `json:"twitter"`
	Website         *string `json:"website"`
	Description     *string `json:"description"`
	CoinMarketCapID *string `json:"coinMarketCapId"`
	SerumV3Usdc     *string `json:"serumV3Usdc"`
	SerumV3Usdt     *string `json:"serumV3Usdt"`
}

type MarketData struct {
	CurrentPrice                 float64       `json:"currentPrice"`
	ATH                          float64       `json:"ath"`
	ATHChangePercentage          float64       `json:"athChangePercentage"`
	ATHDate                      core.FlexTime `json:"athDate"`
	ATL                          float64       `json:"atl"`
	ATLChangePercentage          float64       `json:"atlChangePercentage"`
	ATLDate                      core.FlexTime `json:"atlDate"`
	MarketCap                    int64         `json:"marketCap"`
	MarketCapRank                int           `json:"marketCapRank"`
	FullyDilutedValuation        int64         `json:"fullyDilutedValuation"`
	TotalVolume                  float64       `json:"totalVolume"`
	PriceHigh24h                 float64       `json:"priceHigh24h"`
	PriceLow24h                  float64       `json:"priceLow24h"`
	PriceChange24h               float64       `json:"priceChange24h"`
	PriceChangePercentage24h     float64       `json:"priceChangePercentage24h"`
	PriceChangePercentage7d      *float64      `json:"priceChangePercentage7d"`
	PriceChangePercentage14d     *float64      `json:"priceChangePercentage14d"`
	PriceChangePercentage30d     *float64      `json:"priceChangePercentage30d"`
	PriceChangePercentage60d     *float64      `json:"priceChangePercentage60d"`
	PriceChangePercentage200d    *float64      `json:"priceChangePercentage200d"`
	PriceChangePercentage1y      *float64      `json:"priceChangePercentage1y"`
	MarketCapChange24h           float64       `json:"marketCapChange24h"`
	MarketCapChangePercentage24h float64       `json:"marketCapChangePercentage24h"`
	TotalSupply                  float64       `json:"totalSupply"`
	MaxSupply                    *float64      `json:"maxSupply"`
	CirculatingSupply            float64       `json:"circulatingSupply"`
	LastUpdated                  core.FlexTime `json:"lastUpdated"`
}

type CoingeckoInfo struct {
	CoingeckoRank int        `json:"coingeckoRank"`
	MarketCapRank int        `json:"marketCapRank"`
	MarketData    MarketData `json:"marketData"`
}

type ListedToken struct {
	Address        string          `json:"address"`
	CoingeckoInfo  *CoingeckoInfo  `json:"coingeckoInfo"`
	Decimals       int             `json:"decimals"`
	Extensions     TokenExtensions `json:"extensions"`
	Holder         int64           `json:"holder"`
	Icon           *string         `json:"icon"`
	IsViolate      *bool           `json:"isViolate"`
	MarketCapFD    *float64        `json:"marketCapFD"`
	MarketCapRank  *int            `json:"marketCapRank"`
	MintAddress    string          `json:"mintAddress"`
	PriceUst       *float64        `json:"priceUst"`
	SolAlphaVolume *float64        `json:"solAlphaVolume"`
	Tags           []string        `json:"tags,omitempty"`
	TokenName      *string         `json:"tokenName"`
	TokenSymbol    *string         `json:"tokenSymbol"`
	Reputation     *string         `json:"reputation"`
	Twitter        *string         `json:"twitter"`
	Website        *string         `json:"website"`
	Supply         *TokenSupply    `json:"supply"`
	ChainID        *int            `json:"chainId"`
}

type TokenList struct {
	Total int           `json:"total"`
	Data  []ListedToken `json:"data"`
}

type MarketToken struct {
	Symbol   *string `json:"symbol"`
	Decimals int     `json:"decimals"`
	Address  string  `json:"address"`
}

type Market struct {
	Address           string      `json:"address"`
	AmmID             string      `json:"ammId"`
	Base              MarketToken `json:"base"`
	BaseTokenAccount  string      `json:"baseTokenAccount"`
	Name              string      `json:"name"`
	Quote             MarketToken `json:"quote"`
	Source            string      `json:"source"`
	QuoteTokenAccount string      `json:"quoteTokenAccount"`
	Volume24h         float64     `json:"volume24h"`
}

type MarketTokenDetail struct {
	PriceUsdt      float64  `json:"priceUsdt"`
	VolumeUsdt     float64  `json:"volumeUsdt"`
	MarketCapFD    float64  `json:"marketCapFD"`
	MarketCapRank  int      `json:"marketCapRank"`
	PriceChange24h float64  `json:"priceChange24h"`
	Markets        []Market `json:"markets"`
}

// Transactions y bloques

type TransactionMeta struct {
	Err          any      `json:"err"`
	Fee          uint64   `json:"fee"`
	PreBalances  []uint64 `json:"preBalances"`
	PostBalances []uint64 `json:"postBalances"`
	LogMessages  []string `json:"logMessages,omitempty"`
}

type RawTransaction struct {
	Signatures []string        `json:"signatures"`
	Message    json.RawMessage `json:"message"`
}

// ChainTransaction es una transacción en formato RPC (transaction/last,
// block/transactions).
type ChainTransaction struct {
	Meta        TransactionMeta `json:"meta"`
	Transaction RawTransaction  `json:"transaction"`
}

type TokenBalance struct {
	Account string            `json:"account"`
	Amount  TokenAmount       `json:"amount"`
	Token   TransferTokenInfo `json:"token"`
}

type TransactionDetail struct {
	BlockTime         int64               `json:"blockTime"`
	Slot              int64               `json:"slot"`
	TxHash            string              `json:"txHash"`
	Fee               uint64              `json:"fee"`
	Status            string              `json:"status"`
	Lamport           int64               `json:"lamport"`
	Signer            []string            `json:"signer"`
	LogMessage        []string            `json:"logMessage,omitempty"`
	RecentBlockhash   *string             `json:"recentBlockhash"`
	ParsedInstruction []ParsedInstruction `json:"parsedInstruction"`
	TokenBalances     []TokenBalance      `json:"tokenBalanes,omitempty"`
}

type BlockResult struct {
	BlockHeight       int64  `json:"blockHeight"`
	BlockTime         int64  `json:"blockTime"`
	Blockhash         string `json:"blockhash"`
	ParentSlot        int64  `json:"parentSlot"`
	PreviousBlockhash string `json:"previousBlockhash"`
	TransactionCount  *int64 `json:"transactionCount"`
}

type Block struct {
	CurrentSlot int64       `json:"currentSlot"`
	Result      BlockResult `json:"result"`
}
