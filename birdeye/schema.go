package birdeye

import "github.com/alejandrodnm/cyhole/core"

// Response es el envelope común {data, success}.
type Response[T any] struct {
	Data    T    `json:"data"`
	Success bool `json:"success"`
}

// TokenList

type TokenListItem struct {
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Address           string   `json:"address"`
	Decimals          int      `json:"decimals"`
	Liquidity         *float64 `json:"liquidity"`
	Volume24hUSD      *float64 `json:"v24hUSD"`
	MarketCap         *float64 `json:"mc"`
	Change24hPercent  *float64 `json:"v24hChangePercent"`
	LastTradeUnixTime int64    `json:"lastTradeUnixTime"`
	LogoURI           *string  `json:"logoURI"`
}

type TokenList struct {
	Total          int             `json:"total"`
	UpdateTime     core.FlexTime   `json:"updateTime"`
	UpdateUnixTime int64           `json:"updateUnixTime"`
	Tokens         []TokenListItem `json:"tokens"`
}

// Token creation / security / overview

type TokenCreationInfo struct {
	TxHash         string        `json:"txHash"`
	Slot           int64         `json:"slot"`
	TokenAddress   string        `json:"tokenAddress"`
	Decimals       int           `json:"decimals"`
	Owner          string        `json:"owner"`
	BlockUnixTime  int64         `json:"blockUnixTime,omitempty"`
	BlockHumanTime core.FlexTime `json:"blockHumanTime,omitempty"`
}

type TokenSecurity struct {
	CreatorAddress          *string  `json:"creatorAddress"`
	OwnerAddress            *string  `json:"ownerAddress"`
	CreationTx              *string  `json:"creationTx"`
	CreationTime            *int64   `json:"creationTime"`
	CreationSlot            *int64   `json:"creationSlot"`
	MintTx                  *string  `json:"mintTx"`
	MintTime                *int64   `json:"mintTime"`
	MintSlot                *int64   `json:"mintSlot"`
	CreatorBalance          *float64 `json:"creatorBalance"`
	CreatorPercentage       *float64 `json:"creatorPercentage"`
	OwnerBalance            *float64 `json:"ownerBalance"`
	OwnerPercentage         *float64 `json:"ownerPercentage"`
	MetaplexUpdateAuthority *string  `json:"metaplexUpdateAuthority"`
	MutableMetadata         *bool    `json:"mutableMetadata"`
	Top10HolderBalance      *float64 `json:"top10HolderBalance"`
	Top10HolderPercent      *float64 `json:"top10HolderPercent"`
	TotalSupply             *float64 `json:"totalSupply"`
	IsToken2022             *bool    `json:"isToken2022"`
	IsTrueToken             *bool    `json:"isTrueToken"`
	Freezeable              *bool    `json:"freezeable"`
	FreezeAuthority         *string  `json:"freezeAuthority"`
	TransferFeeEnable       *bool    `json:"transferFeeEnable"`
	NonTransferable         *bool    `json:"nonTransferable"`
}

type TokenExtensions struct {
	CoingeckoID *string `json:"coingeckoId"`
	Website     *string `json:"website"`
	Twitter     *string `json:"twitter"`
	Discord     *string `json:"discord"`
	Medium      *string `json:"medium"`
	Description *string `json:"description"`
}

type TokenOverview struct {
	Address               string           `json:"address"`
	Decimals              int              `json:"decimals"`
	Symbol                string           `json:"symbol"`
	Name                  string           `json:"name"`
	Extensions            *TokenExtensions `json:"extensions"`
	LogoURI               *string          `json:"logoURI"`
	Liquidity             float64          `json:"liquidity"`
	Price                 float64          `json:"price"`
	Supply                *float64         `json:"supply"`
	MarketCap             *float64         `json:"mc"`
	History24hPrice       *float64         `json:"history24hPrice"`
	PriceChange24hPercent *float64         `json:"priceChange24hPercent"`
	UniqueWallet24h       *int64           `json:"uniqueWallet24h"`
	LastTradeUnixTime     *int64           `json:"lastTradeUnixTime"`
	Trade24h              *int64           `json:"trade24h"`
	Volume24hUSD          *float64         `json:"v24hUSD"`
	Holder                *int64           `json:"holder"`
	NumberMarkets         *int64           `json:"numberMarkets"`
}

// Price

type Price struct {
	Value           float64       `json:"value"`
	Liquidity       *float64      `json:"liquidity"`
	UpdateHumanTime core.FlexTime `json:"updateHumanTime"`
	UpdateUnixTime  int64         `json:"updateUnixTime"`
	PriceChange24h  *float64      `json:"priceChange24h"`
}

// PriceMultiple está indexado por dirección.
type PriceMultiple map[string]Price

type PricePoint struct {
	UnixTime int64   `json:"unixTime"`
	Value    float64 `json:"value"`
}

type PriceHistory struct {
	Items []PricePoint `json:"items"`
}

type PriceVolume struct {
	Price               float64       `json:"price"`
	UpdateUnixTime      int64         `json:"updateUnixTime"`
	UpdateHumanTime     core.FlexTime `json:"updateHumanTime"`
	VolumeUSD           float64       `json:"volumeUSD"`
	VolumeChangePercent float64       `json:"volumeChangePercent"`
	PriceChangePercent  float64       `json:"priceChangePercent"`
}

// PriceVolumeMultiple está indexado por dirección.
type PriceVolumeMultiple map[string]PriceVolume

// Trades

type TradeLeg struct {
	Symbol         string   `json:"symbol"`
	Decimals       int      `json:"decimals"`
	Address        string   `json:"address"`
	Amount         float64  `json:"amount"`
	UIAmount       float64  `json:"uiAmount"`
	Price          *float64 `json:"price"`
	NearestPrice   *float64 `json:"nearestPrice"`
	ChangeAmount   float64  `json:"changeAmount"`
	UIChangeAmount float64  `json:"uiChangeAmount"`
}

type TokenTrade struct {
	Volume        *float64 `json:"volume"`
	VolumeUSD     *float64 `json:"volumeUSD"`
	TxHash        string   `json:"txHash"`
	Slot          int64    `json:"slot"`
	Source        string   `json:"source"`
	BlockUnixTime int64    `json:"blockUnixTime"`
	TxType        string   `json:"txType"`
	Address       string   `json:"address"`
	Owner         string   `json:"owner"`
	Side          string   `json:"side"`
	From          TradeLeg `json:"from"`
	To            TradeLeg `json:"to"`
}

type TokenTrades struct {
	Items   []TokenTrade `json:"items"`
	HasNext bool         `json:"hasNext"`
}

type PairTrade struct {
	TxHash        string   `json:"txHash"`
	Source        string   `json:"source"`
	BlockUnixTime int64    `json:"blockUnixTime"`
	Address       string   `json:"address"`
	Owner         string   `json:"owner"`
	TxType        *string  `json:"txType"`
	From          TradeLeg `json:"from"`
	To            TradeLeg `json:"to"`
}

type PairTrades struct {
	Items   []PairTrade `json:"items"`
	HasNext bool        `json:"hasNext"`
}

// OHLCV

type Candle struct {
	Open     float64 `json:"o"`
	High     float64 `json:"h"`
	Low      float64 `json:"l"`
	Close    float64 `json:"c"`
	Volume   float64 `json:"v"`
	Type     string  `json:"type"`
	UnixTime int64   `json:"unixTime"`
	Address  string  `json:"address"`
}

type OHLCV struct {
	Items []Candle `json:"items"`
}

type BaseQuoteCandle struct {
	Open         float64 `json:"o"`
	High         float64 `json:"h"`
	Low          float64 `json:"l"`
	Close        float64 `json:"c"`
	Type         string  `json:"type"`
	UnixTime     int64   `json:"unixTime"`
	BaseAddress  string  `json:"baseAddress"`
	QuoteAddress string  `json:"quoteAddress"`
	VolumeBase   float64 `json:"vBase"`
	VolumeQuote  float64 `json:"vQuote"`
}

type OHLCVBaseQuote struct {
	Items []BaseQuoteCandle `json:"items"`
}
