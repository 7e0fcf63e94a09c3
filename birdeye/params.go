package birdeye

import "github.com/alejandrodnm/cyhole/core"

// Chain es la red consultada (header x-chain).
type Chain string

const (
	ChainSolana    Chain = "solana"
	ChainEthereum  Chain = "ethereum"
	ChainArbitrum  Chain = "arbitrum"
	ChainAvalanche Chain = "avalanche"
	ChainBSC       Chain = "bsc"
	ChainOptimism  Chain = "optimism"
	ChainPolygon   Chain = "polygon"
	ChainBase      Chain = "base"
	ChainZkSync    Chain = "zksync"
)

var Chains = core.NewSet("Chain",
	ChainSolana, ChainEthereum, ChainArbitrum, ChainAvalanche, ChainBSC,
	ChainOptimism, ChainPolygon, ChainBase, ChainZkSync,
)

func (c Chain) Valid() error { return Chains.Check("chain", c) }

// Order es el sentido de ordenación.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

var Orders = core.NewSet("Order", OrderAsc, OrderDesc)

func (o Order) Valid() error { return Orders.Check("sort_type", o) }

// Sort es el campo de ordenación de la lista de tokens.
type Sort string

const (
	SortMarketCap        Sort = "mc"
	SortVolume24hUSD     Sort = "v24hUSD"
	SortChange24hPercent Sort = "v24hChangePercent"
)

var Sorts = core.NewSet("Sort", SortMarketCap, SortVolume24hUSD, SortChange24hPercent)

func (s Sort) Valid() error { return Sorts.Check("sort_by", s) }

// TimeFrame es la granularidad de históricos y velas.
type TimeFrame string

const (
	TimeFrame1m  TimeFrame = "1m"
	TimeFrame3m  TimeFrame = "3m"
	TimeFrame5m  TimeFrame = "5m"
	TimeFrame15m TimeFrame = "15m"
	TimeFrame30m TimeFrame = "30m"
	TimeFrame1H  TimeFrame = "1H"
	TimeFrame2H  TimeFrame = "2H"
	TimeFrame4H  TimeFrame = "4H"
	TimeFrame6H  TimeFrame = "6H"
	TimeFrame8H  TimeFrame = "8H"
	TimeFrame12H TimeFrame = "12H"
	TimeFrame1D  TimeFrame = "1D"
	TimeFrame3D  TimeFrame = "3D"
	TimeFrame1W  TimeFrame = "1W"
	TimeFrame1M  TimeFrame = "1M"
)

var TimeFrames = core.NewSet("TimeFrame",
	TimeFrame1m, TimeFrame3m, TimeFrame5m, TimeFrame15m, TimeFrame30m,
	TimeFrame1H, TimeFrame2H, TimeFrame4H, TimeFrame6H, TimeFrame8H, TimeFrame12H,
	TimeFrame1D, TimeFrame3D, TimeFrame1W, TimeFrame1M,
)

func (t TimeFrame) Valid() error { return TimeFrames.Check("type", t) }

// HourTimeFrame es la ventana de precio/volumen.
type HourTimeFrame string

const (
	HourTimeFrame1h  HourTimeFrame = "1h"
	HourTimeFrame2h  HourTimeFrame = "2h"
	HourTimeFrame4h  HourTimeFrame = "4h"
	HourTimeFrame8h  HourTimeFrame = "8h"
	HourTimeFrame24h HourTimeFrame = "24h"
)

var HourTimeFrames = core.NewSet("HourTimeFrame",
	HourTimeFrame1h, HourTimeFrame2h, HourTimeFrame4h, HourTimeFrame8h, HourTimeFrame24h,
)

func (t HourTimeFrame) Valid() error { return HourTimeFrames.Check("type", t) }

// AddressType distingue token de par.
type AddressType string

const (
	AddressToken AddressType = "token"
	AddressPair  AddressType = "pair"
)

var AddressTypes = core.NewSet("AddressType", AddressToken, AddressPair)

func (a AddressType) Valid() error { return AddressTypes.Check("address_type", a) }

// TradeType filtra trades.
type TradeType string

const (
	TradeSwap   TradeType = "swap"
	TradeAdd    TradeType = "add"
	TradeRemove TradeType = "remove"
	TradeAll    TradeType = "all"
)

var TradeTypes = core.NewSet("TradeType", TradeSwap, TradeAdd, TradeRemove, TradeAll)

func (t TradeType) Valid() error { return TradeTypes.Check("tx_type", t) }
