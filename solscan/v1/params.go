package v1

import "github.com/alejandrodnm/cyhole/core"

// ExportType es el tipo de movimientos exportados a CSV.
type ExportType string

const (
	ExportTokenChange ExportType = "tokenchange"
	ExportSolTransfer ExportType = "soltransfer"
	ExportAll         ExportType = "all"
)

var ExportTypes = core.NewSet("ExportType", ExportTokenChange, ExportSolTransfer, ExportAll)

func (e ExportType) Valid() error { return ExportTypes.Check("type", e) }

// Sort es el campo de ordenación de /token/list.
type Sort string

const (
	SortMarketCap       Sort = "market_cap"
	SortVolume          Sort = "volume"
	SortHolder          Sort = "holder"
	SortPrice           Sort = "price"
	SortPriceChange24h  Sort = "price_change_24h"
	SortPriceChange7d   Sort = "price_change_7d"
	SortPriceChange14d  Sort = "price_change_14d"
	SortPriceChange30d  Sort = "price_change_30d"
	SortPriceChange60d  Sort = "price_change_60d"
	SortPriceChange200d Sort = "price_change_200d"
	SortPriceChange1y   Sort = "price_change_1y"
)

var Sorts = core.NewSet("Sort",
	SortMarketCap, SortVolume, SortHolder, SortPrice,
	SortPriceChange24h, SortPriceChange7d, SortPriceChange14d, SortPriceChange30d,
	SortPriceChange60d, SortPriceChange200d, SortPriceChange1y,
)

func (s Sort) Valid() error { return Sorts.Check("sortBy", s) }

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

var Orders = core.NewSet("Order", OrderAsc, OrderDesc)

func (o Order) Valid() error { return Orders.Check("direction", o) }
