package v2

import "github.com/alejandrodnm/cyhole/core"

// PageSize es el tamaño de página de los listados paginados.
type PageSize int

const (
	PageSize10  PageSize = 10
	PageSize20  PageSize = 20
	PageSize30  PageSize = 30
	PageSize40  PageSize = 40
	PageSize60  PageSize = 60
	PageSize100 PageSize = 100
)

var PageSizes = core.NewSet("PageSize", PageSize10, PageSize20, PageSize30, PageSize40, PageSize60, PageSize100)

func (p PageSize) Valid() error { return PageSizes.Check("page_size", p) }

// NFTPageSize es el tamaño de página de los endpoints de NFT.
type NFTPageSize int

const (
	NFTPageSize12 NFTPageSize = 12
	NFTPageSize24 NFTPageSize = 24
	NFTPageSize36 NFTPageSize = 36
)

var NFTPageSizes = core.NewSet("NFTPageSize", NFTPageSize12, NFTPageSize24, NFTPageSize36)

func (p NFTPageSize) Valid() error { return NFTPageSizes.Check("page_size", p) }

// NFTCollectionPageSize es el tamaño de página de /nft/collection/lists.
type NFTCollectionPageSize int

const (
	NFTCollectionPageSize10 NFTCollectionPageSize = 10
	NFTCollectionPageSize18 NFTCollectionPageSize = 18
	NFTCollectionPageSize20 NFTCollectionPageSize = 20
	NFTCollectionPageSize30 NFTCollectionPageSize = 30
	NFTCollectionPageSize40 NFTCollectionPageSize = 40
)

var NFTCollectionPageSizes = core.NewSet("NFTCollectionPageSize",
	NFTCollectionPageSize10, NFTCollectionPageSize18, NFTCollectionPageSize20,
	NFTCollectionPageSize30, NFTCollectionPageSize40)

func (p NFTCollectionPageSize) Valid() error { return NFTCollectionPageSizes.Check("page_size", p) }

// ReturnLimit es el número de elementos de los endpoints sin paginación.
type ReturnLimit int

const (
	Limit10 ReturnLimit = 10
	Limit20 ReturnLimit = 20
	Limit30 ReturnLimit = 30
	Limit40 ReturnLimit = 40
)

var ReturnLimits = core.NewSet("ReturnLimit", Limit10, Limit20, Limit30, Limit40)

func (l ReturnLimit) Valid() error { return ReturnLimits.Check("limit", l) }

type Flow string

const (
	FlowIn  Flow = "in"
	FlowOut Flow = "out"
)

var Flows = core.NewSet("Flow", FlowIn, FlowOut)

func (f Flow) Valid() error { return Flows.Check("flow", f) }

type AccountType string

const (
	AccountToken AccountType = "token"
	AccountNFT   AccountType = "nft"
)

var AccountTypes = core.NewSet("AccountType", AccountToken, AccountNFT)

func (a AccountType) Valid() error { return AccountTypes.Check("type", a) }

type ActivityTransfer string

const (
	ActivitySplTransfer      ActivityTransfer = "ACTIVITY_SPL_TRANSFER"
	ActivitySplBurn          ActivityTransfer = "ACTIVITY_SPL_BURN"
	ActivitySplMint          ActivityTransfer = "ACTIVITY_SPL_MINT"
	ActivitySplCreateAccount ActivityTransfer = "ACTIVITY_SPL_CREATE_ACCOUNT"
)

var ActivityTransfers = core.NewSet("ActivityTransfer",
	ActivitySplTransfer, ActivitySplBurn, ActivitySplMint, ActivitySplCreateAccount)

type ActivityDefi string

const (
	ActivityTokenSwap             ActivityDefi = "ACTIVITY_TOKEN_SWAP"
	ActivityAggTokenSwap          ActivityDefi = "ACTIVITY_AGG_TOKEN_SWAP"
	ActivityTokenAddLiq           ActivityDefi = "ACTIVITY_TOKEN_ADD_LIQ"
	ActivityTokenRemoveLiq        ActivityDefi = "ACTIVITY_TOKEN_REMOVE_LIQ"
	ActivitySplTokenStake         ActivityDefi = "ACTIVITY_SPL_TOKEN_STAKE"
	ActivitySplTokenUnstake       ActivityDefi = "ACTIVITY_SPL_TOKEN_UNSTAKE"
	ActivitySplTokenWithdrawStake ActivityDefi = "ACTIVITY_SPL_TOKEN_WITHDRAW_STAKE"
)

var ActivityDefis = core.NewSet("ActivityDefi",
	ActivityTokenSwap, ActivityAggTokenSwap, ActivityTokenAddLiq, ActivityTokenRemoveLiq,
	ActivitySplTokenStake, ActivitySplTokenUnstake, ActivitySplTokenWithdrawStake)

type ActivityNFT string

const (
	ActivityNFTSold        ActivityNFT = "ACTIVITY_NFT_SOLD"
	ActivityNFTListing     ActivityNFT = "ACTIVITY_NFT_LISTING"
	ActivityNFTBidding     ActivityNFT = "ACTIVITY_NFT_BIDDING"
	ActivityNFTCancelBid   ActivityNFT = "ACTIVITY_NFT_CANCEL_BID"
	ActivityNFTCancelList  ActivityNFT = "ACTIVITY_NFT_CANCEL_LIST"
	ActivityNFTRejectBid   ActivityNFT = "ACTIVITY_NFT_REJECT_BID"
	ActivityNFTUpdatePrice ActivityNFT = "ACTIVITY_NFT_UPDATE_PRICE"
	ActivityNFTListAuction ActivityNFT = "ACTIVITY_NFT_LIST_AUCTION"
)

var ActivityNFTs = core.NewSet("ActivityNFT",
	ActivityNFTSold, ActivityNFTListing, ActivityNFTBidding, ActivityNFTCancelBid,
	ActivityNFTCancelList, ActivityNFTRejectBid, ActivityNFTUpdatePrice, ActivityNFTListAuction)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

var Orders = core.NewSet("Order", OrderAsc, OrderDesc)

func (o Order) Valid() error { return Orders.Check("sort_order", o) }

type Sort string

const (
	SortPrice       Sort = "price"
	SortHolder      Sort = "holder"
	SortMarketCap   Sort = "market_cap"
	SortCreatedTime Sort = "created_time"
)

var Sorts = core.NewSet("Sort", SortPrice, SortHolder, SortMarketCap, SortCreatedTime)

func (s Sort) Valid() error { return Sorts.Check("sort_by", s) }

type NFTSort string

const (
	NFTSortItems      NFTSort = "items"
	NFTSortFloorPrice NFTSort = "floor_price"
	NFTSortVolumes    NFTSort = "volumes"
)

var NFTSorts = core.NewSet("NFTSort", NFTSortItems, NFTSortFloorPrice, NFTSortVolumes)

func (s NFTSort) Valid() error { return NFTSorts.Check("sort_by", s) }

// NFTDaysRange es la ventana en días del ranking de colecciones.
type NFTDaysRange int

const (
	NFTDays1  NFTDaysRange = 1
	NFTDays7  NFTDaysRange = 7
	NFTDays30 NFTDaysRange = 30
)

var NFTDaysRanges = core.NewSet("NFTDaysRange", NFTDays1, NFTDays7, NFTDays30)

func (d NFTDaysRange) Valid() error { return NFTDaysRanges.Check("range", d) }

type NFTItemSort string

const (
	NFTSortLastTrade    NFTItemSort = "last_trade"
	NFTSortListingPrice NFTItemSort = "listing_price"
)

var NFTItemSorts = core.NewSet("NFTItemSort", NFTSortLastTrade, NFTSortListingPrice)

func (s NFTItemSort) Valid() error { return NFTItemSorts.Check("sort_by", s) }

// TxFilter filtra las transacciones de /transaction/last.
type TxFilter string

const (
	TxAll        TxFilter = "all"
	TxExceptVote TxFilter = "exceptVote"
)

var TxFilters = core.NewSet("TxFilter", TxAll, TxExceptVote)

func (f TxFilter) Valid() error { return TxFilters.Check("filter", f) }
