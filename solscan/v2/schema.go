package v2

import "github.com/alejandrodnm/cyhole/core"

// Response es el envelope {success, data} de la API v2.
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// Account

type Transfer struct {
	BlockID       int64         `json:"block_id"`
	TransID       string        `json:"trans_id"`
	BlockTime     int64         `json:"block_time"`
	ActivityType  string        `json:"activity_type"`
	FromAddress   string        `json:"from_address"`
	ToAddress     string        `json:"to_address"`
	TokenAddress  string        `json:"token_address"`
	TokenDecimals int           `json:"token_decimals"`
	Amount        uint64        `json:"amount"`
	Flow          string        `json:"flow,omitempty"`
	Time          core.FlexTime `json:"time"`
}

type TokenAccount struct {
	TokenAccount  string `json:"token_account"`
	TokenAddress  string `json:"token_address"`
	Amount        uint64 `json:"amount"`
	TokenDecimals int    `json:"token_decimals"`
	Owner         string `json:"owner"`
}

type DefiRoute struct {
	Token1         string      `json:"token1"`
	Token1Decimals int         `json:"token1_decimals"`
	Amount1        uint64      `json:"amount1"`
	Token2         *string     `json:"token2"`
	Token2Decimals *int        `json:"token2_decimals"`
	Amount2        *uint64     `json:"amount2"`
	ChildRoutes    []DefiRoute `json:"child_routes,omitempty"`
}

type DefiActivity struct {
	BlockID      int64         `json:"block_id"`
	TransID      string        `json:"trans_id"`
	BlockTime    int64         `json:"block_time"`
	ActivityType string        `json:"activity_type"`
	FromAddress  string        `json:"from_address"`
	Sources      []string      `json:"sources"`
	Platform     string        `json:"platform"`
	Routes       []DefiRoute   `json:"routes,omitempty"`
	Time         core.FlexTime `json:"time"`
}

type BalanceChange struct {
	BlockID       int64         `json:"block_id"`
	BlockTime     int64         `json:"block_time"`
	TransID       string        `json:"trans_id"`
	Address       string        `json:"address"`
	TokenAddress  string        `json:"token_address"`
	TokenAccount  string        `json:"token_account"`
	TokenDecimals int           `json:"token_decimals"`
	Amount        uint64        `json:"amount"`
	PreBalance    uint64        `json:"pre_balance"`
	PostBalance   uint64        `json:"post_balance"`
	ChangeType    string        `json:"change_type"`
	Fee           uint64        `json:"fee"`
	Time          core.FlexTime `json:"time"`
}

type Instruction struct {
	Type      string `json:"type"`
	Program   string `json:"program"`
	ProgramID string `json:"program_id"`
}

type Transaction struct {
	Slot               int64         `json:"slot"`
	Fee                uint64        `json:"fee"`
	Status             string        `json:"status"`
	Signer             []string      `json:"signer"`
	BlockTime          int64         `json:"block_time"`
	TxHash             string        `json:"tx_hash"`
	ParsedInstructions []Instruction `json:"parsed_instructions"`
	ProgramIDs         []string      `json:"program_ids"`
	Time               core.FlexTime `json:"time"`
}

type Stake struct {
	Amount               uint64   `json:"amount"`
	Role                 []string `json:"role"`
	Status               string   `json:"status"`
	Type                 string   `json:"type"`
	Voter                string   `json:"voter"`
	ActiveStakeAmount    uint64   `json:"active_stake_amount"`
	DelegatedStakeAmount uint64   `json:"delegated_stake_amount"`
	SolBalance           uint64   `json:"sol_balance"`
	TotalReward          string   `json:"total_reward"`
	StakeAccount         string   `json:"stake_account"`
	ActivationEpoch      int64    `json:"activation_epoch"`
	StakeType            int      `json:"stake_type"`
}

type AccountDetail struct {
	Account      string `json:"account"`
	Lamports     uint64 `json:"lamports"`
	Type         string `json:"type"`
	Executable   bool   `json:"executable"`
	OwnerProgram string `json:"owner_program"`
	RentEpoch    uint64 `json:"rent_epoch"`
	IsOncurve    bool   `json:"is_oncurve"`
}

// Token

type TokenMarket struct {
	PoolID         string  `json:"pool_id"`
	ProgramID      string  `json:"program_id"`
	Token1         string  `json:"token_1"`
	Token2         string  `json:"token_2"`
	Token1Account  string  `json:"token_account_1"`
	Token2Account  string  `json:"token_account_2"`
	TotalVolume24h float64 `json:"total_volume_24h"`
	TotalTrades24h int64   `json:"total_trades_24h"`
}

type ListedToken struct {
	Address        string   `json:"address"`
	Decimals       int      `json:"decimals"`
	Name           *string  `json:"name"`
	Symbol         *string  `json:"symbol"`
	MarketCap      *float64 `json:"market_cap"`
	Price          *float64 `json:"price"`
	Price24hChange *float64 `json:"price_24h_change"`
	CreatedTime    *int64   `json:"created_time"`
}

type TrendingToken struct {
	Address  string  `json:"address"`
	Decimals int     `json:"decimals"`
	Name     *string `json:"name"`
	Symbol   *string `json:"symbol"`
}

// TokenPrice es el precio de cierre de un día; Date viene como yyyymmdd.
type TokenPrice struct {
	Date  int     `json:"date"`
	Price float64 `json:"price"`
}

type Holder struct {
	Address  string `json:"address"`
	Amount   uint64 `json:"amount"`
	Decimals int    `json:"decimals"`
	Owner    string `json:"owner"`
	Rank     int    `json:"rank" validate:"gt=0"`
}

type Holders struct {
	Total int      `json:"total"`
	Items []Holder `json:"items" validate:"dive"`
}

type TokenMeta struct {
	Address        string   `json:"address"`
	Name           *string  `json:"name"`
	Symbol         *string  `json:"symbol"`
	Icon           *string  `json:"icon"`
	Decimals       int      `json:"decimals"`
	Holder         *int64   `json:"holder"`
	Creator        *string  `json:"creator"`
	CreateTx       *string  `json:"create_tx"`
	CreatedTime    *int64   `json:"created_time"`
	FirstMintTx    *string  `json:"first_mint_tx"`
	FirstMintTime  *int64   `json:"first_mint_time"`
	Price          *float64 `json:"price"`
	Volume24h      *float64 `json:"volume_24h"`
	MarketCap      *float64 `json:"market_cap"`
	MarketCapRank  *int     `json:"market_cap_rank"`
	PriceChange24h *float64 `json:"price_change_24h"`
	Supply         string   `json:"supply"`
}

// NFT

type NFTInfo struct {
	Address      string         `json:"address"`
	Collection   *string        `json:"collection"`
	CollectionID *string        `json:"collection_id"`
	Creator      *string        `json:"creator"`
	Info         map[string]any `json:"info,omitempty"`
}

type NFTNews struct {
	BlockID   int64         `json:"block_id"`
	TransID   string        `json:"trans_id"`
	BlockTime int64         `json:"block_time"`
	Time      core.FlexTime `json:"time"`
	Data      NFTInfo       `json:"data"`
}

type NFTTrade struct {
	TradeTime        int64   `json:"trade_time"`
	Signature        string  `json:"signature"`
	MarketID         string  `json:"market_id"`
	Type             string  `json:"type"`
	Price            string  `json:"price"`
	CurrencyToken    string  `json:"currency_token"`
	CurrencyDecimals int     `json:"currency_decimals"`
	Seller           *string `json:"seller"`
	Buyer            *string `json:"buyer"`
}

type NFTItemInfo struct {
	Address      string         `json:"address"`
	TokenName    *string        `json:"token_name"`
	TokenSymbol  *string        `json:"token_symbol"`
	CollectionID *string        `json:"collection_id"`
	MintTx       *string        `json:"mint_tx"`
	CreatedTime  *int64         `json:"created_time"`
	Data         map[string]any `json:"data,omitempty"`
	Meta         map[string]any `json:"meta,omitempty"`
}

type NFTCollectionItem struct {
	TradeInfo *NFTTrade   `json:"tradeInfo"`
	Info      NFTItemInfo `json:"info"`
}

type NFTActivity struct {
	BlockID            int64         `json:"block_id"`
	TransID            string        `json:"trans_id"`
	BlockTime          int64         `json:"block_time"`
	Time               core.FlexTime `json:"time"`
	ActivityType       ActivityNFT   `json:"activity_type"`
	From               string        `json:"from_address"`
	To                 string        `json:"to_address"`
	TokenAddress       string        `json:"token_address"`
	MarketplaceAddress string        `json:"marketplace_address"`
	CollectionAddress  string        `json:"collection_address"`
	Amount             float64       `json:"amount"`
	Price              float64       `json:"price"`
	CurrencyToken      string        `json:"currency_token"`
	CurrencyDecimals   int           `json:"currency_decimals"`
}

type NFTCollection struct {
	CollectionID   string   `json:"collection_id"`
	Name           string   `json:"name"`
	Symbol         *string  `json:"symbol"`
	FloorPrice     float64  `json:"floor_price"`
	Items          int64    `json:"items"`
	Marketplaces   []string `json:"marketplaces"`
	Volumes        float64  `json:"volumes"`
	VolumesPrev24h float64  `json:"total_vol_prev_24h,omitempty"`
}

// Transactions y bloques

type ActionTransfer struct {
	SourceOwner      string `json:"source_owner"`
	Source           string `json:"source"`
	Destination      string `json:"destination"`
	DestinationOwner string `json:"destination_owner"`
	TransferType     string `json:"transfer_type"`
	TokenAddress     string `json:"token_address"`
	Decimals         int    `json:"decimals"`
	AmountStr        string `json:"amount_str"`
	Amount           uint64 `json:"amount"`
	ProgramID        string `json:"program_id"`
	OuterProgramID   string `json:"outer_program_id"`
	InsIndex         int    `json:"ins_index"`
	OuterInsIndex    int    `json:"outer_ins_index"`
}

type Activity struct {
	Name           string         `json:"name"`
	ActivityType   string         `json:"activity_type"`
	ProgramID      string         `json:"program_id"`
	Data           map[string]any `json:"data,omitempty"`
	InsIndex       int            `json:"ins_index"`
	OuterInsIndex  int            `json:"outer_ins_index"`
	OuterProgramID *string        `json:"outer_program_id"`
}

type TransactionActions struct {
	TxHash     string           `json:"tx_hash"`
	BlockID    int64            `json:"block_id"`
	BlockTime  int64            `json:"block_time"`
	Time       core.FlexTime    `json:"time"`
	Fee        uint64           `json:"fee"`
	Transfers  []ActionTransfer `json:"transfers,omitempty"`
	Activities []Activity       `json:"activities,omitempty"`
}

type Block struct {
	Blockhash         string        `json:"blockhash"`
	FeeRewards        uint64        `json:"fee_rewards"`
	TransactionsCount int64         `json:"transactions_count"`
	CurrentSlot       int64         `json:"current_slot"`
	BlockHeight       int64         `json:"block_height"`
	BlockTime         int64         `json:"block_time"`
	Time              core.FlexTime `json:"time"`
	ParentSlot        int64         `json:"parent_slot"`
	PreviousBlockhash string        `json:"previous_block_hash"`
}

type BlockTransactions struct {
	Total        int           `json:"total"`
	Transactions []Transaction `json:"transactions"`
}
