package solanafm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alejandrodnm/cyhole/core"
)

// Response es el envelope {status, message, result} de la API v0.
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  T      `json:"result"`
}

type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// Accounts

type AccountTransaction struct {
	BlockTime          int64   `json:"blockTime"`
	ConfirmationStatus string  `json:"confirmationStatus"`
	Err                *string `json:"err"`
	Memo               *string `json:"memo"`
	Signature          string  `json:"signature"`
	Slot               int64   `json:"slot"`
}

type AccountTransactions struct {
	Data       []AccountTransaction `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

type Transfer struct {
	InstructionIndex       int     `json:"instructionIndex"`
	InnerInstructionIndex  int     `json:"innerInstructionIndex"`
	Action                 string  `json:"action"`
	Status                 string  `json:"status"`
	Source                 *string `json:"source"`
	SourceAssociation      *string `json:"sourceAssociation"`
	Destination            *string `json:"destination"`
	DestinationAssociation *string `json:"destinationAssociation"`
	Token                  string  `json:"token"`
	Amount                 uint64  `json:"amount"`
	Timestamp              int64   `json:"timestamp"`
}

type TransactionTransfers struct {
	TransactionHash string     `json:"transactionHash"`
	Data            []Transfer `json:"data"`
}

// AccountTransfers no usa el envelope result.
type AccountTransfers struct {
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	Results    []TransactionTransfers `json:"results"`
	Pagination Pagination             `json:"pagination"`
}

type TransactionFee struct {
	TxFees uint64        `json:"tx_fees"`
	Time   core.FlexTime `json:"time"`
}

type AccountFees struct {
	Data []TransactionFee `json:"data"`
}

// Blocks

type BlockData struct {
	Epoch                     int64    `json:"epoch"`
	PreviousHash              string   `json:"previousHash"`
	Hash                      string   `json:"hash"`
	ParentNumber              int64    `json:"parentNumber"`
	Number                    int64    `json:"number"`
	DataSize                  int64    `json:"dataSize"`
	NumberOfTransactions      int64    `json:"numberOfTransactions"`
	SuccessfulTransactions    int64    `json:"successfulTransactions"`
	VoteTransactions          int64    `json:"voteTransactions"`
	TotalTxFees               int64    `json:"totalTxFees"`
	NumberOfRewards           int64    `json:"numberOfRewards"`
	TotalRewardAmount         int64    `json:"totalRewardAmount"`
	TotalComputeUnitsConsumed int64    `json:"totalComputeUnitsConsumed"`
	TotalComputeUnitsLimit    int64    `json:"totalComputeUnitsLimit"`
	BlockTime                 int64    `json:"blockTime"`
	Producer                  Producer `json:"producer"`
}

type Block struct {
	BlockNumber int64     `json:"blockNumber"`
	Data        BlockData `json:"data"`
}

type BlocksPagination struct {
	Next     *int64 `json:"next"`
	Previous *int64 `json:"previous"`
}

type Blocks struct {
	Data       []Block          `json:"data"`
	Pagination BlocksPagination `json:"pagination"`
}

type ProducerDetails struct {
	FriendlyName string   `json:"friendlyName"`
	Abbreviation string   `json:"abbreviation"`
	Category     string   `json:"category"`
	VoteKey      string   `json:"voteKey"`
	Network      string   `json:"network"`
	Tags         []string `json:"tags"`
	LogoURI      *string  `json:"logoURI"`
	Flag         *string  `json:"flag"`
}

// Producer es la cuenta que produjo el bloque. Sin hidratación la API
// devuelve solo el hash; con ella devuelve {accountHash, data}.
type Producer struct {
	AccountHash string
	Details     *ProducerDetails
}

func (p *Producer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &p.AccountHash)
	}
	var v struct {
		AccountHash string          `json:"accountHash"`
		Data        ProducerDetails `json:"data"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("solanafm.Producer: %w", err)
	}
	p.AccountHash = v.AccountHash
	p.Details = &v.Data
	return nil
}

func (p Producer) MarshalJSON() ([]byte, error) {
	if p.Details == nil {
		return json.Marshal(p.AccountHash)
	}
	return json.Marshal(struct {
		AccountHash string           `json:"accountHash"`
		Data        *ProducerDetails `json:"data"`
	}{p.AccountHash, p.Details})
}

// Stats

// Day es una fecha dd-mm-yyyy.
type Day struct {
	time.Time
}

const dayLayout = "02-01-2006"

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dayLayout))
}

type DailyFees struct {
	TotalTxFees int64 `json:"totalTxFees"`
	Date        Day   `json:"date"`
}

// Tokens

type TokenDetails struct {
	Mint          string   `json:"mint"`
	TokenName     string   `json:"tokenName"`
	Symbol        string   `json:"symbol"`
	Decimals      int      `json:"decimals" validate:"gte=0"`
	Description   string   `json:"description"`
	Logo          string   `json:"logo"`
	Tags          []string `json:"tags"`
	Verified      string   `json:"verified"`
	Network       []string `json:"network"`
	MetadataToken string   `json:"metadataToken"`
}

type TokenV0 struct {
	TokenHash string       `json:"tokenHash"`
	Data      TokenDetails `json:"data"`
}

type ChainInfo struct {
	Name                 string   `json:"name"`
	Symbol               string   `json:"symbol"`
	Metadata             string   `json:"metadata"`
	UpdateAuthority      string   `json:"updateAuthority"`
	IsMasterEdition      *bool    `json:"isMasterEdition"`
	Edition              *string  `json:"edition"`
	URI                  string   `json:"uri"`
	SellerFeeBasisPoints int      `json:"sellerFeeBasisPoints"`
	PrimarySaleHappened  bool     `json:"primarySaleHappened"`
	IsMutable            bool     `json:"isMutable"`
	Creators             []string `json:"creators"`
	RuleSet              *string  `json:"ruleSet"`
	Collection           *string  `json:"collection"`
	CollectionDetails    *string  `json:"collectionDetails"`
	Uses                 *string  `json:"uses"`
}

type TokenMetadata struct {
	OnChainInfo  *ChainInfo `json:"onChainInfo"`
	OffChainInfo *ChainInfo `json:"offChainInfo"`
}

type TokenListEntry struct {
	Name       string            `json:"name"`
	Symbol     string            `json:"symbol"`
	Image      string            `json:"image"`
	Extensions map[string]string `json:"extensions"`
	ChainID    int               `json:"chainId"`
}

// TokenV1 es la respuesta de /v1/tokens, sin envelope.
type TokenV1 struct {
	Mint            string         `json:"mint"`
	Decimals        int            `json:"decimals" validate:"gte=0"`
	FreezeAuthority *string        `json:"freezeAuthority"`
	MintAuthority   *string        `json:"mintAuthority"`
	TokenType       string         `json:"tokenType"`
	TokenList       TokenListEntry `json:"tokenList"`
	TokenMetadata   TokenMetadata  `json:"tokenMetadata"`
}

type TokenSupply struct {
	CirculatingSupply       float64 `json:"circulatingSupply"`
	TokenWithheldAmount     *int64  `json:"tokenWithheldAmount"`
	UserTotalWithheldAmount int64   `json:"userTotalWithheldAmount"`
	TotalWithheldAmount     int64   `json:"totalWithheldAmount"`
	RealCirculatingSupply   float64 `json:"realCirculatingSupply"`
	Decimals                int     `json:"decimals"`
}
