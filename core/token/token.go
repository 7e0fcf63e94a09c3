// Package token contiene las constantes de tokens conocidos por cadena.
package token

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Chain identifica la red de un token.
type Chain string

const (
	Solana   Chain = "solana"
	Ethereum Chain = "ethereum"
)

// Token es un token con su dirección y decimales en una cadena.
type Token struct {
	Name     string
	Symbol   string
	Address  string
	Decimals int32
	Chain    Chain
}

// ToUI convierte una cantidad en unidades mínimas a unidades de usuario.
func (t Token) ToUI(raw decimal.Decimal) decimal.Decimal {
	return raw.Shift(-t.Decimals)
}

// FromUI convierte unidades de usuario a unidades mínimas, truncando.
func (t Token) FromUI(ui decimal.Decimal) decimal.Decimal {
	return ui.Shift(t.Decimals).Truncate(0)
}

// EVMAddress devuelve la dirección como common.Address.
// Solo tiene sentido para tokens de Ethereum.
func (t Token) EVMAddress() (common.Address, error) {
	if t.Chain != Ethereum || !common.IsHexAddress(t.Address) {
		return common.Address{}, fmt.Errorf("token.EVMAddress: %s on %s is not an EVM address", t.Symbol, t.Chain)
	}
	return common.HexToAddress(t.Address), nil
}

func (t Token) String() string {
	return fmt.Sprintf("%s (%s)", t.Symbol, t.Address)
}

var (
	SOL  = Token{Name: "Solana", Symbol: "SOL", Address: "So11111111111111111111111111111111111111111", Decimals: 9, Chain: Solana}
	WSOL = Token{Name: "Wrapped SOL", Symbol: "SOL", Address: "So11111111111111111111111111111111111111112", Decimals: 9, Chain: Solana}
	USDC = Token{Name: "USD Coin", Symbol: "USDC", Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Decimals: 6, Chain: Solana}
	USDT = Token{Name: "USDT", Symbol: "USDT", Address: "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", Decimals: 6, Chain: Solana}
	JUP  = Token{Name: "Jupiter", Symbol: "JUP", Address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", Decimals: 6, Chain: Solana}
	BONK = Token{Name: "Bonk", Symbol: "BONK", Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Decimals: 5, Chain: Solana}
	WIF  = Token{Name: "dogwifhat", Symbol: "$WIF", Address: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Decimals: 6, Chain: Solana}

	EthWETH = Token{Name: "Wrapped Ether", Symbol: "WETH", Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", Decimals: 18, Chain: Ethereum}
	EthUSDC = Token{Name: "USD Coin", Symbol: "USDC", Address: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6, Chain: Ethereum}
	EthUSDT = Token{Name: "Tether USD", Symbol: "USDT", Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7", Decimals: 6, Chain: Ethereum}
	EthBNB  = Token{Name: "BNB", Symbol: "BNB", Address: "0xB8c77482e45F1F44dE1745F52C74426C631bDD52", Decimals: 18, Chain: Ethereum}
)

var registry = map[Chain][]Token{
	Solana:   {SOL, WSOL, USDC, USDT, JUP, BONK, WIF},
	Ethereum: {EthWETH, EthUSDC, EthUSDT, EthBNB},
}

// All devuelve los tokens conocidos de una cadena.
func All(chain Chain) []Token {
	out := make([]Token, len(registry[chain]))
	copy(out, registry[chain])
	return out
}

// Lookup busca por símbolo (sin distinguir mayúsculas) o por dirección.
// Para SOL devuelve el mint nativo; WSOL se busca por su dirección.
func Lookup(chain Chain, key string) (Token, bool) {
	key = strings.TrimPrefix(key, "$")
	for _, t := range registry[chain] {
		if strings.EqualFold(strings.TrimPrefix(t.Symbol, "$"), key) || sameAddress(chain, t.Address, key) {
			return t, true
		}
	}
	return Token{}, false
}

// Las direcciones base58 distinguen mayúsculas; las EVM no.
func sameAddress(chain Chain, a, b string) bool {
	if chain == Ethereum {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// Resolve devuelve la dirección de key si es un símbolo conocido,
// o key sin cambios si no lo es.
func Resolve(chain Chain, key string) string {
	if t, ok := Lookup(chain, key); ok {
		return t.Address
	}
	return key
}
