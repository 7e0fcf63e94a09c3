package token_test

import (
	"testing"

	"github.com/alejandrodnm/cyhole/core/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUIAndBack(t *testing.T) {
	raw := decimal.NewFromInt(1_500_000_000)
	ui := token.SOL.ToUI(raw)
	assert.True(t, decimal.RequireFromString("1.5").Equal(ui))
	assert.True(t, raw.Equal(token.SOL.FromUI(ui)))

	assert.True(t, decimal.NewFromInt(123456).Equal(token.USDC.FromUI(decimal.RequireFromString("0.1234567"))))
}

func TestLookup(t *testing.T) {
	jup, ok := token.Lookup(token.Solana, "jup")
	require.True(t, ok)
	assert.Equal(t, "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN", jup.Address)

	wif, ok := token.Lookup(token.Solana, "WIF")
	require.True(t, ok)
	assert.Equal(t, int32(6), wif.Decimals)

	sol, ok := token.Lookup(token.Solana, "SOL")
	require.True(t, ok)
	assert.Equal(t, token.SOL, sol)

	wsol, ok := token.Lookup(token.Solana, token.WSOL.Address)
	require.True(t, ok)
	assert.Equal(t, "Wrapped SOL", wsol.Name)

	usdt, ok := token.Lookup(token.Ethereum, "0xdac17f958d2ee523a2206206994597c13d831ec7")
	require.True(t, ok)
	assert.Equal(t, token.EthUSDT, usdt)

	_, ok = token.Lookup(token.Solana, "NOPE")
	assert.False(t, ok)
	_, ok = token.Lookup(token.Solana, "jupyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, token.BONK.Address, token.Resolve(token.Solana, "bonk"))
	assert.Equal(t, "SomeMint", token.Resolve(token.Solana, "SomeMint"))
}

func TestEVMAddress(t *testing.T) {
	addr, err := token.EthWETH.EVMAddress()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), addr)
	assert.Equal(t, token.EthWETH.Address, addr.Hex())

	_, err = token.USDC.EVMAddress()
	assert.Error(t, err)
}

func TestAllIsCopy(t *testing.T) {
	all := token.All(token.Ethereum)
	require.Len(t, all, 4)
	all[0].Symbol = "X"
	assert.Equal(t, "WETH", token.All(token.Ethereum)[0].Symbol)
}
