package jupiter

import "github.com/alejandrodnm/cyhole/core"

// SwapMode fija qué lado del swap es exacto.
type SwapMode string

const (
	SwapExactIn  SwapMode = "ExactIn"
	SwapExactOut SwapMode = "ExactOut"
)

var SwapModes = core.NewSet("SwapMode", SwapExactIn, SwapExactOut)

func (m SwapMode) Valid() error { return SwapModes.Check("swapMode", m) }

// Dex es una etiqueta de AMM admitida en dexes y excludeDexes.
type Dex string

const (
	DexAldrin          Dex = "Aldrin"
	DexAldrinV2        Dex = "Aldrin V2"
	DexBonkswap        Dex = "Bonkswap"
	DexClone           Dex = "Clone Protocol"
	DexCrema           Dex = "Crema"
	DexCropper         Dex = "Cropper"
	DexCropperLegacy   Dex = "Cropper Legacy"
	DexDexlab          Dex = "Dexlab"
	Dex1DEX            Dex = "1DEX"
	DexFluxBeam        Dex = "FluxBeam"
	DexGooseFX         Dex = "GooseFX"
	DexGuacswap        Dex = "Guacswap"
	DexHelium          Dex = "Helium Network"
	DexInvariant       Dex = "Invariant"
	DexLifinityV1      Dex = "Lifinity V1"
	DexLifinityV2      Dex = "Lifinity V2"
	DexMarinade        Dex = "Marinade"
	DexMercurial       Dex = "Mercurial"
	DexMeteora         Dex = "Meteora"
	DexMeteoraDLMM     Dex = "Meteora DLMM"
	DexOasis           Dex = "Oasis"
	DexOpenbook        Dex = "Openbook"
	DexOpenbookV2      Dex = "OpenBook V2"
	DexOrcaV1          Dex = "Orca V1"
	DexOrcaV2          Dex = "Orca V2"
	DexPenguin         Dex = "Penguin"
	DexPerps           Dex = "Perps"
	DexPhoenix         Dex = "Phoenix"
	DexRaydium         Dex = "Raydium"
	DexRaydiumCLMM     Dex = "Raydium CLMM"
	DexRaydiumCP       Dex = "Raydium CP"
	DexSaber           Dex = "Saber"
	DexSaberDecimals   Dex = "Saber (Decimals)"
	DexSanctum         Dex = "Sanctum"
	DexSanctumInfinity Dex = "Sanctum Infinity"
	DexSaros           Dex = "Saros"
	DexStepN           Dex = "StepN"
	DexTokenSwap       Dex = "Token Swap"
	DexWhirlpool       Dex = "Whirlpool"
)

var Dexes = core.NewSet("Dex",
	DexAldrin, DexAldrinV2, DexBonkswap, DexClone, DexCrema, DexCropper, DexCropperLegacy,
	DexDexlab, Dex1DEX, DexFluxBeam, DexGooseFX, DexGuacswap, DexHelium, DexInvariant,
	DexLifinityV1, DexLifinityV2, DexMarinade, DexMercurial, DexMeteora, DexMeteoraDLMM,
	DexOasis, DexOpenbook, DexOpenbookV2, DexOrcaV1, DexOrcaV2, DexPenguin, DexPerps,
	DexPhoenix, DexRaydium, DexRaydiumCLMM, DexRaydiumCP, DexSaber, DexSaberDecimals,
	DexSanctum, DexSanctumInfinity, DexSaros, DexStepN, DexTokenSwap, DexWhirlpool,
)

func (d Dex) Valid() error { return Dexes.Check("dexes", d) }

// TokenTag agrupa los tokens operables en Jupiter.
type TokenTag string

const (
	TagVerified        TokenTag = "verified"
	TagUnknown         TokenTag = "unknown"
	TagCommunity       TokenTag = "community"
	TagStrict          TokenTag = "strict"
	TagLST             TokenTag = "lst"
	TagBirdeyeTrending TokenTag = "birdeye-trending"
	TagPump            TokenTag = "pump"
	TagToken2022       TokenTag = "token-2022"
	TagMoonshot        TokenTag = "moonshot"
)

var TokenTags = core.NewSet("TokenTag",
	TagVerified, TagUnknown, TagCommunity, TagStrict, TagLST,
	TagBirdeyeTrending, TagPump, TagToken2022, TagMoonshot,
)

func (t TokenTag) Valid() error { return TokenTags.Check("tag", t) }

// LimitOrderState es el estado de una orden límite en el histórico.
type LimitOrderState string

const (
	LimitOrderOpen      LimitOrderState = "Open"
	LimitOrderCompleted LimitOrderState = "Completed"
	LimitOrderCancelled LimitOrderState = "Cancelled"
)

var LimitOrderStates = core.NewSet("LimitOrderState", LimitOrderOpen, LimitOrderCompleted, LimitOrderCancelled)

func (s LimitOrderState) Valid() error { return LimitOrderStates.Check("state", s) }
