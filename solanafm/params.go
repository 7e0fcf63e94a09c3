package solanafm

import "github.com/alejandrodnm/cyhole/core"

// BlocksPaginationType indica sobre qué campo pagina /v0/blocks.
type BlocksPaginationType string

const (
	PaginateBlockNumber BlocksPaginationType = "blockNumber"
	PaginateBlockTime   BlocksPaginationType = "blockTime"
)

var BlocksPaginationTypes = core.NewSet("BlocksPaginationType", PaginateBlockNumber, PaginateBlockTime)

func (p BlocksPaginationType) Valid() error {
	return BlocksPaginationTypes.Check("paginationType", p)
}
