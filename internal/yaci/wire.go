package yaci

import (
	"fmt"
)

// wire is a response body as decoded off the network, before required
// fields are checked.
type wire interface {
	validate() error
}

func missing(field string) error {
	return fmt.Errorf("missing %q", field)
}

// epochWire mirrors EpochInfo with pointers so absent fields are detectable.
type epochWire struct {
	Epoch      *int64 `json:"epoch"`
	BlockCount *int64 `json:"blkCount"`
	TxCount    *int64 `json:"txCount"`
}

func (w *epochWire) validate() error {
	switch {
	case w.Epoch == nil:
		return missing("epoch")
	case w.BlockCount == nil:
		return missing("blkCount")
	}
	return nil
}

func (w *epochWire) info() *EpochInfo {
	e := &EpochInfo{Epoch: *w.Epoch, BlockCount: *w.BlockCount}
	if w.TxCount != nil {
		e.TxCount = *w.TxCount
	}
	return e
}

type blockWire struct {
	Number *int64  `json:"number"`
	Hash   *string `json:"hash"`
	Time   *int64  `json:"time"`
}

func (w *blockWire) validate() error {
	switch {
	case w.Number == nil:
		return missing("number")
	case w.Hash == nil:
		return missing("hash")
	}
	return nil
}

func (w *blockWire) info() *BlockInfo {
	return &BlockInfo{Number: *w.Number, Hash: *w.Hash, Time: w.Time}
}
