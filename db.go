package warp

import (
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Journal keeps a local record of interactions accepted by the sequencer.
type Journal interface {
	AddInteraction(record InteractionRecord) (err error)
	GetInteraction(id string) (record InteractionRecord, err error)
	// ListInteractions returns newest first. An empty contract matches all
	// contracts, a limit <= 0 means no limit.
	ListInteractions(contract string, limit int) (records []InteractionRecord, err error)
	Close() error
}

type InteractionRecord struct {
	ID        string    `json:"id"`
	Contract  string    `json:"contract"`
	Input     string    `json:"input"`
	Timestamp int64     `json:"timestamp"`
	Block     int64     `json:"block"`
	Public    string    `json:"public"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewInteractionRecord(contract, input string, rsp *InteractionResponse) InteractionRecord {
	return InteractionRecord{
		ID:        rsp.ID,
		Contract:  contract,
		Input:     input,
		Timestamp: rsp.Timestamp,
		Block:     rsp.Block,
		Public:    rsp.Public,
		Signature: rsp.Signature,
		CreatedAt: time.Now().UTC(),
	}
}
