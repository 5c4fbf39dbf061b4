package model

import (
	"time"

	"github.com/muhammadheryan/clinic-companion/constant"
)

type HistoryEntry struct {
	ID        string               `json:"id"`
	Type      constant.HistoryType `json:"type"`
	Title     string               `json:"title"`
	Points    *int                 `json:"points,omitempty"`
	Amount    *int                 `json:"amount,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

type Ledger struct {
	Points      int            `json:"points"`
	WalletCents int            `json:"walletCents"`
	History     []HistoryEntry `json:"history"`
}
