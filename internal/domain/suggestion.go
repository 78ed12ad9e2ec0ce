package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SuggestedActionType string

const (
	SuggestedAction_Add      SuggestedActionType = "add"
	SuggestedAction_Remove   SuggestedActionType = "remove"
	SuggestedAction_Reweight SuggestedActionType = "reweight"
)

// SuggestedAction is one proposed edit. Delta is the signed weight change;
// ProposedWeight is the resulting weight for the instrument (zero for removes).
type SuggestedAction struct {
	Type                   SuggestedActionType `json:"type"`
	InstrumentID           string              `json:"instrumentId"`
	Delta                  decimal.Decimal     `json:"delta"`
	ProposedWeight         decimal.Decimal     `json:"proposedWeight"`
	ExpectedCompositeDelta float64             `json:"expectedCompositeDelta"`
	Rationale              string              `json:"rationale"`
}

// Suggestion is ephemeral: generated on request against a specific base
// version and discarded unless explicitly applied through a commit. The
// suggestion engine itself never mutates basket state.
type Suggestion struct {
	BasketID         uuid.UUID         `json:"basketId"`
	BaseVersion      int32             `json:"baseVersion"`
	CurrentComposite float64           `json:"currentComposite"`
	Actions          []SuggestedAction `json:"actions"`
}
