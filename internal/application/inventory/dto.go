package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinistock/backend/internal/domain/inventory"
)

// CreateBatchRequest is the request to register a batch at a ward
type CreateBatchRequest struct {
	Actor       uuid.UUID
	LocationID  uuid.UUID
	SectionID   uuid.UUID
	WardID      uuid.UUID
	TradeNameID uuid.UUID
	Name        string
	Quantity    decimal.Decimal
	ExpiryDate  *time.Time
}

// UpdateBatchRequest is the request to update a batch
type UpdateBatchRequest struct {
	Actor      uuid.UUID
	Name       string
	Quantity   decimal.Decimal
	ExpiryDate *time.Time
}

// BatchResponse is the response representation of a batch
type BatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	LocationID  uuid.UUID       `json:"locationId"`
	SectionID   uuid.UUID       `json:"sectionId"`
	WardID      uuid.UUID       `json:"wardId"`
	TradeNameID uuid.UUID       `json:"tradeNameId"`
	Quantity    decimal.Decimal `json:"quantity"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Deleted     bool            `json:"deleted"`
}

// ToBatchResponse converts a batch to its response representation
func ToBatchResponse(batch *inventory.Batch) *BatchResponse {
	return &BatchResponse{
		ID:          batch.ID,
		Name:        batch.Name,
		LocationID:  batch.LocationID,
		SectionID:   batch.SectionID,
		WardID:      batch.WardID,
		TradeNameID: batch.TradeNameID,
		Quantity:    batch.Quantity,
		ExpiryDate:  batch.ExpiryDate,
		CreatedAt:   batch.CreatedAt,
		UpdatedAt:   batch.UpdatedAt,
		Deleted:     batch.IsDeleted(),
	}
}
