package org

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared/valueobject"
)

// CreateLocationRequest is the request to create a location
type CreateLocationRequest struct {
	Actor   uuid.UUID
	Name    string
	Code    string
	Address *valueobject.Address
}

// UpdateLocationRequest is the request to update a location
type UpdateLocationRequest struct {
	Actor   uuid.UUID
	Name    string
	Address *valueobject.Address
}

// LocationResponse is the response representation of a location
type LocationResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Code      string               `json:"code"`
	Address   *valueobject.Address `json:"address,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	Deleted   bool                 `json:"deleted"`
}

// ToLocationResponse converts a location to its response representation
func ToLocationResponse(location *org.Location) *LocationResponse {
	return &LocationResponse{
		ID:        location.ID,
		Name:      location.Name,
		Code:      location.Code,
		Address:   location.Address,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
		Deleted:   location.IsDeleted(),
	}
}

// CreateSectionRequest is the request to create a section
type CreateSectionRequest struct {
	Actor      uuid.UUID
	LocationID uuid.UUID
	Name       string
	Code       string
	Type       org.SectionType
}

// UpdateSectionRequest is the request to update a section
type UpdateSectionRequest struct {
	Actor            uuid.UUID
	Name             string
	CostCenterNumber string
	OrderNumber      string
	MovementType     string
	IKNumber         string
	Address          *valueobject.Address
	DeliveryAddress  *valueobject.Address
}

// SectionResponse is the response representation of a section
type SectionResponse struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Code             string               `json:"code"`
	LocationID       uuid.UUID            `json:"locationId"`
	Type             org.SectionType      `json:"type"`
	Status           org.UnitStatus       `json:"status"`
	CostCenterNumber string               `json:"costCenterNumber,omitempty"`
	OrderNumber      string               `json:"orderNumber,omitempty"`
	MovementType     string               `json:"movementType,omitempty"`
	IKNumber         string               `json:"ikNumber,omitempty"`
	Address          *valueobject.Address `json:"address,omitempty"`
	DeliveryAddress  *valueobject.Address `json:"deliveryAddress,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// ToSectionResponse converts a section to its response representation
func ToSectionResponse(section *org.Section) *SectionResponse {
	return &SectionResponse{
		ID:               section.ID,
		Name:             section.Name,
		Code:             section.Code,
		LocationID:       section.LocationID,
		Type:             section.Type,
		Status:           section.Status,
		CostCenterNumber: section.CostCenterNumber,
		OrderNumber:      section.OrderNumber,
		MovementType:     section.MovementType,
		IKNumber:         section.IKNumber,
		Address:          section.Address,
		DeliveryAddress:  section.DeliveryAddress,
		CreatedAt:        section.CreatedAt,
		UpdatedAt:        section.UpdatedAt,
	}
}

// CreateWardRequest is the request to create a ward
type CreateWardRequest struct {
	Actor      uuid.UUID
	LocationID uuid.UUID
	SectionID  uuid.UUID
	Name       string
	Code       string
}

// UpdateWardRequest is the request to update a ward
type UpdateWardRequest struct {
	Actor            uuid.UUID
	Name             string
	CostCenterNumber string
	OrderNumber      string
	MovementType     string
}

// WardResponse is the response representation of a ward
type WardResponse struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Code             string         `json:"code"`
	LocationID       uuid.UUID      `json:"locationId"`
	SectionID        uuid.UUID      `json:"sectionId"`
	Status           org.UnitStatus `json:"status"`
	CostCenterNumber string         `json:"costCenterNumber,omitempty"`
	OrderNumber      string         `json:"orderNumber,omitempty"`
	MovementType     string         `json:"movementType,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ToWardResponse converts a ward to its response representation
func ToWardResponse(ward *org.Ward) *WardResponse {
	return &WardResponse{
		ID:               ward.ID,
		Name:             ward.Name,
		Code:             ward.Code,
		LocationID:       ward.LocationID,
		SectionID:        ward.SectionID,
		Status:           ward.Status,
		CostCenterNumber: ward.CostCenterNumber,
		OrderNumber:      ward.OrderNumber,
		MovementType:     ward.MovementType,
		CreatedAt:        ward.CreatedAt,
		UpdatedAt:        ward.UpdatedAt,
	}
}

// ListFilter is the common list filter for organizational units
type ListFilter struct {
	Search         string
	Page           int
	PageSize       int
	SortBy         string
	SortDesc       bool
	IncludeDeleted bool
}
