// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner and status. Monetary amounts are stored as
// integer cents so the totals invariant survives the round trip exactly.
//
// Timestamps are owned by the domain, so GORM's automatic time tracking is
// disabled on both columns.
type OrderDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID          *uuid.UUID     `gorm:"type:uuid;index"`
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	SubtotalCents    int64
	DeliveryFeeCents int64
	TotalCents       int64
	Status           int `gorm:"index"`
	PaymentMethod    int
	DeliveryAddress  string
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row belonging to an order.
// Line items are immutable after placement; rows are written once with the
// order and removed only when the order is hard-deleted.
type OrderItemDTO struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	ItemID              string
	Name                string
	UnitPriceCents      int64
	Quantity            int
	SpecialInstructions string
	ImageURL            string
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional owner reference.
func fromDomain(aggregate *order.Order) OrderDTO {
	var ownerID *uuid.UUID
	if id := aggregate.OwnerID(); id != nil {
		raw := id.Bytes()
		ownerID = &raw
	}

	lineItems := aggregate.LineItems()
	items := make([]OrderItemDTO, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, OrderItemDTO{
			OrderID:             aggregate.ID().Bytes(),
			ItemID:              li.ItemID(),
			Name:                li.Name(),
			UnitPriceCents:      li.UnitPrice().Cents(),
			Quantity:            li.Quantity(),
			SpecialInstructions: li.SpecialInstructions(),
			ImageURL:            li.ImageURL(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          ownerID,
		Items:            items,
		SubtotalCents:    aggregate.Subtotal().Cents(),
		DeliveryFeeCents: aggregate.DeliveryFee().Cents(),
		TotalCents:       aggregate.Total().Cents(),
		Status:           int(aggregate.Status()),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and totals using
// RestoreOrder, which re-checks every invariant against the stored values.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var ownerID *kernel.UUID
	if dto.OwnerID != nil {
		oID, ownerErr := kernel.UUIDFromBytes((*dto.OwnerID)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		ownerID = &oID
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		li, liErr := order.NewLineItem(
			item.ItemID,
			item.Name,
			kernel.NewMoneyFromCents(item.UnitPriceCents),
			item.Quantity,
			item.SpecialInstructions,
			item.ImageURL,
		)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	totals := order.Totals{
		Subtotal:    kernel.NewMoneyFromCents(dto.SubtotalCents),
		DeliveryFee: kernel.NewMoneyFromCents(dto.DeliveryFeeCents),
		Total:       kernel.NewMoneyFromCents(dto.TotalCents),
	}

	return order.RestoreOrder(
		id,
		ownerID,
		lineItems,
		totals,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		dto.DeliveryAddress,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
