package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one ordered item as submitted by the client.
// UnitPrice is a decimal amount (e.g. 12.50) as shown on the menu.
type LineItemRequest struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
	ImageURL            string  `json:"imageUrl,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items           []LineItemRequest `json:"items"`
	PaymentMethod   string            `json:"paymentMethod"`
	DeliveryAddress string            `json:"deliveryAddress"`
}

// ChangeStatusRequest is the body of PUT /api/v1/orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// LineItemResponse is one ordered item in a response body.
type LineItemResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unitPrice"`
	Quantity            int     `json:"quantity"`
	Subtotal            float64 `json:"subtotal"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
	ImageURL            string  `json:"imageUrl,omitempty"`
}

// OrderResponse is the representation of an order in response bodies.
type OrderResponse struct {
	ID              string             `json:"id"`
	OwnerID         *string            `json:"ownerId,omitempty"`
	Items           []LineItemResponse `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	DeliveryFee     float64            `json:"deliveryFee"`
	Total           float64            `json:"total"`
	Status          string             `json:"status"`
	PaymentMethod   string             `json:"paymentMethod"`
	DeliveryAddress string             `json:"deliveryAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// AuditEntryResponse is one audit trail row in the admin listing.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	AdminID    string    `json:"adminId"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   *string   `json:"entityId,omitempty"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	var ownerID *string
	if id := o.OwnerID(); id != nil {
		s := id.String()
		ownerID = &s
	}

	lineItems := o.LineItems()
	items := make([]LineItemResponse, 0, len(lineItems))
	for _, li := range lineItems {
		items = append(items, LineItemResponse{
			ID:                  li.ItemID(),
			Name:                li.Name(),
			UnitPrice:           li.UnitPrice().Float64(),
			Quantity:            li.Quantity(),
			Subtotal:            li.Subtotal().Float64(),
			SpecialInstructions: li.SpecialInstructions(),
			ImageURL:            li.ImageURL(),
		})
	}

	return OrderResponse{
		ID:              o.ID().String(),
		OwnerID:         ownerID,
		Items:           items,
		Subtotal:        o.Subtotal().Float64(),
		DeliveryFee:     o.DeliveryFee().Float64(),
		Total:           o.Total().Float64(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

func toAuditEntryResponse(row queries.ListAuditEntriesQueryResponse) AuditEntryResponse {
	var entityID *string
	if row.EntityID != nil {
		s := row.EntityID.String()
		entityID = &s
	}

	return AuditEntryResponse{
		ID:         row.ID.String(),
		AdminID:    row.AdminID.String(),
		Action:     row.Action,
		EntityType: row.EntityType,
		EntityID:   entityID,
		Details:    row.Details,
		CreatedAt:  row.CreatedAt,
	}
}

func toLineItems(items []LineItemRequest) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		unitPrice, err := kernel.NewMoneyFromFloat(item.UnitPrice)
		if err != nil {
			return nil, err
		}

		li, err := order.NewLineItem(
			item.ID,
			item.Name,
			unitPrice,
			item.Quantity,
			item.SpecialInstructions,
			item.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	return lineItems, nil
}
