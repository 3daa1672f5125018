package dto

import "time"

type OrderItemRequestDTO struct {
	ProductID   int     `json:"product_id" example:"10"`
	ProductName string  `json:"product_name" example:"Leche entera 1L"`
	Quantity    int     `json:"quantity" example:"2"`
	UnitPrice   float64 `json:"unit_price" example:"25.5"`
	Subtotal    float64 `json:"subtotal,omitempty" example:"51"`
}

type CreateOrderRequestDTO struct {
	Items    []OrderItemRequestDTO `json:"items"`
	Notes    string                `json:"notes,omitempty" example:"Recoger después de las 5"`
	BranchID *int                  `json:"branch_id,omitempty" example:"1"`
}

type ReviewItemDTO struct {
	ItemID            int  `json:"item_id" example:"3"`
	IsAvailable       bool `json:"is_available" example:"true"`
	ConfirmedQuantity *int `json:"confirmed_quantity,omitempty" example:"1"`
}

type ReviewAvailabilityRequestDTO struct {
	Items []ReviewItemDTO `json:"items"`
}

type UpdateOrderStatusRequestDTO struct {
	Status string `json:"status" example:"IN_PREPARATION"`
}

type OrderItemResponseDTO struct {
	ID                int     `json:"id"`
	ProductID         int     `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	IsAvailable       *bool   `json:"is_available"`
	ConfirmedQuantity *int    `json:"confirmed_quantity"`
	Subtotal          float64 `json:"subtotal"`
}

type OrderResponseDTO struct {
	ID          int                    `json:"id"`
	Folio       string                 `json:"folio"`
	UserID      int                    `json:"user_id"`
	BranchID    *int                   `json:"branch_id,omitempty"`
	Status      string                 `json:"status"`
	Total       float64                `json:"total"`
	Notes       string                 `json:"notes,omitempty"`
	Items       []OrderItemResponseDTO `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	ConfirmedAt *time.Time             `json:"confirmed_at,omitempty"`
	ReadyAt     *time.Time             `json:"ready_at,omitempty"`
}
