package models

import "github.com/shopspring/decimal"

// Draft types are the create/update payloads: the full intended entity minus
// the server-assigned id.

type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type VariantOptionDraft struct {
	Type VariantType `json:"type"`
	Name string      `json:"name"`
}

type ProductDraft struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Type        ProductType     `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Variants    []Variant       `json:"variants"`
}

type OrderDraft struct {
	Customer        Customer        `json:"customer"`
	Address         Address         `json:"address"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	PlatformOrderID string          `json:"platform_order_id,omitempty"`
}
