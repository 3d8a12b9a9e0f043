package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products in the catalog
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c Category) EntityID() string { return c.ID }

// VariantOption is a selectable attribute value (one per type)
type VariantOption struct {
	ID   string      `json:"_id"`
	Type VariantType `json:"type"`
	Name string      `json:"name"`
}

func (v VariantOption) EntityID() string { return v.ID }

// VariantType enumerates the attribute axes a variant can carry
type VariantType string

const (
	VariantColor   VariantType = "color"
	VariantSize    VariantType = "size"
	VariantQuality VariantType = "quality"
	VariantFit     VariantType = "fit"
)

// VariantTypes lists every valid variant type
var VariantTypes = []VariantType{VariantColor, VariantSize, VariantQuality, VariantFit}

// ValidVariantType reports whether t is a known variant type
func ValidVariantType(t VariantType) bool {
	for _, vt := range VariantTypes {
		if vt == t {
			return true
		}
	}
	return false
}

// ProductType is the one-letter product kind code used on the wire
type ProductType string

const (
	ProductTShirt ProductType = "t"
	ProductHoodie ProductType = "h"
	ProductKids   ProductType = "c"
	ProductOther  ProductType = "o"
)

// ValidProductType reports whether t is a known product type
func ValidProductType(t ProductType) bool {
	switch t {
	case ProductTShirt, ProductHoodie, ProductKids, ProductOther:
		return true
	}
	return false
}

// VariantAttributes is the subset of variant values chosen for a product or
// order item; empty fields were not selected.
type VariantAttributes struct {
	Color   string `json:"color,omitempty"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
	Fit     string `json:"fit,omitempty"`
}

// Variant wraps a set of chosen attributes
type Variant struct {
	Attributes VariantAttributes `json:"attributes"`
}

// Product is a sellable catalog item
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Type        ProductType     `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Variants    []Variant       `json:"variants,omitempty"`
}

func (p Product) EntityID() string { return p.ID }

// MaxProductImages caps the image gallery per product
const MaxProductImages = 5

// OrderStatus is the order lifecycle label. Transitions are free-form: any
// status may be set from any other.
type OrderStatus string

const (
	OrderPrePayment OrderStatus = "pre_payment"
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in lifecycle order
var OrderStatuses = []OrderStatus{
	OrderPrePayment,
	OrderPending,
	OrderInProgress,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// ValidOrderStatus reports whether s is a known status
func ValidOrderStatus(s OrderStatus) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Customer identifies who placed an order
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Address is the delivery address on an order
type Address struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
}

// PixelPosition locates a print design on the garment, in pixels
type PixelPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DesignMeta describes a custom print attached to an order item
type DesignMeta struct {
	Side          string         `json:"side,omitempty"`
	Size          string         `json:"size,omitempty"`
	Position      string         `json:"position,omitempty"`
	PixelPosition *PixelPosition `json:"pixelPosition,omitempty"`
	FileName      string         `json:"fileName,omitempty"`
	FinalDesign   string         `json:"finalDesign,omitempty"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ProductType     ProductType       `json:"productType"`
	Quantity        int               `json:"quantity"`
	SelectedVariant VariantAttributes `json:"selectedVariant"`
	Price           decimal.Decimal   `json:"price"`
	DesignMeta      *DesignMeta       `json:"designMeta,omitempty"`
	DesignFiles     []string          `json:"designFiles,omitempty"`
}

// Order is a customer order
type Order struct {
	ID              string          `json:"_id"`
	Customer        Customer        `json:"customer"`
	Address         Address         `json:"address"`
	Items           []OrderItem     `json:"items"`
	Status          OrderStatus     `json:"status"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
	PlatformOrderID string          `json:"platform_order_id,omitempty"`
}

func (o Order) EntityID() string { return o.ID }

// Principal is the authenticated admin profile returned by the login endpoint
type Principal struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
