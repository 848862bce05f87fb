package model

import (
	"net/mail"
	"time"
)

// Shipping methods.
const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
)

// Order statuses. Transitions are driven by an out-of-scope fulfilment
// process; this service only ever writes "pending".
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// PaymentMethodPayPal is the only supported payment method.
const PaymentMethodPayPal = "paypal"

var validShippingMethods = map[string]bool{
	ShippingStandard: true,
	ShippingExpress:  true,
}

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// CartItem is a snapshot of a product at the time it was added to the cart,
// not a live reference to the catalogue.
type CartItem struct {
	SKU      string  `json:"sku" bson:"sku"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
	Title    string  `json:"title,omitempty" bson:"title,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
}

// ShippingAddress is a structured postal address.
type ShippingAddress struct {
	Name       string `json:"name" bson:"name"`
	Line1      string `json:"line1" bson:"line1"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Order represents a customer order created at checkout.
type Order struct {
	ID              string          `json:"-" bson:"_id,omitempty"`
	UserID          string          `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Email           string          `json:"email,omitempty" bson:"email,omitempty"`
	Items           []CartItem      `json:"items" bson:"items"`
	Subtotal        float64         `json:"subtotal" bson:"subtotal"`
	ShippingCost    float64         `json:"shipping_cost" bson:"shipping_cost"`
	Discount        float64         `json:"discount" bson:"discount"`
	Total           float64         `json:"total" bson:"total"`
	Currency        string          `json:"currency" bson:"currency"`
	ShippingAddress ShippingAddress `json:"shipping_address" bson:"shipping_address"`
	ShippingMethod  string          `json:"shipping_method" bson:"shipping_method"`
	PaymentMethod   string          `json:"payment_method" bson:"payment_method"`
	Status          string          `json:"status" bson:"status"`
	PayPalOrderID   string          `json:"paypal_order_id,omitempty" bson:"paypal_order_id,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	CreatedAt       *time.Time      `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Normalize fills in the documented defaults for fields the caller omitted.
func (o *Order) Normalize() {
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.ShippingMethod == "" {
		o.ShippingMethod = ShippingStandard
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = PaymentMethodPayPal
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
}

// Validate checks the order against its field constraints.
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return NewValidationError("order must contain at least one item")
	}
	for i, item := range o.Items {
		if item.SKU == "" {
			return NewValidationError("item %d: sku is required", i)
		}
		if item.Quantity < 1 {
			return NewValidationError("item %d: quantity must be at least 1", i)
		}
		if item.Price < 0 {
			return NewValidationError("item %d: price must not be negative", i)
		}
	}
	if o.Email != "" {
		if _, err := mail.ParseAddress(o.Email); err != nil {
			return NewValidationError("invalid email address")
		}
	}
	if o.Subtotal < 0 {
		return NewValidationError("subtotal must not be negative")
	}
	if o.ShippingCost < 0 {
		return NewValidationError("shipping_cost must not be negative")
	}
	if o.Discount < 0 {
		return NewValidationError("discount must not be negative")
	}
	if o.ShippingMethod != "" && !validShippingMethods[o.ShippingMethod] {
		return NewValidationError("invalid shipping method: %q", o.ShippingMethod)
	}
	if o.PaymentMethod != "" && o.PaymentMethod != PaymentMethodPayPal {
		return NewValidationError("invalid payment method: %q", o.PaymentMethod)
	}
	if o.Status != "" && !validStatuses[o.Status] {
		return NewValidationError("invalid status: %q", o.Status)
	}
	if err := o.ShippingAddress.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks the required address fields.
func (a *ShippingAddress) Validate() error {
	if a.Name == "" {
		return NewValidationError("shipping_address.name is required")
	}
	if a.Line1 == "" {
		return NewValidationError("shipping_address.line1 is required")
	}
	if a.City == "" {
		return NewValidationError("shipping_address.city is required")
	}
	if a.PostalCode == "" {
		return NewValidationError("shipping_address.postal_code is required")
	}
	if a.Country == "" {
		return NewValidationError("shipping_address.country is required")
	}
	return nil
}

// CreateOrderRequest represents the request payload for creating an order.
type CreateOrderRequest struct {
	Order     Order  `json:"order"`
	PromoCode string `json:"promo_code,omitempty"`
}

// OrderReceipt represents the response payload for a created order.
type OrderReceipt struct {
	ID            string `json:"id"`
	PayPalOrderID string `json:"paypal_order_id"`
}
