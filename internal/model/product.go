package model

// Product categories carried by the catalog.
const (
	CategoryPickleball = "pickleball"
	CategoryPadel      = "padel"
	CategoryBeach      = "beach"
	CategoryApparel    = "apparel"
)

// Fulfillment modes.
const (
	FulfillmentSelf       = "self"
	FulfillmentThirdParty = "third_party"
)

var validCategories = map[string]bool{
	CategoryPickleball: true,
	CategoryPadel:      true,
	CategoryBeach:      true,
	CategoryApparel:    true,
}

var validFulfillments = map[string]bool{
	FulfillmentSelf:       true,
	FulfillmentThirdParty: true,
}

// Product represents a sellable item in the catalogue, identified by SKU.
type Product struct {
	ID          string           `json:"-" bson:"_id,omitempty"`
	SKU         string           `json:"sku" bson:"sku"`
	Title       string           `json:"title" bson:"title"`
	Description string           `json:"description,omitempty" bson:"description,omitempty"`
	Category    string           `json:"category" bson:"category"`
	Brand       string           `json:"brand" bson:"brand"`
	Price       float64          `json:"price" bson:"price"`
	Currency    string           `json:"currency" bson:"currency"`
	Images      []string         `json:"images" bson:"images"`
	Tags        []string         `json:"tags" bson:"tags"`
	Variants    []map[string]any `json:"variants" bson:"variants"`
	Stock       int              `json:"stock" bson:"stock"`
	Fulfillment string           `json:"fulfillment" bson:"fulfillment"`
	EcoScore    *int             `json:"eco_score,omitempty" bson:"eco_score,omitempty"`
	Active      *bool            `json:"active" bson:"active"`
}

// Normalize fills in the documented defaults for fields the caller omitted.
func (p *Product) Normalize() {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Fulfillment == "" {
		p.Fulfillment = FulfillmentSelf
	}
	if p.Active == nil {
		active := true
		p.Active = &active
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Variants == nil {
		p.Variants = []map[string]any{}
	}
}

// Validate checks the product against its field constraints.
func (p *Product) Validate() error {
	if p.SKU == "" {
		return NewValidationError("sku is required")
	}
	if p.Title == "" {
		return NewValidationError("title is required")
	}
	if !validCategories[p.Category] {
		return NewValidationError("invalid category: %q", p.Category)
	}
	if p.Brand == "" {
		return NewValidationError("brand is required")
	}
	if p.Price < 0 {
		return NewValidationError("price must not be negative")
	}
	if p.Stock < 0 {
		return NewValidationError("stock must not be negative")
	}
	if p.Fulfillment != "" && !validFulfillments[p.Fulfillment] {
		return NewValidationError("invalid fulfillment mode: %q", p.Fulfillment)
	}
	if p.EcoScore != nil && (*p.EcoScore < 1 || *p.EcoScore > 5) {
		return NewValidationError("eco_score must be between 1 and 5")
	}
	return nil
}
