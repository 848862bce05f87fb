package model

// PromoCode is a discount rule identified by a code string. A promo may carry
// a percentage reduction, a flat-amount reduction, or both.
type PromoCode struct {
	ID          string   `json:"-" bson:"_id,omitempty"`
	Code        string   `json:"code" bson:"code"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	PercentOff  *int     `json:"percent_off,omitempty" bson:"percent_off,omitempty"`
	AmountOff   *float64 `json:"amount_off,omitempty" bson:"amount_off,omitempty"`
	Active      *bool    `json:"active" bson:"active"`
}

// Normalize fills in the documented defaults for fields the caller omitted.
func (p *PromoCode) Normalize() {
	if p.Active == nil {
		active := true
		p.Active = &active
	}
}

// Validate checks the promo code against its field constraints.
func (p *PromoCode) Validate() error {
	if p.Code == "" {
		return NewValidationError("code is required")
	}
	if p.PercentOff != nil && (*p.PercentOff < 1 || *p.PercentOff > 90) {
		return NewValidationError("percent_off must be between 1 and 90")
	}
	if p.AmountOff != nil && *p.AmountOff < 0 {
		return NewValidationError("amount_off must not be negative")
	}
	return nil
}
