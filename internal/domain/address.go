package domain

// Address is a shipping address, either freshly entered during checkout or
// one of the user's saved addresses (ID set). The validate tags back the
// pre-flight checkout gate: every field the backend requires must be
// non-empty before any checkout call goes out.
type Address struct {
	ID              string `json:"id,omitempty"`
	Street          string `json:"street" validate:"required"`
	HouseNumber     string `json:"houseNumber" validate:"required"`
	City            string `json:"city" validate:"required"`
	PostalCode      string `json:"postalCode" validate:"required"`
	Country         string `json:"country" validate:"required"`
	TelephoneNumber string `json:"telephoneNumber" validate:"required"`
	IsDefault       bool   `json:"isDefault"`
}
