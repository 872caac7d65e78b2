package models

// Vendor supplies the services that are resold to clients.
type Vendor struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty" validate:"omitempty,url"`
	Audit
}
