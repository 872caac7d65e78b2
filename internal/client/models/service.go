package models

// DiscountType selects how Service.Discount is interpreted.
type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// Service is a renewable product sold to a client (hosting, domain, licence).
type Service struct {
	ID                  int64        `json:"id,omitempty"`
	Name                string       `json:"name" validate:"required"`
	ClientID            int64        `json:"client_id" validate:"required"`
	ClientName          string       `json:"client_name,omitempty"`
	ServiceTypeID       int64        `json:"service_type_id" validate:"required"`
	ServiceTypeName     string       `json:"service_type_name,omitempty"`
	ServiceCategoryID   int64        `json:"service_category_id,omitempty"`
	ServiceCategoryName string       `json:"service_category_name,omitempty"`
	VendorID            int64        `json:"vendor_id,omitempty"`
	VendorName          string       `json:"vendor_name,omitempty"`
	StartDate           string       `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate             string       `json:"end_date" validate:"required,datetime=2006-01-02"`
	NormalPrice         float64      `json:"normal_price" validate:"gte=0"`
	DiscountEnabled     bool         `json:"discount_enabled"`
	DiscountType        DiscountType `json:"discount_type,omitempty" validate:"omitempty,oneof=amount percentage"`
	Discount            float64      `json:"discount" validate:"gte=0"`
	FinalPrice          float64      `json:"final_price"`
	Status              string       `json:"status,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	Audit
}

// Recompute refreshes the derived FinalPrice from the pricing inputs.
func (s *Service) Recompute() {
	s.FinalPrice = FinalPrice(s.NormalPrice, s.DiscountEnabled, s.DiscountType, s.Discount)
}

// CheckDiscount reports cross-field problems the tag rules cannot express.
func (s Service) CheckDiscount() map[string]string {
	if s.DiscountEnabled && s.DiscountType == "" {
		return map[string]string{"discount_type": "Jenis diskon wajib dipilih"}
	}
	return nil
}

// ServiceType is a lookup row. RequiresVendor means services of this type
// must name the vendor they are bought from.
type ServiceType struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name" validate:"required"`
	RequiresVendor bool   `json:"requires_vendor"`
	Description    string `json:"description,omitempty"`
	Audit
}

// ServiceCategory groups service types for reporting.
type ServiceCategory struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Audit
}
