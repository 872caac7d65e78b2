package models

// ReportFilter narrows the services report.
// Zero values are left out of the query.
type ReportFilter struct {
	StartDate         string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate           string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	ClientID          int64  `json:"client_id"`
	ServiceTypeID     int64  `json:"service_type_id"`
	ServiceCategoryID int64  `json:"service_category_id"`
	Status            string `json:"status"`
}

// ReportRow is one line of the report preview.
type ReportRow struct {
	ServiceID       int64   `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ClientName      string  `json:"client_name"`
	ServiceTypeName string  `json:"service_type_name"`
	VendorName      string  `json:"vendor_name"`
	EndDate         string  `json:"end_date"`
	FinalPrice      float64 `json:"final_price"`
	Status          string  `json:"status"`
}

// ReportPreview is the body of /api/services/reports/preview.
type ReportPreview struct {
	Rows       []ReportRow `json:"rows"`
	TotalCount int         `json:"total_count"`
	TotalPrice float64     `json:"total_price"`
}
