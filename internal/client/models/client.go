package models

// Client is a customer whose services are renewed.
type Client struct {
	ID               int64  `json:"id,omitempty"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required,phone"`
	Address          string `json:"address,omitempty"`
	PICName          string `json:"pic_name,omitempty"`
	ClientTypeID     int64  `json:"client_type_id" validate:"required"`
	ClientTypeName   string `json:"client_type_name,omitempty"`
	ClientStatusID   int64  `json:"client_status_id" validate:"required"`
	ClientStatusName string `json:"client_status_name,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Audit
}

// ClientType is a lookup row, e.g. "Perusahaan" or "Perorangan".
type ClientType struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Audit
}

// ClientStatus is a lookup row, e.g. "Aktif" or "Nonaktif".
type ClientStatus struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Audit
}
