package client

import "encoding/json"

// Envelope is the outer shape of every backend response.
type Envelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Pagination echoes the list query. The backend does not report a total
// row count.
type Pagination struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	OrderBy string `json:"order_by"`
	SortBy  string `json:"sort_by"`
	Search  string `json:"search"`
	Offset  int    `json:"offset"`
}

// ListData is the data member of list endpoints.
type ListData[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type errorBody struct {
	Message string `json:"message"`
}
