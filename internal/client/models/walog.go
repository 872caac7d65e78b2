package models

// WALog is one WhatsApp renewal reminder as recorded by the backend.
type WALog struct {
	ID         int64  `json:"id"`
	ServiceID  int64  `json:"service_id"`
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	SentAt     string `json:"sent_at"`
}

// Reminder asks the backend to send a WhatsApp reminder for a service.
type Reminder struct {
	ServiceID int64  `json:"service_id"`
	Message   string `json:"message,omitempty"`
}
