package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/models"
)

// ReminderService triggers WhatsApp renewal reminders. Sent reminders are
// listed through Catalog.WALogs.
type ReminderService interface {
	SendWA(ctx context.Context, serviceID int64, message string) error
}

type reminderService struct {
	fetcher client.Fetcher
}

func NewReminderService(fetcher client.Fetcher) ReminderService {
	return &reminderService{fetcher: fetcher}
}

func (s *reminderService) SendWA(ctx context.Context, serviceID int64, message string) error {
	err := s.fetcher.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   PathWAReminder,
		Body:   models.Reminder{ServiceID: serviceID, Message: message},
	}, nil)
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
