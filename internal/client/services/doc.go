// Package services contains the application services of the renewadmin CLI.
//
// Each service is a thin adapter over client.Fetcher that knows the backend
// paths and payload shapes of one area: authentication, the CRUD resources,
// the services report and WhatsApp reminders. Status mapping and message
// text live in package client; session state lives in package session.
package services
