// Package events publishes reservation lifecycle notifications. Publishing
// is best-effort: a lost event never fails the operation that produced it.
package events

import (
	"context"
	"time"

	"innkeep/pkg/model"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	HotelID       string    `json:"hotel_id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
	Close() error
}

func NewReservationEvent(eventType string, reservation model.Reservation) ReservationEvent {
	return ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		HotelID:       reservation.HotelID,
		CustomerID:    reservation.CustomerID,
		Status:        reservation.Status,
		OccurredAt:    time.Now().UTC(),
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event ReservationEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
