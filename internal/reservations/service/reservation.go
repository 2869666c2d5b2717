package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	customerserrors "innkeep/internal/customers/errors"
	customersservice "innkeep/internal/customers/service"
	hotelserrors "innkeep/internal/hotels/errors"
	hotelsservice "innkeep/internal/hotels/service"
	reservationserrors "innkeep/internal/reservations/errors"
	"innkeep/internal/reservations/validator"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/events"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
	"innkeep/pkg/sanitizer"
	"innkeep/pkg/store"

	"github.com/google/uuid"
)

type ReservationService interface {
	Create(ctx context.Context, hotelID, customerID string) (*model.Reservation, error)
	Cancel(ctx context.Context, reservationID string) error
	List(ctx context.Context) []model.Reservation
}

type reservationService struct {
	hotels     hotelsservice.HotelService
	customers  customersservice.CustomerService
	collection *store.Collection[model.Reservation]
	publisher  events.Publisher
	log        *logger.Logger

	// Serializes create/cancel so the active count a decision was based on
	// cannot be overwritten between load and save within this process.
	mu sync.Mutex
}

func NewReservationCollection(backend store.Backend, v *validator.ReservationValidator, log *logger.Logger) *store.Collection[model.Reservation] {
	return store.NewCollection("reservations", backend, store.Codec[model.Reservation]{
		Decode: v.DecodeRecord,
		Encode: model.Reservation.ToRecord,
	}, log)
}

func NewReservationService(
	hotels hotelsservice.HotelService,
	customers customersservice.CustomerService,
	collection *store.Collection[model.Reservation],
	publisher events.Publisher,
	log *logger.Logger,
) ReservationService {
	return &reservationService{
		hotels:     hotels,
		customers:  customers,
		collection: collection,
		publisher:  publisher,
		log:        log,
	}
}

// Create books one room: the customer is resolved first, then the hotel,
// then the active count for the hotel is recomputed from a full load before
// the capacity gate. Nothing is persisted on any failure path. The same
// customer may hold several active reservations in one hotel; capacity is a
// pure count, not a seat assignment.
func (s *reservationService) Create(ctx context.Context, hotelID, customerID string) (*model.Reservation, error) {
	hotelID = sanitizer.NormalizeID(hotelID)
	customerID = sanitizer.NormalizeID(customerID)
	if hotelID == "" || customerID == "" {
		return nil, apperrors.InvalidInput("Hotel ID and customer ID are required")
	}

	if _, err := s.customers.Get(ctx, customerID); err != nil {
		if errors.Is(err, customerserrors.ErrNotFound) {
			return nil, apperrors.Wrap(reservationserrors.ErrCustomerNotFound, apperrors.CodeNotFound, "Customer not found", http.StatusNotFound).
				WithDetails(map[string]any{"customer_id": customerID})
		}
		return nil, err
	}

	hotel, err := s.hotels.Get(ctx, hotelID)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) {
			return nil, apperrors.Wrap(reservationserrors.ErrHotelNotFound, apperrors.CodeNotFound, "Hotel not found", http.StatusNotFound).
				WithDetails(map[string]any{"hotel_id": hotelID})
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The collection is the single source of truth: the count must come
	// from a fresh full load on every call, never a cached counter.
	reservations := s.collection.Load(ctx)
	activeCount := 0
	for _, reservation := range reservations {
		if reservation.HotelID == hotelID && reservation.IsActive() {
			activeCount++
		}
	}

	if activeCount >= hotel.TotalRooms {
		s.log.Warn("Reservation rejected, hotel at capacity",
			"hotel_id", hotelID,
			"active_count", activeCount,
			"total_rooms", hotel.TotalRooms,
		)
		return nil, apperrors.Wrap(reservationserrors.ErrNoRoomsAvailable, apperrors.CodeConflict, "No rooms available", http.StatusConflict).
			WithDetails(map[string]any{"hotel_id": hotelID})
	}

	reservation := model.Reservation{
		ID:         uuid.NewString(),
		HotelID:    hotelID,
		CustomerID: customerID,
		Status:     model.ReservationStatusActive,
	}
	reservations = append(reservations, reservation)
	s.collection.Save(ctx, reservations)

	s.log.Info("Reservation created",
		"reservation_id", reservation.ID,
		"hotel_id", hotelID,
		"customer_id", customerID,
	)
	s.publish(ctx, events.NewReservationEvent(events.TypeReservationCreated, reservation))
	return &reservation, nil
}

// Cancel transitions one reservation to CANCELLED. An unknown id and an
// already-cancelled reservation report the same failure; state is never
// corrupted by re-cancellation.
func (s *reservationService) Cancel(ctx context.Context, reservationID string) error {
	reservationID = sanitizer.NormalizeID(reservationID)
	if reservationID == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := s.collection.Load(ctx)
	updated := make([]model.Reservation, 0, len(reservations))
	var cancelled *model.Reservation

	for _, reservation := range reservations {
		if reservation.ID == reservationID && reservation.IsActive() {
			replacement := reservation.Cancelled()
			updated = append(updated, replacement)
			cancelled = &replacement
			continue
		}
		updated = append(updated, reservation)
	}

	s.collection.Save(ctx, updated)

	if cancelled == nil {
		return apperrors.Wrap(reservationserrors.ErrNotCancellable, apperrors.CodeConflict, "Reservation not found or already cancelled", http.StatusConflict).
			WithDetails(map[string]any{"reservation_id": reservationID})
	}

	s.log.Info("Reservation cancelled", "reservation_id", reservationID)
	s.publish(ctx, events.NewReservationEvent(events.TypeReservationCancelled, *cancelled))
	return nil
}

func (s *reservationService) List(ctx context.Context) []model.Reservation {
	return s.collection.Load(ctx)
}

func (s *reservationService) publish(ctx context.Context, event events.ReservationEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("Failed to publish reservation event",
			"event_type", event.Type,
			"reservation_id", event.ReservationID,
			"error", err,
		)
	}
}
