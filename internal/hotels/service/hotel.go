package service

import (
	"context"
	"net/http"
	"sync"

	hotelserrors "innkeep/internal/hotels/errors"
	"innkeep/internal/hotels/validator"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
	"innkeep/pkg/sanitizer"
	"innkeep/pkg/store"

	"github.com/google/uuid"
)

type HotelService interface {
	Create(ctx context.Context, name, location string, totalRooms int) (*model.Hotel, error)
	Get(ctx context.Context, id string) (*model.Hotel, error)
	List(ctx context.Context) []model.Hotel
	Update(ctx context.Context, id string, updates *model.HotelUpdate) error
	Delete(ctx context.Context, id string) error
}

type hotelService struct {
	collection *store.Collection[model.Hotel]
	validator  *validator.HotelValidator
	log        *logger.Logger

	// Serializes the load-decide-save cycle of mutating operations within
	// this process. Reads stay lock-free.
	mu sync.Mutex
}

// NewHotelCollection binds the hotel codec to a store backend.
func NewHotelCollection(backend store.Backend, v *validator.HotelValidator, log *logger.Logger) *store.Collection[model.Hotel] {
	return store.NewCollection("hotels", backend, store.Codec[model.Hotel]{
		Decode: v.DecodeRecord,
		Encode: model.Hotel.ToRecord,
	}, log)
}

func NewHotelService(collection *store.Collection[model.Hotel], v *validator.HotelValidator, log *logger.Logger) HotelService {
	return &hotelService{
		collection: collection,
		validator:  v,
		log:        log,
	}
}

func (s *hotelService) Create(ctx context.Context, name, location string, totalRooms int) (*model.Hotel, error) {
	hotel := model.Hotel{
		ID:         uuid.NewString(),
		Name:       name,
		Location:   location,
		TotalRooms: totalRooms,
	}
	s.validator.Sanitize(&hotel)
	if err := s.validator.Validate(&hotel); err != nil {
		s.log.Warn("Hotel validation failed", "error", err)
		return nil, apperrors.Validation("Hotel validation failed", map[string]any{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hotels := s.collection.Load(ctx)
	hotels = append(hotels, hotel)
	s.collection.Save(ctx, hotels)

	s.log.Info("Hotel created",
		"hotel_id", hotel.ID,
		"name", hotel.Name,
		"total_rooms", hotel.TotalRooms,
	)
	return &hotel, nil
}

func (s *hotelService) Get(ctx context.Context, id string) (*model.Hotel, error) {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	for _, hotel := range s.collection.Load(ctx) {
		if hotel.ID == id {
			return &hotel, nil
		}
	}
	return nil, apperrors.Wrap(hotelserrors.ErrNotFound, apperrors.CodeNotFound, "Hotel not found", http.StatusNotFound).
		WithDetails(map[string]any{"id": id})
}

func (s *hotelService) List(ctx context.Context) []model.Hotel {
	return s.collection.Load(ctx)
}

// Update applies a partial update. Fields left unset keep their prior
// values. When the merged result fails validation the stored entity is
// carried over unchanged and the caller gets a validation failure.
func (s *hotelService) Update(ctx context.Context, id string, updates *model.HotelUpdate) error {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hotels := s.collection.Load(ctx)
	updated := make([]model.Hotel, 0, len(hotels))
	var result error = apperrors.Wrap(hotelserrors.ErrNotFound, apperrors.CodeNotFound, "Hotel not found", http.StatusNotFound).
		WithDetails(map[string]any{"id": id})

	for _, hotel := range hotels {
		if hotel.ID != id {
			updated = append(updated, hotel)
			continue
		}

		merged := s.merge(hotel, updates)
		s.validator.Sanitize(&merged)
		if err := s.validator.Validate(&merged); err != nil {
			s.log.Warn("Hotel update validation failed, keeping stored entity",
				"hotel_id", id,
				"error", err,
			)
			updated = append(updated, hotel)
			result = apperrors.Validation("Invalid hotel update", map[string]any{"error": err.Error()})
			continue
		}

		updated = append(updated, merged)
		result = nil
	}

	s.collection.Save(ctx, updated)

	if result == nil {
		s.log.Info("Hotel updated", "hotel_id", id)
	}
	return result
}

func (s *hotelService) Delete(ctx context.Context, id string) error {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hotels := s.collection.Load(ctx)
	remaining := make([]model.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if hotel.ID != id {
			remaining = append(remaining, hotel)
		}
	}
	s.collection.Save(ctx, remaining)

	if len(remaining) == len(hotels) {
		return apperrors.Wrap(hotelserrors.ErrNotFound, apperrors.CodeNotFound, "Hotel not found", http.StatusNotFound).
			WithDetails(map[string]any{"id": id})
	}

	// Reservations referencing this hotel are left in place; orphans are
	// tolerated.
	s.log.Info("Hotel deleted", "hotel_id", id)
	return nil
}

func (s *hotelService) merge(existing model.Hotel, updates *model.HotelUpdate) model.Hotel {
	merged := existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Location != "" {
		merged.Location = updates.Location
	}
	if updates.TotalRooms != nil {
		merged.TotalRooms = *updates.TotalRooms
	}

	return merged
}
