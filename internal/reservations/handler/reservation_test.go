package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	reservationserrors "innkeep/internal/reservations/errors"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

// Mock service for testing
type mockReservationService struct {
	createFunc func(ctx context.Context, hotelID, customerID string) (*model.Reservation, error)
	cancelFunc func(ctx context.Context, reservationID string) error
	listFunc   func(ctx context.Context) []model.Reservation
}

func (m *mockReservationService) Create(ctx context.Context, hotelID, customerID string) (*model.Reservation, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, hotelID, customerID)
	}
	return nil, nil
}

func (m *mockReservationService) Cancel(ctx context.Context, reservationID string) error {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, reservationID)
	}
	return nil
}

func (m *mockReservationService) List(ctx context.Context) []model.Reservation {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil
}

func TestCreate_Success(t *testing.T) {
	var receivedHotel, receivedCustomer string
	mockService := &mockReservationService{
		createFunc: func(ctx context.Context, hotelID, customerID string) (*model.Reservation, error) {
			receivedHotel = hotelID
			receivedCustomer = customerID
			return &model.Reservation{
				ID:         "r1",
				HotelID:    hotelID,
				CustomerID: customerID,
				Status:     model.ReservationStatusActive,
			}, nil
		},
	}
	handler := NewReservationHandler(mockService, logger.Discard())

	body := `{"hotel_id": "h1", "customer_id": "c1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if receivedHotel != "h1" || receivedCustomer != "c1" {
		t.Errorf("service received %q/%q", receivedHotel, receivedCustomer)
	}

	var response struct {
		Data model.Reservation `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.ID != "r1" || response.Data.Status != model.ReservationStatusActive {
		t.Errorf("unexpected body: %+v", response.Data)
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	handler := NewReservationHandler(&mockReservationService{}, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreate_NoRoomsAvailable(t *testing.T) {
	mockService := &mockReservationService{
		createFunc: func(ctx context.Context, hotelID, customerID string) (*model.Reservation, error) {
			return nil, apperrors.Wrap(reservationserrors.ErrNoRoomsAvailable, apperrors.CodeConflict, "No rooms available", http.StatusConflict)
		},
	}
	handler := NewReservationHandler(mockService, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(`{"hotel_id": "h1", "customer_id": "c1"}`))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}

	var response struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Error != "No rooms available" {
		t.Errorf("unexpected error message: %q", response.Error)
	}
}

func TestCancel(t *testing.T) {
	var receivedID string
	mockService := &mockReservationService{
		cancelFunc: func(ctx context.Context, reservationID string) error {
			receivedID = reservationID
			return nil
		},
	}
	handler := NewReservationHandler(mockService, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/id/r1/cancel", nil)
	w := httptest.NewRecorder()

	handler.Cancel(w, req, httprouter.Params{{Key: "id", Value: "r1"}})

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
	if receivedID != "r1" {
		t.Errorf("service received id %q", receivedID)
	}
}

func TestCancel_NotCancellable(t *testing.T) {
	mockService := &mockReservationService{
		cancelFunc: func(ctx context.Context, reservationID string) error {
			return apperrors.Wrap(reservationserrors.ErrNotCancellable, apperrors.CodeConflict, "Reservation not found or already cancelled", http.StatusConflict)
		},
	}
	handler := NewReservationHandler(mockService, logger.Discard())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/id/r9/cancel", nil)
	w := httptest.NewRecorder()

	handler.Cancel(w, req, httprouter.Params{{Key: "id", Value: "r9"}})

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
}

func TestList(t *testing.T) {
	mockService := &mockReservationService{
		listFunc: func(ctx context.Context) []model.Reservation {
			return []model.Reservation{
				{ID: "r1", HotelID: "h1", CustomerID: "c1", Status: model.ReservationStatusActive},
				{ID: "r2", HotelID: "h1", CustomerID: "c2", Status: model.ReservationStatusCancelled},
			}
		},
	}
	handler := NewReservationHandler(mockService, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	w := httptest.NewRecorder()

	handler.List(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Data []model.Reservation `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 2 {
		t.Errorf("expected 2 reservations, got %d", len(response.Data))
	}
}
