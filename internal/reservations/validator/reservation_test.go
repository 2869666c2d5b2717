package validator

import (
	"testing"

	"innkeep/pkg/model"
	"innkeep/pkg/store"
)

func TestDecodeRecord_StatusDefaultsToActive(t *testing.T) {
	v := NewReservationValidator()

	reservation, err := v.DecodeRecord(store.Record{
		"reservation_id": "r1",
		"hotel_id":       "h1",
		"customer_id":    "c1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.Status != model.ReservationStatusActive {
		t.Errorf("expected default status ACTIVE, got %q", reservation.Status)
	}
}

func TestDecodeRecord_StatusSet(t *testing.T) {
	tests := []struct {
		name    string
		status  any
		wantErr bool
	}{
		{"active", "ACTIVE", false},
		{"cancelled", "CANCELLED", false},
		{"lowercase is rejected", "active", true},
		{"unknown value", "PENDING", true},
		{"wrong type", 7, true},
	}

	v := NewReservationValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := store.Record{
				"reservation_id": "r1",
				"hotel_id":       "h1",
				"customer_id":    "c1",
				"status":         tt.status,
			}
			_, err := v.DecodeRecord(record)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for status %v", tt.status)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for status %v: %v", tt.status, err)
			}
		})
	}
}

func TestDecodeRecord_MissingReferences(t *testing.T) {
	v := NewReservationValidator()

	if _, err := v.DecodeRecord(store.Record{"reservation_id": "r1", "hotel_id": "h1"}); err == nil {
		t.Error("expected error for missing customer_id")
	}
	if _, err := v.DecodeRecord(store.Record{"reservation_id": "r1", "customer_id": "c1"}); err == nil {
		t.Error("expected error for missing hotel_id")
	}
}
