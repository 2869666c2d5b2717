package validator

import (
	"testing"

	"innkeep/pkg/model"
	"innkeep/pkg/store"
)

func TestDecodeRecord_Valid(t *testing.T) {
	v := NewHotelValidator()

	hotel, err := v.DecodeRecord(store.Record{
		"hotel_id":    "h1",
		"name":        "  Plaza  ",
		"location":    "MTY",
		"total_rooms": 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hotel.Name != "Plaza" {
		t.Errorf("expected trimmed name, got %q", hotel.Name)
	}
	if hotel.TotalRooms != 3 {
		t.Errorf("expected 3 rooms, got %d", hotel.TotalRooms)
	}
}

func TestDecodeRecord_Invalid(t *testing.T) {
	v := NewHotelValidator()

	tests := []struct {
		name   string
		record store.Record
	}{
		{"missing total_rooms", store.Record{"hotel_id": "h1", "name": "Plaza", "location": "MTY"}},
		{"zero total_rooms", store.Record{"hotel_id": "h1", "name": "Plaza", "location": "MTY", "total_rooms": 0}},
		{"fractional total_rooms", store.Record{"hotel_id": "h1", "name": "Plaza", "location": "MTY", "total_rooms": 2.5}},
		{"total_rooms as string", store.Record{"hotel_id": "h1", "name": "Plaza", "location": "MTY", "total_rooms": "3"}},
		{"blank name", store.Record{"hotel_id": "h1", "name": "   ", "location": "MTY", "total_rooms": 1}},
		{"missing id", store.Record{"name": "Plaza", "location": "MTY", "total_rooms": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.DecodeRecord(tt.record); err == nil {
				t.Errorf("expected error for record %v", tt.record)
			}
		})
	}
}

func TestValidate_TrimmedEmptyFails(t *testing.T) {
	v := NewHotelValidator()

	hotel := model.Hotel{ID: "h1", Name: "  ", Location: "MTY", TotalRooms: 1}
	v.Sanitize(&hotel)
	if err := v.Validate(&hotel); err == nil {
		t.Error("expected validation failure for whitespace-only name")
	}
}
