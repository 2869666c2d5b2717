package model

const (
	// ReservationStatusActive counts against the hotel's room capacity.
	ReservationStatusActive = "ACTIVE"
	// ReservationStatusCancelled is terminal; cancelled reservations stay in
	// the collection so "never existed" and "was cancelled" remain
	// distinguishable.
	ReservationStatusCancelled = "CANCELLED"
)

// Reservation links a customer to a hotel room. Neither foreign reference is
// enforced by storage; the reservation service checks both at operation time.
type Reservation struct {
	ID         string `json:"reservation_id" validate:"required"`
	HotelID    string `json:"hotel_id" validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=ACTIVE CANCELLED"`
}

func (r Reservation) IsActive() bool {
	return r.Status == ReservationStatusActive
}

// Cancelled returns a copy with status CANCELLED. Reservations are immutable
// apart from this one transition, which always produces a new value.
func (r Reservation) Cancelled() Reservation {
	r.Status = ReservationStatusCancelled
	return r
}

func (r Reservation) ToRecord() map[string]any {
	return map[string]any{
		"reservation_id": r.ID,
		"hotel_id":       r.HotelID,
		"customer_id":    r.CustomerID,
		"status":         r.Status,
	}
}
