package errors

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrNoRoomsAvailable = errors.New("no rooms available")
	// ErrNotCancellable covers both a reservation id that never existed and a
	// reservation that is already cancelled; the two causes are deliberately
	// not distinguishable to the caller.
	ErrNotCancellable = errors.New("reservation not found or already cancelled")
)
