package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"innkeep/pkg/model"
	"innkeep/pkg/sanitizer"
	"innkeep/pkg/store"
	"innkeep/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type ReservationValidator struct {
	validate *validator.Validate
}

func NewReservationValidator() *ReservationValidator {
	return &ReservationValidator{
		validate: validator.New(),
	}
}

func (v *ReservationValidator) Sanitize(reservation *model.Reservation) {
	reservation.ID = sanitizer.NormalizeID(reservation.ID)
	reservation.HotelID = sanitizer.NormalizeID(reservation.HotelID)
	reservation.CustomerID = sanitizer.NormalizeID(reservation.CustomerID)
	reservation.Status = sanitizer.NormalizeID(reservation.Status)
}

func (v *ReservationValidator) Validate(reservation *model.Reservation) error {
	if err := v.validate.Struct(reservation); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}

// DecodeRecord turns a raw field bag into a validated reservation. Status
// defaults to ACTIVE when absent; any other value outside the closed
// ACTIVE/CANCELLED set rejects the record. The status match is
// case-sensitive.
func (v *ReservationValidator) DecodeRecord(record store.Record) (model.Reservation, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("unreadable reservation record: %w", err)
	}

	var reservation model.Reservation
	if err := json.Unmarshal(data, &reservation); err != nil {
		return model.Reservation{}, fmt.Errorf("malformed reservation record: %w", err)
	}

	v.Sanitize(&reservation)
	if reservation.Status == "" {
		reservation.Status = model.ReservationStatusActive
	}
	if err := v.Validate(&reservation); err != nil {
		return model.Reservation{}, fmt.Errorf("invalid reservation record: %w", err)
	}
	return reservation, nil
}
