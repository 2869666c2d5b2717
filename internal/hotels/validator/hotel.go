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

type HotelValidator struct {
	validate *validator.Validate
}

func NewHotelValidator() *HotelValidator {
	return &HotelValidator{
		validate: validator.New(),
	}
}

func (v *HotelValidator) Sanitize(hotel *model.Hotel) {
	hotel.ID = sanitizer.NormalizeID(hotel.ID)
	hotel.Name = sanitizer.NormalizeName(hotel.Name)
	hotel.Location = sanitizer.NormalizeLocation(hotel.Location)
}

func (v *HotelValidator) Validate(hotel *model.Hotel) error {
	if err := v.validate.Struct(hotel); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}

// DecodeRecord turns a raw field bag into a validated hotel. A record with a
// missing, mistyped or out-of-range field is rejected as a whole.
func (v *HotelValidator) DecodeRecord(record store.Record) (model.Hotel, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return model.Hotel{}, fmt.Errorf("unreadable hotel record: %w", err)
	}

	var hotel model.Hotel
	if err := json.Unmarshal(data, &hotel); err != nil {
		return model.Hotel{}, fmt.Errorf("malformed hotel record: %w", err)
	}

	v.Sanitize(&hotel)
	if err := v.Validate(&hotel); err != nil {
		return model.Hotel{}, fmt.Errorf("invalid hotel record: %w", err)
	}
	return hotel, nil
}
