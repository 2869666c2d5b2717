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

type CustomerValidator struct {
	validate *validator.Validate
}

func NewCustomerValidator() *CustomerValidator {
	return &CustomerValidator{
		validate: validator.New(),
	}
}

func (v *CustomerValidator) Sanitize(customer *model.Customer) {
	customer.ID = sanitizer.NormalizeID(customer.ID)
	customer.Name = sanitizer.NormalizeName(customer.Name)
	customer.Email = sanitizer.NormalizeEmail(customer.Email)
}

func (v *CustomerValidator) Validate(customer *model.Customer) error {
	if err := v.validate.Struct(customer); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return validation.Translate(validationErrs)
		}
		return err
	}
	return nil
}

func (v *CustomerValidator) DecodeRecord(record store.Record) (model.Customer, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return model.Customer{}, fmt.Errorf("unreadable customer record: %w", err)
	}

	var customer model.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return model.Customer{}, fmt.Errorf("malformed customer record: %w", err)
	}

	v.Sanitize(&customer)
	if err := v.Validate(&customer); err != nil {
		return model.Customer{}, fmt.Errorf("invalid customer record: %w", err)
	}
	return customer, nil
}
