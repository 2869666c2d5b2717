package service

import (
	"context"
	"net/http"
	"sync"

	customerserrors "innkeep/internal/customers/errors"
	"innkeep/internal/customers/validator"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
	"innkeep/pkg/sanitizer"
	"innkeep/pkg/store"

	"github.com/google/uuid"
)

type CustomerService interface {
	Create(ctx context.Context, name, email string) (*model.Customer, error)
	Get(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context) []model.Customer
	Update(ctx context.Context, id string, updates *model.CustomerUpdate) error
	Delete(ctx context.Context, id string) error
}

type customerService struct {
	collection *store.Collection[model.Customer]
	validator  *validator.CustomerValidator
	log        *logger.Logger

	mu sync.Mutex
}

func NewCustomerCollection(backend store.Backend, v *validator.CustomerValidator, log *logger.Logger) *store.Collection[model.Customer] {
	return store.NewCollection("customers", backend, store.Codec[model.Customer]{
		Decode: v.DecodeRecord,
		Encode: model.Customer.ToRecord,
	}, log)
}

func NewCustomerService(collection *store.Collection[model.Customer], v *validator.CustomerValidator, log *logger.Logger) CustomerService {
	return &customerService{
		collection: collection,
		validator:  v,
		log:        log,
	}
}

func (s *customerService) Create(ctx context.Context, name, email string) (*model.Customer, error) {
	customer := model.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	s.validator.Sanitize(&customer)
	if err := s.validator.Validate(&customer); err != nil {
		s.log.Warn("Customer validation failed", "error", err)
		return nil, apperrors.Validation("Customer validation failed", map[string]any{"error": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers := s.collection.Load(ctx)
	customers = append(customers, customer)
	s.collection.Save(ctx, customers)

	s.log.Info("Customer created",
		"customer_id", customer.ID,
		"name", customer.Name,
	)
	return &customer, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return nil, apperrors.InvalidInput("Customer ID cannot be empty")
	}

	for _, customer := range s.collection.Load(ctx) {
		if customer.ID == id {
			return &customer, nil
		}
	}
	return nil, apperrors.Wrap(customerserrors.ErrNotFound, apperrors.CodeNotFound, "Customer not found", http.StatusNotFound).
		WithDetails(map[string]any{"id": id})
}

func (s *customerService) List(ctx context.Context) []model.Customer {
	return s.collection.Load(ctx)
}

func (s *customerService) Update(ctx context.Context, id string, updates *model.CustomerUpdate) error {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return apperrors.InvalidInput("Customer ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers := s.collection.Load(ctx)
	updated := make([]model.Customer, 0, len(customers))
	var result error = apperrors.Wrap(customerserrors.ErrNotFound, apperrors.CodeNotFound, "Customer not found", http.StatusNotFound).
		WithDetails(map[string]any{"id": id})

	for _, customer := range customers {
		if customer.ID != id {
			updated = append(updated, customer)
			continue
		}

		merged := s.merge(customer, updates)
		s.validator.Sanitize(&merged)
		if err := s.validator.Validate(&merged); err != nil {
			s.log.Warn("Customer update validation failed, keeping stored entity",
				"customer_id", id,
				"error", err,
			)
			updated = append(updated, customer)
			result = apperrors.Validation("Invalid customer update", map[string]any{"error": err.Error()})
			continue
		}

		updated = append(updated, merged)
		result = nil
	}

	s.collection.Save(ctx, updated)

	if result == nil {
		s.log.Info("Customer updated", "customer_id", id)
	}
	return result
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	id = sanitizer.NormalizeID(id)
	if id == "" {
		return apperrors.InvalidInput("Customer ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers := s.collection.Load(ctx)
	remaining := make([]model.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.ID != id {
			remaining = append(remaining, customer)
		}
	}
	s.collection.Save(ctx, remaining)

	if len(remaining) == len(customers) {
		return apperrors.Wrap(customerserrors.ErrNotFound, apperrors.CodeNotFound, "Customer not found", http.StatusNotFound).
			WithDetails(map[string]any{"id": id})
	}

	s.log.Info("Customer deleted", "customer_id", id)
	return nil
}

func (s *customerService) merge(existing model.Customer, updates *model.CustomerUpdate) model.Customer {
	merged := existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Email != "" {
		merged.Email = updates.Email
	}

	return merged
}
