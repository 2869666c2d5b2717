package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	customersservice "innkeep/internal/customers/service"
	customersvalidator "innkeep/internal/customers/validator"
	hotelsservice "innkeep/internal/hotels/service"
	hotelsvalidator "innkeep/internal/hotels/validator"
	reservationserrors "innkeep/internal/reservations/errors"
	"innkeep/internal/reservations/validator"
	"innkeep/pkg/events"
	"innkeep/pkg/logger"
	"innkeep/pkg/model"
	"innkeep/pkg/store/jsonfile"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []events.ReservationEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.ReservationEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type fixture struct {
	hotels       hotelsservice.HotelService
	customers    customersservice.CustomerService
	reservations ReservationService
	publisher    *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	log := logger.Discard()

	hv := hotelsvalidator.NewHotelValidator()
	hotelCollection := hotelsservice.NewHotelCollection(jsonfile.New(filepath.Join(dir, "hotels.json"), log), hv, log)
	hotels := hotelsservice.NewHotelService(hotelCollection, hv, log)

	cv := customersvalidator.NewCustomerValidator()
	customerCollection := customersservice.NewCustomerCollection(jsonfile.New(filepath.Join(dir, "customers.json"), log), cv, log)
	customers := customersservice.NewCustomerService(customerCollection, cv, log)

	rv := validator.NewReservationValidator()
	reservationCollection := NewReservationCollection(jsonfile.New(filepath.Join(dir, "reservations.json"), log), rv, log)
	publisher := &recordingPublisher{}
	reservations := NewReservationService(hotels, customers, reservationCollection, publisher, log)

	return &fixture{
		hotels:       hotels,
		customers:    customers,
		reservations: reservations,
		publisher:    publisher,
	}
}

func (f *fixture) seed(t *testing.T, ctx context.Context, totalRooms int) (hotelID, customerID string) {
	t.Helper()
	hotel, err := f.hotels.Create(ctx, "Plaza", "MTY", totalRooms)
	if err != nil {
		t.Fatal(err)
	}
	customer, err := f.customers.Create(ctx, "Ricardo", "r@x.com")
	if err != nil {
		t.Fatal(err)
	}
	return hotel.ID, customer.ID
}

func TestCreate_CapacityGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hotelID, customerID := f.seed(t, ctx, 1)

	first, err := f.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		t.Fatalf("first reservation failed: %v", err)
	}
	if !first.IsActive() {
		t.Errorf("new reservation must be ACTIVE, got %q", first.Status)
	}

	other, err := f.customers.Create(ctx, "Ana", "a@x.com")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.reservations.Create(ctx, hotelID, other.ID)
	if !errors.Is(err, reservationserrors.ErrNoRoomsAvailable) {
		t.Fatalf("expected ErrNoRoomsAvailable, got %v", err)
	}
	if got := len(f.reservations.List(ctx)); got != 1 {
		t.Errorf("rejected reservation must not persist, have %d records", got)
	}
}

func TestCreate_CancelFreesCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hotelID, customerID := f.seed(t, ctx, 1)

	first, err := f.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.reservations.Cancel(ctx, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	second, err := f.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		t.Fatalf("cancelled room must be bookable again: %v", err)
	}
	if second.ID == first.ID {
		t.Error("expected a fresh reservation id")
	}

	// The cancelled record stays in the collection as history.
	all := f.reservations.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected cancelled record kept alongside new one, got %d", len(all))
	}
	byID := map[string]model.Reservation{}
	for _, r := range all {
		byID[r.ID] = r
	}
	if byID[first.ID].Status != model.ReservationStatusCancelled {
		t.Errorf("first reservation must persist as CANCELLED, got %q", byID[first.ID].Status)
	}
	if !byID[second.ID].IsActive() {
		t.Errorf("second reservation must be ACTIVE, got %q", byID[second.ID].Status)
	}
}

func TestCreate_SameCustomerMayHoldSeveralRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hotelID, customerID := f.seed(t, ctx, 2)

	if _, err := f.reservations.Create(ctx, hotelID, customerID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.reservations.Create(ctx, hotelID, customerID); err != nil {
		t.Fatalf("second booking for the same customer must succeed: %v", err)
	}
	if _, err := f.reservations.Create(ctx, hotelID, customerID); !errors.Is(err, reservationserrors.ErrNoRoomsAvailable) {
		t.Errorf("third booking must hit the capacity gate, got %v", err)
	}
}

func TestCreate_UnknownCustomerCheckedFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Both references are unknown; the customer failure must win.
	_, err := f.reservations.Create(ctx, "no-such-hotel", "no-such-customer")
	if !errors.Is(err, reservationserrors.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if got := len(f.reservations.List(ctx)); got != 0 {
		t.Errorf("failed create must not persist anything, have %d records", got)
	}
}

func TestCreate_UnknownHotel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer, err := f.customers.Create(ctx, "Ricardo", "r@x.com")
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.reservations.Create(ctx, "no-such-hotel", customer.ID)
	if !errors.Is(err, reservationserrors.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestCreate_EmptyReferences(t *testing.T) {
	f := newFixture(t)

	if _, err := f.reservations.Create(context.Background(), "  ", "c1"); err == nil {
		t.Error("expected failure for blank hotel id")
	}
	if _, err := f.reservations.Create(context.Background(), "h1", ""); err == nil {
		t.Error("expected failure for empty customer id")
	}
}

func TestCancel_UnknownAndRepeated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hotelID, customerID := f.seed(t, ctx, 1)

	if err := f.reservations.Cancel(ctx, "no-such-reservation"); !errors.Is(err, reservationserrors.ErrNotCancellable) {
		t.Errorf("expected ErrNotCancellable for unknown id, got %v", err)
	}

	reservation, err := f.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.reservations.Cancel(ctx, reservation.ID); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}
	if err := f.reservations.Cancel(ctx, reservation.ID); !errors.Is(err, reservationserrors.ErrNotCancellable) {
		t.Errorf("expected ErrNotCancellable on repeat, got %v", err)
	}

	all := f.reservations.List(ctx)
	if len(all) != 1 || all[0].Status != model.ReservationStatusCancelled {
		t.Errorf("repeated cancel must not corrupt state: %+v", all)
	}
}

func TestEventsPublished(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	hotelID, customerID := f.seed(t, ctx, 1)

	reservation, err := f.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.reservations.Cancel(ctx, reservation.ID); err != nil {
		t.Fatal(err)
	}

	if len(f.publisher.events) != 2 {
		t.Fatalf("expected created and cancelled events, got %d", len(f.publisher.events))
	}
	if f.publisher.events[0].Type != events.TypeReservationCreated {
		t.Errorf("unexpected first event: %+v", f.publisher.events[0])
	}
	if f.publisher.events[1].Type != events.TypeReservationCancelled {
		t.Errorf("unexpected second event: %+v", f.publisher.events[1])
	}
	if f.publisher.events[1].Status != model.ReservationStatusCancelled {
		t.Errorf("cancelled event must carry CANCELLED status, got %q", f.publisher.events[1].Status)
	}
}
