// Command innkeep is the interactive console front end: it collects raw
// input, delegates to the services and prints results, looping until an
// explicit quit. Domain failures are printed and never terminate the loop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	customersservice "innkeep/internal/customers/service"
	customersvalidator "innkeep/internal/customers/validator"
	hotelsservice "innkeep/internal/hotels/service"
	hotelsvalidator "innkeep/internal/hotels/validator"
	reservationsservice "innkeep/internal/reservations/service"
	reservationsvalidator "innkeep/internal/reservations/validator"
	apperrors "innkeep/pkg/errors"
	"innkeep/pkg/events"
	"innkeep/pkg/logger"
	"innkeep/pkg/store/jsonfile"
)

const menu = `Reservation System
1) Create hotel
2) Create customer
3) Create reservation
4) Cancel reservation
5) List hotels/customers/reservations
0) Exit`

type console struct {
	hotels       hotelsservice.HotelService
	customers    customersservice.CustomerService
	reservations reservationsservice.ReservationService
	in           *bufio.Scanner
}

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	// Diagnostics go to stderr so warnings about corrupt records stay
	// visible without interleaving with menu output.
	log := logger.New(logger.Config{
		Level:   logger.WARN,
		Format:  logger.TEXT,
		Output:  os.Stderr,
		Service: "innkeep",
	})

	c := &console{in: bufio.NewScanner(os.Stdin)}
	c.hotels, c.customers, c.reservations = initServices(dataDir, log)
	c.run()
}

func initServices(dataDir string, log *logger.Logger) (hotelsservice.HotelService, customersservice.CustomerService, reservationsservice.ReservationService) {
	hotelValidator := hotelsvalidator.NewHotelValidator()
	customerValidator := customersvalidator.NewCustomerValidator()
	reservationValidator := reservationsvalidator.NewReservationValidator()

	hotelService := hotelsservice.NewHotelService(
		hotelsservice.NewHotelCollection(jsonfile.New(filepath.Join(dataDir, "hotels.json"), log), hotelValidator, log),
		hotelValidator,
		log,
	)
	customerService := customersservice.NewCustomerService(
		customersservice.NewCustomerCollection(jsonfile.New(filepath.Join(dataDir, "customers.json"), log), customerValidator, log),
		customerValidator,
		log,
	)
	reservationService := reservationsservice.NewReservationService(
		hotelService,
		customerService,
		reservationsservice.NewReservationCollection(jsonfile.New(filepath.Join(dataDir, "reservations.json"), log), reservationValidator, log),
		events.NoopPublisher{},
		log,
	)
	return hotelService, customerService, reservationService
}

func (c *console) run() {
	ctx := context.Background()
	fmt.Println(menu)

	for {
		option := c.prompt("Select option: ")

		switch option {
		case "0":
			return
		case "1":
			c.createHotel(ctx)
		case "2":
			c.createCustomer(ctx)
		case "3":
			c.createReservation(ctx)
		case "4":
			c.cancelReservation(ctx)
		case "5":
			c.listAll(ctx)
		default:
			fmt.Println("[ERROR] Invalid option")
		}
	}
}

func (c *console) prompt(label string) string {
	fmt.Print(label)
	if !c.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) createHotel(ctx context.Context) {
	name := c.prompt("Hotel name: ")
	location := c.prompt("Location: ")
	totalRooms, err := strconv.Atoi(c.prompt("Total rooms: "))
	if err != nil {
		fmt.Println("[ERROR] Total rooms must be a number")
		return
	}

	hotel, err := c.hotels.Create(ctx, name, location, totalRooms)
	if err != nil {
		printFailure(err)
		return
	}
	fmt.Printf("Created hotel: %s\n", hotel.ID)
}

func (c *console) createCustomer(ctx context.Context) {
	name := c.prompt("Customer name: ")
	email := c.prompt("Email: ")

	customer, err := c.customers.Create(ctx, name, email)
	if err != nil {
		printFailure(err)
		return
	}
	fmt.Printf("Created customer: %s\n", customer.ID)
}

func (c *console) createReservation(ctx context.Context) {
	hotelID := c.prompt("Hotel id: ")
	customerID := c.prompt("Customer id: ")

	reservation, err := c.reservations.Create(ctx, hotelID, customerID)
	if err != nil {
		printFailure(err)
		return
	}
	fmt.Printf("Created reservation: %s\n", reservation.ID)
}

func (c *console) cancelReservation(ctx context.Context) {
	reservationID := c.prompt("Reservation id: ")

	if err := c.reservations.Cancel(ctx, reservationID); err != nil {
		printFailure(err)
		return
	}
	fmt.Println("Cancelled")
}

func (c *console) listAll(ctx context.Context) {
	fmt.Println("Hotels:")
	for _, hotel := range c.hotels.List(ctx) {
		fmt.Printf("  %s  %s (%s), rooms: %d\n", hotel.ID, hotel.Name, hotel.Location, hotel.TotalRooms)
	}
	fmt.Println("Customers:")
	for _, customer := range c.customers.List(ctx) {
		fmt.Printf("  %s  %s <%s>\n", customer.ID, customer.Name, customer.Email)
	}
	fmt.Println("Reservations:")
	for _, reservation := range c.reservations.List(ctx) {
		fmt.Printf("  %s  hotel=%s customer=%s status=%s\n", reservation.ID, reservation.HotelID, reservation.CustomerID, reservation.Status)
	}
}

func printFailure(err error) {
	fmt.Printf("[ERROR] %s\n", apperrors.AsAppError(err).Message)
}
