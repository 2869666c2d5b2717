package main

import (
	"path/filepath"

	customershandler "innkeep/internal/customers/handler"
	customersservice "innkeep/internal/customers/service"
	customersvalidator "innkeep/internal/customers/validator"
	hotelshandler "innkeep/internal/hotels/handler"
	hotelsservice "innkeep/internal/hotels/service"
	hotelsvalidator "innkeep/internal/hotels/validator"
	reservationshandler "innkeep/internal/reservations/handler"
	reservationsservice "innkeep/internal/reservations/service"
	reservationsvalidator "innkeep/internal/reservations/validator"
	"innkeep/pkg/app"
	"innkeep/pkg/client"
	"innkeep/pkg/config"
	"innkeep/pkg/events"
	"innkeep/pkg/store"
	"innkeep/pkg/store/jsonfile"
	"innkeep/pkg/store/mongostore"

	"go.mongodb.org/mongo-driver/mongo"
)

const ServiceName = "innkeep"

func main() {
	cfg := config.Load(ServiceName)

	hotelService, customerService, reservationService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		hotelshandler.NewHotelHandler(hotelService, cfg.Log),
		customershandler.NewCustomerHandler(customerService, cfg.Log),
		reservationshandler.NewReservationHandler(reservationService, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (hotelsservice.HotelService, customersservice.CustomerService, reservationsservice.ReservationService) {
	newBackend := backendFactory(cfg)

	hotelValidator := hotelsvalidator.NewHotelValidator()
	customerValidator := customersvalidator.NewCustomerValidator()
	reservationValidator := reservationsvalidator.NewReservationValidator()

	hotelService := hotelsservice.NewHotelService(
		hotelsservice.NewHotelCollection(newBackend("hotels"), hotelValidator, cfg.Log),
		hotelValidator,
		cfg.Log,
	)
	customerService := customersservice.NewCustomerService(
		customersservice.NewCustomerCollection(newBackend("customers"), customerValidator, cfg.Log),
		customerValidator,
		cfg.Log,
	)
	reservationService := reservationsservice.NewReservationService(
		hotelService,
		customerService,
		reservationsservice.NewReservationCollection(newBackend("reservations"), reservationValidator, cfg.Log),
		newPublisher(cfg),
		cfg.Log,
	)

	cfg.Log.Info("Services initialized", "store_backend", cfg.StoreBackend)
	return hotelService, customerService, reservationService
}

func backendFactory(cfg *config.Config) func(name string) store.Backend {
	if cfg.StoreBackend == config.BackendMongo {
		mongoClient := client.NewMongoClient(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
		var db *mongo.Database = mongoClient.Client.Database(cfg.MongoDatabaseName)
		return func(name string) store.Backend {
			return mongostore.New(db, name)
		}
	}

	return func(name string) store.Backend {
		return jsonfile.New(filepath.Join(cfg.DataDir, name+".json"), cfg.Log)
	}
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to configure Kafka publisher", "error", err)
	}
	cfg.Log.Info("Kafka event publishing enabled", "topic", cfg.KafkaTopic)
	return publisher
}
