package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"menu-order/config"
	httpapi "menu-order/order-svc/internal/api/http"
	"menu-order/order-svc/internal/catalog"
	"menu-order/order-svc/internal/geocode"
	"menu-order/order-svc/internal/message"
	"menu-order/order-svc/internal/service"
	"menu-order/order-svc/internal/storage"
	"menu-order/pkg/logger"

	"github.com/shopspring/decimal"
)

type sessionStore interface {
	service.CartStore
	service.LanguageStore
}

// newApp wires the order service on top of already opened stores.
func newApp(settings config.Settings, sessions sessionStore, source catalog.Source,
	publisher service.CheckoutPublisher, geocoder geocode.HTTPClient, log *logger.Logger) http.Handler {
	fee := decimal.NewFromFloat(settings.DeliveryFee)
	phrases := message.DefaultPhrases()

	formatter := message.NewFormatter(message.Config{
		Phrases:     phrases,
		DeliveryFee: fee,
		BaseURL:     settings.MessagingBaseURL,
		Recipient:   settings.Recipient,
		Location:    settings.Location(),
	})

	menu := catalog.NewService(source)
	carts := service.NewCartService(sessions, sessions, menu, fee)
	checkout := service.NewCheckoutService(service.CheckoutConfig{
		Carts:           sessions,
		Languages:       sessions,
		Formatter:       formatter,
		QR:              service.DefaultQRGenerator{},
		Publisher:       publisher,
		Logger:          log,
		RestrictQRLinks: settings.RestrictQRLinks,
	})
	resolver := geocode.NewResolver(geocode.Config{
		URL:     settings.GeocoderURL,
		Timeout: settings.GeocoderTimeout,
	}, geocoder, log)

	handler := httpapi.NewHandler(menu, carts, checkout, resolver, phrases, log.WithComponent("http"))
	return httpapi.NewRouter(handler, httpapi.CORSConfig{AllowedOrigins: settings.AllowedOrigins})
}

func catalogSource(settings config.Settings, log *logger.Logger) (catalog.Source, func()) {
	if settings.CatalogSource != "postgres" {
		return storage.NewFileCatalog(settings.CatalogPath), func() {}
	}

	db := config.MustInitPostgres()
	repo := storage.NewPostgresCatalog(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Error("failed to ensure catalog schema", "error", err)
		os.Exit(1)
	}
	return repo, func() { db.Close() }
}

func main() {
	settings := config.Load()
	log := logger.New(logger.Config{
		Level:       settings.LogLevel,
		Format:      settings.LogFormat,
		Component:   "order-svc",
		Environment: settings.Environment,
	})

	rdb := config.MustInitRedis()
	defer rdb.Close()
	sessions := storage.NewRedisSessionStore(rdb, settings.SessionTTL)

	source, closeSource := catalogSource(settings, log)
	defer closeSource()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_, err := source.LoadMenu(ctx)
	cancel()
	if err != nil {
		log.Error("failed to load menu", "source", settings.CatalogSource, "error", err)
		os.Exit(1)
	}

	var publisher service.CheckoutPublisher
	if writer := config.NewKafkaWriter(settings.KafkaBroker, settings.CheckoutTopic); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Info("KAFKA_BROKER not set, checkout events disabled")
	}

	app := newApp(settings, sessions, source, publisher, &http.Client{}, log)

	if err := httpapi.StartServer(":"+settings.Port, app, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
