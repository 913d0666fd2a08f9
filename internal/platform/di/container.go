// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/in/http/middleware"
	"storefront/internal/adapters/out/db"
	"storefront/internal/adapters/out/events"
	fsrepo "storefront/internal/adapters/out/firestore"
	"storefront/internal/adapters/out/mail"
	usecase "storefront/internal/application/usecase"
	"storefront/internal/infra/config"
	"storefront/internal/infra/database"
	firestoreinfra "storefront/internal/infra/firestore"
)

// Container bundles every dependency main.go needs, so main stays thin.
type Container struct {
	Config *config.Config

	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase
	OrderUC    *usecase.OrderUsecase
	StatusUC   *usecase.StatusUsecase

	Users    *db.UserRepositoryPG
	Products *db.ProductRepositoryPG

	FirebaseAuth *middleware.FirebaseAuthClient

	pg        *database.DB
	fs        *firestoreinfra.ClientWrapper
	publisher *events.KafkaPublisher
}

// NewContainer wires config, infrastructure clients, repositories, usecases
// and seeds the role/status vocabularies.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := config.Load()
	cfg.ResolveSecrets(ctx)

	// ---- infrastructure ----

	pg, err := database.NewConnection(cfg.PGHost, cfg.PGPort, cfg.PGUser, cfg.PGPassword, cfg.PGDatabase)
	if err != nil {
		return nil, fmt.Errorf("di: postgres: %w", err)
	}

	fs, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("di: firestore: %w", err)
	}

	var fbAuth *middleware.FirebaseAuthClient
	if app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}); err != nil {
		log.Printf("[di] WARN: firebase app init failed: %v (authenticated routes disabled)", err)
	} else if client, err := app.Auth(ctx); err != nil {
		log.Printf("[di] WARN: firebase auth init failed: %v (authenticated routes disabled)", err)
	} else {
		fbAuth = client
	}

	// ---- outbound adapters ----

	carts := fsrepo.NewCartRepositoryFS(fs.Client)
	orders := db.NewOrderRepositoryPG(pg.Client)
	statuses := db.NewStatusRepositoryPG(pg.Client)
	users := db.NewUserRepositoryPG(pg.Client)
	products := db.NewProductRepositoryPG(pg.Client)

	mailer := mail.NewOrderMailer(mail.NewSendGridClient(cfg.SendGridAPIKey), cfg.SendGridFrom, cfg.StoreCopyTo)
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if !publisher.Enabled() {
		log.Printf("[di] kafka publisher disabled (no brokers configured)")
	}

	// ---- usecases ----

	c := &Container{
		Config:       cfg,
		CartUC:       usecase.NewCartUsecase(carts, products),
		CheckoutUC:   usecase.NewCheckoutUsecase(carts, orders, statuses, mailer, publisher),
		OrderUC:      usecase.NewOrderUsecase(orders, statuses, users),
		StatusUC:     usecase.NewStatusUsecase(statuses),
		Users:        users,
		Products:     products,
		FirebaseAuth: fbAuth,
		pg:           pg,
		fs:           fs,
		publisher:    publisher,
	}

	// ---- vocabulary seeding ----

	if err := users.EnsureRoles(ctx); err != nil {
		log.Printf("[di] WARN: role seeding failed: %v", err)
	}
	if err := c.StatusUC.EnsureDefaults(ctx); err != nil {
		log.Printf("[di] WARN: status seeding failed: %v", err)
	}

	return c, nil
}

// RouterDeps exposes the wiring the HTTP router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		CartUC:       c.CartUC,
		CheckoutUC:   c.CheckoutUC,
		OrderUC:      c.OrderUC,
		StatusUC:     c.StatusUC,
		Products:     c.Products,
		Users:        c.Users,
		FirebaseAuth: c.FirebaseAuth,
		AllowOrigin:  c.Config.AllowedOrigin,
	}
}

// Close releases the container's long-lived resources.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			log.Printf("[di] kafka close: %v", err)
		}
	}
	if c.fs != nil {
		_ = c.fs.Close()
	}
	if c.pg != nil {
		_ = c.pg.Close()
	}
}
