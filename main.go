package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	amqp "github.com/streadway/amqp"

	"shoppinglist/internal/config"
	"shoppinglist/internal/database"
	"shoppinglist/internal/handlers"
	"shoppinglist/internal/repositories"
	"shoppinglist/internal/services"
	"shoppinglist/pkg/rabbitmq"
	"shoppinglist/web"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Initialize Repositories ---
	var (
		userRepo repositories.UserRepository
		itemRepo repositories.ItemRepository
	)

	if cfg.DBDriver == "memory" {
		store := repositories.NewMemoryStore()
		userRepo = store.Users()
		itemRepo = store.Items()
		log.Println("Using in-memory store, data will not survive restarts")
	} else {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		// Apply pending migrations before accepting requests.
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		userRepo = repositories.NewGORMUserRepository(db)
		itemRepo = repositories.NewGORMItemRepository(db)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient

		// Consume the shopping event queue and mirror it into the log.
		log.Println("Starting RabbitMQ consumer for shopping events...")
		if err := mqClient.Consume(logShoppingEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	// --- Initialize Services ---
	itemService := services.NewItemService(itemRepo, userRepo, events)
	userService := services.NewUserService(userRepo, events)

	// --- Initialize Handlers ---
	itemHandler := handlers.NewItemHandler(itemService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	// No authentication boundary: any origin, method and header is allowed.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "*",
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("shoppinglist")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// --- API Routes ---
	api := app.Group("/api")
	itemHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	// --- Static Client ---
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(web.Assets),
		Index: "index.html",
	}))

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// logShoppingEvent records a consumed shopping event. A decode error is
// returned so the delivery gets nacked instead of acked.
func logShoppingEvent(msg amqp.Delivery) error {
	var event rabbitmq.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("failed to decode shopping event: %w", err)
	}
	log.Printf("Shopping event %s (%s) at %s", event.Event, event.ID, event.OccurredAt.Format(time.RFC3339))
	return nil
}
