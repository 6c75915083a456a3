package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"startupfuel.com/broker"
	"startupfuel.com/cron"
	"startupfuel.com/db"
	"startupfuel.com/routes"
	"startupfuel.com/types"

	_ "startupfuel.com/docs"
)

var startedAt = time.Now()

//	@title			StartupFuel Investment Service
//	@version		1.0
//	@description	Personal investment tracking API: portfolio, trading, transaction history and reports.

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Enter the token. Example: "Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	broker.Connect(os.Getenv("MESSAGE_BROKER_NETWORK"), os.Getenv("MESSAGE_BROKER_HOST"))
	db.Init()

	if os.Getenv("SEED_DATA") == "true" {
		db.Seed()
	}

	cron.StartScheduler()

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(204)
		}
		return c.Next()
	})

	routes.SetupRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(types.Response{
			Success: true,
			Data: fiber.Map{
				"status":  "healthy",
				"uptime":  time.Since(startedAt).Round(time.Second).String(),
				"version": "1.0.0",
			},
		})
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	port := os.Getenv("LISTEN_PATH")
	if port == "" {
		port = ":3000"
	}
	log.Printf("Swagger UI available at http://localhost%s/swagger/index.html", port)
	log.Fatal(app.Listen(port))
}
