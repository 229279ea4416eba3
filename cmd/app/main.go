package main

import (
	"fmt"
	"log/slog"
	gohttp "net/http"
	"os"

	"salesledger/cmd"
	"salesledger/internal/adapters/in/http"
	"salesledger/internal/adapters/out/postgres/customerrepo"
	"salesledger/internal/adapters/out/postgres/orderrepo"
	"salesledger/internal/adapters/out/postgres/productrepo"
	"salesledger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrate(gormDB)
	seedDemoData(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetUnshippedOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// seedDemoData inserts reference customers and products so the API is usable
// on a fresh database. Existing rows are left untouched.
func seedDemoData(db *gorm.DB) {
	customers := []customerrepo.CustomerDTO{
		{
			ID:   "0COM",
			Name: "Alfreds Futterkiste",
			Tier: 1,
			Address: customerrepo.AddressDTO{
				Street:  "Obere Str. 57",
				City:    "Berlin",
				Country: "Germany",
			},
		},
		{
			ID:   "2COM",
			Name: "Blondel père et fils",
			Tier: 2,
			Address: customerrepo.AddressDTO{
				Street:  "67, avenue de l'Europe",
				City:    "Versailles",
				Country: "France",
			},
		},
	}
	for _, dto := range customers {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
			log.Fatalf("Failed to seed customers: %v", err)
		}
	}

	products := []productrepo.ProductDTO{
		{ID: 98, Name: "Louisiana Hot Spiced Okra", UnitPrice: decimal.RequireFromString("12.50"), Stock: 25},
		{ID: 42, Name: "Singaporean Hokkien Fried Mee", UnitPrice: decimal.RequireFromString("9.80"), Stock: 26},
	}
	for _, dto := range products {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(gohttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRecordShipmentCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUnshippedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
