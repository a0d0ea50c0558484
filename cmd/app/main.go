package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"tehnoplast/cmd"
	"tehnoplast/internal/adapters/out/postgres/counteragentrepo"
	"tehnoplast/internal/adapters/out/postgres/invoicerepo"
	"tehnoplast/internal/adapters/out/postgres/orderrepo"
	"tehnoplast/internal/adapters/out/postgres/palletrepo"
	"tehnoplast/internal/adapters/out/postgres/productrepo"
	"tehnoplast/internal/adapters/out/postgres/warehouserepo"
	"tehnoplast/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	migrateSchema(db)

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateGetUnpackedOrdersQueryHandler(),
		app.CreatePackOrderCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	logger.Info("Application started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Application stopping")
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}

	capacity, err := strconv.ParseFloat(goDotEnvVariable("PALLET_CAPACITY"), 64)
	if err != nil {
		log.Fatalf("Invalid PALLET_CAPACITY: %v", err)
	}
	config.PalletCapacity = capacity

	allowMixed, err := strconv.ParseBool(goDotEnvVariable("ALLOW_MIXED_GROUPS"))
	if err != nil {
		log.Fatalf("Invalid ALLOW_MIXED_GROUPS: %v", err)
	}
	config.AllowMixedGroups = allowMixed

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&palletrepo.PalletDTO{},
		&palletrepo.PalletItemDTO{},
		&counteragentrepo.CounteragentDTO{},
		&warehouserepo.WarehouseDTO{},
		&invoicerepo.InvoiceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}
