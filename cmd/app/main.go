package main

import (
	"fmt"
	"os"
	"strconv"

	"fleet/cmd"
	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres/containerrepo"
	"fleet/internal/adapters/out/postgres/shiprepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		TransferTwoPhase: goDotEnvBool("TRANSFER_TWO_PHASE"),
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

func goDotEnvBool(key string) bool {
	value := goDotEnvVariable(key)
	if value == "" {
		return false
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = db.AutoMigrate(&shiprepo.ShipDTO{}, &containerrepo.ContainerDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	validator, err := httpin.NewRequestValidator()
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}
	e.Use(validator)

	server := httpin.NewServer(
		app.CreateCreateShipCommandHandler(),
		app.CreateRegisterContainerCommandHandler(),
		app.CreateLoadCargoCommandHandler(),
		app.CreateUnloadCargoCommandHandler(),
		app.CreateBoardContainerCommandHandler(),
		app.CreateUnloadContainerCommandHandler(),
		app.CreateTransferContainerCommandHandler(),
		app.CreateGetAllShipsQueryHandler(),
		app.CreateGetShipManifestQueryHandler(),
		app.CreateGetOverweightShipsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
