package main

import (
	"os"

	"github.com/harichselvamc/inventory-app-backend/internal/app"
	config "github.com/harichselvamc/inventory-app-backend/internal/cfg"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
)

//	@title			Inventory Management API
//	@version		1.0
//	@description	Управление каталогом товаров, покупками и отчётами о продажах.
//	@host			localhost:8080
//	@BasePath		/
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
