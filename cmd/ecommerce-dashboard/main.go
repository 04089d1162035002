package main

import (
	"fmt"
	"os"

	"github.com/diillson/ecommerce-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/ecommerce-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/ecommerce-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/ecommerce-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/ecommerce-dashboard-go/internal/application/usecase"
	"github.com/diillson/ecommerce-dashboard-go/pkg/console"
	"github.com/diillson/ecommerce-dashboard-go/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, consoleImpl)

	// Inicializa os repositórios
	datasetRepo := dataset.NewDatasetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()

	dashboardUseCase := usecase.NewDashboardUseCase(
		datasetRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
