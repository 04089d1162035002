package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diillson/ecommerce-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/diillson/ecommerce-dashboard-go/internal/application/usecase"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
	"github.com/diillson/ecommerce-dashboard-go/pkg/version"
)

// DefaultAddr é o endereço padrão do comando serve.
const DefaultAddr = ":8080"

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	console          types.ConsoleInterface
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, console types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		console: console,
	}

	rootCmd := &cobra.Command{
		Use:          "ecommerce-dashboard",
		Short:        "E-Commerce transactions dashboard",
		Long:         "Loads an order line dataset, filters it by purchase date and renders daily orders, product categories, seller cities, customer states and RFM segments.",
		Version:      version.FormatVersion(),
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "E-Commerce Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("data", "D", "", "Dataset CSV: local path or s3://bucket/key")
	rootCmd.PersistentFlags().StringP("start", "s", "", "First purchase date to include (YYYY-MM-DD, default: first day in the dataset)")
	rootCmd.PersistentFlags().StringP("end", "e", "", "Last purchase date to include (YYYY-MM-DD, default: last day in the dataset)")
	rootCmd.PersistentFlags().String("aws-profile", "", "AWS profile used for s3:// datasets")
	rootCmd.PersistentFlags().String("aws-region", "", "AWS region used for s3:// datasets")

	rootCmd.Flags().IntP("top", "k", 0, "Rows shown in ranked panels (default 10)")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf (default csv)")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the derived views as JSON over HTTP",
		RunE:  app.runServe,
	}
	serveCmd.Flags().String("addr", "", "Address to listen on (default "+DefaultAddr+")")
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	data, _ := flags.GetString("data")
	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")
	topN, _ := flags.GetInt("top")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	addr, _ := flags.GetString("addr")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		DataSource: data,
		StartDate:  start,
		EndDate:    end,
		TopN:       topN,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		AWSProfile: awsProfile,
		AWSRegion:  awsRegion,
		Addr:       addr,
	}

	// Arquivo de configuração e variáveis de ambiente completam o que faltou nas flags
	if err := app.dashboardUseCase.ApplyConfig(args); err != nil {
		return nil, err
	}

	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	if args.Addr == "" {
		args.Addr = DefaultAddr
	}

	// Set default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// runServe carrega o dataset uma vez e serve as visões via HTTP.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := app.dashboardUseCase.LoadOrders(ctx, usecase.SourceFromArgs(cliArgs))
	if err != nil {
		return err
	}

	app.console.LogInfo("Loaded %d order lines from %s", len(rows), cliArgs.DataSource)
	app.console.LogSuccess("Serving dashboard API on %s", cliArgs.Addr)

	server := httpapi.NewServer(httpapi.RouterConfig{
		DashboardHandler: httpapi.NewDashboardHandler(rows),
	})
	return server.Run(cliArgs.Addr)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
