package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/ecommerce-dashboard-go/internal/domain/aggregation"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/repository"
	"github.com/diillson/ecommerce-dashboard-go/internal/shared/types"
)

// DefaultTopN é o número de linhas exibidas nos painéis ranqueados.
const DefaultTopN = 10

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	datasetRepo repository.DatasetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	datasetRepo repository.DatasetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		datasetRepo: datasetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// ApplyConfig completa args com o arquivo de configuração e as variáveis de ambiente.
// Flags informadas na linha de comando sempre prevalecem.
func (uc *DashboardUseCase) ApplyConfig(args *types.CLIArgs) error {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := uc.configRepo.LoadEnv(cfg); err != nil {
		return err
	}

	fillString(&args.DataSource, cfg.DataSource)
	fillString(&args.StartDate, cfg.StartDate)
	fillString(&args.EndDate, cfg.EndDate)
	fillString(&args.ReportName, cfg.ReportName)
	fillString(&args.Dir, cfg.Dir)
	fillString(&args.AWSProfile, cfg.AWSProfile)
	fillString(&args.AWSRegion, cfg.AWSRegion)
	fillString(&args.Addr, cfg.Addr)
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.TopN <= 0 {
		args.TopN = cfg.TopN
	}
	if args.TopN <= 0 {
		args.TopN = DefaultTopN
	}

	if args.DataSource == "" {
		return fmt.Errorf("%w: no dataset given, use --data or ECOMDASH_DATA_SOURCE", types.ErrUnsupportedSource)
	}
	return nil
}

func fillString(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

// SourceFromArgs monta a origem do dataset a partir dos argumentos resolvidos.
func SourceFromArgs(args *types.CLIArgs) entity.DatasetSource {
	return entity.DatasetSource{
		Location:   args.DataSource,
		AWSProfile: args.AWSProfile,
		AWSRegion:  args.AWSRegion,
	}
}

// LoadOrders lê o dataset completo. Um dataset vazio é um erro, pois não há
// intervalo de datas a partir do qual filtrar.
func (uc *DashboardUseCase) LoadOrders(ctx context.Context, source entity.DatasetSource) ([]entity.OrderLine, error) {
	rows, err := uc.datasetRepo.LoadOrders(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", types.ErrEmptyDataset, source)
	}
	return rows, nil
}

// BuildDashboard filtra as linhas pelo intervalo pedido e computa todas as visões.
// rows não é modificado, então pode ser compartilhado entre chamadas.
func BuildDashboard(rows []entity.OrderLine, start, end string) (entity.Dashboard, error) {
	bounds, ok := DatasetBounds(rows)
	if !ok {
		return aggregation.Build(nil, entity.DateRange{}), nil
	}

	rng, err := ResolveRange(bounds, start, end)
	if err != nil {
		return entity.Dashboard{}, err
	}

	return aggregation.Build(FilterByRange(rows, rng), rng), nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	status := uc.console.Status(fmt.Sprintf("Loading dataset from %s...", args.DataSource))

	rows, err := uc.LoadOrders(ctx, SourceFromArgs(args))
	if err != nil {
		status.Stop()
		return err
	}

	status.Update("Computing derived views...")
	dashboard, err := BuildDashboard(rows, args.StartDate, args.EndDate)
	status.Stop()
	if err != nil {
		return err
	}

	bounds, _ := DatasetBounds(rows)
	uc.console.LogInfo("Loaded %d order lines (%s); showing %s", len(rows), bounds, dashboard.Range)
	if dashboard.RowCount == 0 {
		uc.console.LogWarning("No orders in %s", dashboard.Range)
	}

	uc.renderDashboard(dashboard, args.TopN)

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(dashboard, args)
	}

	return nil
}

// exportReports exporta o dashboard em cada formato pedido.
// Falhas são registradas e não interrompem os demais formatos.
func (uc *DashboardUseCase) exportReports(dashboard entity.Dashboard, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPaths, err := uc.exportRepo.ExportToCSV(dashboard, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				for _, p := range csvPaths {
					uc.console.LogSuccess("Successfully exported to CSV: %s", p)
				}
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(dashboard, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(dashboard, args.ReportName, args.Dir, args.TopN)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' ignored", reportType)
		}
	}
}
