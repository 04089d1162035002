package repository

import (
	"github.com/diillson/ecommerce-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	// ExportToCSV grava um arquivo por visão derivada e devolve todos os caminhos.
	ExportToCSV(dashboard entity.Dashboard, filename, outputDir string) ([]string, error)
	ExportToJSON(dashboard entity.Dashboard, filename, outputDir string) (string, error)
	ExportToPDF(dashboard entity.Dashboard, filename, outputDir string, topN int) (string, error)
}
