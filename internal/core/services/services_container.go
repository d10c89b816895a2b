package services

import (
	portsrepo "github.com/financeira-app/gf_backend/internal/core/ports/repositories"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Report = NewReportService(repos.TransactionRepo)
	container.Export = NewExportService()
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ReportSvcFacade = (*reportService)(nil)
	_ portssvc.ExportSvcFacade = (*exportService)(nil)
)
