package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Report      ReportSvcFacade
	Export      ExportSvcFacade
	GoogleAuth  GoogleAuthSvcFacade
}
