package services

// ServicesProvider groups all service facades for handler registration.
type ServicesProvider struct {
	ProjectSvc   ProjectSvcFacade
	ChartSvc     ChartSvcFacade
	VoucherSvc   VoucherSvcFacade
	BalanceSvc   BalanceSvcFacade
	ReportingSvc ReportingSvcFacade
	BudgetSvc    BudgetSvcFacade
}
