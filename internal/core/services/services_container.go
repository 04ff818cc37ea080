package services

import (
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
)

// NewServicesProvider wires every service facade over the repository provider.
func NewServicesProvider(repos portsrepo.RepositoryProvider) *portssvc.ServicesProvider {
	provider := &portssvc.ServicesProvider{}

	provider.ProjectSvc = NewProjectService(repos.ProjectRepo)
	provider.ChartSvc = NewChartService(repos.ChartRepo, repos.ProjectRepo)
	provider.VoucherSvc = NewVoucherService(repos.VoucherRepo, repos.ChartRepo)
	provider.BalanceSvc = NewBalanceService(repos.VoucherRepo, repos.ChartRepo)
	provider.ReportingSvc = NewReportingService(repos.VoucherRepo, repos.ChartRepo, repos.BudgetRepo, provider.ChartSvc)
	provider.BudgetSvc = NewBudgetService(repos.BudgetRepo, repos.ChartRepo)

	return provider
}
