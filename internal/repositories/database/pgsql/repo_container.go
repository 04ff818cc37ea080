package pgsql

import (
	portsrepo "github.com/fundbooks/fundbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	projectRepo := newPgxProjectRepository(dbPool)
	chartRepo := newPgxChartRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProjectRepo: projectRepo,
		ChartRepo:   chartRepo,
		VoucherRepo: voucherRepo,
		BudgetRepo:  budgetRepo,
	}
}
