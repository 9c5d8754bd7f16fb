package pgsql

import (
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		StockRepo:    newPgxStockRepository(dbPool),
		SupplierRepo: newPgxSupplierRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
	}
}
