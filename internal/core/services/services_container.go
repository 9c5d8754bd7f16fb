package services

import (
	portsrepo "github.com/invenko/inventory_management_app/internal/core/ports/repositories"
	portssvc "github.com/invenko/inventory_management_app/internal/core/ports/services"
	"github.com/invenko/inventory_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Product = NewProductService(repos.ProductRepo, repos.CategoryRepo)
	container.Stock = NewStockService(repos.StockRepo, repos.ProductRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo, repos.ProductRepo)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo)

	return container
}
