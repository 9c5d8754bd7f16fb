package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo     UserRepositoryFacade
	CategoryRepo CategoryRepositoryFacade
	ProductRepo  ProductRepositoryFacade
	StockRepo    StockRepositoryFacade
	SupplierRepo SupplierRepositoryFacade
	CustomerRepo CustomerRepositoryFacade
	PurchaseRepo PurchaseRepositoryFacade
	SaleRepo     SaleRepositoryFacade
}
