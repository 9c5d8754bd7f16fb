package services

// ServiceContainer holds all service facades, so handlers can be wired from a
// single dependency.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	User     UserSvcFacade
	Category CategorySvcFacade
	Product  ProductSvcFacade
	Stock    StockSvcFacade
	Supplier SupplierSvcFacade
	Customer CustomerSvcFacade
	Purchase PurchaseSvcFacade
	Sale     SaleSvcFacade
}
