package handlers

import "medicare/middleware"

// HandlerBundle groups the endpoint handlers and the auth dependencies the
// routes need.
type HandlerBundle struct {
	Tokens middleware.TokenVerifier
	Roles  middleware.RoleLookup

	Auth        *AuthHandler
	User        *UserHandler
	Location    *LocationHandler
	Catalog     *CatalogHandler
	Appointment *AppointmentHandler
	Banner      *BannerHandler
	Payment     *PaymentHandler
	Admin       *AdminHandler
	Storage     *StorageHandler
}
