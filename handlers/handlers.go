package handlers

import (
	userRepo "requesto/database/repository/user"
)

// HandlerBundle aggregates the endpoint handlers and the repositories the
// route middleware needs. Assembled once in main and handed to the routes
// package.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth          *AuthHandler
	Booking       *BookingHandler
	Provider      *ProviderHandler
	Professionals *ProfessionalHandler
	Admin         *AdminHandler
}
