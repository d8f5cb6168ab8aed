package booking

import (
	bookingRepo "requesto/database/repository/booking"
	userRepo "requesto/database/repository/user"
	"requesto/models"
	"requesto/services/professional"
)

// BookingService defines business logic for the booking ledger.
type BookingService interface {
	// Create records a booking request. It always returns a response: the
	// ledger write is best-effort and never fails the caller.
	Create(input models.BookingInput) *models.BookingResponse
	// ListByUser returns the user's bookings, newest first.
	ListByUser(userID string, activeOnly bool) ([]models.Booking, error)
	// ListByProvider returns bookings referencing the provider account's
	// linked profile, with client display info attached. A provider without
	// a profile gets an empty list, not an error.
	ListByProvider(userID string, activeOnly bool) ([]models.BookingWithUser, error)
	// ListAll returns every booking with client display info attached, for
	// admin visibility.
	ListAll() ([]models.BookingWithUser, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	Users         userRepo.UserRepository
	Professionals professional.ProfessionalService

	// VideoCallBaseURL is the external conferencing service meeting links
	// are generated under.
	VideoCallBaseURL string
}
