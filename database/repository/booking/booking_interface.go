package bookingRepo

import "requesto/models"

// BookingRepository defines methods for booking ledger access. The ledger
// is append-mostly: entries are created once and never mutated or deleted.
type BookingRepository interface {
	// Create appends a new booking record.
	Create(b *models.Booking) error
	// ListByUser retrieves all bookings made by the given user, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByProfessional retrieves all bookings referencing the given
	// professional id, newest first.
	ListByProfessional(professionalID string) ([]models.Booking, error)
	// ListAll retrieves every booking, newest first.
	ListAll() ([]models.Booking, error)
}
