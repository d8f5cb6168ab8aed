package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"requesto/models"
	"requesto/services/professional"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NeedsMeetLink reports whether a booking for the given service gets a
// generated meeting link: explicit calls, and any service whose label
// mentions video.
func NeedsMeetLink(serviceType, serviceLabel string) bool {
	return serviceType == models.ServiceCall ||
		strings.Contains(strings.ToLower(serviceLabel), "video")
}

// Create records a booking request. The response always succeeds: when the
// ledger write fails or no account reference was supplied, the booking still
// "works" for the caller and the failure is only logged.
func (s *DefaultBookingService) Create(input models.BookingInput) *models.BookingResponse {
	bookingID := uuid.New().String()

	resp := &models.BookingResponse{
		Success:   true,
		BookingID: bookingID,
		Message:   "Booking confirmed",
		Type:      input.ServiceType,
	}

	var meetLink string
	if NeedsMeetLink(input.ServiceType, input.ServiceLabel) {
		meetLink = fmt.Sprintf("%s/%s", s.VideoCallBaseURL, uuid.New().String())
		resp.MeetLink = meetLink
		resp.Details.Link = meetLink
		resp.Message = "Booking confirmed! Video call link generated."
	}

	if input.UserID == "" {
		zap.L().Warn("Booking request without account reference; ledger write skipped",
			zap.String("bookingId", bookingID),
			zap.String("professionalId", input.ProfessionalID),
		)
		return resp
	}

	record := &models.Booking{
		BookingID:      bookingID,
		UserID:         input.UserID,
		ProfessionalID: input.ProfessionalID,
		ServiceType:    input.ServiceType,
		ServiceLabel:   input.ServiceLabel,
		MeetLink:       meetLink,
		Status:         models.BookingStatusConfirmed,
		Date:           time.Now(),
	}
	if err := s.Repo.Create(record); err != nil {
		zap.L().Error("Failed to persist booking; responding success anyway",
			zap.String("bookingId", bookingID),
			zap.Error(err),
		)
	}
	return resp
}

// ListByUser returns the user's bookings, newest first.
func (s *DefaultBookingService) ListByUser(userID string, activeOnly bool) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		bookings = ActiveOnly(bookings, time.Now())
	}
	return bookings, nil
}

// ListByProvider resolves the account's linked profile and returns the
// bookings referencing it. No profile means no bookings, not an error.
func (s *DefaultBookingService) ListByProvider(userID string, activeOnly bool) ([]models.BookingWithUser, error) {
	pro, err := s.Professionals.GetOwnProfile(userID)
	if err != nil {
		if errors.Is(err, professional.ErrNoProfileYet) {
			return []models.BookingWithUser{}, nil
		}
		return nil, err
	}

	bookings, err := s.Repo.ListByProfessional(pro.ID)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		bookings = ActiveOnly(bookings, time.Now())
	}
	return s.attachUsers(bookings)
}

// ListAll returns every booking with client display info attached.
func (s *DefaultBookingService) ListAll() ([]models.BookingWithUser, error) {
	bookings, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.attachUsers(bookings)
}

// attachUsers decorates bookings with the referencing user's name and email,
// fetching each distinct account once.
func (s *DefaultBookingService) attachUsers(bookings []models.Booking) ([]models.BookingWithUser, error) {
	seen := make(map[string]*models.BookingUser)
	out := make([]models.BookingWithUser, 0, len(bookings))

	for _, b := range bookings {
		entry := models.BookingWithUser{Booking: b}
		if b.UserID != "" {
			bu, ok := seen[b.UserID]
			if !ok {
				account, err := s.Users.GetByID(b.UserID)
				if err != nil {
					return nil, fmt.Errorf("failed to attach user to booking %s: %w", b.BookingID, err)
				}
				if account != nil {
					bu = &models.BookingUser{ID: account.ID, Name: account.Name, Email: account.Email}
				}
				seen[b.UserID] = bu
			}
			entry.User = bu
		}
		out = append(out, entry)
	}
	return out, nil
}
