package models

import "time"

// BookingStatusConfirmed is the only status the ledger currently records;
// bookings are immutable once written.
const BookingStatusConfirmed = "confirmed"

// Booking is one append-mostly ledger entry. ProfessionalID references
// Professional.ID (the stable string id, not a document id). MeetLink is
// set at creation time for call/video services and never afterwards.
type Booking struct {
	BookingID      string    `bson:"bookingId" json:"bookingId"`
	UserID         string    `bson:"userId" json:"userId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	ServiceType    string    `bson:"serviceType" json:"serviceType"`
	ServiceLabel   string    `bson:"serviceLabel" json:"serviceLabel"`
	MeetLink       string    `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
	Status         string    `bson:"status" json:"status"`
	Date           time.Time `bson:"date" json:"date"`
}

// BookingUser is the display projection of the user attached to a booking
// in provider and admin views.
type BookingUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingWithUser decorates a ledger entry with the referencing user's
// name and email for operational visibility.
type BookingWithUser struct {
	Booking `bson:",inline"`
	User    *BookingUser `json:"user,omitempty"`
}

// BookingInput is a booking request as received from the client.
type BookingInput struct {
	ProfessionalID string `json:"professionalId"`
	ServiceType    string `json:"serviceType"`
	ServiceLabel   string `json:"serviceLabel"`
	UserID         string `json:"userId"`
}

// BookingResponse is returned for every booking request, including ones
// whose persistence was skipped or failed.
type BookingResponse struct {
	Success   bool           `json:"success"`
	BookingID string         `json:"bookingId"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	MeetLink  string         `json:"meetLink,omitempty"`
	Details   BookingDetails `json:"details"`
}

// BookingDetails mirrors the link inside the response envelope for clients
// that read it from the details object.
type BookingDetails struct {
	Link string `json:"link,omitempty"`
}
