package models

import "time"

// Service delivery channels offered by a professional.
const (
	ServiceCall  = "call"
	ServiceChat  = "chat"
	ServiceEmail = "email"
)

// ServicePricing is a single offering embedded in a Professional. A nil
// Price means the offering is free.
type ServicePricing struct {
	Type     string   `bson:"type" json:"type"`
	Label    string   `bson:"label" json:"label"`
	Price    *float64 `bson:"price" json:"price"`
	Duration string   `bson:"duration" json:"duration"`
}

// Professional is a bookable public profile. It is either unlinked
// (seed/admin-created, LinkedUserID empty) or linked to exactly one
// provider-role user. Bookings reference it by ID, never by the
// database-assigned document id.
type Professional struct {
	ID               string           `bson:"id" json:"id"`
	LinkedUserID     string           `bson:"linkedUserId,omitempty" json:"linkedUserId,omitempty"`
	Name             string           `bson:"name" json:"name"`
	Title            string           `bson:"title" json:"title"`
	Bio              string           `bson:"bio" json:"bio"`
	Photo            string           `bson:"photo" json:"photo"`
	Verified         bool             `bson:"verified" json:"verified"`
	Available        bool             `bson:"available" json:"available"`
	AvailabilityText string           `bson:"availabilityText" json:"availabilityText"`
	Rating           float64          `bson:"rating" json:"rating"`
	ReviewCount      int              `bson:"reviewCount" json:"reviewCount"`
	Services         []ServicePricing `bson:"services" json:"services"`
	Specialties      []string         `bson:"specialties" json:"specialties"`
	Languages        []string         `bson:"languages" json:"languages"`
	Email            string           `bson:"email,omitempty" json:"email,omitempty"`
	CreatedAt        time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// ProfilePatch is a partial update to a provider-owned profile. Nil fields
// are left untouched; array fields replace the stored value wholesale.
// Unrecognized JSON keys are dropped at decode time by construction.
type ProfilePatch struct {
	Name             *string           `json:"name"`
	Title            *string           `json:"title"`
	Bio              *string           `json:"bio"`
	Photo            *string           `json:"photo"`
	Available        *bool             `json:"available"`
	AvailabilityText *string           `json:"availabilityText"`
	Services         *[]ServicePricing `json:"services"`
	Specialties      *[]string         `json:"specialties"`
	Languages        *[]string         `json:"languages"`
}

// AdminProfessionalInput carries the fields an administrator may supply when
// creating a professional directly.
type AdminProfessionalInput struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Title       string           `json:"title"`
	Bio         string           `json:"bio"`
	Photo       string           `json:"photo"`
	Services    []ServicePricing `json:"services"`
	Specialties []string         `json:"specialties"`
	Languages   []string         `json:"languages"`
}
