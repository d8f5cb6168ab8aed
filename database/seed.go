package database

import (
	"context"
	"fmt"
	"time"

	"requesto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func price(v float64) *float64 { return &v }

// seedProfessionals is the initial public directory, inserted once when the
// professionals collection is empty. Entries are unlinked until a provider
// account claims one by email.
var seedProfessionals = []models.Professional{
	{
		ID:               "1",
		Name:             "Dr. Priya Sharma",
		Title:            "Clinical Psychologist · 12 years experience",
		Bio:              "Specializing in anxiety, depression, and family relationships. I provide a culturally sensitive space for healing. Certified CBT practitioner with extensive experience in mindfulness-based therapy.",
		Photo:            "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=200&h=200&fit=crop&crop=face",
		Verified:         true,
		Available:        true,
		AvailabilityText: "Available today",
		Rating:           4.9,
		ReviewCount:      127,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Video Call", Price: price(1200), Duration: "60 min"},
			{Type: models.ServiceChat, Label: "Text Chat", Price: price(500), Duration: "30 min"},
			{Type: models.ServiceEmail, Label: "Email Consultation", Price: nil, Duration: "Response within 24h"},
		},
		Specialties: []string{"Anxiety", "Depression", "Family Therapy", "CBT"},
		Languages:   []string{"English", "Hindi"},
	},
	{
		ID:               "2",
		Name:             "Rajesh Verma",
		Title:            "Financial Advisor · Certified Planner",
		Bio:              "Helping Indian families achieve financial freedom through personalized planning. Expertise in mutual funds, retirement planning, and tax optimization for the Indian market.",
		Photo:            "https://images.unsplash.com/photo-1556157382-97eda2d622ca?w=200&h=200&fit=crop&crop=face",
		Verified:         true,
		Available:        true,
		AvailabilityText: "Next slot: 2pm",
		Rating:           4.8,
		ReviewCount:      89,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Strategy Call", Price: price(1500), Duration: "45 min"},
			{Type: models.ServiceChat, Label: "Quick Chat", Price: nil, Duration: "15 min"},
			{Type: models.ServiceEmail, Label: "Portfolio Review", Price: price(800), Duration: "Detailed report"},
		},
		Specialties: []string{"Retirement", "SIPs & Mutual Funds", "Tax Planning", "Insurance"},
		Languages:   []string{"English", "Hindi", "Punjabi"},
	},
	{
		ID:               "3",
		Name:             "Aditi Iyer",
		Title:            "Legal Consultant · Family Law Expert",
		Bio:              "Dedicated lawyer with 15+ years helping families navigate complex legal systems. Fluent in Tamil and English, I understand the unique challenges facing families.",
		Photo:            "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=200&h=200&fit=crop&crop=face",
		Verified:         true,
		Available:        false,
		AvailabilityText: "Available tomorrow",
		Rating:           4.9,
		ReviewCount:      203,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Legal Consultation", Price: price(2000), Duration: "60 min"},
			{Type: models.ServiceChat, Label: "Case Review", Price: price(800), Duration: "30 min"},
			{Type: models.ServiceEmail, Label: "Document Review", Price: price(500), Duration: "Per document"},
		},
		Specialties: []string{"Property Law", "Family Law", "Startups", "Contracts"},
		Languages:   []string{"English", "Tamil", "Hindi"},
	},
	{
		ID:               "4",
		Name:             "Vikram Malhotra",
		Title:            "Career Coach · Tech Industry Expert",
		Bio:              "Former hiring manager at top tech companies in Bangalore and abroad. I help professionals land their dream jobs through resume optimization and interview prep.",
		Photo:            "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop&crop=face",
		Verified:         false,
		Available:        true,
		AvailabilityText: "Available now",
		Rating:           4.7,
		ReviewCount:      64,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Career Strategy", Price: price(1000), Duration: "45 min"},
			{Type: models.ServiceChat, Label: "Quick Questions", Price: nil, Duration: "Unlimited"},
			{Type: models.ServiceEmail, Label: "Resume Review", Price: price(500), Duration: "Detailed feedback"},
		},
		Specialties: []string{"Tech Careers", "Resume Writing", "Interview Prep", "Salary Negotiation"},
		Languages:   []string{"English", "Hindi"},
	},
	{
		ID:               "5",
		Name:             "Dr. Anjali Desai",
		Title:            "Ayurvedic Nutritionist · Holistic Health",
		Bio:              "Combining modern nutrition with Ayurvedic principles. I create personalized plans that fit your lifestyle, helping you achieve lasting health through balanced diet and lifestyle changes.",
		Photo:            "https://images.unsplash.com/photo-1614607242094-b1b2cfffa855?w=200&h=200&fit=crop&crop=face",
		Verified:         true,
		Available:        true,
		AvailabilityText: "Available today",
		Rating:           4.9,
		ReviewCount:      156,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Nutrition Consult", Price: price(950), Duration: "50 min"},
			{Type: models.ServiceChat, Label: "Meal Planning Help", Price: price(350), Duration: "30 min"},
			{Type: models.ServiceEmail, Label: "Quick Questions", Price: nil, Duration: "3 questions"},
		},
		Specialties: []string{"Weight Management", "Ayurveda", "Gut Health", "Plant-Based"},
		Languages:   []string{"English", "Gujarati", "Hindi"},
	},
	{
		ID:               "6",
		Name:             "Arjun Singh",
		Title:            "Startup Mentor · Business Consultant",
		Bio:              "Serial entrepreneur with 3 successful exits in the Indian startup ecosystem. I advise startups on go-to-market strategy, fundraising, and scaling operations.",
		Photo:            "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
		Verified:         true,
		Available:        false,
		AvailabilityText: "Offline",
		Rating:           4.8,
		ReviewCount:      112,
		Services: []models.ServicePricing{
			{Type: models.ServiceCall, Label: "Strategy Session", Price: price(2500), Duration: "60 min"},
			{Type: models.ServiceChat, Label: "Pitch Feedback", Price: price(1000), Duration: "45 min"},
			{Type: models.ServiceEmail, Label: "Business Plan Review", Price: price(1500), Duration: "Comprehensive"},
		},
		Specialties: []string{"Fundraising", "GTM Strategy", "Scaling", "Leadership"},
		Languages:   []string{"English", "Hindi"},
	},
}

// SeedProfessionals inserts the initial directory if the professionals
// collection is empty. Subsequent startups are no-ops.
func SeedProfessionals(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	coll := db.Collection("professionals")
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count professionals: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(seedProfessionals))
	for _, p := range seedProfessionals {
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed professionals: %w", err)
	}
	zap.L().Info("Seeded professionals directory", zap.Int("count", len(docs)))
	return nil
}
