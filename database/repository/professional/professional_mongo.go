package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"requesto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new ProfessionalRepository backed by
// the given database handle.
func NewMongoProfessionalRepo(db *mongo.Database) ProfessionalRepository {
	repo := &MongoProfessionalRepo{coll: db.Collection("professionals")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create professional indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfessionalRepo) findOne(filter bson.M) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Professional
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional: %w", err)
	}
	return &p, nil
}

// GetByID retrieves a professional by its stable string id.
func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByLinkedUser retrieves the professional linked to the given user id.
func (r *MongoProfessionalRepo) GetByLinkedUser(userID string) (*models.Professional, error) {
	return r.findOne(bson.M{"linkedUserId": userID})
}

// GetByEmail retrieves a professional by its contact email.
func (r *MongoProfessionalRepo) GetByEmail(email string) (*models.Professional, error) {
	return r.findOne(bson.M{"email": email})
}

// GetAll retrieves every professional, drafts included.
func (r *MongoProfessionalRepo) GetAll() ([]models.Professional, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var pros []models.Professional
	for cursor.Next(ctx) {
		var p models.Professional
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode professional: %w", err)
		}
		pros = append(pros, p)
	}
	return pros, nil
}

// Create inserts a new professional document.
func (r *MongoProfessionalRepo) Create(p *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// Update replaces the stored fields of an existing professional.
func (r *MongoProfessionalRepo) Update(p *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", p.ID)
	}
	return nil
}
