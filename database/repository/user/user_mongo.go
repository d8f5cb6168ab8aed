package userRepo

import (
	"context"
	"fmt"
	"time"

	"requesto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// adminBootstrapKey is the _id of the singleton bootstrap marker document.
const adminBootstrapKey = "admin-bootstrap"

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
	meta *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository backed by the
// given database handle.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{
		coll: db.Collection("users"),
		meta: db.Collection("meta"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves all users, newest first.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// SetRole updates a user's role and returns the updated record.
func (r *MongoUserRepo) SetRole(id, role string) (*models.User, error) {
	return r.findOneAndSet(id, bson.M{"role": role})
}

// SetBanned updates a user's ban flag and returns the updated record.
func (r *MongoUserRepo) SetBanned(id string, banned bool) (*models.User, error) {
	return r.findOneAndSet(id, bson.M{"banned": banned})
}

func (r *MongoUserRepo) findOneAndSet(id string, fields bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return &user, nil
}

// ClaimAdminBootstrap upserts the singleton bootstrap marker. The unique _id
// constraint guarantees at most one insert ever happens, so exactly one
// caller observes true even under concurrent first logins.
func (r *MongoUserRepo) ClaimAdminBootstrap(userID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$setOnInsert": bson.M{
		"claimedBy": userID,
		"claimedAt": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)

	res, err := r.meta.UpdateOne(ctx, bson.M{"_id": adminBootstrapKey}, update, opts)
	if err != nil {
		// A concurrent upsert can surface as a duplicate key error; the
		// marker exists, so the claim was lost.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to claim admin bootstrap: %w", err)
	}
	return res.UpsertedCount == 1, nil
}
