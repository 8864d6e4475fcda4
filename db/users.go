package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/MediCampHub/medicamp-services/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserExists reports an insert rejected by the unique email index.
var ErrUserExists = errors.New("user already exists")

// UserStore is the users collection contract consumed by the services layer
// and the organizer gate.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.UserDocument, error)
	FindUserByEmail(ctx context.Context, email string) (models.UserDocument, error)
	InsertUser(ctx context.Context, user models.UserDocument) (*models.InsertResult, error)
	PromoteOrganizer(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	GrantOrganizerByEmail(ctx context.Context, email string) (*models.UpdateResult, error)
}

// ListUsers retrieves every user document.
func (c *CampDB) ListUsers(ctx context.Context) ([]models.UserDocument, error) {
	cursor, err := c.DB.Collection(UsersCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.UserDocument{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("error decoding users: %w", err)
	}
	return users, nil
}

// FindUserByEmail retrieves one user by email. A missing document is not an
// error: the result is (nil, nil), so callers can tell "absent" apart from
// a failed lookup.
func (c *CampDB) FindUserByEmail(ctx context.Context, email string) (models.UserDocument, error) {
	var user models.UserDocument
	err := c.DB.Collection(UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// InsertUser stores the user document as submitted. A duplicate email is
// rejected by the unique index and surfaced as ErrUserExists.
func (c *CampDB) InsertUser(ctx context.Context, user models.UserDocument) (*models.InsertResult, error) {
	user["_id"] = primitive.NewObjectID()

	res, err := c.DB.Collection(UsersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	c.Log.Info().Str("email", user.Email()).Msg("user created")
	return insertResult(res), nil
}

// PromoteOrganizer sets role=organizer on the matching user.
func (c *CampDB) PromoteOrganizer(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleOrganizer}}

	res, err := c.DB.Collection(UsersCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("error promoting user: %w", err)
	}

	c.Log.Info().Str("id", id.Hex()).Msg("user promoted to organizer")
	return updateResult(res), nil
}

// DeleteUser deletes the matching user. Registrations referencing the user
// are left in place.
func (c *CampDB) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := c.DB.Collection(UsersCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}

	c.Log.Info().Str("id", id.Hex()).Msg("user deleted")
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// GrantOrganizerByEmail sets role=organizer on the user with the given email.
// Used by the seed-organizer command to bootstrap the first organizer.
func (c *CampDB) GrantOrganizerByEmail(ctx context.Context, email string) (*models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"role": models.RoleOrganizer}}

	res, err := c.DB.Collection(UsersCollection).UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return nil, fmt.Errorf("error granting organizer role: %w", err)
	}
	return updateResult(res), nil
}

func insertResult(res *mongo.InsertOneResult) *models.InsertResult {
	result := &models.InsertResult{InsertedID: res.InsertedID}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.InsertedID = oid.Hex()
	}
	return result
}

func updateResult(res *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
