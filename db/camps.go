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

// CampStore is the addCamp collection contract consumed by the services layer.
type CampStore interface {
	ListCamps(ctx context.Context) ([]models.Camp, error)
	ListCampsByOwner(ctx context.Context, email string) ([]models.Camp, error)
	FindCampByID(ctx context.Context, id primitive.ObjectID) (*models.Camp, error)
	InsertCamp(ctx context.Context, camp models.Camp) (*models.InsertResult, error)
	UpdateCamp(ctx context.Context, id primitive.ObjectID, fields models.CampUpdate) (*models.UpdateResult, error)
	DeleteCamp(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// ListCamps retrieves every camp document.
func (c *CampDB) ListCamps(ctx context.Context) ([]models.Camp, error) {
	return c.findCamps(ctx, bson.M{})
}

// ListCampsByOwner retrieves the camps created by the given email.
func (c *CampDB) ListCampsByOwner(ctx context.Context, email string) ([]models.Camp, error) {
	return c.findCamps(ctx, bson.M{"userEmail": email})
}

func (c *CampDB) findCamps(ctx context.Context, filter bson.M) ([]models.Camp, error) {
	cursor, err := c.DB.Collection(CampsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving camps: %w", err)
	}
	defer cursor.Close(ctx)

	camps := []models.Camp{}
	if err := cursor.All(ctx, &camps); err != nil {
		return nil, fmt.Errorf("error decoding camps: %w", err)
	}
	return camps, nil
}

// FindCampByID retrieves one camp by id, or (nil, nil) when no camp matches.
func (c *CampDB) FindCampByID(ctx context.Context, id primitive.ObjectID) (*models.Camp, error) {
	var camp models.Camp
	err := c.DB.Collection(CampsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&camp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving camp: %w", err)
	}
	return &camp, nil
}

// InsertCamp inserts a new camp document.
func (c *CampDB) InsertCamp(ctx context.Context, camp models.Camp) (*models.InsertResult, error) {
	camp.ID = primitive.NewObjectID()

	res, err := c.DB.Collection(CampsCollection).InsertOne(ctx, camp)
	if err != nil {
		return nil, fmt.Errorf("error inserting camp: %w", err)
	}

	c.Log.Info().Str("id", camp.ID.Hex()).Str("name", camp.Name).Msg("camp created")
	return insertResult(res), nil
}

// UpdateCamp replaces the content fields of the matching camp. The creator
// email is never part of the update.
func (c *CampDB) UpdateCamp(ctx context.Context, id primitive.ObjectID, fields models.CampUpdate) (*models.UpdateResult, error) {
	update := bson.M{"$set": fields}

	res, err := c.DB.Collection(CampsCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("error updating camp: %w", err)
	}

	c.Log.Info().Str("id", id.Hex()).Msg("camp updated")
	return updateResult(res), nil
}

// DeleteCamp deletes the matching camp.
func (c *CampDB) DeleteCamp(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := c.DB.Collection(CampsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("error deleting camp: %w", err)
	}

	c.Log.Info().Str("id", id.Hex()).Msg("camp deleted")
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
