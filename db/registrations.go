package db

import (
	"context"
	"fmt"

	"github.com/MediCampHub/medicamp-services/models"
	"go.mongodb.org/mongo-driver/bson"
)

// RegistrationStore is the joinCamp collection contract. Registrations are
// append-only: there is no update or delete.
type RegistrationStore interface {
	ListRegistrations(ctx context.Context) ([]models.Registration, error)
	InsertRegistration(ctx context.Context, reg models.Registration) (*models.InsertResult, error)
}

// ListRegistrations retrieves every join-camp record.
func (c *CampDB) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	cursor, err := c.DB.Collection(RegistrationsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving registrations: %w", err)
	}
	defer cursor.Close(ctx)

	regs := []models.Registration{}
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, fmt.Errorf("error decoding registrations: %w", err)
	}
	return regs, nil
}

// InsertRegistration stores the registration document as submitted.
func (c *CampDB) InsertRegistration(ctx context.Context, reg models.Registration) (*models.InsertResult, error) {
	res, err := c.DB.Collection(RegistrationsCollection).InsertOne(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("error inserting registration: %w", err)
	}

	c.Log.Info().Msg("registration created")
	return insertResult(res), nil
}
