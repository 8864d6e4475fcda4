package db

import (
	"context"
	"fmt"
	"time"

	"github.com/MediCampHub/medicamp-services/internal/appconfig"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names in the MedicalCamp database.
const (
	UsersCollection         = "users"
	CampsCollection         = "addCamp"
	RegistrationsCollection = "joinCamp"
)

// CampDB wraps the MongoDB client and database handle shared by all stores.
type CampDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Log    *zerolog.Logger
}

// NewCampDB connects to MongoDB using the configured URI and verifies the
// connection with a ping before returning the handle.
func NewCampDB(cfg appconfig.DatabaseConfig, log *zerolog.Logger) (*CampDB, error) {
	if cfg.URI == "" {
		log.Error().Msg("database URI is not configured")
		return nil, fmt.Errorf("database URI is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}

	// Check we are actually connected
	if err := client.Ping(ctx, nil); err != nil {
		log.Error().Err(err).Msg("MongoDB connection failed during ping")
		return nil, err
	}

	return &CampDB{
		Client: client,
		DB:     client.Database(cfg.Name),
		Log:    log,
	}, nil
}

// Close disconnects the client. The handle must not be used afterwards.
func (c *CampDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Client.Disconnect(ctx); err != nil {
		return err
	}
	c.Log.Info().Msg("database connection closed")

	c.Client = nil
	c.DB = nil
	return nil
}

// EnsureIndexes creates the unique index on users.email. The index is what
// makes duplicate user creation safe under concurrent requests: the insert
// itself is the rejection point, not a separate existence check.
func (c *CampDB) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := c.DB.Collection(UsersCollection).Indexes().CreateOne(ctx, indexModel); err != nil {
		c.Log.Error().Err(err).Msg("error creating unique index on users.email")
		return err
	}

	c.Log.Debug().Msg("indexes ensured")
	return nil
}
