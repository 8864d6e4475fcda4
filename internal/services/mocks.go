package services

import (
	"context"

	"github.com/MediCampHub/medicamp-services/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ListUsers(ctx context.Context) ([]models.UserDocument, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.UserDocument), args.Error(1)
}

func (m *MockUserStore) FindUserByEmail(ctx context.Context, email string) (models.UserDocument, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.UserDocument), args.Error(1)
}

func (m *MockUserStore) InsertUser(ctx context.Context, user models.UserDocument) (*models.InsertResult, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}

func (m *MockUserStore) PromoteOrganizer(ctx context.Context, id primitive.ObjectID) (*models.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateResult), args.Error(1)
}

func (m *MockUserStore) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

func (m *MockUserStore) GrantOrganizerByEmail(ctx context.Context, email string) (*models.UpdateResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateResult), args.Error(1)
}

type MockCampStore struct {
	mock.Mock
}

func (m *MockCampStore) ListCamps(ctx context.Context) ([]models.Camp, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Camp), args.Error(1)
}

func (m *MockCampStore) ListCampsByOwner(ctx context.Context, email string) ([]models.Camp, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Camp), args.Error(1)
}

func (m *MockCampStore) FindCampByID(ctx context.Context, id primitive.ObjectID) (*models.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Camp), args.Error(1)
}

func (m *MockCampStore) InsertCamp(ctx context.Context, camp models.Camp) (*models.InsertResult, error) {
	args := m.Called(ctx, camp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}

func (m *MockCampStore) UpdateCamp(ctx context.Context, id primitive.ObjectID, fields models.CampUpdate) (*models.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UpdateResult), args.Error(1)
}

func (m *MockCampStore) DeleteCamp(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Registration), args.Error(1)
}

func (m *MockRegistrationStore) InsertRegistration(ctx context.Context, reg models.Registration) (*models.InsertResult, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsertResult), args.Error(1)
}
