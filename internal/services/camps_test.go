package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MediCampHub/medicamp-services/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListAllCampsService(t *testing.T) {
	store := new(MockCampStore)
	store.On("ListCamps", mock.Anything).Return([]models.Camp{
		{Name: "Eye Care Camp"},
		{Name: "Dental Camp"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addCampAll", nil)
	w := httptest.NewRecorder()

	ListAllCampsService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var camps []models.Camp
	err := json.NewDecoder(w.Body).Decode(&camps)
	assert.NoError(t, err)
	assert.Len(t, camps, 2)
}

func TestListCampsByOwnerService(t *testing.T) {
	store := new(MockCampStore)
	store.On("ListCampsByOwner", mock.Anything, "a@x.com").Return([]models.Camp{
		{Name: "Eye Care Camp", UserEmail: "a@x.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addCamp?email=a%40x.com", nil)
	w := httptest.NewRecorder()

	ListCampsByOwnerService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var camps []models.Camp
	err := json.NewDecoder(w.Body).Decode(&camps)
	assert.NoError(t, err)
	assert.Len(t, camps, 1)
	assert.Equal(t, "a@x.com", camps[0].UserEmail)
}

func TestGetCampService_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	camp := &models.Camp{
		ID:          id,
		Name:        "Eye Care Camp",
		Date:        "2024-03-01",
		Audience:    "Adults",
		Fees:        "50",
		Health:      "Dr. Rahman",
		Location:    "Dhaka",
		Service:     "Eye checkup",
		Description: "Free annual eye camp",
		Image:       "https://example.com/camp.jpg",
		UserEmail:   "a@x.com",
	}

	store := new(MockCampStore)
	store.On("FindCampByID", mock.Anything, id).Return(camp, nil)

	req := httptest.NewRequest(http.MethodGet, "/addCamp/{id}", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()

	GetCampService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Camp
	err := json.NewDecoder(w.Body).Decode(&got)
	assert.NoError(t, err)
	assert.Equal(t, *camp, got)
}

func TestGetCampService_NotFoundIsNull(t *testing.T) {
	id := primitive.NewObjectID()

	store := new(MockCampStore)
	store.On("FindCampByID", mock.Anything, id).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/addCamp/{id}", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()

	GetCampService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null\n", w.Body.String())
}

func TestGetCampService_MalformedID(t *testing.T) {
	store := new(MockCampStore)

	req := httptest.NewRequest(http.MethodGet, "/addCamp/{id}", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()

	GetCampService(store, w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "FindCampByID", mock.Anything, mock.Anything)
}

func TestCreateCampService(t *testing.T) {
	store := new(MockCampStore)
	store.On("InsertCamp", mock.Anything, mock.MatchedBy(func(c models.Camp) bool {
		return c.Name == "Eye Care Camp" && c.UserEmail == "a@x.com"
	})).Return(&models.InsertResult{InsertedID: "65b2f1c0a1b2c3d4e5f60718"}, nil)

	body := bytes.NewBufferString(`{"name":"Eye Care Camp","userEmail":"a@x.com","fees":"50"}`)
	req := httptest.NewRequest(http.MethodPost, "/addCamp", body)
	w := httptest.NewRecorder()

	CreateCampService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.InsertResult
	err := json.NewDecoder(w.Body).Decode(&result)
	assert.NoError(t, err)
	assert.Equal(t, "65b2f1c0a1b2c3d4e5f60718", result.InsertedID)
}

func TestUpdateCampService(t *testing.T) {
	id := primitive.NewObjectID()
	fields := models.CampUpdate{
		Name:        "Eye Care Camp",
		Date:        "2024-04-01",
		Audience:    "Everyone",
		Fees:        "0",
		Health:      "Dr. Rahman",
		Location:    "Chittagong",
		Service:     "Eye checkup",
		Description: "Rescheduled",
		Image:       "https://example.com/camp.jpg",
	}

	store := new(MockCampStore)
	store.On("UpdateCamp", mock.Anything, id, fields).
		Return(&models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	payload, err := json.Marshal(fields)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/addCamp/{id}", bytes.NewBuffer(payload))
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()

	UpdateCampService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.UpdateResult
	err = json.NewDecoder(w.Body).Decode(&result)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(1), result.ModifiedCount)
}

func TestUpdateCampService_MalformedID(t *testing.T) {
	store := new(MockCampStore)

	req := httptest.NewRequest(http.MethodPatch, "/addCamp/{id}", bytes.NewBufferString(`{}`))
	req = mux.SetURLVars(req, map[string]string{"id": "bad"})
	w := httptest.NewRecorder()

	UpdateCampService(store, w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "UpdateCamp",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCampService(t *testing.T) {
	id := primitive.NewObjectID()

	store := new(MockCampStore)
	store.On("DeleteCamp", mock.Anything, id).
		Return(&models.DeleteResult{DeletedCount: 1}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/addCamp/{id}", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	w := httptest.NewRecorder()

	DeleteCampService(store, w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.DeleteResult
	err := json.NewDecoder(w.Body).Decode(&result)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}

func TestDeleteCampService_MalformedID(t *testing.T) {
	store := new(MockCampStore)

	req := httptest.NewRequest(http.MethodDelete, "/addCamp/{id}", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-an-object-id"})
	w := httptest.NewRecorder()

	DeleteCampService(store, w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "DeleteCamp", mock.Anything, mock.Anything)
}
