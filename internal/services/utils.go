package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MediCampHub/medicamp-services/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// WriteErrResponse writes a JSON response with a specific status code
func WriteErrResponse(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HandleErrResponse maps store errors onto the JSON error envelope
func HandleErrResponse(w http.ResponseWriter, statusCode int, err error) {
	var cmdErr mongo.CommandError
	var response models.Response

	if errors.As(err, &cmdErr) {
		response = models.Response{
			Success:      0,
			ErrorCode:    cmdErr.Name,
			ErrorDetails: cmdErr.Message,
		}
	} else {
		response = models.Response{
			Success:      0,
			ErrorDetails: err.Error(),
		}
	}

	WriteErrResponse(w, statusCode, response)
}

func HandleSuccessResponse(w http.ResponseWriter, statusCode int, headers map[string]string, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	for key, value := range headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
