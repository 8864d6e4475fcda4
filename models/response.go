package models

// Response represents a generic API error response structure.
type Response struct {
	Success      int         `json:"success"`
	ErrorCode    string      `json:"error_code,omitempty"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// InsertResult mirrors the store's insert acknowledgement. InsertedID is the
// hex form of the new document id, or null with a message when a duplicate
// user insert was rejected.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
	Message    string      `json:"message,omitempty"`
}

// UpdateResult mirrors the store's update acknowledgement.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the store's delete acknowledgement.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// TokenResponse carries a freshly issued credential.
type TokenResponse struct {
	Token string `json:"token"`
}
