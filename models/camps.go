package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Camp represents a medical camp document in the addCamp collection.
// Content fields are kept as strings so values round-trip exactly as the
// client submitted them.
type Camp struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Date        string             `bson:"date" json:"date"`
	Audience    string             `bson:"audience" json:"audience"`
	Fees        string             `bson:"fees" json:"fees"`
	Health      string             `bson:"health" json:"health"`
	Location    string             `bson:"location" json:"location"`
	Service     string             `bson:"service" json:"service"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	UserEmail   string             `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
}

// CampUpdate carries the replaceable content fields of a camp. The creator
// email is deliberately absent: updates never reassign ownership.
type CampUpdate struct {
	Name        string `bson:"name" json:"name"`
	Date        string `bson:"date" json:"date"`
	Audience    string `bson:"audience" json:"audience"`
	Fees        string `bson:"fees" json:"fees"`
	Health      string `bson:"health" json:"health"`
	Location    string `bson:"location" json:"location"`
	Service     string `bson:"service" json:"service"`
	Description string `bson:"description" json:"description"`
	Image       string `bson:"image" json:"image"`
}
