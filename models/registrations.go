package models

// Registration is a join-camp record. The participant payload is opaque to
// the service and stored exactly as submitted, so the document is a free-form
// map rather than a fixed struct.
type Registration map[string]interface{}
