package models

// RoleOrganizer is the elevated role required to list and mutate users.
const RoleOrganizer = "organizer"

// UserDocument is a user record in the users collection. Profile fields are
// opaque to the service and stored exactly as submitted; only the email and
// role keys carry meaning here, so the document is a free-form map with
// typed accessors for the fields the gates read.
type UserDocument map[string]interface{}

// Email returns the user's email, or "" when the field is absent.
func (d UserDocument) Email() string {
	email, _ := d["email"].(string)
	return email
}

// Role returns the user's role, or "" when the field is absent.
func (d UserDocument) Role() string {
	role, _ := d["role"].(string)
	return role
}

// IsOrganizer reports whether the user holds the organizer role. Safe on a
// nil document, which represents an absent user.
func (d UserDocument) IsOrganizer() bool {
	return d.Role() == RoleOrganizer
}

// OrganizerResponse is the body of the organizer self-check route.
type OrganizerResponse struct {
	Organizer bool `json:"organizer"`
}
