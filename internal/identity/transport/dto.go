// Package transport defines the wire-level request and response shapes for
// the identity module.
package transport

// CreateOrganisationRequest is the body of POST /organisations.
type CreateOrganisationRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// AddMemberRequest is the body of POST /organisations/:orgId/users.
type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// OrganisationPayload is a single organisation in responses.
type OrganisationPayload struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OrganisationListData wraps the organisations collection payload.
type OrganisationListData struct {
	Organisations []OrganisationPayload `json:"organisations"`
}

// MemberPayload is a single member in the members listing.
type MemberPayload struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// MemberListData wraps the members collection payload.
type MemberListData struct {
	Members []MemberPayload `json:"members"`
}
