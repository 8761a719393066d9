// Package model provides domain models and DTOs for the team module.
package model

// MemberInfo represents a team member projection in API responses.
type MemberInfo struct {
	UserID string `json:"user_id" gorm:"column:user_id"`
	Name   string `json:"name"    gorm:"column:name"`
	Email  string `json:"email"   gorm:"column:email"`
}

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// UpdateTeamRequest represents the request to update a team. Empty fields keep
// their current value; a non-nil member list replaces the membership set.
type UpdateTeamRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Members     *[]string `json:"members"`
}

// TeamResponse represents a team with its resolved members.
type TeamResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Deleted     bool         `json:"deleted"`
	Members     []MemberInfo `json:"members"`
}

// NewTeamResponse projects a team and its members into the API shape.
func NewTeamResponse(t *Team, members []MemberInfo) *TeamResponse {
	if members == nil {
		members = []MemberInfo{}
	}
	return &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      t.Status,
		Deleted:     t.Deleted,
		Members:     members,
	}
}
