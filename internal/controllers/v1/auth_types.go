package v1

import (
	"github.com/google/uuid"
	"github.com/niaga/backend/internal/models"
)

// RegisterRequest is the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" example:"Ramesh Kumar"`           // Display name
	Mobile   string `json:"mobile" example:"9876543210"`           // Contact number
	Email    string `json:"email" example:"ramesh@example.com"`    // Email, the unique login identifier
	Password string `json:"password" example:"correct horse"`      // Password, stored as a salted hash
}

type RegisterResponse struct {
	Data  *Profile `json:"data"`  // The created user
	Error *string  `json:"error"` // The error, if any occurred
}

// LoginRequest is the payload for requesting a credential.
type LoginRequest struct {
	Email    string `json:"email" example:"ramesh@example.com"`
	Password string `json:"password" example:"correct horse"`
}

// Credential is the issued token together with the client bootstrap flags.
type Credential struct {
	Token            string    `json:"token"`            // Opaque credential for the x-auth-token header
	User             LoginUser `json:"user"`             // The user the credential was issued for
	IsPersonalized   bool      `json:"isPersonalized"`   // Whether the personalization flow was completed
	IsBudgetAssigned bool      `json:"isBudgetAssigned"` // Whether a budget period is active
}

type LoginUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type LoginResponse struct {
	Data  *Credential `json:"data"`  // The issued credential
	Error *string     `json:"error"` // The error, if any occurred
}

func newCredential(session models.Session, user models.User) Credential {
	return Credential{
		Token: session.Token,
		User: LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		IsPersonalized:   user.IsPersonalized(),
		IsBudgetAssigned: user.IsBudgetAssigned,
	}
}
