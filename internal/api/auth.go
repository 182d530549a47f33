package api

import (
	"context"
	"net/http"

	"deadlinehub/pkg/domain"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries every field the registration form collects. Only the
// set matching Role is sent on the wire.
type Registration struct {
	Username string
	Email    string
	Password string
	Role     domain.Role

	// Student fields.
	RollNumber string
	Branch     string
	Group      string
	Subgroup   string

	// Professor fields.
	Department  string
	Designation string
}

type authResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for an identity and a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (domain.User, string, error) {
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, false, creds, &resp); err != nil {
		return domain.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

// Register creates an account. The payload is role-conditional: student
// records carry roll number, branch, group and subgroup; professor records
// carry department and designation. Exactly one set is sent.
func (c *Client) Register(ctx context.Context, reg Registration) (domain.User, string, error) {
	payload := map[string]string{
		"username": reg.Username,
		"email":    reg.Email,
		"password": reg.Password,
		"role":     string(reg.Role),
	}
	switch reg.Role {
	case domain.RoleStudent:
		payload["rollNumber"] = reg.RollNumber
		payload["branch"] = reg.Branch
		payload["group"] = reg.Group
		payload["subgroup"] = reg.Subgroup
	case domain.RoleProfessor:
		payload["department"] = reg.Department
		payload["designation"] = reg.Designation
	}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, false, payload, &resp); err != nil {
		return domain.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

// Me fetches the identity bound to the current credential.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/me", nil, true, nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
