package schoolsvc

import (
	"context"
	"net/http"

	"github.com/trezcool/shule/core/school"
)

// LoginResult is the payload of a successful POST /login.
type LoginResult struct {
	Token   string      `json:"token"`
	User    school.User `json:"user"`
	Message string      `json:"message"`
}

// Login exchanges credentials for a token and user profile.
func (c *Client) Login(ctx context.Context, creds school.Credentials) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/login", "", creds, &res)
	return res, err
}

// Logout invalidates the token server-side. Best effort; the local session
// is torn down regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", token, nil, nil)
}
