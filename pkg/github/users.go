package github

import "context"

// FetchUser retrieves the authenticated user's profile. It doubles as
// the credential check at startup: a failure here means the token is
// unusable.
func (c *Client) FetchUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.api.Get(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
