package github

import "context"

// ListNotifications returns the authenticated user's notification inbox.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.api.Get(ctx, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationsRead marks the entire inbox as read. The call is
// idempotent: it succeeds even when there is nothing left to mark.
func (c *Client) MarkNotificationsRead(ctx context.Context) error {
	return c.api.Put(ctx, "/notifications", nil, nil)
}
