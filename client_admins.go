package goConsole

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Admin defines a public type used by goConsole APIs.
//
// Admin instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Admin struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateAdminInput defines a public type used by goConsole APIs.
//
// UpdateAdminInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Zero fields are omitted from the request.
type UpdateAdminInput struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ListAdmins describes the listadmins operation and its observable behavior.
//
// ListAdmins may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var admins []Admin
	if err := c.do(ctx, http.MethodGet, "/admin", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// GetAdmin describes the getadmin operation and its observable behavior.
//
// GetAdmin may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) GetAdmin(ctx context.Context, id int64) (*Admin, error) {
	var admin Admin
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/%d", id), nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateAdmin describes the updateadmin operation and its observable behavior.
//
// UpdateAdmin may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) UpdateAdmin(ctx context.Context, id int64, input UpdateAdminInput) (*Admin, error) {
	var admin Admin
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/%d", id), input, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// DeleteAdmin describes the deleteadmin operation and its observable behavior.
//
// DeleteAdmin may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/%d", id), nil, nil)
}
