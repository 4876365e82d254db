package goConsole

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// User defines a public type used by goConsole APIs.
//
// User instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type User struct {
	ID            int64        `json:"id"`
	FirstName     string       `json:"firstName"`
	LastName      string       `json:"lastName"`
	Email         string       `json:"email"`
	Designation   *Designation `json:"designation,omitempty"`
	DesignationID int64        `json:"designationId,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// CreateUserInput defines a public type used by goConsole APIs.
//
// CreateUserInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CreateUserInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	DesignationID int64  `json:"designationId,omitempty"`
}

// UpdateUserInput defines a public type used by goConsole APIs.
//
// UpdateUserInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Zero fields are omitted from the request, so an empty input is a no-op
// on the server.
type UpdateUserInput struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	DesignationID int64  `json:"designationId,omitempty"`
}

// ListUsers describes the listusers operation and its observable behavior.
//
// ListUsers may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser describes the getuser operation and its observable behavior.
//
// GetUser may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser describes the createuser operation and its observable behavior.
//
// CreateUser may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := validateName("first name", input.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last name", input.LastName); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	var user User
	if err := c.do(ctx, http.MethodPost, "/user", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser describes the updateuser operation and its observable behavior.
//
// UpdateUser may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/user/%d", id), input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser describes the deleteuser operation and its observable behavior.
//
// DeleteUser may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil, nil)
}
