package goConsole

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Designation defines a public type used by goConsole APIs.
//
// Designation instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Designation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DesignationInput defines a public type used by goConsole APIs.
//
// DesignationInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type DesignationInput struct {
	Title string `json:"title"`
}

// ListDesignations describes the listdesignations operation and its observable behavior.
//
// ListDesignations may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ListDesignations(ctx context.Context) ([]Designation, error) {
	var designations []Designation
	if err := c.do(ctx, http.MethodGet, "/designation", nil, &designations); err != nil {
		return nil, err
	}
	return designations, nil
}

// GetDesignation describes the getdesignation operation and its observable behavior.
//
// GetDesignation may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) GetDesignation(ctx context.Context, id int64) (*Designation, error) {
	var designation Designation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/designation/%d", id), nil, &designation); err != nil {
		return nil, err
	}
	return &designation, nil
}

// CreateDesignation describes the createdesignation operation and its observable behavior.
//
// CreateDesignation may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) CreateDesignation(ctx context.Context, input DesignationInput) (*Designation, error) {
	if err := validateName("title", input.Title); err != nil {
		return nil, err
	}

	var designation Designation
	if err := c.do(ctx, http.MethodPost, "/designation", input, &designation); err != nil {
		return nil, err
	}
	return &designation, nil
}

// UpdateDesignation describes the updatedesignation operation and its observable behavior.
//
// UpdateDesignation may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) UpdateDesignation(ctx context.Context, id int64, input DesignationInput) (*Designation, error) {
	if err := validateName("title", input.Title); err != nil {
		return nil, err
	}

	var designation Designation
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/designation/%d", id), input, &designation); err != nil {
		return nil, err
	}
	return &designation, nil
}

// DeleteDesignation describes the deletedesignation operation and its observable behavior.
//
// DeleteDesignation may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) DeleteDesignation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/designation/%d", id), nil, nil)
}
