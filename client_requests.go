package goConsole

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RequestType defines a public type used by goConsole APIs.
//
// RequestType instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RequestType string

const (
	// RequestTypeName is an exported constant or variable used by the console client.
	RequestTypeName RequestType = "name"
	// RequestTypeEmail is an exported constant or variable used by the console client.
	RequestTypeEmail RequestType = "email"
	// RequestTypePassword is an exported constant or variable used by the console client.
	RequestTypePassword RequestType = "password"
)

// RequestStatus defines a public type used by goConsole APIs.
//
// RequestStatus instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RequestStatus string

const (
	// RequestStatusPending is an exported constant or variable used by the console client.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusApproved is an exported constant or variable used by the console client.
	RequestStatusApproved RequestStatus = "approved"
	// RequestStatusRejected is an exported constant or variable used by the console client.
	RequestStatusRejected RequestStatus = "rejected"
)

// ChangeRequest is a user-filed request to change an account detail
// that only an admin may approve.
type ChangeRequest struct {
	ID        int64         `json:"id"`
	Type      RequestType   `json:"type"`
	Status    RequestStatus `json:"status"`
	OldValue  string        `json:"oldValue,omitempty"`
	NewValue  string        `json:"newValue"`
	UserID    int64         `json:"userId"`
	User      *User         `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateChangeRequestInput defines a public type used by goConsole APIs.
//
// CreateChangeRequestInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CreateChangeRequestInput struct {
	Type     RequestType `json:"type"`
	NewValue string      `json:"newValue"`
}

// ListMyChangeRequests returns the change requests filed by the current
// session's account.
func (c *Client) ListMyChangeRequests(ctx context.Context) ([]ChangeRequest, error) {
	var requests []ChangeRequest
	if err := c.do(ctx, http.MethodGet, "/request", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAllChangeRequests returns every change request. Admin only; the
// server answers 403 for user sessions.
func (c *Client) ListAllChangeRequests(ctx context.Context) ([]ChangeRequest, error) {
	var requests []ChangeRequest
	if err := c.do(ctx, http.MethodGet, "/request/admin", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CreateChangeRequest describes the createchangerequest operation and its observable behavior.
//
// CreateChangeRequest may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) CreateChangeRequest(ctx context.Context, input CreateChangeRequestInput) (*ChangeRequest, error) {
	switch input.Type {
	case RequestTypeName, RequestTypeEmail, RequestTypePassword:
	default:
		return nil, fmt.Errorf("%w: unknown request type %q", ErrValidation, input.Type)
	}
	if input.NewValue == "" {
		return nil, fmt.Errorf("%w: new value is required", ErrValidation)
	}

	var request ChangeRequest
	if err := c.do(ctx, http.MethodPost, "/request", input, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// ApproveChangeRequest describes the approvechangerequest operation and its observable behavior.
//
// ApproveChangeRequest may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ApproveChangeRequest(ctx context.Context, id int64) (*ChangeRequest, error) {
	var request ChangeRequest
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/request/%d/approve", id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// RejectChangeRequest describes the rejectchangerequest operation and its observable behavior.
//
// RejectChangeRequest may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RejectChangeRequest(ctx context.Context, id int64) (*ChangeRequest, error) {
	var request ChangeRequest
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/request/%d/reject", id), nil, &request); err != nil {
		return nil, err
	}
	return &request, nil
}
