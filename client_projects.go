package goConsole

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Project defines a public type used by goConsole APIs.
//
// Project instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Users       []User    `json:"users,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProjectInput defines a public type used by goConsole APIs.
//
// CreateProjectInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectInput defines a public type used by goConsole APIs.
//
// UpdateProjectInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Zero fields are omitted from the request.
type UpdateProjectInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ListProjects describes the listprojects operation and its observable behavior.
//
// ListProjects may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject describes the getproject operation and its observable behavior.
//
// GetProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/project/%d", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject describes the createproject operation and its observable behavior.
//
// CreateProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (*Project, error) {
	if err := validateName("project name", input.Name); err != nil {
		return nil, err
	}

	var project Project
	if err := c.do(ctx, http.MethodPost, "/project", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject describes the updateproject operation and its observable behavior.
//
// UpdateProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) UpdateProject(ctx context.Context, id int64, input UpdateProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/project/%d", id), input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject describes the deleteproject operation and its observable behavior.
//
// DeleteProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/project/%d", id), nil, nil)
}

// AssignUserToProject describes the assignusertoproject operation and its observable behavior.
//
// AssignUserToProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) AssignUserToProject(ctx context.Context, projectID, userID int64) (*Project, error) {
	body := map[string]int64{"userId": userID}
	var project Project
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/project/%d/assign-user", projectID), body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// RemoveUserFromProject describes the removeuserfromproject operation and its observable behavior.
//
// RemoveUserFromProject may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RemoveUserFromProject(ctx context.Context, projectID, userID int64) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/project/%d/remove-user/%d", projectID, userID), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
