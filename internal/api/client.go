// Package api is the client for the remote resource store: two JSON
// collections, /users and /appointments, with mockapi.io-style CRUD
// semantics. It holds no cache; every call goes to the network.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hospital-portal/internal/model"
	"hospital-portal/pkg/logging"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

func NewClient(baseURL string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// ---- users ----

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	out := &model.User{}
	if err := c.do(ctx, http.MethodPost, "/users", u, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, u model.User) (*model.User, error) {
	out := &model.User{}
	if err := c.do(ctx, http.MethodPut, "/users/"+id, u, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// FindUserByEmail scans the full user collection; there is no dedicated
// endpoint. Returns ErrNotFound when no user has the email.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// ListDoctors is a role projection over the single user collection.
func (c *Client) ListDoctors(ctx context.Context) ([]model.User, error) {
	return c.listByRole(ctx, model.RoleDoctor)
}

func (c *Client) ListPatients(ctx context.Context) ([]model.User, error) {
	return c.listByRole(ctx, model.RolePatient)
}

func (c *Client) listByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// ---- appointments ----

func (c *Client) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	var out []model.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	out := &model.Appointment{}
	if err := c.do(ctx, http.MethodGet, "/appointments/"+id, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, a model.Appointment) (*model.Appointment, error) {
	out := &model.Appointment{}
	if err := c.do(ctx, http.MethodPost, "/appointments", a, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAppointment writes back the full record.
func (c *Client) UpdateAppointment(ctx context.Context, id string, a model.Appointment) (*model.Appointment, error) {
	out := &model.Appointment{}
	if err := c.do(ctx, http.MethodPut, "/appointments/"+id, a, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("store request failed", "op", op, "status", resp.StatusCode)
		return &TransportError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("unmarshal response: %w", err)}
	}
	return nil
}
