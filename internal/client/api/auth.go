package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vpotapovs/roamer/internal/client/models"
)

// TokenPair is the access/refresh credential pair issued by the backend.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthPayload is the common response of register/login/refresh.
type AuthPayload struct {
	User   models.User `json:"user"`
	Tokens TokenPair   `json:"tokens"`
}

// RegisterParams carries the signup form. AvatarPath, when non-empty, points
// to a local image file and switches the request to multipart/form-data.
type RegisterParams struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`

	AvatarPath string `json:"-"`
}

// Register creates an account. With an avatar the body is multipart,
// otherwise plain JSON.
func (c *Client) Register(ctx context.Context, p RegisterParams) (*AuthPayload, error) {
	if p.AvatarPath == "" {
		var out AuthPayload
		if err := c.do(ctx, http.MethodPost, "/auth/register", nil, p, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return c.registerMultipart(ctx, p)
}

func (c *Client) registerMultipart(ctx context.Context, p RegisterParams) (*AuthPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":     p.Name,
		"username": p.Username,
		"email":    p.Email,
		"password": p.Password,
		"phone":    p.Phone,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}

	f, err := os.Open(p.AvatarPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open avatar file: %w", err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("avatar", filepath.Base(p.AvatarPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to copy avatar data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/register", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out AuthPayload
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token pair and the user profile.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a refresh token for a fresh pair plus the user snapshot.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthPayload, error) {
	var out AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, refreshRequest{RefreshToken: refreshToken}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
