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
	"strconv"

	"github.com/starford/cookbook/internal/models"
)

// Me fetches the current user's profile with their recipes.
func (c *Client) Me(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := c.getJSON(ctx, authRequired, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicProfile fetches another user's public profile and recipes.
func (c *Client) PublicProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	var out models.Profile
	if err := c.getJSON(ctx, authOptional, "/users/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate carries the changed profile fields. Nil string pointers mean
// "leave as is"; PhotoPath, when set, names a local image to upload as the
// new avatar.
type ProfileUpdate struct {
	Nickname  *string
	FullName  *string
	PhotoPath string
}

// UpdateProfile patches the current user's profile via multipart form.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if upd.Nickname != nil {
		if err := mw.WriteField("nickname", *upd.Nickname); err != nil {
			return nil, fmt.Errorf("api: encode nickname: %w", err)
		}
	}
	if upd.FullName != nil {
		if err := mw.WriteField("full_name", *upd.FullName); err != nil {
			return nil, fmt.Errorf("api: encode full_name: %w", err)
		}
	}
	if upd.PhotoPath != "" {
		if err := writeFilePart(mw, "photo", upd.PhotoPath); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("api: close multipart: %w", err)
	}

	var out models.User
	if err := c.do(ctx, authRequired, http.MethodPatch, "/users/me", nil, mw.FormDataContentType(), buf.Bytes(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar replaces the current user's avatar and returns the stored
// photo URL.
func (c *Client) UploadAvatar(ctx context.Context, path string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writeFilePart(mw, "file", path); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("api: close multipart: %w", err)
	}

	var out struct {
		PhotoPath string `json:"photo_path"`
	}
	if err := c.do(ctx, authRequired, http.MethodPost, "/users/me/photo", nil, mw.FormDataContentType(), buf.Bytes(), &out); err != nil {
		return "", err
	}
	return out.PhotoPath, nil
}

// DeleteAvatar removes the current user's avatar.
func (c *Client) DeleteAvatar(ctx context.Context) error {
	return c.do(ctx, authRequired, http.MethodDelete, "/users/me/photo", nil, "", nil, nil)
}

// ChangePassword replaces the current user's password after the service
// verifies the old one.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	var resp messageResponse
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	if err := c.postJSON(ctx, authRequired, http.MethodPost, "/users/me/change-password", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func writeFilePart(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("api: open %s: %w", path, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("api: create %s part: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("api: copy %s: %w", path, err)
	}
	return nil
}
