package client

import (
	"context"
	"net/http"

	"btickets/models"
)

// UpdateProfile submits the account-settings form and returns the updated
// user record.
func (c *Client) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var reply struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	err := c.do(ctx, &apiCall{
		op:       "update_profile",
		method:   http.MethodPut,
		path:     "/user/profile",
		body:     update,
		out:      &reply,
		fallback: "Profile update failed",
	})
	if err != nil {
		return nil, err
	}
	return &reply.User, nil
}

// UploadProfileImage uploads a base64-encoded image and returns the URL
// the server stored it under.
func (c *Client) UploadProfileImage(ctx context.Context, base64Image string) (string, error) {
	var reply struct {
		Success  bool   `json:"success"`
		ImageURL string `json:"imageUrl"`
	}
	err := c.do(ctx, &apiCall{
		op:     "upload_profile_image",
		method: http.MethodPost,
		path:   "/user/upload-profile-image",
		body: map[string]string{
			"image": base64Image,
		},
		out:      &reply,
		fallback: "Image upload failed",
	})
	if err != nil {
		return "", err
	}
	return reply.ImageURL, nil
}
