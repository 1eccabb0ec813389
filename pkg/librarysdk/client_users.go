package librarysdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*UserInfo, error) {
	u, err := do[UserInfo](ctx, c, http.MethodPost, "/v1/users/signup", nil, req)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) SignIn(ctx context.Context, username, password string) (*UserInfo, error) {
	u, err := do[UserInfo](ctx, c, http.MethodPost, "/v1/users/login", nil,
		SignInRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserInfo, error) {
	u, err := do[UserInfo](ctx, c, http.MethodPut, "/v1/users", nil, req)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*UserInfo, error) {
	u, err := do[UserInfo](ctx, c, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]UserInfo, error) {
	return do[[]UserInfo](ctx, c, http.MethodGet, "/v1/users", nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := do[any](ctx, c, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil, nil)
	return err
}
