package http

import (
	"net/http"

	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/librarysdk"
)

// UsersHandler serves sign-up, sign-in, profile updates and user admin.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleSignUp handles POST /v1/users/signup
//
//	@Summary		Sign Up
//	@Description	Registers a user with one of the ADMIN, LIBRARIAN or MEMBER roles.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		librarysdk.SignUpRequest	true	"New user"
//	@Success		200		{object}	librarysdk.Response[librarysdk.UserInfo]
//	@Failure		400		{object}	librarysdk.Response[any]	"invalid fields or duplicate username"
//	@Router			/v1/users/signup [post].
func (h *UsersHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req librarysdk.SignUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	user, err := h.UserService.SignUp(r.Context(), service.SignUpRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		Role:      req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "User added successfully", toUserInfo(user))
}

// HandleSignIn handles POST /v1/users/login
//
//	@Summary	Sign In
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		librarysdk.SignInRequest	true	"Credentials"
//	@Success	200		{object}	librarysdk.Response[librarysdk.UserInfo]
//	@Failure	400		{object}	librarysdk.Response[any]	"invalid username or password"
//	@Router		/v1/users/login [post].
func (h *UsersHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req librarysdk.SignInRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	user, err := h.UserService.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "User logged in successfully", toUserInfo(user))
}

// HandleUpdateProfile handles PUT /v1/users
//
//	@Summary		Update Profile
//	@Description	Merges the supplied fields into the named user; omitted fields are kept.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		librarysdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	librarysdk.Response[librarysdk.UserInfo]
//	@Failure		400		{object}	librarysdk.Response[any]
//	@Router			/v1/users [put].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req librarysdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), service.UpdateProfileRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "User updated successfully", toUserInfo(user))
}

// HandleList handles GET /v1/users
//
//	@Summary	List Users
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	librarysdk.Response[[]librarysdk.UserInfo]
//	@Router		/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	infos := make([]librarysdk.UserInfo, len(users))
	for i, u := range users {
		infos[i] = toUserInfo(u)
	}
	writeOK(w, "Users retrieved successfully", infos)
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary	Get User
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User ID (ULID)"
//	@Success	200	{object}	librarysdk.Response[librarysdk.UserInfo]
//	@Failure	400	{object}	librarysdk.Response[any]	"unknown user"
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "User detail retrieved successfully", toUserInfo(user))
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary	Delete User
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User ID (ULID)"
//	@Success	200	{object}	librarysdk.Response[any]
//	@Failure	400	{object}	librarysdk.Response[any]	"unknown user"
//	@Router		/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "User deleted successfully", nil)
}
