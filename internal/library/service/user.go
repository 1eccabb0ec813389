package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/cryptox"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/aussiebroadwan/stacks/pkg/slogx"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 64
)

var ErrAlreadyInitialized = errors.New("users already exist")

type SignUpRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Gender    string
	Role      string
}

// UpdateProfileRequest merges into the user named by Username. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Username  string
	Password  *string
	FirstName *string
	LastName  *string
	Gender    *string
}

type UserService struct {
	Store store.Store
}

func validateUsername(username string) error {
	if username == "" {
		return badRequest("username is required")
	}
	if len(username) > maxUsernameLength || strings.ContainsAny(username, " \t\r\n") {
		return badRequest("username must be at most %d characters with no whitespace", maxUsernameLength)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return badRequest("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// SignUp creates an account. Usernames are unique and case-sensitive.
func (s *UserService) SignUp(ctx context.Context, req SignUpRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := validateUsername(req.Username); err != nil {
		return domain.User{}, err
	}
	if err := validatePassword(req.Password); err != nil {
		return domain.User{}, err
	}
	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return domain.User{}, badRequest("role must be one of ADMIN, LIBRARIAN, MEMBER")
	}
	gender, ok := domain.ParseGender(req.Gender)
	if !ok {
		return domain.User{}, badRequest("gender must be one of MALE, FEMALE, OTHER")
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, internal("failed to create user", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Gender:       gender,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("signup with taken username", slog.String("username", req.Username))
			return domain.User{}, badRequest("user already exists")
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, internal("failed to create user", err)
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

// UpdateProfile is a field-level merge: only the non-nil fields of req
// change. A new password is re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := findUserByUsername(ctx, tx, req.Username)
		if err != nil {
			return err
		}
		if existing == nil {
			return badRequest("user does not exist")
		}
		u := *existing

		if req.Password != nil {
			if err := validatePassword(*req.Password); err != nil {
				return err
			}
			hash, err := cryptox.HashPassword(*req.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
		}
		if req.FirstName != nil {
			u.FirstName = strings.TrimSpace(*req.FirstName)
		}
		if req.LastName != nil {
			u.LastName = strings.TrimSpace(*req.LastName)
		}
		if req.Gender != nil {
			g, ok := domain.ParseGender(*req.Gender)
			if !ok {
				return badRequest("gender must be one of MALE, FEMALE, OTHER")
			}
			u.Gender = g
		}

		u.UpdatedAt = time.Now().UTC()
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		err = asServiceError("failed to update user", err)
		if errors.Is(err, ErrInternal) {
			log.Error("failed to update user", slog.String("username", req.Username), slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("user updated", slog.String("user_id", updated.ID))
	return updated, nil
}

// SignIn checks a username and password. Unknown users and wrong passwords
// produce the same error and take the same time.
func (s *UserService) SignIn(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)
	const invalid = "invalid username or password"

	u, err := findUserByUsername(ctx, s.Store, username)
	if err != nil {
		log.Error("failed to load user", slog.Any("error", err))
		return domain.User{}, internal("failed to sign in", err)
	}
	if u == nil {
		cryptox.BurnVerify(password)
		log.Warn("sign in for unknown user", slog.String("username", username))
		return domain.User{}, badRequest(invalid)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("sign in with wrong password", slog.String("username", username))
			return domain.User{}, badRequest(invalid)
		}
		log.Error("stored password hash unreadable", slog.String("user_id", u.ID), slog.Any("error", err))
		return domain.User{}, internal("failed to sign in", err)
	}

	log.Info("user signed in", slog.String("user_id", u.ID))
	return *u, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, badRequest("user does not exist")
	}
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load user", slog.Any("error", err))
		return domain.User{}, internal("failed to load user", err)
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", slog.Any("error", err))
		return nil, internal("failed to list users", err)
	}
	return users, nil
}

// DeleteUser removes an account. Loan records keep the username.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.Users().DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return badRequest("user does not exist")
	}
	if err != nil {
		log.Error("failed to delete user", slog.String("user_id", id), slog.Any("error", err))
		return internal("failed to delete user", err)
	}

	log.Info("user deleted", slog.String("user_id", id))
	return nil
}

// EnsureAdmin creates the first catalog editor. It returns
// ErrAlreadyInitialized once any user exists.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (domain.User, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return domain.User{}, internal("failed to check users", err)
	}
	if !empty {
		return domain.User{}, ErrAlreadyInitialized
	}
	return s.SignUp(ctx, SignUpRequest{
		Username: username,
		Password: password,
		Role:     string(domain.RoleAdmin),
	})
}
