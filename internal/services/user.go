package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/normalization"
	"github.com/yungbote/conduit-backend/internal/platform/apierr"
	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	UpdateMe(ctx context.Context, in UpdateUserInput) (*types.User, error)
	GetProfile(ctx context.Context, username string) (*types.User, error)
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Password *string
	Bio      *string
	Image    *string
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	auth     AuthService
}

func NewUserService(log *logger.Logger, userRepo repos.UserRepo, auth AuthService) UserService {
	return &userService{
		log:      log.With("service", "UserService"),
		userRepo: userRepo,
		auth:     auth,
	}
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apierr.Unauthorized("unauthorized", types.ErrUnauthorized)
	}
	return rd.UserID, nil
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	u, err := us.userRepo.GetByID(dbctx.Background(ctx), userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if u == nil {
		return nil, apierr.NotFound("user_not_found", fmt.Errorf("user does not exist"))
	}
	return u, nil
}

func (us *userService) UpdateMe(ctx context.Context, in UpdateUserInput) (*types.User, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	dbc := dbctx.Background(ctx)

	updates := map[string]interface{}{}
	if in.Email != nil {
		email := normalization.ParseInputString(*in.Email)
		if email == "" {
			return nil, apierr.Unprocessable("validation", fmt.Errorf("email should not be empty"))
		}
		taken, err := us.userRepo.EmailExists(dbc, email, userID)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if taken {
			return nil, apierr.Unprocessable("user_taken", fmt.Errorf("Email or username are taken"))
		}
		updates["email"] = email
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, apierr.Unprocessable("validation", fmt.Errorf("username should not be empty"))
		}
		taken, err := us.userRepo.UsernameExists(dbc, username, userID)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if taken {
			return nil, apierr.Unprocessable("user_taken", fmt.Errorf("Email or username are taken"))
		}
		updates["username"] = username
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := us.auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.Image != nil {
		updates["image"] = strings.TrimSpace(*in.Image)
	}

	if len(updates) > 0 {
		if err := us.userRepo.UpdateFields(dbc, userID, updates); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	return us.GetMe(ctx)
}

func (us *userService) GetProfile(ctx context.Context, username string) (*types.User, error) {
	username = strings.TrimSpace(username)
	u, err := us.userRepo.GetByUsername(dbctx.Background(ctx), username)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if u == nil {
		return nil, apierr.NotFound("profile_not_found", fmt.Errorf("Profile does not exist"))
	}
	return u, nil
}
