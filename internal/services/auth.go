package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/conduit-backend/internal/data/db"
	"github.com/yungbote/conduit-backend/internal/data/repos"
	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/normalization"
	"github.com/yungbote/conduit-backend/internal/platform/apierr"
	"github.com/yungbote/conduit-backend/internal/platform/ctxutil"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type AuthService interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*types.User, string, error)
	LoginUser(ctx context.Context, email, password string) (*types.User, string, error)
	IssueToken(user *types.User) (string, error)
	HashPassword(password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// JWTClaims carries the identity encoded in access tokens.
type JWTClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	log          *logger.Logger
	userRepo     repos.UserRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	return &authService{
		log:          log.With("service", "AuthService"),
		userRepo:     userRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

func (as *authService) RegisterUser(ctx context.Context, in RegisterInput) (*types.User, string, error) {
	username := strings.TrimSpace(in.Username)
	email := normalization.ParseInputString(in.Email)
	password := in.Password
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, "", apierr.Unprocessable("validation", fmt.Errorf("username, email and password are required"))
	}

	dbc := dbctx.Background(ctx)
	emailTaken, err := as.userRepo.EmailExists(dbc, email, uuid.Nil)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	usernameTaken, err := as.userRepo.UsernameExists(dbc, username, uuid.Nil)
	if err != nil {
		return nil, "", fmt.Errorf("check username: %w", err)
	}
	if emailTaken || usernameTaken {
		return nil, "", apierr.Unprocessable("user_taken", fmt.Errorf("Email or username are taken"))
	}

	hash, err := as.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	created, err := as.userRepo.Create(dbc, []*types.User{{
		Username: username,
		Email:    email,
		Password: hash,
	}})
	if err != nil {
		// Lost a race with a concurrent registration.
		if db.IsUniqueViolation(err, "") {
			return nil, "", apierr.Unprocessable("user_taken", fmt.Errorf("Email or username are taken"))
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}
	user := created[0]
	token, err := as.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	as.log.Info("User registered", "user_id", user.ID)
	return user, token, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
	invalid := apierr.Unprocessable("invalid_credentials", fmt.Errorf("Credential are not valid"))
	email = normalization.ParseInputString(email)
	if email == "" || password == "" {
		return nil, "", invalid
	}
	user, err := as.userRepo.GetByEmail(dbctx.Background(ctx), email)
	if err != nil {
		return nil, "", fmt.Errorf("load user by email: %w", err)
	}
	if user == nil {
		return nil, "", invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", invalid
	}
	token, err := as.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (as *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (as *authService) IssueToken(user *types.User) (string, error) {
	if user == nil || user.ID == uuid.Nil {
		return "", fmt.Errorf("cannot issue token without user")
	}
	now := time.Now()
	claims := JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if as.accessTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(as.accessTTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) parseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token not valid")
	}
	return claims, nil
}

// SetContextFromToken validates the token and attaches the caller identity.
// Tokens for users that no longer exist are rejected.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	claims, err := as.parseToken(tokenString)
	if err != nil {
		as.log.Debug("Token rejected", "error", err)
		return ctx, fmt.Errorf("%w: %v", types.ErrUnauthorized, err)
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ctx, fmt.Errorf("%w: bad id claim", types.ErrUnauthorized)
	}
	user, err := as.userRepo.GetByID(dbctx.Background(ctx), userID)
	if err != nil {
		return ctx, fmt.Errorf("load token user: %w", err)
	}
	if user == nil {
		return ctx, fmt.Errorf("%w: user no longer exists", types.ErrUnauthorized)
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
	}), nil
}
