package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/conduit-backend/internal/domain"
	"github.com/yungbote/conduit-backend/internal/platform/dbctx"
	"github.com/yungbote/conduit-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.User, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*types.User, error)
	GetByEmail(dbc dbctx.Context, email string) (*types.User, error)
	UsernameExists(dbc dbctx.Context, username string, exceptID uuid.UUID) (bool, error)
	EmailExists(dbc dbctx.Context, email string, exceptID uuid.UUID) (bool, error)
	UpdateFields(dbc dbctx.Context, userID uuid.UUID, updates map[string]interface{}) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) tx(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := ur.tx(dbc).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(dbc dbctx.Context, userIDs []uuid.UUID) ([]*types.User, error) {
	results := []*types.User{}
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := ur.tx(dbc).Where("id IN ?", userIDs).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	return ur.takeOne(ur.tx(dbc).Where("id = ?", userID))
}

func (ur *userRepo) GetByUsername(dbc dbctx.Context, username string) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}
	return ur.takeOne(ur.tx(dbc).Where("username = ?", username))
}

func (ur *userRepo) GetByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	return ur.takeOne(ur.tx(dbc).Where("email = ?", email))
}

func (ur *userRepo) UsernameExists(dbc dbctx.Context, username string, exceptID uuid.UUID) (bool, error) {
	return ur.exists(dbc, "username", strings.TrimSpace(username), exceptID)
}

func (ur *userRepo) EmailExists(dbc dbctx.Context, email string, exceptID uuid.UUID) (bool, error) {
	return ur.exists(dbc, "email", strings.TrimSpace(email), exceptID)
}

func (ur *userRepo) UpdateFields(dbc dbctx.Context, userID uuid.UUID, updates map[string]interface{}) error {
	if userID == uuid.Nil {
		return fmt.Errorf("missing user_id")
	}
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return ur.tx(dbc).Model(&types.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (ur *userRepo) takeOne(q *gorm.DB) (*types.User, error) {
	var out types.User
	err := q.Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (ur *userRepo) exists(dbc dbctx.Context, column, value string, exceptID uuid.UUID) (bool, error) {
	if value == "" {
		return false, nil
	}
	q := ur.tx(dbc).Model(&types.User{}).Where(column+" = ?", value)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
