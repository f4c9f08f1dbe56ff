package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Account, error)
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	FindByEmailOrOAuthID(ctx context.Context, email, oauthID string) (*dbm.Account, error)
	Create(ctx context.Context, account *dbm.Account) error
	Update(ctx context.Context, account *dbm.Account) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *accountRepository) FindByEmailOrOAuthID(ctx context.Context, email, oauthID string) (*dbm.Account, error) {
	return r.findOne(ctx, "email = ? OR oauth_provider_id = ?", email, oauthID)
}

func (r *accountRepository) findOne(ctx context.Context, query string, args ...interface{}) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where(query, args...).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Create(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) Update(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}
