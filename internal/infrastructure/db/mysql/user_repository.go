package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speech4j/security-service/internal/core/domain"
)

// userRecord is the storage shape of a user. Mapping to and from the domain
// type is explicit so the immutable-column contract stays visible in code.
type userRecord struct {
	ID           string `gorm:"column:id;primaryKey;size:36"`
	Email        string `gorm:"column:email;uniqueIndex;size:64;not null"`
	Username     string `gorm:"column:username;uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"column:password;size:255;not null"`
}

func (userRecord) TableName() string { return "users" }

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindPage(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var records []userRecord
	if err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find users page: %w", err)
	}

	users := make([]domain.User, len(records))
	for i := range records {
		users[i] = *toDomainUser(&records[i])
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	record := userRecord{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// UpdateByID writes the two mutable columns only; id and email never appear
// in the update set.
func (r *UserRepository) UpdateByID(ctx context.Context, id, username, passwordHash string) error {
	err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "password": passwordHash}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteByID removes a user and their role assignments. Zero rows affected is
// not an error: deleting an absent user is a no-op.
func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&userRoleRecord{}).Error; err != nil {
			return fmt.Errorf("delete user roles: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&userRecord{}).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var record userRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&record), nil
}

func toDomainUser(rec *userRecord) *domain.User {
	return &domain.User{
		ID:           rec.ID,
		Username:     rec.Username,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
	}
}
