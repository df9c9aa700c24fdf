package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speech4j/security-service/internal/core/domain"
)

type roleRecord struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;uniqueIndex;size:10;not null"`
}

func (roleRecord) TableName() string { return "roles" }

// userRoleRecord is the join table row. The composite primary key makes a
// duplicate attachment a uniqueness violation rather than a silent second row.
type userRoleRecord struct {
	UserID string `gorm:"column:user_id;primaryKey;size:36"`
	RoleID int    `gorm:"column:role_id;primaryKey"`
}

func (userRoleRecord) TableName() string { return "users_roles" }

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	var records []roleRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	return toDomainRoles(records), nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id int) (*domain.Role, error) {
	var record roleRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{ID: record.ID, Name: record.Name}, nil
}

func (r *RoleRepository) Insert(ctx context.Context, name string) (*domain.Role, error) {
	record := roleRecord{Name: name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return &domain.Role{ID: record.ID, Name: record.Name}, nil
}

func (r *RoleRepository) UpdateByID(ctx context.Context, id int, name string) error {
	err := r.db.WithContext(ctx).
		Model(&roleRecord{}).
		Where("id = ?", id).
		Update("name", name).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

func (r *RoleRepository) DeleteByID(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&userRoleRecord{}).Error; err != nil {
			return fmt.Errorf("delete role assignments: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&roleRecord{}).Error; err != nil {
			return fmt.Errorf("delete role: %w", err)
		}
		return nil
	})
}

func (r *RoleRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Role, error) {
	var records []roleRecord
	err := r.db.WithContext(ctx).
		Table("roles").
		Joins("JOIN users_roles ON users_roles.role_id = roles.id").
		Where("users_roles.user_id = ?", userID).
		Find(&records).
		Error
	if err != nil {
		return nil, fmt.Errorf("find roles by user: %w", err)
	}
	return toDomainRoles(records), nil
}

func (r *RoleRepository) InsertUserRole(ctx context.Context, userID string, roleID int) error {
	record := userRoleRecord{UserID: userID, RoleID: roleID}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrRoleExists
		}
		return fmt.Errorf("insert user role: %w", err)
	}
	return nil
}

func (r *RoleRepository) DeleteUserRole(ctx context.Context, userID string, roleID int) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&userRoleRecord{}).
		Error
	if err != nil {
		return fmt.Errorf("delete user role: %w", err)
	}
	return nil
}

func toDomainRoles(records []roleRecord) []domain.Role {
	roles := make([]domain.Role, len(records))
	for i, rec := range records {
		roles[i] = domain.Role{ID: rec.ID, Name: rec.Name}
	}
	return roles
}
