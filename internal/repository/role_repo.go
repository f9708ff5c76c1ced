package repository

import (
	"MarketMind/internal/model"
	"context"

	"gorm.io/gorm"
)

type RoleRepo interface {
	GetRoleNamesByUserID(ctx context.Context, userID uint64) ([]string, error)
	GetRoleByName(ctx context.Context, name string) (*model.Role, error)
	AddUserRole(ctx context.Context, userID, roleID uint64) error
	DeleteUserRole(ctx context.Context, userID, roleID uint64) error
}

type RoleRepoImpl struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &RoleRepoImpl{db: db}
}

func (s *RoleRepoImpl) GetRoleNamesByUserID(ctx context.Context, userID uint64) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Table("roles").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names).Error
	return names, err
}

func (s *RoleRepoImpl) GetRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleRepoImpl) AddUserRole(ctx context.Context, userID, roleID uint64) error {
	return s.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (s *RoleRepoImpl) DeleteUserRole(ctx context.Context, userID, roleID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&model.UserRole{}).Error
}
