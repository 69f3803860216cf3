package mysql

import (
	"Club_Manager/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var list []model.User
	err := r.DB.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *UserRepository) UpdateRole(id uint64, role string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("role", role).Error
}
