package repository

import (
	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	UpdateRating(tx *gorm.DB, userID uint, rating float64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRating(tx *gorm.DB, userID uint, rating float64) error {
	return tx.Model(&model.User{}).Where("id = ?", userID).Update("rating", rating).Error
}
