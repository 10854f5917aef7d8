package repository

import (
	"vita-server/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id int) (*entity.User, error)
	FindByCRM(db *gorm.DB, crm string) (*entity.User, error)
}
