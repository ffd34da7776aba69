package repository

import (
	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Address").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveAddress upserts the user's single delivery address.
func (r *UserRepository) SaveAddress(userID uint, addr *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.First(&u, userID).Error; err != nil {
			return err
		}
		if u.AddressID != nil {
			addr.ID = *u.AddressID
			return tx.Model(&entity.Address{}).Where("id = ?", addr.ID).
				Updates(map[string]any{
					"street1":  addr.Street1,
					"street2":  addr.Street2,
					"city":     addr.City,
					"state":    addr.State,
					"zip_code": addr.ZipCode,
				}).Error
		}
		if err := tx.Create(addr).Error; err != nil {
			return err
		}
		return tx.Model(&u).Update("address_id", addr.ID).Error
	})
}
