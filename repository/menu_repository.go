package repository

import (
	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("course, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) TopItems() ([]entity.TopItem, error) {
	var rows []entity.TopItem
	err := r.DB.Find(&rows).Error
	return rows, err
}
