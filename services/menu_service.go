package services

import (
	"errors"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

func (s *MenuService) TopItems() ([]entity.TopItem, error) {
	return s.repo.TopItems()
}

func (s *MenuService) Create(name, course, description, price string) (*entity.MenuItem, error) {
	item := &entity.MenuItem{Name: name, Course: course, Description: description, Price: price}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites only the fields that were actually submitted; empty
// strings leave the stored value alone.
func (s *MenuService) Update(id uint, name, course, description, price string) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if course != "" {
		updates["course"] = course
	}
	if description != "" {
		updates["description"] = description
	}
	if price != "" {
		updates["price"] = price
	}
	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) (*entity.MenuItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return item, nil
}
