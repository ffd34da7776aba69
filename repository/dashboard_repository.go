package repository

import (
	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/gorm"
)

// DashboardRepository only reads the pre-built aggregate views.
type DashboardRepository struct{ DB *gorm.DB }

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

func (r *DashboardRepository) TopItems() ([]entity.TopItem, error) {
	var rows []entity.TopItem
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *DashboardRepository) OrdersByDayOfWeek() ([]entity.DayOfWeekCount, error) {
	var rows []entity.DayOfWeekCount
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *DashboardRepository) OrdersByTimeOfDay() ([]entity.TimeOfDayCount, error) {
	var rows []entity.TimeOfDayCount
	err := r.DB.Find(&rows).Error
	return rows, err
}

func (r *DashboardRepository) OrdersByZipCode() ([]entity.ZipCodeCount, error) {
	var rows []entity.ZipCodeCount
	err := r.DB.Find(&rows).Error
	return rows, err
}
