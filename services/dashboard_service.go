package services

import (
	"strconv"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
)

type DashboardService struct {
	repo *repository.DashboardRepository
}

func NewDashboardService(repo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

type Dashboard struct {
	TopItems     []entity.TopItem        `json:"topItems"`
	OrdersByDay  []entity.DayOfWeekCount `json:"ordersByDay"`
	OrdersByHour []entity.TimeOfDayCount `json:"ordersByHour"`
	OrdersByZip  []entity.ZipCodeCount   `json:"ordersByZip"`
}

func (s *DashboardService) Build() (*Dashboard, error) {
	top, err := s.repo.TopItems()
	if err != nil {
		return nil, err
	}
	byDay, err := s.repo.OrdersByDayOfWeek()
	if err != nil {
		return nil, err
	}
	byHour, err := s.repo.OrdersByTimeOfDay()
	if err != nil {
		return nil, err
	}
	for i := range byHour {
		byHour[i].TimeOfDay = HourLabel(byHour[i].TimeOfDay)
	}
	byZip, err := s.repo.OrdersByZipCode()
	if err != nil {
		return nil, err
	}
	return &Dashboard{TopItems: top, OrdersByDay: byDay, OrdersByHour: byHour, OrdersByZip: byZip}, nil
}

// HourLabel turns a 24h bucket ("00".."23") into a 12-hour label ("12 AM",
// "2 PM"). Unparseable buckets pass through unchanged.
func HourLabel(hour24 string) string {
	h, err := strconv.Atoi(hour24)
	if err != nil || h < 0 || h > 23 {
		return hour24
	}
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return strconv.Itoa(h) + " AM"
	case h == 12:
		return "12 PM"
	default:
		return strconv.Itoa(h-12) + " PM"
	}
}
