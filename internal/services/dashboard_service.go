package services

import (
	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/models"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		DB: db,
	}
}

// StatusCount is one row of the per-status application breakdown.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Dashboard aggregates the signed-in user's activity plus site-wide
// popular and recent jobs.
type Dashboard struct {
	ApplicationsCount    int64         `json:"applications_count"`
	BookmarksCount       int64         `json:"bookmarks_count"`
	ApplicationsByStatus []StatusCount `json:"applications_by_status"`
	PopularJobs          []models.Job  `json:"popular_jobs"`
	RecentJobs           []models.Job  `json:"recent_jobs"`
}

func (s *DashboardService) ForUser(userID uint) (*Dashboard, error) {
	d := &Dashboard{}

	err := s.DB.Model(&models.Application{}).
		Where("user_id = ?", userID).
		Count(&d.ApplicationsCount).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&d.BookmarksCount).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&d.ApplicationsByStatus).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Preload("Company").
		Where("is_active = ?", true).
		Order("views_count DESC").
		Limit(5).
		Find(&d.PopularJobs).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Preload("Company").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(5).
		Find(&d.RecentJobs).Error
	if err != nil {
		return nil, err
	}
	return d, nil
}
