package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/models"
)

type BookmarkService struct {
	DB *gorm.DB
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{
		DB: db,
	}
}

// Toggle flips the bookmark state for (user, job) and returns the new state:
// true when the job is now bookmarked, false when it was just removed.
func (s *BookmarkService) Toggle(userID, jobID uint) (bool, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apperr.NotFound("Job not found.")
	}
	if err != nil {
		return false, err
	}

	var bookmark models.Bookmark
	err = s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).First(&bookmark).Error
	switch {
	case err == nil:
		if err := s.DB.Delete(&bookmark).Error; err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		bookmark = models.Bookmark{UserID: userID, JobID: jobID}
		if err := s.DB.Create(&bookmark).Error; err != nil {
			// A concurrent toggle won the race; the row exists either way.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return true, nil
			}
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// ListByUser returns one page of the user's bookmarks, newest first.
func (s *BookmarkService) ListByUser(userID uint, page int) ([]models.Bookmark, Pagination, error) {
	var total int64
	err := s.DB.Model(&models.Bookmark{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	pg, offset := paginate(total, page, panelPageSize)

	var bookmarks []models.Bookmark
	err = s.DB.Where("user_id = ?", userID).
		Preload("Job").Preload("Job.Company").
		Order("created_at DESC").
		Limit(pg.PageSize).
		Offset(offset).
		Find(&bookmarks).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	return bookmarks, pg, nil
}
