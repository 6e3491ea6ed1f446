package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{
		DB: db,
	}
}

// CompanyDetail is the company page: the profile, one page of its active
// jobs and a couple of headline numbers.
type CompanyDetail struct {
	Company           models.Company `json:"company"`
	Jobs              []models.Job   `json:"jobs"`
	Pagination        Pagination     `json:"pagination"`
	TotalJobs         int64          `json:"total_jobs"`
	TotalApplications int64          `json:"total_applications"`
}

// Detail fetches a company profile with its active jobs, newest first.
func (s *CompanyService) Detail(companyID uint, page int) (*CompanyDetail, error) {
	var company models.Company
	err := s.DB.First(&company, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Company not found.")
	}
	if err != nil {
		return nil, err
	}

	detail := &CompanyDetail{Company: company}

	err = s.DB.Model(&models.Job{}).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Count(&detail.TotalJobs).Error
	if err != nil {
		return nil, err
	}

	pg, offset := paginate(detail.TotalJobs, page, panelPageSize)
	detail.Pagination = pg

	err = s.DB.Where("company_id = ? AND is_active = ?", companyID, true).
		Order("created_at DESC").
		Limit(pg.PageSize).
		Offset(offset).
		Find(&detail.Jobs).Error
	if err != nil {
		return nil, err
	}

	// Applications across every job of this company.
	err = s.DB.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Count(&detail.TotalApplications).Error
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns all companies ordered by name.
func (s *CompanyService) List() ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
