package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/dtos"
	"github.com/Mahesh20s/job-portal/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// JobDetail is everything the job page needs in one fetch.
type JobDetail struct {
	Job          models.Job   `json:"job"`
	IsBookmarked bool         `json:"is_bookmarked"`
	HasApplied   bool         `json:"has_applied"`
	RelatedJobs  []models.Job `json:"related_jobs"`
}

// FilterOptions holds the distinct values present across jobs, used to
// populate the search form controls.
type FilterOptions struct {
	JobTypes         []string `json:"job_types"`
	ExperienceLevels []string `json:"experience_levels"`
	Locations        []string `json:"locations"`
}

// filtered builds a fresh active-jobs query with the filter applied. Search
// is an OR across title, company name and location; everything else ANDs.
func (s *JobService) filtered(f *dtos.JobFilter) *gorm.DB {
	q := s.DB.Model(&models.Job{}).
		Joins("JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.is_active = ?", true)

	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(jobs.title) LIKE ? OR LOWER(companies.name) LIKE ? OR LOWER(jobs.location) LIKE ?",
			like, like, like,
		)
	}
	if f.JobType != "" {
		q = q.Where("jobs.job_type = ?", f.JobType)
	}
	if f.ExperienceLevel != "" {
		q = q.Where("jobs.experience_level = ?", f.ExperienceLevel)
	}
	if f.Location != "" {
		q = q.Where("LOWER(jobs.location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.MinSalary != nil {
		q = q.Where("jobs.salary_min >= ?", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		q = q.Where("jobs.salary_max <= ?", *f.MaxSalary)
	}
	return q
}

// List returns one page of active jobs matching the filter, newest first.
func (s *JobService) List(f *dtos.JobFilter) ([]models.Job, Pagination, error) {
	var total int64
	if err := s.filtered(f).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}
	pg, offset := paginate(total, f.Page, listingPageSize)

	var jobs []models.Job
	err := s.filtered(f).
		Preload("Company").
		Order("jobs.created_at DESC").
		Limit(pg.PageSize).
		Offset(offset).
		Find(&jobs).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	return jobs, pg, nil
}

// FilterOptions returns the distinct job types, experience levels and
// locations currently present, for the search form.
func (s *JobService) FilterOptions() (*FilterOptions, error) {
	opts := &FilterOptions{}
	if err := s.DB.Model(&models.Job{}).Distinct().Pluck("job_type", &opts.JobTypes).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Distinct().Pluck("experience_level", &opts.ExperienceLevels).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Distinct().Pluck("location", &opts.Locations).Error; err != nil {
		return nil, err
	}
	return opts, nil
}

// Detail fetches one active job and increments its view counter. Every call
// counts a view, so N fetches move the counter by N. userID 0 means the
// request is anonymous and the bookmark/application flags stay false.
func (s *JobService) Detail(jobID, userID uint) (*JobDetail, error) {
	var job models.Job
	err := s.DB.Preload("Company").
		Where("is_active = ?", true).
		First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found.")
	}
	if err != nil {
		return nil, err
	}

	// Track view count. A lost update under concurrent traffic is accepted.
	if err := s.DB.Model(&job).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error; err != nil {
		return nil, err
	}

	detail := &JobDetail{Job: job}
	if userID != 0 {
		var n int64
		if err := s.DB.Model(&models.Bookmark{}).
			Where("user_id = ? AND job_id = ?", userID, jobID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		detail.IsBookmarked = n > 0

		if err := s.DB.Model(&models.Application{}).
			Where("user_id = ? AND job_id = ?", userID, jobID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		detail.HasApplied = n > 0
	}

	// Up to 3 other active jobs from the same company.
	err = s.DB.Where("company_id = ? AND is_active = ? AND id <> ?", job.CompanyID, true, job.ID).
		Order("created_at DESC").
		Limit(3).
		Find(&detail.RelatedJobs).Error
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Get fetches a job regardless of active state, for apply/bookmark/edit.
func (s *JobService) Get(jobID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").Preload("PostedBy").First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found.")
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create posts a new job. Only employer accounts may post; when the employer
// profile is tied to a company, that company wins over whatever the form
// submitted.
func (s *JobService) Create(user *models.User, req *dtos.JobRequest) (*models.Job, error) {
	if user.Profile == nil || !user.Profile.IsEmployer {
		return nil, apperr.Forbidden("Only employers can post jobs. Please contact support to upgrade your account.")
	}

	companyID := req.CompanyID
	if user.Profile.CompanyID != nil {
		companyID = *user.Profile.CompanyID
	}
	var company models.Company
	if err := s.DB.First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("company_id", "Select a valid company.")
		}
		return nil, err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:       company.ID,
		PostedByID:      &user.ID,
		Title:           req.Title,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Salary:          req.Salary,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Deadline:        deadline,
		IsActive:        true,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// Update edits an existing posting. Only the account that posted the job may
// change it; everyone else is turned away with the job untouched.
func (s *JobService) Update(user *models.User, jobID uint, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Get(jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID == nil || *job.PostedByID != user.ID {
		return nil, apperr.Forbidden("You can only edit jobs you posted.")
	}

	var company models.Company
	if err := s.DB.First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("company_id", "Select a valid company.")
		}
		return nil, err
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, err
	}

	job.CompanyID = company.ID
	job.Title = req.Title
	job.Location = req.Location
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.Salary = req.Salary
	job.JobType = req.JobType
	job.ExperienceLevel = req.ExperienceLevel
	job.Deadline = deadline

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	job.Company = company
	return job, nil
}

// CompanyChoices lists the companies an employer may post under: just their
// own when the profile is tied to one, otherwise every company.
func (s *JobService) CompanyChoices(user *models.User) ([]models.Company, error) {
	var companies []models.Company
	q := s.DB.Order("name ASC")
	if user.Profile != nil && user.Profile.CompanyID != nil {
		q = q.Where("id = ?", *user.Profile.CompanyID)
	}
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, apperr.Validation("deadline", "Deadline must be a date in YYYY-MM-DD format.")
	}
	return &d, nil
}
