package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/models"
)

type ApplicationService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewApplicationService(db *gorm.DB, mailer Mailer) *ApplicationService {
	return &ApplicationService{
		DB:     db,
		Mailer: mailer,
	}
}

// HasApplied reports whether the user already applied for the job.
func (s *ApplicationService) HasApplied(userID, jobID uint) (bool, error) {
	var n int64
	err := s.DB.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&n).Error
	return n > 0, err
}

// Apply submits an application for a job. A second submission for the same
// (job, user) pair is rejected and leaves the store unchanged. On success a
// notification goes to the job's poster; a delivery failure is logged and
// never rolls the application back.
func (s *ApplicationService) Apply(user *models.User, jobID uint, resumePath, coverLetter string) (*models.Application, error) {
	var job models.Job
	err := s.DB.Preload("Company").Preload("PostedBy").First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Job not found.")
	}
	if err != nil {
		return nil, err
	}

	applied, err := s.HasApplied(user.ID, jobID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperr.Conflict("You have already applied for this job.")
	}

	application := &models.Application{
		JobID:       job.ID,
		UserID:      user.ID,
		ResumePath:  resumePath,
		CoverLetter: coverLetter,
		Status:      models.StatusApplied,
	}
	if err := s.DB.Create(application).Error; err != nil {
		// The unique index catches concurrent duplicates the pre-check missed.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You have already applied for this job.")
		}
		return nil, err
	}
	application.Job = job

	s.notifyPoster(&job, user)
	return application, nil
}

// notifyPoster emails the job's poster about the new applicant. Failures are
// swallowed: the application already exists and stays.
func (s *ApplicationService) notifyPoster(job *models.Job, applicant *models.User) {
	if job.PostedBy == nil || job.PostedBy.Email == "" {
		return
	}
	subject := fmt.Sprintf("New Application for %s", job.Title)
	body := fmt.Sprintf(`Hi %s,

A new applicant has applied for your job posting: %s

Applicant: %s
Email: %s

You can view the application details in your dashboard.

Best regards,
Job Portal Team
`, job.PostedBy.Username, job.Title, applicant.Username, applicant.Email)

	if err := s.Mailer.Send(job.PostedBy.Email, subject, body); err != nil {
		log.Warn().Err(err).
			Uint("job_id", job.ID).
			Uint("applicant_id", applicant.ID).
			Msg("failed to send application notification")
	}
}

// ListByUser returns one page of the user's applications, newest first,
// optionally narrowed to a single status.
func (s *ApplicationService) ListByUser(userID uint, status string, page int) ([]models.Application, Pagination, error) {
	base := func() *gorm.DB {
		q := s.DB.Model(&models.Application{}).Where("user_id = ?", userID)
		if status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}
	pg, offset := paginate(total, page, panelPageSize)

	var applications []models.Application
	err := base().Preload("Job").Preload("Job.Company").
		Order("created_at DESC").
		Limit(pg.PageSize).
		Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, Pagination{}, err
	}
	return applications, pg, nil
}

// UpdateStatus moves an application along the review pipeline. This is admin
// tooling; no public route is bound to it.
func (s *ApplicationService) UpdateStatus(applicationID uint, status string) (*models.Application, error) {
	valid := false
	for _, st := range models.ApplicationStatuses {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperr.BadRequest("Unknown application status.")
	}

	var application models.Application
	err := s.DB.First(&application, applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Application not found.")
	}
	if err != nil {
		return nil, err
	}

	application.Status = status
	if err := s.DB.Save(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}
