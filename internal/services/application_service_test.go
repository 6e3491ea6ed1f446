package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/models"
)

func TestApply_CreatesApplicationAndNotifiesPoster(t *testing.T) {
	db := newTestDB(t)
	mailer := &recordingMailer{}
	svc := NewApplicationService(db, mailer)

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	employer := createUser(t, db, "acme_hr", true, &company.ID)
	job := createJob(t, db, company, employer, "Backend Engineer")
	applicant := createUser(t, db, "jane", false, nil)

	application, err := svc.Apply(applicant, job.ID, "resumes/jane.pdf", "Hire me")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApplied, application.Status)
	assert.Equal(t, "resumes/jane.pdf", application.ResumePath)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, employer.Email, mailer.sent[0].To)
	assert.Equal(t, "New Application for Backend Engineer", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Body, "jane")
}

func TestApply_DuplicateLeavesExactlyOneRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	job := createJob(t, db, company, nil, "Backend Engineer")
	applicant := createUser(t, db, "jane", false, nil)

	_, err := svc.Apply(applicant, job.ID, "resumes/jane.pdf", "")
	require.NoError(t, err)

	_, err = svc.Apply(applicant, job.ID, "resumes/jane-v2.pdf", "")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeConflict, apperr.From(err).Code)

	var n int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", applicant.ID, job.ID).
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestApply_NotificationFailureDoesNotRollBack(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{fail: true})

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	employer := createUser(t, db, "acme_hr", true, &company.ID)
	job := createJob(t, db, company, employer, "Backend Engineer")
	applicant := createUser(t, db, "jane", false, nil)

	_, err := svc.Apply(applicant, job.ID, "resumes/jane.pdf", "")
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&models.Application{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestApply_NoPosterMeansNoMail(t *testing.T) {
	db := newTestDB(t)
	mailer := &recordingMailer{}
	svc := NewApplicationService(db, mailer)

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	job := createJob(t, db, company, nil, "Orphaned Role")
	applicant := createUser(t, db, "jane", false, nil)

	_, err := svc.Apply(applicant, job.ID, "resumes/jane.pdf", "")
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestListByUser_StatusFilterAndPaging(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	applicant := createUser(t, db, "jane", false, nil)
	stranger := createUser(t, db, "bob", false, nil)

	for i := 0; i < 3; i++ {
		job := createJob(t, db, company, nil, "Role")
		status := models.StatusApplied
		if i == 0 {
			status = models.StatusRejected
		}
		require.NoError(t, db.Create(&models.Application{
			UserID: applicant.ID, JobID: job.ID, ResumePath: "resumes/x.pdf", Status: status,
		}).Error)
	}
	otherJob := createJob(t, db, company, nil, "Other Role")
	require.NoError(t, db.Create(&models.Application{
		UserID: stranger.ID, JobID: otherJob.ID, ResumePath: "resumes/y.pdf", Status: models.StatusApplied,
	}).Error)

	all, pg, err := svc.ListByUser(applicant.ID, "", 1)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), pg.TotalCount)

	rejected, _, err := svc.ListByUser(applicant.ID, models.StatusRejected, 1)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, models.StatusRejected, rejected[0].Status)
}

func TestUpdateStatus_AdminPipeline(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, &recordingMailer{})

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	job := createJob(t, db, company, nil, "Backend Engineer")
	applicant := createUser(t, db, "jane", false, nil)

	application, err := svc.Apply(applicant, job.ID, "resumes/jane.pdf", "")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(application.ID, models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, updated.Status)

	_, err = svc.UpdateStatus(application.ID, "Hired")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeBadRequest, apperr.From(err).Code)
}
