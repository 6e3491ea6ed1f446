package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh20s/job-portal/internal/models"
)

func TestDashboard_ForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	user := createUser(t, db, "jane", false, nil)

	popular := createJob(t, db, company, nil, "Popular Role", func(j *models.Job) { j.ViewsCount = 50 })
	quiet := createJob(t, db, company, nil, "Quiet Role")
	createJob(t, db, company, nil, "Hidden Role", func(j *models.Job) {
		j.IsActive = false
		j.ViewsCount = 999
	})

	require.NoError(t, db.Create(&models.Application{
		UserID: user.ID, JobID: popular.ID, ResumePath: "resumes/a.pdf", Status: models.StatusApplied,
	}).Error)
	require.NoError(t, db.Create(&models.Application{
		UserID: user.ID, JobID: quiet.ID, ResumePath: "resumes/b.pdf", Status: models.StatusRejected,
	}).Error)
	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, JobID: quiet.ID}).Error)

	d, err := svc.ForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.ApplicationsCount)
	assert.Equal(t, int64(1), d.BookmarksCount)
	assert.Len(t, d.ApplicationsByStatus, 2)

	// Inactive jobs never surface, no matter how viewed.
	require.NotEmpty(t, d.PopularJobs)
	assert.Equal(t, "Popular Role", d.PopularJobs[0].Title)
	for _, job := range d.PopularJobs {
		assert.True(t, job.IsActive)
	}
}

func TestCompanyDetail_StatsAndJobs(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db)

	company := createCompany(t, db, "Tech Corp", "San Francisco, CA")
	other := createCompany(t, db, "DataWave Inc", "New York, NY")
	user := createUser(t, db, "jane", false, nil)

	active := createJob(t, db, company, nil, "Backend Engineer")
	createJob(t, db, company, nil, "Closed Role", func(j *models.Job) { j.IsActive = false })
	createJob(t, db, other, nil, "Elsewhere Role")

	require.NoError(t, db.Create(&models.Application{
		UserID: user.ID, JobID: active.ID, ResumePath: "resumes/a.pdf", Status: models.StatusApplied,
	}).Error)

	detail, err := svc.Detail(company.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.TotalJobs)
	assert.Equal(t, int64(1), detail.TotalApplications)
	require.Len(t, detail.Jobs, 1)
	assert.Equal(t, "Backend Engineer", detail.Jobs[0].Title)
}
