package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/database"
	"github.com/Mahesh20s/job-portal/internal/models"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, employer bool, companyID *uint) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("sw0rdfish!")
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.UserProfile{
		UserID:     user.ID,
		IsEmployer: employer,
		CompanyID:  companyID,
	}
	require.NoError(t, db.Create(profile).Error)
	user.Profile = profile
	return user
}

func createCompany(t *testing.T, db *gorm.DB, name, location string) *models.Company {
	t.Helper()
	company := &models.Company{
		Name:        name,
		Description: name + " does things",
		Location:    location,
	}
	require.NoError(t, db.Create(company).Error)
	return company
}

func createJob(t *testing.T, db *gorm.DB, company *models.Company, poster *models.User, title string, mutate ...func(*models.Job)) *models.Job {
	t.Helper()
	job := &models.Job{
		CompanyID:       company.ID,
		Title:           title,
		Location:        company.Location,
		Description:     "Do " + title + " work",
		JobType:         models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceMid,
		IsActive:        true,
	}
	if poster != nil {
		job.PostedByID = &poster.ID
	}
	for _, fn := range mutate {
		fn(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// recordingMailer captures sent mail; fail makes every send error.
type recordingMailer struct {
	sent []sentMail
	fail bool
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.fail {
		return fmt.Errorf("smtp unreachable")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
