package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/config"
	"github.com/Mahesh20s/job-portal/internal/database"
	"github.com/Mahesh20s/job-portal/internal/models"
)

// Populates the database with sample companies, accounts and jobs.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Load()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}

	companies := seedCompanies(db)
	employer := seedEmployer(db, companies["Tech Corp"])
	seedJobs(db, companies, employer)

	log.Info().Msg("database populated with sample data")
}

func seedCompanies(db *gorm.DB) map[string]*models.Company {
	data := []models.Company{
		{
			Name:        "Tech Corp",
			Description: "A leading technology company specializing in software solutions",
			Website:     "https://techcorp.com",
			Email:       "hr@techcorp.com",
			Phone:       "+1-800-TECH-123",
			Location:    "San Francisco, CA",
		},
		{
			Name:        "DataWave Inc",
			Description: "Big data and analytics platform provider",
			Website:     "https://datawave.io",
			Email:       "careers@datawave.io",
			Phone:       "+1-800-DATA-456",
			Location:    "New York, NY",
		},
		{
			Name:        "CloudSync Solutions",
			Description: "Cloud infrastructure and DevOps services",
			Website:     "https://cloudsync.dev",
			Email:       "jobs@cloudsync.dev",
			Phone:       "+1-800-CLOUD-789",
			Location:    "Seattle, WA",
		},
		{
			Name:        "AI Innovations",
			Description: "Artificial Intelligence and Machine Learning research",
			Website:     "https://aiinno.com",
			Email:       "recruit@aiinno.com",
			Phone:       "+1-800-AI-JOBS",
			Location:    "Boston, MA",
		},
	}

	companies := make(map[string]*models.Company, len(data))
	for i := range data {
		company := data[i]
		if err := db.Where(models.Company{Name: company.Name}).
			Attrs(company).
			FirstOrCreate(&company).Error; err != nil {
			log.Fatal().Err(err).Str("company", company.Name).Msg("failed to seed company")
		}
		log.Info().Str("company", company.Name).Msg("company ready")
		companies[company.Name] = &company
	}
	return companies
}

// seedEmployer creates the demo employer account the sample jobs are posted
// under, affiliated with the given company.
func seedEmployer(db *gorm.DB, company *models.Company) *models.User {
	var user models.User
	err := db.Where("username = ?", "acme_hr").First(&user).Error
	if err == nil {
		return &user
	}

	hash, err := auth.HashPassword("changeme123")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}
	user = models.User{
		Username:     "acme_hr",
		Email:        "hr@techcorp.com",
		PasswordHash: hash,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:     user.ID,
			IsEmployer: true,
			CompanyID:  &company.ID,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed employer account")
	}
	log.Info().Str("username", user.Username).Msg("employer account ready")
	return &user
}

type jobSeed struct {
	Title           string
	Company         string
	Location        string
	Description     string
	Requirements    string
	SalaryMin       int
	SalaryMax       int
	JobType         string
	ExperienceLevel string
	DeadlineDays    int
}

func seedJobs(db *gorm.DB, companies map[string]*models.Company, employer *models.User) {
	seeds := []jobSeed{
		{
			Title:           "Senior Python Developer",
			Company:         "Tech Corp",
			Location:        "San Francisco, CA",
			Description:     "We are looking for an experienced Python developer to join our team. You will be responsible for developing and maintaining our backend services.",
			Requirements:    "5+ years Python experience\nDjango/FastAPI knowledge\nPostgreSQL proficiency\nREST API design",
			SalaryMin:       120000,
			SalaryMax:       160000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			DeadlineDays:    30,
		},
		{
			Title:           "Frontend React Developer",
			Company:         "Tech Corp",
			Location:        "San Francisco, CA",
			Description:     "Join our frontend team and help us build beautiful, responsive web applications using React and modern JavaScript.",
			Requirements:    "3+ years React experience\nTypeScript knowledge\nHTML/CSS expertise\nState management (Redux/Zustand)",
			SalaryMin:       100000,
			SalaryMax:       140000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			DeadlineDays:    25,
		},
		{
			Title:           "Data Engineer",
			Company:         "DataWave Inc",
			Location:        "New York, NY",
			Description:     "Build scalable data pipelines and infrastructure for our analytics platform. Work with big data technologies and cloud services.",
			Requirements:    "Strong Python/Scala skills\nSpark/Hadoop experience\nSQL proficiency\nCloud platforms (AWS/GCP)",
			SalaryMin:       110000,
			SalaryMax:       150000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			DeadlineDays:    28,
		},
		{
			Title:           "DevOps Engineer",
			Company:         "CloudSync Solutions",
			Location:        "Seattle, WA",
			Description:     "Manage and optimize our cloud infrastructure. Implement CI/CD pipelines and ensure system reliability.",
			Requirements:    "Docker/Kubernetes expertise\nCI/CD tools (Jenkins, GitLab CI)\nLinux administration\nInfrastructure as Code (Terraform)",
			SalaryMin:       115000,
			SalaryMax:       155000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			DeadlineDays:    35,
		},
		{
			Title:           "Machine Learning Engineer",
			Company:         "AI Innovations",
			Location:        "Boston, MA",
			Description:     "Develop and deploy machine learning models for real-world applications. Collaborate with data scientists and product teams.",
			Requirements:    "Python, TensorFlow/PyTorch\nDeep Learning knowledge\nExperience with ML pipelines\nSQL and distributed computing",
			SalaryMin:       130000,
			SalaryMax:       180000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			DeadlineDays:    40,
		},
		{
			Title:           "Junior Web Developer",
			Company:         "Tech Corp",
			Location:        "San Francisco, CA",
			Description:     "Start your career as a full-stack developer. You will work on various projects and learn from experienced mentors.",
			Requirements:    "HTML/CSS/JavaScript basics\nWilling to learn\nGit basics\nProblem-solving skills",
			SalaryMin:       70000,
			SalaryMax:       90000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceEntry,
			DeadlineDays:    20,
		},
		{
			Title:           "Database Administrator",
			Company:         "DataWave Inc",
			Location:        "New York, NY",
			Description:     "Manage and maintain our database infrastructure. Ensure performance, security, and availability.",
			Requirements:    "PostgreSQL/MySQL expertise\nBackup and recovery knowledge\nPerformance tuning\nMonitoring tools experience",
			SalaryMin:       105000,
			SalaryMax:       145000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			DeadlineDays:    32,
		},
		{
			Title:           "Product Manager (Part-time)",
			Company:         "CloudSync Solutions",
			Location:        "Seattle, WA",
			Description:     "Lead product strategy and roadmap for our cloud services. Work closely with engineering and design teams.",
			Requirements:    "Product management experience\nTech background preferred\nData-driven decision making\nStakeholder communication",
			SalaryMin:       80000,
			SalaryMax:       110000,
			JobType:         models.JobTypePartTime,
			ExperienceLevel: models.ExperienceMid,
			DeadlineDays:    27,
		},
		{
			Title:           "Security Engineer",
			Company:         "Tech Corp",
			Location:        "San Francisco, CA",
			Description:     "Protect our systems and data. Identify vulnerabilities and implement security best practices.",
			Requirements:    "Network security knowledge\nPenetration testing experience\nCryptography basics\nSecurity compliance (OWASP)",
			SalaryMin:       125000,
			SalaryMax:       165000,
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			DeadlineDays:    33,
		},
		{
			Title:           "Technical Writer",
			Company:         "AI Innovations",
			Location:        "Remote",
			Description:     "Create comprehensive documentation for our AI products. Make complex concepts easy to understand.",
			Requirements:    "Strong writing skills\nTechnical background\nDocumentation tools (Markdown, Sphinx)\nVersion control basics",
			SalaryMin:       75000,
			SalaryMax:       100000,
			JobType:         models.JobTypeRemote,
			ExperienceLevel: models.ExperienceMid,
			DeadlineDays:    29,
		},
	}

	for _, seed := range seeds {
		company, ok := companies[seed.Company]
		if !ok {
			log.Fatal().Str("company", seed.Company).Msg("unknown seed company")
		}
		deadline := time.Now().AddDate(0, 0, seed.DeadlineDays)
		salaryMin, salaryMax := seed.SalaryMin, seed.SalaryMax
		job := models.Job{
			CompanyID:       company.ID,
			PostedByID:      &employer.ID,
			Title:           seed.Title,
			Location:        seed.Location,
			Description:     seed.Description,
			Requirements:    seed.Requirements,
			SalaryMin:       &salaryMin,
			SalaryMax:       &salaryMax,
			JobType:         seed.JobType,
			ExperienceLevel: seed.ExperienceLevel,
			Deadline:        &deadline,
			IsActive:        true,
		}
		err := db.Where(models.Job{Title: seed.Title, CompanyID: company.ID}).
			Attrs(job).
			FirstOrCreate(&job).Error
		if err != nil {
			log.Fatal().Err(err).Str("title", seed.Title).Msg("failed to seed job")
		}
		log.Info().Str("title", job.Title).Str("company", company.Name).Msg("job ready")
	}
}
