package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/dtos"
	"github.com/Mahesh20s/job-portal/internal/models"
	"github.com/Mahesh20s/job-portal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		JobService: j,
	}
}

// parseJobFilter reads the listing query parameters. Empty parameters are
// no-ops; non-numeric salary bounds are a client error, not a crash.
func parseJobFilter(c *gin.Context) (*dtos.JobFilter, error) {
	f := &dtos.JobFilter{
		Search:          c.Query("search"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience"),
		Location:        c.Query("location"),
		Page:            pageParam(c),
	}
	if raw := c.Query("min_salary"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Validation("min_salary", "min_salary must be a number.")
		}
		f.MinSalary = &n
	}
	if raw := c.Query("max_salary"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Validation("max_salary", "max_salary must be a number.")
		}
		f.MaxSalary = &n
	}
	return f, nil
}

// ListJobs is the GET / endpoint: search, filters and pagination.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filter, err := parseJobFilter(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	jobs, pg, err := h.JobService.List(filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	opts, err := h.JobService.FilterOptions()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":       jobs,
		"pagination": pg,
		"filters":    opts,
		"selected": gin.H{
			"search":     filter.Search,
			"job_type":   filter.JobType,
			"experience": filter.ExperienceLevel,
			"location":   filter.Location,
		},
	})
}

// JobDetail is the GET /job/:id endpoint. Every hit counts a view.
func (h *JobHandler) JobDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	var userID uint
	if user, ok := auth.CurrentUser(c); ok {
		userID = user.ID
	}
	detail, err := h.JobService.Detail(id, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// NewJob is the GET /job/create endpoint: the form context. Employers tied
// to a company see only that company in the choices.
func (h *JobHandler) NewJob(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	if user.Profile == nil || !user.Profile.IsEmployer {
		abortWithError(c, apperr.Forbidden("Only employers can post jobs. Please contact support to upgrade your account."))
		return
	}
	companies, err := h.JobService.CompanyChoices(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companies":         companies,
		"job_types":         models.JobTypes,
		"experience_levels": models.ExperienceLevels,
	})
}

// CreateJob is the POST /job/create endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	var req dtos.JobRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, apperr.BadRequest("Invalid form input: "+err.Error()))
		return
	}
	job, err := h.JobService.Create(user, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// EditJob is the GET /job/:id/edit endpoint: the current posting for the
// form, owner only.
func (h *JobHandler) EditJob(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	job, err := h.JobService.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if job.PostedByID == nil || *job.PostedByID != user.ID {
		abortWithError(c, apperr.Forbidden("You can only edit jobs you posted."))
		return
	}
	companies, err := h.JobService.CompanyChoices(user)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job":               job,
		"companies":         companies,
		"job_types":         models.JobTypes,
		"experience_levels": models.ExperienceLevels,
	})
}

// UpdateJob is the POST /job/:id/edit endpoint.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	var req dtos.JobRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, apperr.BadRequest("Invalid form input: "+err.Error()))
		return
	}
	job, err := h.JobService.Update(user, id, &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}
