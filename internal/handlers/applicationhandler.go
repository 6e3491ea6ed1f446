package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh20s/job-portal/internal/apperr"
	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/models"
	"github.com/Mahesh20s/job-portal/internal/services"
	"github.com/Mahesh20s/job-portal/internal/storage"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	JobService         *services.JobService
	Storage            *storage.Storage
}

func NewApplicationHandler(a *services.ApplicationService, j *services.JobService, st *storage.Storage) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
		JobService:         j,
		Storage:            st,
	}
}

// ApplyForm is the GET /apply/:id endpoint: the job plus whether this user
// already applied.
func (h *ApplicationHandler) ApplyForm(c *gin.Context) {
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
	applied, err := h.ApplicationService.HasApplied(user.ID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job":         job,
		"has_applied": applied,
	})
}

// Apply is the POST /apply/:id endpoint. Multipart body: required "resume"
// file, optional "cover_letter" text.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		abortWithError(c, apperr.Validation("resume", "Resume is required."))
		return
	}
	coverLetter := c.PostForm("cover_letter")

	// Reject duplicates before touching the filesystem.
	applied, err := h.ApplicationService.HasApplied(user.ID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if applied {
		abortWithError(c, apperr.Conflict("You have already applied for this job."))
		return
	}

	resumePath, err := h.Storage.SaveResume(fh)
	if err != nil {
		abortWithError(c, err)
		return
	}

	application, err := h.ApplicationService.Apply(user, id, resumePath, coverLetter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Your application has been submitted successfully!",
		"application": application,
	})
}

// MyApplications is the GET /my-applications endpoint with an optional
// status filter.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	status := c.Query("status")

	applications, pg, err := h.ApplicationService.ListByUser(user.ID, status, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications":    applications,
		"pagination":      pg,
		"status_choices":  models.ApplicationStatuses,
		"selected_status": status,
	})
}
