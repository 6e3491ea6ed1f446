package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh20s/job-portal/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
}

func NewCompanyHandler(cs *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		CompanyService: cs,
	}
}

// ListCompanies is the GET /companies endpoint: the directory, ordered by
// name.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.CompanyService.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// CompanyDetail is the GET /company/:id endpoint: profile, paginated active
// jobs and headline stats.
func (h *CompanyHandler) CompanyDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	detail, err := h.CompanyService.Detail(id, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
