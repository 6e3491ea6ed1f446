package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh20s/job-portal/internal/auth"
	"github.com/Mahesh20s/job-portal/internal/services"
)

type BookmarkHandler struct {
	BookmarkService *services.BookmarkService
}

func NewBookmarkHandler(b *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		BookmarkService: b,
	}
}

// ToggleBookmark is the GET/POST /job/:id/bookmark endpoint. Script-driven
// clients get the new state as JSON; direct navigation goes back to the job.
func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	bookmarked, err := h.BookmarkService.Toggle(user.ID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if isAJAX(c) {
		c.JSON(http.StatusOK, gin.H{"is_bookmarked": bookmarked})
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/job/%d/", id))
}

// MyBookmarks is the GET /my-bookmarks endpoint.
func (h *BookmarkHandler) MyBookmarks(c *gin.Context) {
	user, _ := auth.CurrentUser(c)
	bookmarks, pg, err := h.BookmarkService.ListByUser(user.ID, pageParam(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookmarks":  bookmarks,
		"pagination": pg,
	})
}
