package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/config"
)

// SiteHandler serves the admin dashboard branding. The values are read from
// configuration at startup and never change while the process runs.
type SiteHandler struct {
	branding config.SiteBranding
}

func NewSiteHandler(branding config.SiteBranding) *SiteHandler {
	return &SiteHandler{branding: branding}
}

func (h *SiteHandler) GetBranding(c *gin.Context) {
	c.JSON(http.StatusOK, h.branding)
}
