package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PublicInvoice serves a shared invoice by its token. Drafts are never
// exposed here; the service answers not-found for them.
func (s *Server) PublicInvoice(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		AbortWithError(c, ErrNotFound)
		return
	}

	html, err := s.invoiceSvc.PublicHTML(c.Request.Context(), token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
