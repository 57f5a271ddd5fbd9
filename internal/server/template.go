package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Candratama/invow-sub000/internal/invoice/render"
	"github.com/Candratama/invow-sub000/internal/storectx"
	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

// ListTemplates returns every registered template annotated with whether the
// store's tier unlocks it. Locked templates are listed so clients can show
// upgrade affordances.
func (s *Server) ListTemplates(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	tier, err := s.tierResolver.ResolveTier(c.Request.Context(), storeID)
	if err != nil {
		tier = subscriptiondomain.TierFree
	}

	c.JSON(http.StatusOK, gin.H{
		"data": render.TemplatesWithAccess(tier),
		"tier": tier,
	})
}
