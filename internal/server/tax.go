package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Candratama/invow-sub000/internal/storectx"
	taxdomain "github.com/Candratama/invow-sub000/internal/tax/domain"
)

func (s *Server) GetTaxPreference(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	pref, err := s.taxSvc.Preference(c.Request.Context(), storeID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pref})
}

func (s *Server) UpdateTaxPreference(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req taxdomain.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	pref, err := s.taxSvc.UpdatePreference(c.Request.Context(), storeID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pref})
}
