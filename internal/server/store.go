package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	storedomain "github.com/Candratama/invow-sub000/internal/store/domain"
	"github.com/Candratama/invow-sub000/internal/storectx"
)

func (s *Server) GetStoreSettings(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	settings, err := s.storeSvc.Settings(c.Request.Context(), storeID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (s *Server) UpdateStoreSettings(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req storedomain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	settings, err := s.storeSvc.UpdateSettings(c.Request.Context(), storeID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}
