package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

func (s *Server) GetCurrentSubscription(c *gin.Context) {
	sub, err := s.subscriptionSvc.CurrentSubscription(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sub})
}

func (s *Server) CreateUpgradeTransaction(c *gin.Context) {
	var req subscriptiondomain.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	txn, err := s.subscriptionSvc.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": txn})
}
