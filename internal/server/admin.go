package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
)

func (s *Server) AdminListStores(c *gin.Context) {
	stores, err := s.storeSvc.ListStores(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stores})
}

type setStoreActiveRequest struct {
	Active bool `json:"active"`
}

func (s *Server) AdminSetStoreActive(c *gin.Context) {
	storeID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req setStoreActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	settings, err := s.storeSvc.SetActive(c.Request.Context(), storeID, req.Active)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (s *Server) AdminListSubscriptions(c *gin.Context) {
	req := subscriptiondomain.ListSubscriptionsRequest{
		StoreID: strings.TrimSpace(c.Query("store_id")),
		Status:  strings.TrimSpace(c.Query("status")),
	}

	subs, err := s.subscriptionSvc.ListSubscriptions(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subs})
}

func (s *Server) AdminListTransactions(c *gin.Context) {
	req := subscriptiondomain.ListTransactionsRequest{
		StoreID: strings.TrimSpace(c.Query("store_id")),
		Status:  strings.TrimSpace(c.Query("status")),
	}

	txns, err := s.subscriptionSvc.ListTransactions(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": txns})
}

type reviewTransactionRequest struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note"`
}

func (s *Server) AdminReviewTransaction(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if _, err := snowflake.ParseString(id); err != nil {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req reviewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	txn, err := s.subscriptionSvc.ReviewTransaction(c.Request.Context(), subscriptiondomain.ReviewTransactionRequest{
		ID:      id,
		Approve: req.Approve,
		Note:    req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": txn})
}
