package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	customerdomain "github.com/Candratama/invow-sub000/internal/customer/domain"
	"github.com/Candratama/invow-sub000/internal/storectx"
)

func (s *Server) ListCustomers(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var filter customerdomain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), storeID, filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp.Customers, "page_info": resp.PageInfo})
}

func (s *Server) CreateCustomer(c *gin.Context) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	item, err := s.customerSvc.Create(c.Request.Context(), storeID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	storeID, customerID, err := s.customerScope(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	item, err := s.customerSvc.Get(c.Request.Context(), storeID, customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	storeID, customerID, err := s.customerScope(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req customerdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	item, err := s.customerSvc.Update(c.Request.Context(), storeID, customerID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	storeID, customerID, err := s.customerScope(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.customerSvc.Delete(c.Request.Context(), storeID, customerID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) customerScope(c *gin.Context) (snowflake.ID, snowflake.ID, error) {
	storeID, ok := storectx.StoreIDFromContext(c.Request.Context())
	if !ok {
		return 0, 0, ErrUnauthorized
	}

	customerID, err := snowflake.ParseString(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return 0, 0, newValidationError("id", "invalid_id", "invalid id")
	}
	return storeID, customerID, nil
}
