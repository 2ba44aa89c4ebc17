package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/paperledger/paperledger/internal/invoice/domain"
)

func (s *Server) ListInvoices(c *gin.Context) {
	rows, err := s.invoiceSvc.ListFiltered(c.Request.Context(), queryParam(c), pageParam(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows})
}

func (s *Server) InvoicePages(c *gin.Context) {
	pages, err := s.invoiceSvc.PageCount(c.Request.Context(), queryParam(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (s *Server) GetInvoice(c *gin.Context) {
	form, err := s.invoiceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if form == nil {
		AbortWithError(c, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var req invoicedomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.invoiceSvc.Create(c.Request.Context(), req)
	if err != nil {
		s.metrics.RecordInvoiceMutation("create", "error")
		AbortWithError(c, err)
		return
	}
	if result.Failed() {
		s.metrics.RecordInvoiceMutation("create", "rejected")
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	s.metrics.RecordInvoiceMutation("create", "success")
	c.JSON(http.StatusCreated, result)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var req invoicedomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.invoiceSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.metrics.RecordInvoiceMutation("update", "error")
		AbortWithError(c, err)
		return
	}
	if result.Failed() {
		s.metrics.RecordInvoiceMutation("update", "rejected")
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	s.metrics.RecordInvoiceMutation("update", "success")
	c.JSON(http.StatusOK, result)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	result, err := s.invoiceSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.metrics.RecordInvoiceMutation("delete", "error")
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordInvoiceMutation("delete", "success")
	c.JSON(http.StatusOK, result)
}
