package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) Revenue(c *gin.Context) {
	rows, err := s.revenueSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": rows})
}

func (s *Server) Cards(c *gin.Context) {
	summary, err := s.dashboardSvc.CardSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) LatestInvoices(c *gin.Context) {
	rows, err := s.invoiceSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"latest_invoices": rows})
}
