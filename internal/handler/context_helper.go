package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/corplearn/training-admin-api/internal/middleware"
)

func companyFromContext(c *gin.Context) string {
	return middleware.CompanyCode(c)
}
