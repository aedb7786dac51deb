package handlers

import (
	"net/http"

	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the latest dependency health snapshot.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
