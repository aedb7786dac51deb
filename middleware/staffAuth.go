package middleware

import (
	"net/http"
	"strings"

	staffRepo "itsourstudio/database/repository/staff"
	"itsourstudio/models"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware guards dashboard routes. It validates the bearer
// token and confirms the staff account still exists and is active.
func JWTAuthStaffMiddleware(repo staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		staff, err := repo.GetByID(staffID)
		if err != nil || staff == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
				"code":  0,
			})
			return
		}
		if staff.Status == models.StaffInactive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Account disabled",
				"code":  0,
			})
			return
		}

		c.Set("staffID", staff.ID)
		c.Set("staffRole", staff.Role)
		c.Next()
	}
}
