package handlers

import (
	"errors"
	"net/http"

	"itsourstudio/models"
	"itsourstudio/services/admin"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// AdminSvc is wired in main before routes are registered.
var AdminSvc admin.AdminService

func respondAdminError(c *gin.Context, err error) {
	var authErr *admin.AuthError
	if errors.As(err, &authErr) {
		utils.JSONError(c, http.StatusUnauthorized, authErr.Message, "")
		return
	}
	var adminErr *admin.AdminError
	if errors.As(err, &adminErr) {
		utils.JSONError(c, http.StatusBadRequest, adminErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err.Error())
}

// StaffLogin verifies dashboard credentials and returns a bearer token.
func StaffLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := AdminSvc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBookings returns every booking plus dashboard stats.
func ListBookings(c *gin.Context) {
	bookings, stats, err := AdminSvc.ListBookings(c.Request.Context())
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "stats": stats})
}

// UpdateBookingStatus transitions a booking and notifies the customer on
// confirmation or rejection.
func UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := AdminSvc.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status, input.Reason)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBooking removes a booking permanently.
func DeleteBooking(c *gin.Context) {
	if err := AdminSvc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ListFeedback returns every review, including hidden ones.
func ListFeedback(c *gin.Context) {
	feedbacks, err := AdminSvc.ListFeedback(c.Request.Context())
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}

// SetFeedbackVisibility approves or hides a review on the public site.
func SetFeedbackVisibility(c *gin.Context) {
	var input struct {
		Show bool `json:"show"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := AdminSvc.SetFeedbackVisibility(c.Request.Context(), c.Param("id"), input.Show); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteFeedback removes a review permanently.
func DeleteFeedback(c *gin.Context) {
	if err := AdminSvc.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateStaff registers a new dashboard account.
func CreateStaff(c *gin.Context) {
	var input models.Staff
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	staff, err := AdminSvc.CreateStaff(c.Request.Context(), &input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// ListStaff returns all dashboard accounts.
func ListStaff(c *gin.Context) {
	staff, err := AdminSvc.ListStaff(c.Request.Context())
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// UpdateStaff applies partial changes to a dashboard account.
func UpdateStaff(c *gin.Context) {
	var input models.Staff
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	staff, err := AdminSvc.UpdateStaff(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// DeleteStaff removes a dashboard account.
func DeleteStaff(c *gin.Context) {
	if err := AdminSvc.DeleteStaff(c.Request.Context(), c.Param("id")); err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
