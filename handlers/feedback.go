package handlers

import (
	"errors"
	"net/http"

	"itsourstudio/services/feedback"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackSvc is wired in main before routes are registered.
var FeedbackSvc feedback.FeedbackService

// SubmitFeedback accepts a public review. New reviews are hidden until an
// admin approves them.
func SubmitFeedback(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Rating  int    `json:"rating"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	f, err := FeedbackSvc.Submit(input.Name, input.Rating, input.Message)
	if err != nil {
		if errors.Is(err, feedback.ErrInvalidFeedback) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit feedback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, f)
}

// GetTestimonials returns reviews approved for public display.
func GetTestimonials(c *gin.Context) {
	testimonials, err := FeedbackSvc.Testimonials()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch testimonials", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}
