package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"itsourstudio/services/booking"
	"itsourstudio/services/catalog"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// WizardSvc is wired in main before routes are registered.
var WizardSvc booking.WizardService

// respondWizardError maps wizard failures onto HTTP statuses: guard
// failures are client errors, session failures mean the draft is gone.
func respondWizardError(c *gin.Context, err error) {
	var guardErr *booking.GuardError
	if errors.As(err, &guardErr) {
		utils.JSONError(c, http.StatusBadRequest, guardErr.Message, "")
		return
	}
	var sessErr *booking.SessionError
	if errors.As(err, &sessErr) {
		utils.JSONError(c, http.StatusNotFound, sessErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.", err.Error())
}

// ListPackages returns the studio's package catalog with extension rates.
func ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages":       catalog.All(),
		"extensionRates": catalog.ExtensionRates(),
	})
}

// StartBookingSession creates a new wizard draft.
func StartBookingSession(c *gin.Context) {
	draft, err := WizardSvc.StartSession(c.Request.Context())
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetBookingSession returns the current draft for a session.
func GetBookingSession(c *gin.Context) {
	draft, err := WizardSvc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetAvailability lists slots for a date with availability flags. The date,
// package, and extension may come from query params while the customer is
// still deciding; otherwise the draft's values are used.
func GetAvailability(c *gin.Context) {
	extension, _ := strconv.Atoi(c.Query("extension"))
	slots, err := WizardSvc.Availability(c.Request.Context(), c.Param("sessionID"), booking.AvailabilityQuery{
		Date:             c.Query("date"),
		PackageID:        c.Query("package"),
		ExtensionMinutes: extension,
	})
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SelectService records package, date, time, and extension for the draft.
func SelectService(c *gin.Context) {
	var sel booking.ServiceSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := WizardSvc.SelectService(c.Request.Context(), c.Param("sessionID"), sel)
	if err != nil {
		respondWizardError(c, err)
		return
	}

	quote := catalog.ComputeQuote(draft.PackageID, draft.ExtensionMins)
	c.JSON(http.StatusOK, gin.H{"draft": draft, "quote": quote})
}

// SubmitDetails records the customer's contact fields.
func SubmitDetails(c *gin.Context) {
	var det booking.ContactDetails
	if err := c.ShouldBindJSON(&det); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := WizardSvc.SubmitDetails(c.Request.Context(), c.Param("sessionID"), det)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// StepBack moves the wizard back one step.
func StepBack(c *gin.Context) {
	draft, err := WizardSvc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ConfirmBooking finalizes the draft into a pending booking.
func ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID"`
		ProofPath string `json:"proofPath"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := WizardSvc.Confirm(c.Request.Context(), input.SessionID, input.ProofPath)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"referenceNumber": record.ID,
		"booking":         record,
	})
}

// CancelBookingSession discards a draft.
func CancelBookingSession(c *gin.Context) {
	if err := WizardSvc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
