package handlers

import (
	"errors"
	"net/http"

	"itsourstudio/services/storage"
	"itsourstudio/utils"

	"github.com/gin-gonic/gin"
)

// StorageSvc is wired in main before routes are registered.
var StorageSvc storage.StorageService

// UploadPaymentProof accepts a multipart "file" field and stores it under
// the payment-proof directory. An upload failure blocks confirmation, so
// errors are returned rather than swallowed.
func UploadPaymentProof(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "no file uploaded", err.Error())
		return
	}

	path, err := StorageSvc.SavePaymentProof(file)
	if err != nil {
		var tooLarge *storage.ErrFileTooLarge
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusBadRequest, tooLarge.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to store upload", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}

// UploadGalleryImage accepts a multipart "file" field for the public gallery.
func UploadGalleryImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "no file uploaded", err.Error())
		return
	}

	path, err := StorageSvc.SaveGalleryImage(file)
	if err != nil {
		var tooLarge *storage.ErrFileTooLarge
		if errors.As(err, &tooLarge) {
			utils.JSONError(c, http.StatusBadRequest, tooLarge.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to store upload", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}
