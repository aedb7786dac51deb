package storage

import "mime/multipart"

// StorageService stores customer uploads and returns their public paths.
type StorageService interface {
	// SavePaymentProof stores a proof-of-payment image (10MB limit) and
	// returns its public path, e.g. "/POP/169...-proof.png".
	SavePaymentProof(file *multipart.FileHeader) (string, error)
	// SaveGalleryImage stores a gallery image (15MB limit) and returns its
	// public path under /gallery-uploads.
	SaveGalleryImage(file *multipart.FileHeader) (string, error)
}
