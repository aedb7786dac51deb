package storage

import (
	"mime/multipart"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueName(t *testing.T) {
	name := uniqueName("my photo (1).png")

	// timestamp-random-sanitized, nothing unsafe left.
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+-my_photo__1_.png$`), name)
}

func TestUniqueNameStripsDirectories(t *testing.T) {
	name := uniqueName("../../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+-passwd$`), name)
}

func TestUniqueNameIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := uniqueName("proof.png")
		assert.False(t, seen[n], "duplicate name %s", n)
		seen[n] = true
	}
}

func TestSaveRejectsOversizedUploads(t *testing.T) {
	svc, err := NewLocalStorageService(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	_, err = svc.SavePaymentProof(&multipart.FileHeader{
		Filename: "proof.png",
		Size:     MaxProofSize + 1,
	})
	var tooLarge *ErrFileTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, int64(MaxProofSize), tooLarge.Limit)

	_, err = svc.SaveGalleryImage(&multipart.FileHeader{
		Filename: "shoot.png",
		Size:     MaxGallerySize + 1,
	})
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, int64(MaxGallerySize), tooLarge.Limit)
}

func TestSaveRejectsNilFile(t *testing.T) {
	svc, err := NewLocalStorageService(t.TempDir(), t.TempDir())
	require.NoError(t, err)

	_, err = svc.SavePaymentProof(nil)
	assert.Error(t, err)
}
