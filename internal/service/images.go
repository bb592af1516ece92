package service

import (
	"context"
	"net/http"

	"portfolio-api/internal/storage"
	"portfolio-api/internal/util"
	"portfolio-api/pkg/apierror"
)

const (
	showcaseMaxSize = 250
	avatarMaxSize   = 200
)

// processAndStoreImage validates an uploaded image, scales it to fit within
// maxSize×maxSize, re-encodes it as JPEG, and stores it under a fresh key.
func processAndStoreImage(ctx context.Context, images storage.ImageStore, data []byte, maxSize int) (string, error) {
	mimeType := util.DetectMIME(data)
	if !util.IsAllowedImageMIME(mimeType) {
		return "", apierror.New("Only images are allowed!", mimeType, http.StatusBadRequest)
	}

	scaled, err := util.ScaleToJPEG(data, maxSize, maxSize)
	if err != nil {
		return "", apierror.New("Failed to process image.", err.Error(), http.StatusBadRequest)
	}

	return images.Save(ctx, storage.NewKey(".jpg"), "image/jpeg", scaled)
}
