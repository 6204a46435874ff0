package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/cloudinary"
	"go-portfolio-backend/pkg/imaging"
)

type uploadUsecase struct {
	media domain.MediaService
}

func NewUploadUsecase(media domain.MediaService) domain.UploadUsecase {
	return &uploadUsecase{media: media}
}

func (u *uploadUsecase) GetUploadSignature(ctx context.Context) (*domain.UploadSignature, error) {
	signature, err := u.media.SignUpload("")
	if err != nil {
		return nil, mapMediaError(err)
	}
	return signature, nil
}

func (u *uploadUsecase) UploadImage(ctx context.Context, image, folder string) (*domain.UploadResult, error) {
	if image == "" {
		return nil, apperror.BadRequest("Image data is required")
	}

	// Inline payloads are sanity-checked locally before burning provider
	// quota; remote URLs are left to the provider to fetch and validate.
	if imaging.IsDataURI(image) {
		if _, err := imaging.Inspect(image); err != nil {
			return nil, apperror.BadRequest("Image data is not a valid image")
		}
	}

	result, err := u.media.Upload(ctx, image, folder)
	if err != nil {
		return nil, mapMediaError(err)
	}
	return result, nil
}

func (u *uploadUsecase) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return apperror.BadRequest("Public ID is required")
	}
	if err := u.media.Destroy(ctx, publicID); err != nil {
		return mapMediaError(err)
	}
	return nil
}

func mapMediaError(err error) error {
	if errors.Is(err, cloudinary.ErrNotConfigured) {
		return apperror.New(http.StatusInternalServerError, "Cloudinary not configured", err)
	}
	return apperror.Internal(err)
}
