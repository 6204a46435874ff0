package domain

import "context"

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// UploadSignature holds the parameters a client needs to upload directly to
// the media host.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
}

type UploadUsecase interface {
	GetUploadSignature(ctx context.Context) (*UploadSignature, error)
	UploadImage(ctx context.Context, image, folder string) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// MediaService abstracts the hosted-image provider.
type MediaService interface {
	Upload(ctx context.Context, image, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
	SignUpload(folder string) (*UploadSignature, error)
	// DeleteByURL issues best-effort deletion requests for every hosted URL in
	// urls. Duplicate URLs behave as a set. Failures are logged, never returned.
	DeleteByURL(ctx context.Context, urls []string)
}
