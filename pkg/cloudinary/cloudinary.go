package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
)

// ErrNotConfigured is returned when Cloudinary credentials are missing.
var ErrNotConfigured = errors.New("Cloudinary not configured")

// uploadTransformation caps hosted images at 1200x1200 with automatic
// quality/format negotiation.
const uploadTransformation = "c_limit,w_1200,h_1200/q_auto/f_auto"

// Service implements domain.MediaService against Cloudinary.
type Service struct {
	cld          *cloudinary.Cloudinary
	cloudName    string
	apiKey       string
	apiSecret    string
	uploadPreset string
	folder       string
}

func NewService(cfg *config.Config) (*Service, error) {
	s := &Service{
		cloudName:    cfg.CloudinaryCloudName,
		apiKey:       cfg.CloudinaryAPIKey,
		apiSecret:    cfg.CloudinaryAPISecret,
		uploadPreset: cfg.CloudinaryUploadPreset,
		folder:       cfg.CloudinaryFolder,
	}
	if !cfg.CloudinaryConfigured() {
		// Keep a non-nil service so callers get ErrNotConfigured instead of panics.
		return s, nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: init failed: %w", err)
	}
	cld.Config.URL.Secure = true
	s.cld = cld
	return s, nil
}

func (s *Service) configured() bool {
	return s.cld != nil
}

// Upload sends a base64 data URI or remote URL to Cloudinary.
func (s *Service) Upload(ctx context.Context, image, folder string) (*domain.UploadResult, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}
	if folder == "" {
		folder = s.folder
	}

	result, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		Transformation: uploadTransformation,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary: upload failed: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary: upload failed: %s", result.Error.Message)
	}

	return &domain.UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}

// Destroy removes a hosted image by its public ID. A "not found" outcome is
// treated as success.
func (s *Service) Destroy(ctx context.Context, publicID string) error {
	if !s.configured() {
		return ErrNotConfigured
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary: delete failed: %w", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary: delete failed: %s", result.Result)
	}
	return nil
}

// SignUpload issues the parameters a client needs for a direct signed upload.
func (s *Service) SignUpload(folder string) (*domain.UploadSignature, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}
	if folder == "" {
		folder = s.folder
	}

	timestamp := time.Now().Unix()
	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", folder)
	if s.uploadPreset != "" {
		params.Set("upload_preset", s.uploadPreset)
	}

	signature, err := api.SignParameters(params, s.apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: signing failed: %w", err)
	}

	return &domain.UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
		Folder:    folder,
	}, nil
}

// DeleteByURL issues best-effort deletion requests for hosted URLs. Duplicate
// URLs behave as a set. Failures are logged, never escalated.
func (s *Service) DeleteByURL(ctx context.Context, urls []string) {
	if !s.configured() {
		slog.Warn("cloudinary not configured, skipping deletion")
		return
	}

	seen := make(map[string]bool)
	for _, u := range urls {
		if u == "" {
			continue
		}
		publicID := ExtractPublicID(u)
		if publicID == "" || seen[publicID] {
			continue
		}
		seen[publicID] = true

		if err := s.Destroy(ctx, publicID); err != nil {
			slog.Warn("cloudinary deletion failed", "public_id", publicID, "error", err)
		}
	}
}

// transformPattern matches Cloudinary transformation path segments such as
// "c_limit,w_1200" that can precede the public ID in unversioned URLs.
var (
	transformPattern = regexp.MustCompile(`^[a-z_]+_[^/]+(,[a-z_]+_[^/]+)*$`)
	versionPattern   = regexp.MustCompile(`^v\d+$`)
)

// ExtractPublicID derives the public ID from a Cloudinary delivery URL.
// Returns "" for URLs that are not Cloudinary-hosted.
func ExtractPublicID(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(parsed.Hostname(), "cloudinary.com") {
		return ""
	}

	parts := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	uploadIndex := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIndex = i
			break
		}
	}
	if uploadIndex == -1 {
		return ""
	}

	afterUpload := parts[uploadIndex+1:]
	versionIndex := -1
	for i, part := range afterUpload {
		if versionPattern.MatchString(part) {
			versionIndex = i
			break
		}
	}

	var publicIDParts []string
	if versionIndex == -1 {
		publicIDParts = afterUpload
		for len(publicIDParts) > 0 && transformPattern.MatchString(publicIDParts[0]) {
			publicIDParts = publicIDParts[1:]
		}
	} else {
		publicIDParts = afterUpload[versionIndex+1:]
	}

	if len(publicIDParts) == 0 {
		return ""
	}

	last := publicIDParts[len(publicIDParts)-1]
	if dot := strings.LastIndex(last, "."); dot != -1 {
		last = last[:dot]
	}

	full := append(append([]string{}, publicIDParts[:len(publicIDParts)-1]...), last)
	return strings.Join(full, "/")
}
