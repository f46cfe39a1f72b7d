package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/sacvietnam/storefront/internal/metrics"
)

const (
	productFolder     = "product"
	uploadConcurrency = 4
)

type tempUploader interface {
	UploadTemp(ctx context.Context, filename string, r io.Reader, folder string) (string, error)
}

type FileInput struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type UploadedImage struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	FilePath string `json:"filepath"`
}

type FailedUpload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// UploadReport keeps the input order. Failed files are not in Images.
type UploadReport struct {
	Images []UploadedImage `json:"images"`
	Failed []FailedUpload  `json:"failed,omitempty"`
}

type UploadService struct {
	api     tempUploader
	metrics *metrics.ServerMetrics
}

func NewUploadService(api tempUploader, m *metrics.ServerMetrics) *UploadService {
	return &UploadService{api: api, metrics: m}
}

func (s *UploadService) UploadImages(ctx context.Context, files []FileInput) UploadReport {
	type outcome struct {
		path string
		err  error
	}
	results := make([]outcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	for i, f := range files {
		g.Go(func() error {
			path, err := s.uploadOne(gctx, f)
			results[i] = outcome{path: path, err: err}
			return nil
		})
	}
	_ = g.Wait()

	report := UploadReport{Images: make([]UploadedImage, 0, len(files))}
	for i, r := range results {
		if r.err != nil {
			log.Warn().Err(r.err).Str("file", files[i].Name).Msg("image upload failed, dropping from list")
			s.metrics.UploadFailed()
			report.Failed = append(report.Failed, FailedUpload{
				Name:    files[i].Name,
				Message: fmt.Sprintf("%s file upload failed.", files[i].Name),
			})
			continue
		}
		report.Images = append(report.Images, UploadedImage{
			UID:      uuid.NewString(),
			Name:     files[i].Name,
			FilePath: r.path,
		})
	}

	log.Info().Int("uploaded", len(report.Images)).Int("failed", len(report.Failed)).Msg("image upload finished")
	return report
}

func (s *UploadService) uploadOne(ctx context.Context, f FileInput) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	return s.api.UploadTemp(ctx, f.Name, rc, productFolder)
}
