package service

import (
	"context"

	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/model"
)

const platformAndroid = "android"

type releaseStore interface {
	Latest(ctx context.Context, platform string) (*model.AppRelease, error)
}

var (
	labelAvailableIn = format.Text{En: "Available in:", Vi: "Hiện có trên:"}
	labelVersion     = format.Text{En: "Version", Vi: "Phiên bản"}
	labelReleaseDate = format.Text{En: "Release Date", Vi: "Ngày phát hành"}
	labelSize        = format.Text{En: "Size", Vi: "Kích thước"}
	labelDownload    = format.Text{En: "Download for Android", Vi: "Tải xuống cho Android"}
	labelScreenshots = format.Text{En: "Some images of the software:", Vi: "Vài hình ảnh về ứng dụng:"}
)

type ReleaseView struct {
	AppName     string            `json:"app_name"`
	Version     string            `json:"version"`
	Platform    string            `json:"platform"`
	ReleaseDate string            `json:"release_date"`
	Size        string            `json:"size"`
	APK         string            `json:"apk"`
	Description string            `json:"description"`
	Labels      map[string]string `json:"labels"`
}

type ReleaseService struct {
	repo releaseStore
}

func NewReleaseService(repo releaseStore) *ReleaseService {
	return &ReleaseService{repo: repo}
}

// Latest describes the newest Android build for the download page.
func (s *ReleaseService) Latest(ctx context.Context, lang format.Lang) (*ReleaseView, error) {
	rel, err := s.repo.Latest(ctx, platformAndroid)
	if err != nil {
		return nil, err
	}

	description := format.Text{En: rel.DescriptionEn, Vi: rel.DescriptionVi}

	return &ReleaseView{
		AppName:     rel.AppName,
		Version:     rel.Version,
		Platform:    rel.Platform,
		ReleaseDate: rel.ReleaseDate.Format("02/01/2006"),
		Size:        rel.SizeLabel,
		APK:         rel.APKURL,
		Description: description.Pick(lang),
		Labels: map[string]string{
			"available_in": labelAvailableIn.Pick(lang),
			"version":      labelVersion.Pick(lang),
			"release_date": labelReleaseDate.Pick(lang),
			"size":         labelSize.Pick(lang),
			"download":     labelDownload.Pick(lang),
			"screenshots":  labelScreenshots.Pick(lang),
		},
	}, nil
}
