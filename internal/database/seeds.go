package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type releaseSeed struct {
	AppName       string
	Version       string
	Platform      string
	ReleaseDate   time.Time
	Size          string
	APKURL        string
	DescriptionEn string
	DescriptionVi string
}

var releases = []releaseSeed{
	{
		AppName:       "SAC Remote",
		Version:       "1.1",
		Platform:      "android",
		ReleaseDate:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		Size:          "45mb",
		APKURL:        "https://sacvietnam.github.io/apk/SAC%20Remote%201.1.apk",
		DescriptionEn: "The application allows viewing temperature, humidity, and battery information sent from the SAC device. You can also set the fan speed and automatically turn the device on and off.",
		DescriptionVi: "Ứng dụng cho phép theo dõi các thông tin nhiệt độ, độ ẩm, lượng pin và các thông tin khác từ thiết bị SAC. Bạn cũng có thể thiết lập tốc độ quạt và các tính năng tự động khác",
	},
}

func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM app_releases").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range releases {
		_, err := tx.Exec(ctx,
			`INSERT INTO app_releases (app_name, version, platform, release_date, size_label, apk_url, description_en, description_vi)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			r.AppName, r.Version, r.Platform, r.ReleaseDate, r.Size, r.APKURL, r.DescriptionEn, r.DescriptionVi)
		if err != nil {
			return fmt.Errorf("insert release %s %s: %w", r.AppName, r.Version, err)
		}
	}
	log.Info().Int("count", len(releases)).Msg("inserted app releases")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data generation complete")
	return nil
}
