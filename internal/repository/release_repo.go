package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sacvietnam/storefront/internal/model"
)

type ReleaseRepository struct {
	pool *pgxpool.Pool
}

func NewReleaseRepository(pool *pgxpool.Pool) *ReleaseRepository {
	return &ReleaseRepository{pool: pool}
}

// Latest returns pgx.ErrNoRows when no release exists for the platform.
func (r *ReleaseRepository) Latest(ctx context.Context, platform string) (*model.AppRelease, error) {
	rel := &model.AppRelease{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, app_name, version, platform, release_date, size_label, apk_url, description_en, description_vi, created_at
		FROM app_releases WHERE platform = $1
		ORDER BY release_date DESC, id DESC LIMIT 1`, platform).
		Scan(&rel.ID, &rel.AppName, &rel.Version, &rel.Platform, &rel.ReleaseDate, &rel.SizeLabel,
			&rel.APKURL, &rel.DescriptionEn, &rel.DescriptionVi, &rel.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rel, nil
}
