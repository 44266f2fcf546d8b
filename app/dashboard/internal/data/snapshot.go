package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/repo"
)

type snapshotRepo struct {
	data     *Data
	pageURL  string
	location string
	log      *log.Helper
}

func NewSnapshotRepo(data *Data, c *conf.Snapshot, logger log.Logger) (repo.SnapshotRepo, error) {
	var pageURL, path string
	if c != nil {
		pageURL, path = c.BaseUrl, c.Path
	}
	location, err := ResolveLocation(pageURL, path)
	if err != nil {
		return nil, err
	}
	return &snapshotRepo{
		data:     data,
		pageURL:  pageURL,
		location: location,
		log:      log.NewHelper(logger),
	}, nil
}

func (r *snapshotRepo) Location() string {
	return r.location
}

func (r *snapshotRepo) ServingWarning() string {
	return LocalDiskWarning(r.pageURL)
}

func (r *snapshotRepo) Load(ctx context.Context) (*domain.TrendSnapshot, error) {
	body, err := r.data.source.Fetch(ctx, r.location)
	if err != nil {
		return nil, err
	}

	snap, err := Decode(body)
	if err != nil {
		return nil, err
	}
	if snap.Dropped > 0 {
		r.log.Warnf("snapshot %s: dropped %d malformed trend records", r.location, snap.Dropped)
	}
	r.log.Debugf("snapshot %s loaded: %d trends, %d categories, %d insights",
		r.location, len(snap.Trends), len(snap.CategoryStats), len(snap.Insights))
	return snap, nil
}
