package repo

import (
	"context"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// SnapshotRepo 快照仓库接口
type SnapshotRepo interface {
	// Load 拉取并校验一次快照
	Load(ctx context.Context) (*domain.TrendSnapshot, error)
	// Location 快照的完整地址
	Location() string
	// ServingWarning 页面没有经过服务端提供（例如 file: 打开）时的提示，正常为空
	ServingWarning() string
}
