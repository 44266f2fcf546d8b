package server

import (
	"github.com/google/wire"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/biz"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/data"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/service"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/usecase"
)

// ProviderSet 是看板服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewSnapshotRepo,

	// Biz providers
	biz.NewNormalizer,
	biz.NewChartBuilder,

	// UseCase providers
	usecase.NewDashboardUseCase,

	// Service providers
	service.NewDashboardService,
)
