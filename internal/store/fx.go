package store

import (
	"go.uber.org/fx"

	"github.com/Candratama/invow-sub000/internal/store/repository"
	"github.com/Candratama/invow-sub000/internal/store/service"
)

var Module = fx.Module("store.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
