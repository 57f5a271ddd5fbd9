package tax

import (
	"go.uber.org/fx"

	"github.com/Candratama/invow-sub000/internal/tax/repository"
	"github.com/Candratama/invow-sub000/internal/tax/service"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
