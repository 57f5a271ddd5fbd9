package customer

import (
	"go.uber.org/fx"

	"github.com/Candratama/invow-sub000/internal/customer/repository"
	"github.com/Candratama/invow-sub000/internal/customer/service"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
