package subscription

import (
	"go.uber.org/fx"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	"github.com/Candratama/invow-sub000/internal/subscription/repository"
	"github.com/Candratama/invow-sub000/internal/subscription/service"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Provide(func(svc subscriptiondomain.Service) subscriptiondomain.TierResolver { return svc }),
)
