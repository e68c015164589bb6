package components

import (
	"spinwheel/internal/handler"
	"spinwheel/internal/handler/api"
	"spinwheel/internal/handler/middleware"
	"spinwheel/internal/pkg/jwt"
	"spinwheel/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWheelHandler,
		api.NewVoucherAdminHandler,
		api.NewShareConfigHandler,
		middleware.NewAuthMiddleware,
		ratelimit.New,
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(middleware.TokenValidator)),
		),
	),
	fx.Invoke(handler.NewRouter),
)
