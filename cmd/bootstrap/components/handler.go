package components

import (
	"bookswap/internal/handler"
	"bookswap/internal/handler/api"
	"bookswap/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookHandler,
		api.NewListingHandler,
		api.NewExchangeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
