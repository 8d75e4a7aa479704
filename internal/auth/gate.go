package auth

import (
	"context"
	"log/slog"

	"github.com/planetdemo/planetdemo/internal/model"
	"github.com/planetdemo/planetdemo/internal/rpc"
)

// Gate returns an rpc.Gate that requires a resolvable bearer token.
// On success the resolved user is added to the context; otherwise the call
// is aborted with UNAUTHORIZED before input validation or the handler run.
func Gate(resolver Resolver, logger *slog.Logger) rpc.Gate {
	return func(ctx context.Context, call *rpc.Call) (context.Context, error) {
		token := BearerToken(call.Headers)
		if token == "" {
			logFailure(ctx, logger, call, "missing_token")
			return nil, rpc.ErrUnauthorized
		}

		user, ok := resolve(ctx, resolver, token)
		if !ok {
			logFailure(ctx, logger, call, "invalid_token")
			return nil, rpc.ErrUnauthorized
		}

		logger.Info("authentication successful",
			slog.String("user_id", user.ID),
			slog.String("procedure", call.Procedure),
			slog.String("ip", call.RemoteAddr),
			slog.String("endpoint", call.Endpoint),
			slog.String("request_id", call.RequestID),
		)

		return ContextWithUser(ctx, user), nil
	}
}

// resolve calls the resolver and turns a panic into "no user".
func resolve(ctx context.Context, resolver Resolver, token string) (user model.User, ok bool) {
	defer func() {
		if rvr := recover(); rvr != nil {
			user, ok = model.User{}, false
		}
	}()
	return resolver.Resolve(ctx, token)
}

func logFailure(ctx context.Context, logger *slog.Logger, call *rpc.Call, reason string) {
	logger.LogAttrs(ctx, slog.LevelWarn, "authentication failed",
		slog.String("reason", reason),
		slog.String("procedure", call.Procedure),
		slog.String("ip", call.RemoteAddr),
		slog.String("endpoint", call.Endpoint),
		slog.String("request_id", call.RequestID),
	)
}
