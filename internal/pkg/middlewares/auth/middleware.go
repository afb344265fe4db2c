package auth

import (
	"context"
	"net/http"
	"strings"

	"centralkitchen/internal/entities"
	"centralkitchen/pkg/logger"
)

type actorCtxKey struct{}

// Middleware parses the Bearer token and stores the resulting Actor in the
// request context. Requests without a valid token never reach the handler.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor, err := parser.ParseToken(token)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("token rejected")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
		})
	}
}

// ContextWithActor returns a context carrying the given actor.
func ContextWithActor(ctx context.Context, actor *entities.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext returns the Actor injected by Middleware.
func ActorFromContext(ctx context.Context) (*entities.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(*entities.Actor)
	return actor, ok
}
