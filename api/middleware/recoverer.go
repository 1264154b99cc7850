package middleware

import (
	"fmt"
	"net/http"

	"github.com/angelmondragon/packfinderz-admin/api/responses"
	pkgerrors "github.com/angelmondragon/packfinderz-admin/pkg/errors"
	"github.com/angelmondragon/packfinderz-admin/pkg/logger"
)

// Recoverer turns a handler panic into an INTERNAL_ERROR envelope. An aborted
// handler is re-panicked so net/http can drop the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithField(ctx, "panic", fmt.Sprint(rec))
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, fmt.Errorf("panic: %v", rec), "panic recovered"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
