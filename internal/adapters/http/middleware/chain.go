package middleware

import "net/http"

// Chain composes middleware into one. The first argument is outermost, so
//
//	Chain(Recovery(logger), RequestID(), Logging(logger))(handler)
//
// equals Recovery(logger)(RequestID()(Logging(logger)(handler))). Nil entries
// are skipped, which lets callers leave optional stages out in place.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			if middlewares[i] == nil {
				continue
			}
			handler = middlewares[i](handler)
		}
		return handler
	}
}
