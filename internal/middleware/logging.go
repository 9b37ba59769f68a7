package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value line per request. Errors returned by the
// handler are rendered first so the logged status is the one sent.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			user := "-"
			if id, ok := UserIDFromContext(c); ok {
				user = id.String()
			}
			req := c.Request()
			res := c.Response()
			line := "request_id=%s method=%s path=%s status=%d bytes=%d latency=%s client_ip=%s user_id=%s"
			args := []any{RequestIDFromContext(c), req.Method, req.URL.Path, res.Status, res.Size, time.Since(start), c.RealIP(), user}
			if err != nil {
				line += " err=%q"
				args = append(args, err.Error())
			}
			log.Printf(line, args...)

			return err
		}
	}
}
