package echoapi

import (
	"mime"
	"strings"

	"github.com/labstack/echo/v4"
)

// jsonBody lets clients send a JSON body without a Content-Type, or with a structured
// "+json" media type such as application/vnd.api+json. Other media types are left to the binder.
func jsonBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		if ctype := req.Header.Get(echo.HeaderContentType); ctype == "" || isJSONSuffix(ctype) {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		return next(ctx)
	}
}

func isJSONSuffix(ctype string) bool {
	mediaType, _, err := mime.ParseMediaType(ctype)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
