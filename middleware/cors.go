package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig configures a CORS gate.
type CORSConfig struct {
	// AllowOrigins lists accepted origins, matched case-insensitively. Empty or "*" accepts all.
	AllowOrigins []string

	// AllowMethods defaults to "GET, POST, PUT, DELETE, OPTIONS".
	AllowMethods []string

	// AllowHeaders; when empty the preflight's Access-Control-Request-Headers is echoed back.
	AllowHeaders []string

	AllowCredentials bool

	// MaxAge in seconds for preflight caching. Zero omits the header.
	MaxAge int
}

// CORS accepts every origin. Used on public read routes.
func CORS() echo.MiddlewareFunc {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithOptions only reflects whitelisted origins. Used on preflight and write routes.
func CORSWithOptions(whitelist []string) echo.MiddlewareFunc {
	return CORSWithConfig(CORSConfig{
		AllowOrigins:     whitelist,
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
		MaxAge:           600,
	})
}

// CORSWithConfig sets the CORS response headers and always hands the request on;
// OPTIONS is answered by the route itself. A rejected origin simply gets no
// Access-Control-Allow-Origin header.
func CORSWithConfig(cfg CORSConfig) echo.MiddlewareFunc {
	allowAll := len(cfg.AllowOrigins) == 0
	allowed := make(map[string]string, len(cfg.AllowOrigins))
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			allowAll = true
			break
		}
		allowed[strings.ToLower(o)] = o
	}

	// Credentials may not be combined with "*"; echo the origin instead.
	reflectOrigin := cfg.AllowCredentials

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	if allowMethods == "" {
		allowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	}
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	maxAge := ""
	if cfg.MaxAge > 0 {
		maxAge = strconv.Itoa(cfg.MaxAge)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			h := c.Response().Header()
			origin := req.Header.Get(echo.HeaderOrigin)

			if !allowAll || reflectOrigin {
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			}
			if origin == "" {
				return next(c)
			}

			allowOrigin := ""
			switch {
			case allowAll && !reflectOrigin:
				allowOrigin = "*"
			case allowAll:
				allowOrigin = origin
			default:
				if _, ok := allowed[strings.ToLower(origin)]; ok {
					allowOrigin = origin
				}
			}
			if allowOrigin == "" {
				return next(c)
			}

			h.Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
			if cfg.AllowCredentials {
				h.Set(echo.HeaderAccessControlAllowCredentials, "true")
			}

			if req.Method == http.MethodOptions && req.Header.Get(echo.HeaderAccessControlRequestMethod) != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
				if allowHeaders != "" {
					h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
				} else if rh := req.Header.Get(echo.HeaderAccessControlRequestHeaders); rh != "" {
					h.Set(echo.HeaderAccessControlAllowHeaders, rh)
				}
				if maxAge != "" {
					h.Set(echo.HeaderAccessControlMaxAge, maxAge)
				}
			}
			return next(c)
		}
	}
}
