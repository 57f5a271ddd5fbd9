package server

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Candratama/invow-sub000/internal/storectx"
)

// AuthRequired validates the Bearer token and binds the caller's store and
// role to the request context. Tokens carry store_id and role claims.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Without a configured secret every HMAC signature would verify
		// against the empty key, so fail closed instead.
		if s.cfg.AuthJWTSecret == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrUnauthorized
			}
			return []byte(s.cfg.AuthJWTSecret), nil
		})
		if err != nil || !token.Valid {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		storeID, ok := parseStoreClaim(claims["store_id"])
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		role := storectx.RoleOwner
		if raw, ok := claims["role"].(string); ok && storectx.Role(raw) == storectx.RoleAdmin {
			role = storectx.RoleAdmin
		}

		ctx := storectx.WithStoreID(c.Request.Context(), storeID)
		ctx = storectx.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminRequired gates the admin surface. It assumes AuthRequired ran first.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if storectx.RoleFromContext(c.Request.Context()) != storectx.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

// PublicRateLimit throttles unauthenticated endpoints per client IP. Without
// a limiter configured the middleware is a passthrough.
func (s *Server) PublicRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := s.publicLimiter.Allow(c.Request.Context(), "invow:public:"+c.ClientIP(), s.cfg.PublicRateLimit, s.cfg.PublicRateBurst)
		if err != nil {
			// A broken limiter should not take the endpoint down.
			c.Next()
			return
		}
		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// parseStoreClaim accepts string claims only. JSON numbers decode as float64
// and corrupt snowflake IDs above 2^53, so issuers must send the ID as a
// string.
func parseStoreClaim(raw any) (snowflake.ID, bool) {
	typed, ok := raw.(string)
	if !ok {
		return 0, false
	}
	id, err := snowflake.ParseString(typed)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
