package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go-payroll/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token issued by the auth service and
// copies its claims into the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abort(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, ErrTokenExpired)
				return
			}
			abort(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			abort(c, ErrInvalidToken)
			return
		}

		organizationID, _ := claims["organization_id"].(string)
		employeeID, _ := claims["employee_id"].(string)
		switch role {
		case domain.RoleOrganization:
			if organizationID == "" {
				abort(c, ErrInvalidToken)
				return
			}
		case domain.RoleEmployee:
			if organizationID == "" || employeeID == "" {
				abort(c, ErrInvalidToken)
				return
			}
		case domain.RoleBankAdmin:
			// bank admins act across organizations
			organizationID = ""
		default:
			abort(c, ErrInvalidToken)
			return
		}

		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("organization_id", organizationID)
		c.Set("employee_id", employeeID)

		c.Next()
	}
}
