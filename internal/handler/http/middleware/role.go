package middleware

import (
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/user"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires admin or super-admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleAdmin && role != user.RoleSuperAdmin {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
