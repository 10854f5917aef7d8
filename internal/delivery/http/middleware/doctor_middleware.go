package middleware

import (
	"net/http"

	"vita-server/internal/domain/repository"
	"vita-server/pkg/response"

	"gorm.io/gorm"
)

// DoctorMiddleware gates the doctor-facing resources. It loads the account
// row so revoked or deactivated accounts are cut off immediately, not at
// token expiry.
type DoctorMiddleware struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewDoctorMiddleware(db *gorm.DB, userRepo repository.UserRepository) *DoctorMiddleware {
	return &DoctorMiddleware{
		db:       db,
		userRepo: userRepo,
	}
}

// RequireActiveDoctor rejects requests from inactive accounts and from
// roles without patient-roster access.
func (m *DoctorMiddleware) RequireActiveDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "User information not found")
			return
		}

		user, err := m.userRepo.FindByID(m.db.WithContext(r.Context()), userID)
		if err != nil {
			response.InternalServerError(w, "Failed to load user")
			return
		}
		if user == nil {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		if !user.IsActive {
			response.Forbidden(w, "Account is inactive")
			return
		}
		if !user.CanManagePatients() {
			response.Forbidden(w, "Access restricted to doctors")
			return
		}

		next.ServeHTTP(w, r)
	})
}
