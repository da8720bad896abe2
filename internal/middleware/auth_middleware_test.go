package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appauth "github.com/srivaishnavi26/TandP-Management-System/internal/app/auth"
	"github.com/srivaishnavi26/TandP-Management-System/internal/app/models"
	"github.com/srivaishnavi26/TandP-Management-System/internal/pkg/apperrors"
	pkgauth "github.com/srivaishnavi26/TandP-Management-System/internal/pkg/auth"
)

type stubUserRepo struct {
	users map[int64]*models.User
}

func (s *stubUserRepo) CreateUser(context.Context, *models.User) (int64, error) { return 0, nil }
func (s *stubUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}
func (s *stubUserRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (s *stubUserRepo) EmailExists(context.Context, string) (bool, error)     { return false, nil }
func (s *stubUserRepo) UpdateUser(context.Context, *models.User) error        { return nil }
func (s *stubUserRepo) DeleteUser(context.Context, int64) error               { return nil }
func (s *stubUserRepo) SetSuperuser(context.Context, int64, bool) error       { return nil }
func (s *stubUserRepo) UpdateLastLogin(context.Context, int64) error          { return nil }

type stubStaffRepo struct {
	profiles map[int64]*models.StaffProfile // keyed by user ID
}

func (s *stubStaffRepo) Create(context.Context, *models.StaffProfile) (int64, error) { return 0, nil }
func (s *stubStaffRepo) GetByID(context.Context, int64) (*models.StaffProfile, error) {
	return nil, apperrors.ErrStaffProfileNotFound
}
func (s *stubStaffRepo) GetByUserID(_ context.Context, userID int64) (*models.StaffProfile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrStaffProfileNotFound
	}
	return p, nil
}
func (s *stubStaffRepo) GetAll(context.Context) ([]models.StaffProfile, error) { return nil, nil }
func (s *stubStaffRepo) Update(context.Context, *models.StaffProfile) error    { return nil }
func (s *stubStaffRepo) Delete(context.Context, int64) error                   { return nil }

func newTestMiddleware(users map[int64]*models.User, profiles map[int64]*models.StaffProfile) (*AuthMiddleware, *pkgauth.JWTService) {
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "placement-cell-test",
	})
	authorizer := appauth.NewAuthorizationService(&stubUserRepo{users: users}, &stubStaffRepo{profiles: profiles})
	return NewAuthMiddleware(jwtService, authorizer), jwtService
}

func newTestRouter(m *AuthMiddleware, capability appauth.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	if capability != "" {
		group = router.Group("/", m.JWTAuth(), m.CapabilityRequired(capability))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m, _ := newTestMiddleware(nil, nil)
	router := newTestRouter(m, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	m, _ := newTestMiddleware(nil, nil)
	router := newTestRouter(m, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	user := &models.User{ID: 7, Email: "u@srit.ac.in", IsActive: true}
	m, jwtService := newTestMiddleware(map[int64]*models.User{7: user}, nil)
	router := newTestRouter(m, "")

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestCapabilityRequiredDeniesStudent(t *testing.T) {
	user := &models.User{ID: 7, Email: "s@srit.ac.in", IsActive: true}
	m, jwtService := newTestMiddleware(map[int64]*models.User{7: user}, nil)
	router := newTestRouter(m, appauth.CapabilityAdmin)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestCapabilityRequiredChecksStorageNotToken(t *testing.T) {
	// The token still carries the superuser flag but the identity was
	// demoted in storage; the gate must deny.
	user := &models.User{ID: 7, Email: "a@srit.ac.in", IsSuperuser: true, IsStaff: true, IsActive: true}
	demoted := &models.User{ID: 7, Email: "a@srit.ac.in", IsSuperuser: false, IsStaff: true, IsActive: true}
	m, jwtService := newTestMiddleware(map[int64]*models.User{7: demoted}, nil)
	router := newTestRouter(m, appauth.CapabilityAdmin)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestCapabilityCoordinator(t *testing.T) {
	user := &models.User{ID: 7, Email: "c@srit.ac.in", IsStaff: true, IsActive: true}
	profile := &models.StaffProfile{ID: 1, UserID: 7, Role: models.RoleDepartmentCoordinator, Branch: "CSE"}
	m, jwtService := newTestMiddleware(
		map[int64]*models.User{7: user},
		map[int64]*models.StaffProfile{7: profile},
	)
	router := newTestRouter(m, appauth.CapabilityDepartmentCoordinator)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}
