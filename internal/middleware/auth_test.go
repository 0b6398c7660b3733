package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"veridoc/internal/domain"
	"veridoc/internal/middleware"
	"veridoc/internal/service"
	"veridoc/mocks"
)

func performAs(role domain.UserRole, guard gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(middleware.ContextKeyRole, string(role))
		}
	})
	r.POST("/guarded", guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole_Allowed(t *testing.T) {
	guard := middleware.RequireRole(domain.RoleDocumentController, domain.RoleAdministrator)

	assert.Equal(t, http.StatusOK, performAs(domain.RoleDocumentController, guard).Code)
	assert.Equal(t, http.StatusOK, performAs(domain.RoleAdministrator, guard).Code)
}

func TestRequireRole_Denied(t *testing.T) {
	guard := middleware.RequireRole(domain.RoleDocumentController, domain.RoleAdministrator)

	assert.Equal(t, http.StatusForbidden, performAs(domain.RoleQualityAssurance, guard).Code)
	assert.Equal(t, http.StatusForbidden, performAs("", guard).Code)
}

func TestRequirePermission(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	roleRepo := new(mocks.MockRoleRepo)
	identity := service.NewIdentityService(userRepo, roleRepo)

	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityHead).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityHead,
		Permissions: []domain.Permission{domain.PermRetireDocuments},
	}, nil)
	roleRepo.On("GetByName", mock.Anything, domain.RoleQualityAssurance).Return(&domain.RoleDefinition{
		Name:        domain.RoleQualityAssurance,
		Permissions: []domain.Permission{domain.PermSignReview},
	}, nil)

	guard := middleware.RequirePermission(identity, domain.PermRetireDocuments)

	assert.Equal(t, http.StatusOK, performAs(domain.RoleQualityHead, guard).Code)
	assert.Equal(t, http.StatusForbidden, performAs(domain.RoleQualityAssurance, guard).Code)
}
