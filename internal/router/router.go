package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "veridoc/docs"
	"veridoc/internal/domain"
	"veridoc/internal/handler"
	"veridoc/internal/middleware"
	"veridoc/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	identitySvc service.IdentityService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	workflowH *handler.WorkflowHandler,
	signatureH *handler.SignatureHandler,
	auditH *handler.AuditHandler,
	contentH *handler.ContentHandler,
	templateH *handler.TemplateHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Document register. Registration is the document-control function's
	// job; everyone authenticated can read.
	documents := protected.Group("/documents")
	documents.POST("", middleware.RequireRole(domain.RoleDocumentController, domain.RoleAdministrator), documentH.Create)
	documents.GET("", documentH.List)
	documents.GET("/:id", documentH.GetByID)
	documents.POST("/:id/versions", documentH.AddVersion)
	documents.PATCH("/:id/versions/:versionId", documentH.UpdateChangeSummary)
	documents.POST("/:id/retire", middleware.RequirePermission(identitySvc, domain.PermRetireDocuments), documentH.Retire)

	// Workflow tasks
	documents.GET("/:id/tasks", workflowH.ListTasks)
	documents.POST("/:id/tasks/:taskId/complete", workflowH.CompleteTask)

	// Electronic signatures
	documents.POST("/:id/signatures", signatureH.Sign)

	// Audit trail
	documents.GET("/:id/audit", auditH.ListByDocument)
	documents.GET("/:id/audit/export", reportH.ExportAudit)

	// Version content
	documents.POST("/:id/versions/:versionId/content", contentH.Upload)
	documents.GET("/:id/versions/:versionId/content", contentH.Download)
	documents.GET("/:id/versions/:versionId/content-url", contentH.PresignedURL)

	// Document type vocabulary
	types := protected.Group("/document-types")
	types.GET("", documentH.ListTypes)
	types.POST("", documentH.RegisterType)

	// Workflow template catalog
	templates := protected.Group("/workflow-templates")
	templates.GET("", templateH.List)
	templates.GET("/:id", templateH.GetByID)
	templates.POST("", middleware.RequirePermission(identitySvc, domain.PermManageWorkflow), templateH.Create)

	// Compliance reports
	reports := protected.Group("/reports")
	reports.GET("/status-summary", reportH.StatusSummary)
	reports.GET("/register/export", reportH.ExportRegister)

	return r
}
