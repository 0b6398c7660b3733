package main

import (
	"fmt"
	"log"

	"veridoc/internal/config"
	"veridoc/internal/email/noop"
	"veridoc/internal/email/ses"
	"veridoc/internal/handler"
	"veridoc/internal/port"
	"veridoc/internal/repository/postgres"
	"veridoc/internal/router"
	"veridoc/internal/service"
	s3storage "veridoc/internal/storage/s3"
)

// @title VeriDoc API
// @version 1.0
// @description Controlled document management with lifecycle workflows, electronic signatures, and audit trails.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	docRepo := postgres.NewDocumentRepo(db)
	auditRepo := postgres.NewAuditRepo(db)
	taskRepo := postgres.NewTaskRepo(db)
	userRepo := postgres.NewUserRepo(db)
	roleRepo := postgres.NewRoleRepo(db)
	typeRepo := postgres.NewDocumentTypeRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	locker := service.NewDocLocker()
	auditSvc := service.NewAuditService(auditRepo)
	identitySvc := service.NewIdentityService(userRepo, roleRepo)
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	registrySvc := service.NewRegistryService(docRepo, taskRepo, typeRepo, templateRepo, identitySvc, auditSvc, locker)
	workflowSvc := service.NewWorkflowService(docRepo, taskRepo, userRepo, identitySvc, auditSvc, emailSender, locker)
	signatureSvc := service.NewSignatureService(docRepo, userRepo, identitySvc, auditSvc, locker)
	contentSvc := service.NewContentService(docRepo, s3Client, identitySvc, auditSvc, locker, cfg.S3)
	reportSvc := service.NewReportService(docRepo, auditSvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	documentH := handler.NewDocumentHandler(registrySvc)
	workflowH := handler.NewWorkflowHandler(workflowSvc)
	signatureH := handler.NewSignatureHandler(signatureSvc)
	auditH := handler.NewAuditHandler(auditSvc, registrySvc)
	contentH := handler.NewContentHandler(contentSvc)
	templateH := handler.NewTemplateHandler(templateRepo)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(
		authSvc, identitySvc, cfg.CORS.AllowedOrigins,
		authH, documentH, workflowH, signatureH, auditH, contentH, templateH, reportH, healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
