// Command seed populates a fresh database with the baseline roles, demo
// users, the default workflow template, and the starting document-type
// vocabulary. Safe to rerun: existing rows are left in place.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"veridoc/internal/config"
	"veridoc/internal/domain"
	"veridoc/internal/repository/postgres"
)

type seedUser struct {
	email    string
	fullName string
	role     domain.UserRole
	password string
	pin      string
}

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

	ctx := context.Background()

	if err := seedRoles(ctx, db); err != nil {
		return err
	}
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	if err := seedTemplate(ctx, db); err != nil {
		return err
	}
	if err := seedTypes(ctx, db); err != nil {
		return err
	}

	log.Println("seed complete")
	return nil
}

func seedRoles(ctx context.Context, db *sqlx.DB) error {
	roles := []struct {
		name        domain.UserRole
		description string
		permissions []domain.Permission
	}{
		{
			name:        domain.RoleAdministrator,
			description: "Full system administration",
			permissions: []domain.Permission{
				domain.PermSignReview, domain.PermSignApproval, domain.PermSignExecution,
				domain.PermManageWorkflow, domain.PermManageDocuments, domain.PermManageTypes,
				domain.PermRetireDocuments,
			},
		},
		{
			name:        domain.RoleDocumentController,
			description: "Maintains the register and the type vocabulary",
			permissions: []domain.Permission{
				domain.PermSignReview, domain.PermManageDocuments, domain.PermManageTypes,
			},
		},
		{
			name:        domain.RoleQualityAssurance,
			description: "Reviews and executes controlled documents",
			permissions: []domain.Permission{
				domain.PermSignReview, domain.PermSignExecution,
			},
		},
		{
			name:        domain.RoleQualityHead,
			description: "Approves, releases, and retires controlled documents",
			permissions: []domain.Permission{
				domain.PermSignReview, domain.PermSignApproval,
				domain.PermManageWorkflow, domain.PermRetireDocuments,
			},
		},
	}

	roleRepo := postgres.NewRoleRepo(db)
	for _, r := range roles {
		if _, err := roleRepo.GetByName(ctx, r.name); err == nil {
			continue
		}
		perms := make([]string, len(r.permissions))
		for i, p := range r.permissions {
			perms[i] = string(p)
		}
		permsJSON, err := jsonArray(perms)
		if err != nil {
			return fmt.Errorf("encoding permissions for %s: %w", r.name, err)
		}
		_, err = db.ExecContext(ctx,
			"INSERT INTO roles (id, name, description, permissions) VALUES ($1, $2, $3, $4)",
			uuid.New(), r.name, r.description, permsJSON)
		if err != nil {
			return fmt.Errorf("seeding role %s: %w", r.name, err)
		}
		log.Printf("seeded role %s", r.name)
	}
	return nil
}

func seedUsers(ctx context.Context, db *sqlx.DB) error {
	users := []seedUser{
		{"admin@veridoc.local", "Asha Iyer", domain.RoleAdministrator, "admin-change-me", "000000"},
		{"controller@veridoc.local", "Marcus Webb", domain.RoleDocumentController, "controller-change-me", "135790"},
		{"qa.lead@veridoc.local", "Priya Nair", domain.RoleQualityAssurance, "qa-change-me", "246801"},
		{"quality.head@veridoc.local", "Elena Duarte", domain.RoleQualityHead, "head-change-me", "482916"},
	}

	userRepo := postgres.NewUserRepo(db)
	for _, u := range users {
		if _, err := userRepo.GetByEmail(ctx, u.email); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", u.email, err)
		}
		now := time.Now().UTC()
		user := &domain.User{
			ID:           uuid.New(),
			Email:        u.email,
			PasswordHash: string(hash),
			FullName:     u.fullName,
			Role:         u.role,
			PINDigest:    domain.HashPIN(u.pin),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.email, err)
		}
		log.Printf("seeded user %s (%s)", u.email, u.role)
	}
	return nil
}

func seedTemplate(ctx context.Context, db *sqlx.DB) error {
	templateRepo := postgres.NewTemplateRepo(db)
	if _, err := templateRepo.GetDefault(ctx); err == nil {
		return nil
	}

	tpl := &domain.WorkflowTemplate{
		ID:        uuid.New(),
		Name:      "Standard Review Cycle",
		IsDefault: true,
		Steps: []domain.WorkflowStep{
			{Stage: domain.StageDrafting, Role: domain.RoleDocumentController, MinimumSignatures: 0, SLADays: 5},
			{Stage: domain.StageReview, Role: domain.RoleQualityAssurance, MinimumSignatures: 1, SLADays: 7, SignatureMeaning: domain.MeaningReview},
			{Stage: domain.StageQualityAssurance, Role: domain.RoleQualityAssurance, MinimumSignatures: 1, SLADays: 5, SignatureMeaning: domain.MeaningReview},
			{Stage: domain.StageApproval, Role: domain.RoleQualityHead, MinimumSignatures: 1, SLADays: 5, SignatureMeaning: domain.MeaningApproval},
			{Stage: domain.StageRelease, Role: domain.RoleDocumentController, MinimumSignatures: 1, SLADays: 3, SignatureMeaning: domain.MeaningApproval},
		},
	}
	if err := templateRepo.Create(ctx, tpl); err != nil {
		return fmt.Errorf("seeding default template: %w", err)
	}
	log.Printf("seeded default template %q", tpl.Name)
	return nil
}

func seedTypes(ctx context.Context, db *sqlx.DB) error {
	types := []struct{ name, description string }{
		{"SOP", "Standard operating procedures"},
		{"Policy", "Organization-wide quality policies"},
		{"Work Instruction", "Step-level operating instructions"},
		{"Specification", "Material and product specifications"},
		{"Form", "Controlled blank forms and records"},
	}

	typeRepo := postgres.NewDocumentTypeRepo(db)
	for _, t := range types {
		if _, err := typeRepo.GetByType(ctx, t.name); err == nil {
			continue
		}
		docType := &domain.DocumentType{
			ID:          uuid.New(),
			Type:        t.name,
			Description: t.description,
		}
		if err := typeRepo.Create(ctx, docType); err != nil {
			return fmt.Errorf("seeding type %s: %w", t.name, err)
		}
		log.Printf("seeded document type %s", t.name)
	}
	return nil
}

func jsonArray(values []string) (string, error) {
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
