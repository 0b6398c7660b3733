package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/config"
	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// UploadContentInput is the DTO for attaching a content file to a version.
type UploadContentInput struct {
	DocumentID  uuid.UUID
	VersionID   uuid.UUID
	ActorID     uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ContentDownload carries a fetched content file.
type ContentDownload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ContentService stores and retrieves version content files in object
// storage. Content follows the version's freeze rule: once the version is
// signed, its file can no longer be replaced.
type ContentService interface {
	Upload(ctx context.Context, input *UploadContentInput) (*domain.DocumentVersion, error)
	Download(ctx context.Context, documentID, versionID uuid.UUID) (*ContentDownload, error)
	PresignedURL(ctx context.Context, documentID, versionID uuid.UUID) (string, error)
}

type contentService struct {
	docRepo  port.DocumentRepository
	storage  port.ObjectStorage
	identity IdentityService
	audit    AuditService
	locker   *DocLocker
	cfg      config.S3Config
}

// NewContentService creates a new ContentService implementation.
func NewContentService(
	docRepo port.DocumentRepository,
	storage port.ObjectStorage,
	identity IdentityService,
	audit AuditService,
	locker *DocLocker,
	cfg config.S3Config,
) ContentService {
	return &contentService{
		docRepo:  docRepo,
		storage:  storage,
		identity: identity,
		audit:    audit,
		locker:   locker,
		cfg:      cfg,
	}
}

func (s *contentService) Upload(ctx context.Context, input *UploadContentInput) (*domain.DocumentVersion, error) {
	if input.FileName == "" || input.Body == nil {
		return nil, domain.ErrValidation
	}
	if max := s.cfg.MaxFileSizeMB * 1024 * 1024; max > 0 && input.Size > max {
		return nil, domain.ErrValidation
	}
	actor, err := s.identity.ResolveActor(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("resolving actor: %w", err)
	}

	unlock := s.locker.Lock(input.DocumentID)
	defer unlock()

	doc, err := s.docRepo.GetByID(ctx, input.DocumentID)
	if err != nil {
		return nil, err
	}
	version := doc.VersionByID(input.VersionID)
	if version == nil {
		return nil, domain.ErrNotFound
	}
	if version.Signed() {
		return nil, domain.ErrInvalidState
	}

	key := fmt.Sprintf("documents/%s/versions/%s/%s", doc.ID, version.ID, path.Base(input.FileName))
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		log.Printf("contentService.Upload: storage upload failed for %s: %v", key, err)
		return nil, domain.ErrUploadFailed
	}

	version.FileName = path.Base(input.FileName)
	version.ContentType = input.ContentType
	version.ContentKey = key
	version.FileSize = input.Size
	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("recording content coordinates: %w", err)
	}

	if _, err := s.audit.Record(ctx, &AuditEntryInput{
		DocumentID:  doc.ID,
		Actor:       actor.FullName,
		Role:        actor.Role,
		Action:      domain.AuditContentUploaded,
		Description: fmt.Sprintf("%s uploaded %s to version %s.", actor.FullName, version.FileName, version.Version),
		Metadata:    map[string]string{"version": version.Version, "file_name": version.FileName, "location": out.Location},
	}); err != nil {
		return nil, err
	}
	return version, nil
}

func (s *contentService) Download(ctx context.Context, documentID, versionID uuid.UUID) (*ContentDownload, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	version := doc.VersionByID(versionID)
	if version == nil || version.ContentKey == "" {
		return nil, domain.ErrNotFound
	}

	data, err := s.storage.Download(ctx, s.cfg.Bucket, version.ContentKey)
	if err != nil {
		return nil, fmt.Errorf("fetching content %s: %w", version.ContentKey, err)
	}
	return &ContentDownload{
		FileName:    version.FileName,
		ContentType: version.ContentType,
		Data:        data,
	}, nil
}

func (s *contentService) PresignedURL(ctx context.Context, documentID, versionID uuid.UUID) (string, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	version := doc.VersionByID(versionID)
	if version == nil || version.ContentKey == "" {
		return "", domain.ErrNotFound
	}

	expiry := s.cfg.PresignExpiry
	if expiry <= 0 {
		expiry = int64(time.Hour / time.Second)
	}
	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, version.ContentKey, expiry)
	if err != nil {
		return "", fmt.Errorf("presigning %s: %w", version.ContentKey, err)
	}
	return url, nil
}
