package service

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/repository"
)

type MediaService interface {
	List(ctx context.Context) ([]*models.MediaAsset, error)
	Upload(ctx context.Context, file *multipart.FileHeader) (*models.MediaAsset, error)
	Remove(ctx context.Context, id string) error
}

type mediaService struct {
	ma repository.MediaAssetRepository
	r2 *R2Service
}

func NewMediaService(ma repository.MediaAssetRepository, r2 *R2Service) MediaService {
	return &mediaService{ma: ma, r2: r2}
}

var allowedMediaTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "mp4": {}, "mov": {},
}

func (s *mediaService) List(ctx context.Context) ([]*models.MediaAsset, error) {
	assets, err := s.ma.List(ctx)
	if err != nil {
		return nil, WrapError(err, "error listing media assets")
	}
	if assets == nil {
		assets = []*models.MediaAsset{}
	}
	return assets, nil
}

func (s *mediaService) Upload(ctx context.Context, file *multipart.FileHeader) (*models.MediaAsset, error) {
	if file == nil {
		return nil, ErrInvalid("No file provided")
	}

	content, err := file.Open()
	if err != nil {
		return nil, WrapError(err, "error opening file")
	}
	defer content.Close()

	fileBytes, err := io.ReadAll(content)
	if err != nil {
		return nil, WrapError(err, "error reading file content")
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return nil, ErrInvalid("Unsupported file type")
	}
	if _, ok := allowedMediaTypes[fileType.Extension]; !ok {
		return nil, ErrInvalid("File type " + fileType.Extension + " is not allowed")
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	if err := s.r2.Upload(ctx, id, fileBytes, fileType.MIME.Value); err != nil {
		return nil, WrapError(err, "error uploading file")
	}

	asset := models.MediaAsset{
		ID:        id,
		FileName:  file.Filename,
		FileType:  fileType.MIME.Value,
		FileSize:  int64(len(fileBytes)),
		FileURL:   s.r2.PublicURL(id),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.ma.Create(ctx, &asset); err != nil {
		return nil, WrapError(err, "error saving media asset")
	}
	return &asset, nil
}

func (s *mediaService) Remove(ctx context.Context, id string) error {
	asset, err := s.ma.GetByID(ctx, id)
	if err != nil {
		return WrapError(err, "error getting media asset")
	}
	if asset == nil {
		return ErrNotFound("Media asset not found")
	}

	if err := s.ma.Remove(ctx, id); err != nil {
		return WrapError(err, "error removing media asset")
	}
	return nil
}
