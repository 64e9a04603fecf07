package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/app/repositories"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/orm"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
	"github.com/shashiranjanraj/kashvi-admin/pkg/validate"
)

// IdolService manages the product catalog, including thumbnail uploads to
// the configured storage disk.
type IdolService struct {
	idols      *repositories.IdolRepository
	categories *repositories.CategoryRepository
	disk       storage.Disk
}

func NewIdolService(idols *repositories.IdolRepository, categories *repositories.CategoryRepository, disk storage.Disk) *IdolService {
	return &IdolService{idols: idols, categories: categories, disk: disk}
}

// IdolInput is the create/update payload. Size is the statue height in feet.
type IdolInput struct {
	Title       string  `json:"title" validate:"required,min=2,max=150"`
	Description string  `json:"description" validate:"nullable,max=2000"`
	Size        float64 `json:"size" validate:"required,gte=0.1,lte=100"`
	Price       float64 `json:"price" validate:"required,gte=1"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
}

func (s *IdolService) All(ctx context.Context) ([]models.Idol, error) {
	return s.idols.All()
}

// Paginate returns one page of the catalog with its pagination metadata.
func (s *IdolService) Paginate(ctx context.Context, page, limit int) ([]models.Idol, orm.Pagination, error) {
	return s.idols.Paginated(page, limit)
}

func (s *IdolService) Find(ctx context.Context, id uint) (*models.Idol, error) {
	idol, err := s.idols.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return idol, nil
}

func (s *IdolService) ByCategory(ctx context.Context, categoryID uint) ([]models.Idol, error) {
	return s.idols.ByCategory(categoryID)
}

func (s *IdolService) Add(ctx context.Context, in IdolInput) (*models.Idol, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	if _, err := s.categories.Find(in.CategoryID); err != nil {
		return nil, map[string]string{"categoryId": "The selected category does not exist."}, nil
	}

	idol := &models.Idol{
		Title:       in.Title,
		Description: in.Description,
		Size:        in.Size,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
	}
	if err := s.idols.Create(idol); err != nil {
		return nil, nil, err
	}

	logger.WithCtx(ctx).Info("idol created", "idol_id", idol.ID, "title", idol.Title)
	return idol, nil, nil
}

func (s *IdolService) Update(ctx context.Context, id uint, in IdolInput) (*models.Idol, map[string]string, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs, nil
	}

	idol, err := s.idols.Find(id)
	if err != nil {
		return nil, nil, wrapNotFound(err)
	}

	if in.CategoryID != idol.CategoryID {
		if _, err := s.categories.Find(in.CategoryID); err != nil {
			return nil, map[string]string{"categoryId": "The selected category does not exist."}, nil
		}
	}

	idol.Title = in.Title
	idol.Description = in.Description
	idol.Size = in.Size
	idol.Price = in.Price
	idol.Stock = in.Stock
	idol.CategoryID = in.CategoryID
	idol.Category = nil // force reload on next fetch

	if err := s.idols.Update(idol); err != nil {
		return nil, nil, err
	}
	return idol, nil, nil
}

func (s *IdolService) Delete(ctx context.Context, id uint) error {
	idol, err := s.idols.Find(id)
	if err != nil {
		return wrapNotFound(err)
	}

	if err := s.idols.Delete(idol); err != nil {
		return err
	}

	// Best-effort thumbnail cleanup.
	if idol.Thumbnail != "" && s.disk != nil {
		if key := thumbnailKey(idol.ID, idol.Thumbnail); key != "" {
			_ = s.disk.Delete(ctx, key)
		}
	}

	logger.WithCtx(ctx).Info("idol deleted", "idol_id", id)
	return nil
}

// SaveThumbnail stores an uploaded image for the idol and records its URL.
func (s *IdolService) SaveThumbnail(ctx context.Context, id uint, filename string, r io.Reader) (*models.Idol, error) {
	idol, err := s.idols.Find(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	if s.disk == nil {
		return nil, fmt.Errorf("no storage disk configured")
	}

	key := fmt.Sprintf("idols/%d/%d%s", id, time.Now().UnixNano(), filepath.Ext(filename))
	if err := s.disk.Put(ctx, key, r); err != nil {
		return nil, fmt.Errorf("store thumbnail: %w", err)
	}

	idol.Thumbnail = s.disk.URL(key)
	if err := s.idols.Update(idol); err != nil {
		return nil, err
	}
	return idol, nil
}

// thumbnailKey recovers the storage key from a stored thumbnail URL.
func thumbnailKey(id uint, url string) string {
	marker := fmt.Sprintf("idols/%d/", id)
	if i := strings.Index(url, marker); i != -1 {
		return url[i:]
	}
	return ""
}
