package service

import (
	"context"

	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogRepo is the slice of the mongo repository the catalog service uses.
type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id primitive.ObjectID, name, imageURL string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
	CategoryExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id primitive.ObjectID, upd repository.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// CatalogCache fronts the category and per-category product listings.
// A nil cache disables caching entirely.
type CatalogCache interface {
	GetCachedCategories(ctx context.Context) ([]models.Category, error)
	CacheCategories(ctx context.Context, categories []models.Category) error
	GetCachedCategoryProducts(ctx context.Context, categoryID string) ([]models.Product, error)
	CacheCategoryProducts(ctx context.Context, categoryID string, products []models.Product) error
	InvalidateCategories(ctx context.Context) error
	InvalidateCategoryProducts(ctx context.Context, categoryID string) error
}

type CatalogService struct {
	repo   CatalogRepo
	cache  CatalogCache
	logger *zap.Logger
}

func NewCatalogService(repo CatalogRepo, cache CatalogCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if categories, err := s.cache.GetCachedCategories(ctx); err == nil {
			return categories, nil
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheCategories(ctx, categories); err != nil {
			s.logger.Warn("failed to cache categories", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, imageURL string) (*models.Category, error) {
	category := &models.Category{Name: name, ImageURL: imageURL}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, imageURL string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	category, err := s.repo.UpdateCategory(ctx, oid, name, imageURL)
	if err != nil {
		return nil, err
	}
	s.invalidateCategories(ctx)
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	if err := s.repo.DeleteCategory(ctx, oid); err != nil {
		return err
	}
	// Products keep their category reference; there is no cascade.
	s.invalidateCategories(ctx)
	s.invalidateCategoryProducts(ctx, id)
	return nil
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) Product(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetProduct(ctx, oid)
}

// ProductsByCategory returns ErrNoProducts when the category has none,
// matching the listing surface's 404-on-empty behavior.
func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if s.cache != nil {
		if products, err := s.cache.GetCachedCategoryProducts(ctx, categoryID); err == nil && len(products) > 0 {
			return products, nil
		}
	}

	products, err := s.repo.ListProductsByCategory(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	if s.cache != nil {
		if err := s.cache.CacheCategoryProducts(ctx, categoryID, products); err != nil {
			s.logger.Warn("failed to cache products", zap.String("category", categoryID), zap.Error(err))
		}
	}
	return products, nil
}

type CreateProductIn struct {
	Name      string
	Price     float64
	ImageURL  string
	Category  string
	Available *bool
}

// CreateProduct checks the category exists before inserting; on any failure
// nothing is persisted. The existence check and the insert are two separate
// calls with no transaction around them.
func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductIn) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(in.Category)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	exists, err := s.repo.CategoryExists(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	product := &models.Product{
		Name:      in.Name,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		Category:  oid,
		Available: available,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCategoryProducts(ctx, in.Category)
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, upd repository.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	product, err := s.repo.UpdateProduct(ctx, oid, upd)
	if err != nil {
		return nil, err
	}
	s.invalidateCategoryProducts(ctx, product.Category.Hex())
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	product, err := s.repo.DeleteProduct(ctx, oid)
	if err != nil {
		return err
	}
	s.invalidateCategoryProducts(ctx, product.Category.Hex())
	return nil
}

func (s *CatalogService) invalidateCategories(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCategories(ctx); err != nil {
		s.logger.Warn("failed to invalidate category cache", zap.Error(err))
	}
}

func (s *CatalogService) invalidateCategoryProducts(ctx context.Context, categoryID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCategoryProducts(ctx, categoryID); err != nil {
		s.logger.Warn("failed to invalidate product cache", zap.String("category", categoryID), zap.Error(err))
	}
}
