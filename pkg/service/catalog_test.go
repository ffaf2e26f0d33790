package service

import (
	"context"
	"testing"

	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	categories []models.Category
	products   []models.Product
}

func (f *fakeCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalogRepo) CreateCategory(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCatalogRepo) UpdateCategory(ctx context.Context, id primitive.ObjectID, name, imageURL string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
			f.categories[i].ImageURL = imageURL
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCatalogRepo) CategoryExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalogRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogRepo) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) ListProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeCatalogRepo) UpdateProduct(ctx context.Context, id primitive.ObjectID, upd repository.ProductUpdate) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID != id {
			continue
		}
		if upd.Name != nil {
			f.products[i].Name = *upd.Name
		}
		if upd.Price != nil {
			f.products[i].Price = *upd.Price
		}
		if upd.ImageURL != nil {
			f.products[i].ImageURL = *upd.ImageURL
		}
		if upd.Available != nil {
			f.products[i].Available = *upd.Available
		}
		p := f.products[i]
		return &p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			f.products = append(f.products[:i], f.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) addCategory(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.categories = append(f.categories, models.Category{ID: id, Name: name, ImageURL: "http://img/" + name})
	return id
}

type fakeCatalogCache struct {
	categories        []models.Category
	categoryProducts  map[string][]models.Product
	invalidations     int
	prodInvalidations []string
}

func newFakeCache() *fakeCatalogCache {
	return &fakeCatalogCache{categoryProducts: map[string][]models.Product{}}
}

func (f *fakeCatalogCache) GetCachedCategories(ctx context.Context) ([]models.Category, error) {
	if f.categories == nil {
		return nil, repository.Nil
	}
	return f.categories, nil
}

func (f *fakeCatalogCache) CacheCategories(ctx context.Context, categories []models.Category) error {
	f.categories = categories
	return nil
}

func (f *fakeCatalogCache) GetCachedCategoryProducts(ctx context.Context, categoryID string) ([]models.Product, error) {
	products, ok := f.categoryProducts[categoryID]
	if !ok {
		return nil, repository.Nil
	}
	return products, nil
}

func (f *fakeCatalogCache) CacheCategoryProducts(ctx context.Context, categoryID string, products []models.Product) error {
	f.categoryProducts[categoryID] = products
	return nil
}

func (f *fakeCatalogCache) InvalidateCategories(ctx context.Context) error {
	f.categories = nil
	f.invalidations++
	return nil
}

func (f *fakeCatalogCache) InvalidateCategoryProducts(ctx context.Context, categoryID string) error {
	delete(f.categoryProducts, categoryID)
	f.prodInvalidations = append(f.prodInvalidations, categoryID)
	return nil
}

func TestCreateProductRequiresExistingCategory(t *testing.T) {
	repo := &fakeCatalogRepo{}
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.CreateProduct(context.Background(), CreateProductIn{
		Name:     "Masala Dosa",
		Price:    120,
		ImageURL: "http://img/dosa",
		Category: primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Empty(t, repo.products, "nothing persisted on failure")

	_, err = svc.CreateProduct(context.Background(), CreateProductIn{
		Name:     "Masala Dosa",
		Price:    120,
		ImageURL: "http://img/dosa",
		Category: "not-a-hex-id",
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.Empty(t, repo.products)
}

func TestCreateProductDefaultsAvailable(t *testing.T) {
	repo := &fakeCatalogRepo{}
	catID := repo.addCategory("South Indian")
	svc := NewCatalogService(repo, nil, zap.NewNop())

	product, err := svc.CreateProduct(context.Background(), CreateProductIn{
		Name:     "Idli",
		Price:    60,
		ImageURL: "http://img/idli",
		Category: catID.Hex(),
	})
	require.NoError(t, err)
	assert.True(t, product.Available)

	off := false
	product, err = svc.CreateProduct(context.Background(), CreateProductIn{
		Name:      "Vada",
		Price:     50,
		ImageURL:  "http://img/vada",
		Category:  catID.Hex(),
		Available: &off,
	})
	require.NoError(t, err)
	assert.False(t, product.Available)
}

func TestProductsByCategory(t *testing.T) {
	repo := &fakeCatalogRepo{}
	catID := repo.addCategory("Beverages")
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.ProductsByCategory(context.Background(), "bad-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.ProductsByCategory(context.Background(), catID.Hex())
	assert.ErrorIs(t, err, ErrNoProducts)

	_, err = svc.CreateProduct(context.Background(), CreateProductIn{
		Name: "Chai", Price: 20, ImageURL: "http://img/chai", Category: catID.Hex(),
	})
	require.NoError(t, err)

	products, err := svc.ProductsByCategory(context.Background(), catID.Hex())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCategoriesServedFromCache(t *testing.T) {
	repo := &fakeCatalogRepo{}
	repo.addCategory("Starters")
	cache := newFakeCache()
	svc := NewCatalogService(repo, cache, zap.NewNop())

	// First read fills the cache from mongo.
	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, cache.categories, 1)

	// Later mongo-side changes stay invisible until invalidation.
	repo.addCategory("Mains")
	categories, err = svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestCatalogMutationsInvalidateCache(t *testing.T) {
	repo := &fakeCatalogRepo{}
	catID := repo.addCategory("Desserts")
	cache := newFakeCache()
	svc := NewCatalogService(repo, cache, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.NotNil(t, cache.categories)

	_, err = svc.CreateCategory(ctx, "Specials", "http://img/specials")
	require.NoError(t, err)
	assert.Nil(t, cache.categories, "category cache dropped on create")

	product, err := svc.CreateProduct(ctx, CreateProductIn{
		Name: "Kulfi", Price: 80, ImageURL: "http://img/kulfi", Category: catID.Hex(),
	})
	require.NoError(t, err)
	assert.Contains(t, cache.prodInvalidations, catID.Hex())

	off := false
	_, err = svc.UpdateProduct(ctx, product.ID.Hex(), repository.ProductUpdate{Available: &off})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID.Hex()))
	assert.Len(t, cache.prodInvalidations, 3)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeCatalogRepo{}, nil, zap.NewNop())

	_, err := svc.UpdateCategory(context.Background(), primitive.NewObjectID().Hex(), "X", "http://img/x")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.UpdateCategory(context.Background(), "junk", "X", "http://img/x")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	repo := &fakeCatalogRepo{}
	catID := repo.addCategory("Soups")
	svc := NewCatalogService(repo, nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductIn{
		Name: "Tomato Soup", Price: 90, ImageURL: "http://img/soup", Category: catID.Hex(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, catID.Hex()))

	// The product survives with a dangling category reference.
	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, catID, products[0].Category)
}
