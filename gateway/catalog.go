package gateway

import (
	"errors"
	"net/http"

	"github.com/example/tableserve/pkg/repository"
	"github.com/example/tableserve/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createCategoryReq struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type updateCategoryReq struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func (g *Gateway) listCategories(c *gin.Context) {
	categories, err := g.catalog.Categories(c.Request.Context())
	if err != nil {
		g.logger.Error("failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (g *Gateway) createCategory(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and image URL are required"})
		return
	}

	category, err := g.catalog.CreateCategory(c.Request.Context(), req.Name, req.ImageURL)
	if err != nil {
		g.logger.Error("failed to add category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category added successfully", "category": category})
}

func (g *Gateway) updateCategory(c *gin.Context) {
	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := g.catalog.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.ImageURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		g.logger.Error("failed to update category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
}

func (g *Gateway) deleteCategory(c *gin.Context) {
	err := g.catalog.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		g.logger.Error("failed to remove category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category removed successfully"})
}

type createProductReq struct {
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	ImageURL  string   `json:"imageUrl" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Available *bool    `json:"available"`
}

type updateProductReq struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	ImageURL  *string  `json:"imageUrl"`
	Available *bool    `json:"available"`
}

func (g *Gateway) listProducts(c *gin.Context) {
	products, err := g.catalog.Products(c.Request.Context())
	if err != nil {
		g.logger.Error("failed to fetch products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (g *Gateway) listProductsByCategory(c *gin.Context) {
	products, err := g.catalog.ProductsByCategory(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		case errors.Is(err, service.ErrNoProducts):
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found for this category"})
		default:
			g.logger.Error("failed to fetch products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		}
		return
	}
	c.JSON(http.StatusOK, products)
}

func (g *Gateway) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := g.catalog.CreateProduct(c.Request.Context(), service.CreateProductIn{
		Name:      req.Name,
		Price:     *req.Price,
		ImageURL:  req.ImageURL,
		Category:  req.Category,
		Available: req.Available,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		g.logger.Error("failed to add product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (g *Gateway) updateProduct(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := g.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), repository.ProductUpdate{
		Name:      req.Name,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		Available: req.Available,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		g.logger.Error("failed to update product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (g *Gateway) deleteProduct(c *gin.Context) {
	err := g.catalog.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		g.logger.Error("failed to delete product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product successfully deleted"})
}
