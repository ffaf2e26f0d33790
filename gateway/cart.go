package gateway

import (
	"errors"
	"net/http"

	"github.com/example/tableserve/pkg/cart"
	"github.com/example/tableserve/pkg/models"
	"github.com/example/tableserve/pkg/repository"
	"github.com/example/tableserve/pkg/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type replaceCartReq struct {
	Cart []models.CartLine `json:"cart"`
}

type addCartItemReq struct {
	ProductID string `json:"productId" binding:"required"`
}

type setQuantityReq struct {
	// Delta is +1 or -1; the resulting quantity never drops below 1.
	Delta int `json:"delta" binding:"required"`
}

func (g *Gateway) getCart(c *gin.Context) {
	loaded, err := cart.Load(c.Request.Context(), g.carts, c.Param("userId"))
	if err != nil {
		g.logger.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": loaded.Lines(), "total": loaded.Total()})
}

// replaceCart overwrites the whole stored cart, mirroring how the web client
// rewrites its local copy on every mutation. Last write wins.
func (g *Gateway) replaceCart(c *gin.Context) {
	var req replaceCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Quantities are clamped to 1 on the way in, same as the client does.
	for i := range req.Cart {
		if req.Cart[i].Quantity < 1 {
			req.Cart[i].Quantity = 1
		}
	}

	if err := g.carts.Put(c.Request.Context(), c.Param("userId"), req.Cart); err != nil {
		g.logger.Error("failed to store cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": req.Cart})
}

func (g *Gateway) addCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := g.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrInvalidID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		g.logger.Error("failed to fetch product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	if !product.Available {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available"})
		return
	}

	loaded, err := cart.Load(c.Request.Context(), g.carts, c.Param("userId"))
	if err != nil {
		g.logger.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	line := models.CartLine{
		ProductID: product.ID.Hex(),
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	}
	if err := loaded.Add(c.Request.Context(), line); err != nil {
		if errors.Is(err, cart.ErrAlreadyInCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product already in cart"})
			return
		}
		g.logger.Error("failed to store cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cart": loaded.Lines(), "total": loaded.Total()})
}

func (g *Gateway) setCartItemQuantity(c *gin.Context) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loaded, err := cart.Load(c.Request.Context(), g.carts, c.Param("userId"))
	if err != nil {
		g.logger.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	if err := loaded.SetQuantity(c.Request.Context(), c.Param("productId"), req.Delta); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in cart"})
			return
		}
		g.logger.Error("failed to store cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": loaded.Lines(), "total": loaded.Total()})
}

func (g *Gateway) removeCartItem(c *gin.Context) {
	loaded, err := cart.Load(c.Request.Context(), g.carts, c.Param("userId"))
	if err != nil {
		g.logger.Error("failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	if err := loaded.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in cart"})
			return
		}
		g.logger.Error("failed to store cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": loaded.Lines(), "total": loaded.Total()})
}
