package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/service/coupon"
)

type addItemRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity *int   `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := requestProfile(c)
		items, err := svc.Items(c.Request.Context(), profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		if items == nil {
			items = []domain.LineItem{}
		}
		sum := domain.Summarize(items)
		c.JSON(http.StatusOK, gin.H{
			"items":    items,
			"count":    sum.Count,
			"subtotal": sum.Subtotal,
		})
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		item := domain.LineItem{
			Name:     req.Name,
			Price:    req.Price,
			Image:    req.Image,
			Quantity: quantity,
		}
		items, err := svc.Add(c.Request.Context(), requestProfile(c), item)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"items": items,
			"count": domain.Summarize(items).Count,
		})
	}
}

func setCartQuantityHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		items, err := svc.SetQuantity(c.Request.Context(), requestProfile(c), c.Param("name"), req.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Remove(c.Request.Context(), requestProfile(c), c.Param("name"))
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), requestProfile(c)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// applyCouponHandler evaluates the code against the live subtotal. The result
// is never stored: reloading the cart always resets to no coupon applied.
func applyCouponHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sum, err := svc.Summary(c.Request.Context(), requestProfile(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		result := coupon.Apply(req.Code, sum.Subtotal)
		message := "coupon applied successfully"
		if !result.Accepted {
			message = "invalid coupon code"
		}
		c.JSON(http.StatusOK, gin.H{
			"accepted": result.Accepted,
			"discount": result.Discount,
			"subtotal": sum.Subtotal,
			"total":    result.Total,
			"message":  message,
		})
	}
}

func respondCartError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
