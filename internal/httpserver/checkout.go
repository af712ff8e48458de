package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
)

type initiateCheckoutRequest struct {
	Total int64 `json:"total"`
}

type commitOrderRequest struct {
	Payment string `json:"payment"`
}

type buyNowRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity *int   `json:"quantity"`
}

func initiateCheckoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req initiateCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.Initiate(c.Request.Context(), requestProfile(c), req.Total); err != nil {
			if errors.Is(err, domain.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": "your cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start checkout"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"checkoutTotal": req.Total})
	}
}

func commitOrderHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		order, err := svc.Commit(c.Request.Context(), requestProfile(c), req.Payment)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": "your cart is empty"})
			case err.Error() == "payment method required":
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func buyNowHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req buyNowRequest
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
		total, err := svc.BuyNow(c.Request.Context(), requestProfile(c), item)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"checkoutTotal": total})
	}
}

func listOrdersHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Orders(c.Request.Context(), requestProfile(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
