package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

// CartService covers the cart page and badge.
type CartService interface {
	Items(ctx context.Context, profile string) ([]domain.LineItem, error)
	Add(ctx context.Context, profile string, item domain.LineItem) ([]domain.LineItem, error)
	SetQuantity(ctx context.Context, profile, name string, quantity int) ([]domain.LineItem, error)
	Remove(ctx context.Context, profile, name string) ([]domain.LineItem, error)
	Clear(ctx context.Context, profile string) error
	Summary(ctx context.Context, profile string) (domain.CartSummary, error)
}

// CheckoutService covers the checkout and order-success pages.
type CheckoutService interface {
	Initiate(ctx context.Context, profile string, displayedTotal int64) error
	Commit(ctx context.Context, profile, payment string) (*domain.Order, error)
	BuyNow(ctx context.Context, profile string, item domain.LineItem) (int64, error)
	Orders(ctx context.Context, profile string) ([]domain.Order, error)
}

// AccountService covers the login/signup modal and the header session state.
type AccountService interface {
	Signup(ctx context.Context, profile, name, email, password string) error
	Login(ctx context.Context, profile, email, password string) (*domain.User, error)
	Logout(ctx context.Context, profile string) error
	Session(ctx context.Context, profile string) (domain.Session, error)
}

// CatalogService covers the listing page and the quick-view modal.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, key string) (*domain.Product, error)
}

// Deps holds the services the router needs.
type Deps struct {
	CartSvc     CartService
	CheckoutSvc CheckoutService
	AccountSvc  AccountService
	CatalogSvc  CatalogService
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.CartSvc == nil || deps.CheckoutSvc == nil || deps.AccountSvc == nil || deps.CatalogSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, profileHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:key", getProductHandler(deps.CatalogSvc))

	scoped := router.Group("/", profileMiddleware())
	scoped.GET("/cart", getCartHandler(deps.CartSvc))
	scoped.POST("/cart/items", addCartItemHandler(deps.CartSvc))
	scoped.PATCH("/cart/items/:name", setCartQuantityHandler(deps.CartSvc))
	scoped.DELETE("/cart/items/:name", removeCartItemHandler(deps.CartSvc))
	scoped.DELETE("/cart", clearCartHandler(deps.CartSvc))
	scoped.POST("/cart/coupon", applyCouponHandler(deps.CartSvc))

	scoped.POST("/checkout", initiateCheckoutHandler(deps.CheckoutSvc))
	scoped.POST("/checkout/order", commitOrderHandler(deps.CheckoutSvc))
	scoped.POST("/checkout/buy-now", buyNowHandler(deps.CheckoutSvc))
	scoped.GET("/orders", listOrdersHandler(deps.CheckoutSvc))

	scoped.POST("/signup", signupHandler(deps.AccountSvc))
	scoped.POST("/login", loginHandler(deps.AccountSvc))
	scoped.POST("/logout", logoutHandler(deps.AccountSvc))
	scoped.GET("/session", sessionHandler(deps.AccountSvc))

	return router, nil
}
