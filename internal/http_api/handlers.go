package http_api

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/popularsmm/storefront/internal/models"
)

// CheckoutItem is one cart line in a checkout-session request.
type CheckoutItem struct {
	ID    string  `json:"id" binding:"required"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty" binding:"required,min=1"`
}

// CheckoutRequest is the JSON body for creating a checkout session.
type CheckoutRequest struct {
	Items      []CheckoutItem `json:"items" binding:"required,min=1,dive"`
	Method     string         `json:"method" binding:"required"`
	Currency   string         `json:"currency"`
	SuccessURL string         `json:"success_url"`
	CancelURL  string         `json:"cancel_url"`
}

// CheckoutResponse is the mocked session result. There is no real payment
// creation; the scaffold only reports whether the gateway is configured.
type CheckoutResponse struct {
	Status  string  `json:"status"`
	Method  string  `json:"method"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount"`
}

// StatusCheckRequest is the JSON body for recording a status check.
type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// requiredKeys lists the minimal credential fields a gateway needs before
// the checkout scaffold treats it as configured.
var requiredKeys = map[string][]string{
	models.GatewayStripe:     {"secretKey"},
	models.GatewaySSLCommerz: {"storeId", "storePassword"},
	models.GatewayPayPal:     {"clientId", "secret"},
}

// root is a handler for the /api/ endpoint.
func (s *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// getPaymentSettings returns the full settings document.
func (s *HTTPServer) getPaymentSettings(c *gin.Context) {
	settings, err := s.repo.GetSettings()
	if err != nil {
		s.logger.Error("Failed to get payment settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get payment settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// putPaymentSettings applies a partial update: each gateway node present
// in the body replaces the stored node wholesale, absent gateways are left
// untouched. The response is the resulting full document.
func (s *HTTPServer) putPaymentSettings(c *gin.Context) {
	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	settings, err := s.repo.UpdateSettings(&update)
	if err != nil {
		s.logger.Error("Failed to update payment settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment settings"})
		return
	}

	s.logger.Info("Payment settings updated")
	c.JSON(http.StatusOK, settings)
}

// createCheckoutSession is the mocked checkout scaffold. Manual payment
// needs no gateway; everything else only checks configuration and reports
// a placeholder result.
func (s *HTTPServer) createCheckoutSession(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	amount := 0.0
	for _, item := range req.Items {
		amount += item.Price * float64(item.Qty)
	}
	amount = math.Round(amount*100) / 100

	method := strings.ToLower(req.Method)
	if method == models.MethodManual {
		c.JSON(http.StatusOK, CheckoutResponse{
			Status:  "mock",
			Method:  method,
			Message: "Manual/UPI selected. No online payment required.",
			Amount:  amount,
		})
		return
	}

	settings, err := s.repo.GetSettings()
	if err != nil {
		s.logger.Error("Failed to get payment settings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get payment settings"})
		return
	}

	gw, ok := settings.Gateway(method)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method"})
		return
	}

	configured := gw.Enabled
	for _, key := range requiredKeys[method] {
		if gw.Data[key] == "" {
			configured = false
		}
	}

	if !configured {
		c.JSON(http.StatusOK, CheckoutResponse{
			Status:  "not_configured",
			Method:  method,
			Message: "Gateway not configured. Add keys in /payments page.",
			Amount:  amount,
		})
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{
		Status:  "placeholder",
		Method:  method,
		Message: "Integration scaffold ready. Add keys and we will enable live redirect.",
		Amount:  amount,
	})
}

// createStatusCheck records a client heartbeat.
func (s *HTTPServer) createStatusCheck(c *gin.Context) {
	var req StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().Unix(),
	}
	if err := s.repo.AddStatusCheck(check); err != nil {
		s.logger.Error("Failed to create status check", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create status check"})
		return
	}

	c.JSON(http.StatusOK, check)
}

// listStatusChecks returns the recorded heartbeats.
func (s *HTTPServer) listStatusChecks(c *gin.Context) {
	checks, err := s.repo.ListStatusChecks()
	if err != nil {
		s.logger.Error("Failed to list status checks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list status checks"})
		return
	}

	c.JSON(http.StatusOK, checks)
}

// Catalog feed handlers. The feed is read-only; there are no write routes.

func (s *HTTPServer) listPackages(c *gin.Context) {
	if platform := c.Query("platform"); platform != "" {
		c.JSON(http.StatusOK, s.catalog.PackagesByPlatform(platform))
		return
	}
	c.JSON(http.StatusOK, s.catalog.Packages())
}

func (s *HTTPServer) listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Plans())
}

func (s *HTTPServer) listPlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Platforms())
}

func (s *HTTPServer) listTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Testimonials())
}

func (s *HTTPServer) listBlogPosts(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.BlogPosts())
}

func (s *HTTPServer) listFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.FAQs())
}

// siteContent bundles the home-page marketing blocks.
func (s *HTTPServer) siteContent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hero":     s.catalog.Hero(),
		"metrics":  s.catalog.Metrics(),
		"contacts": s.catalog.Contacts(),
	})
}
