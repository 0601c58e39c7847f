package http_api

// routes sets up the routes for the HTTP server.
func (s *HTTPServer) routes() {
	api := s.router.Group("/api")

	api.GET("/", s.root)

	api.GET("/payments/settings", s.getPaymentSettings)
	api.PUT("/payments/settings", s.putPaymentSettings)

	api.POST("/checkout/session", s.createCheckoutSession)

	api.POST("/status", s.createStatusCheck)
	api.GET("/status", s.listStatusChecks)

	api.GET("/catalog/packages", s.listPackages)
	api.GET("/catalog/plans", s.listPlans)
	api.GET("/catalog/platforms", s.listPlatforms)
	api.GET("/catalog/testimonials", s.listTestimonials)
	api.GET("/catalog/blog", s.listBlogPosts)
	api.GET("/catalog/faqs", s.listFAQs)
	api.GET("/catalog/content", s.siteContent)
}
