package catalog

import "github.com/popularsmm/storefront/internal/models"

// Static feed content. All of it is placeholder/mocked marketing data; the
// core only ever reads it.

var hero = models.Hero{
	Title:    "Buy TikTok & Go Viral Fast",
	Subtitle: "Transform your social media presence with PayPal & credit card payments or anonymous crypto for privacy. Premium quality, lightning fast delivery.",
	Bullets:  []string{"PayPal & Credit Cards", "Instant Automated Delivery", "Anonymous Crypto Available"},
}

var contactInfo = models.ContactInfo{
	Email:   "support@popularsmm.mock",
	Address: "100 Market St, Suite 500, San Francisco, CA",
	Phone:   "+1 (555) 123-9876",
}

var siteMetrics = models.Metrics{
	Orders:      247891,
	SuccessRate: 98.7,
	Platforms:   5,
}

var platforms = []models.Platform{
	{Key: "instagram", Name: "Instagram", Color: "#E1306C"},
	{Key: "tiktok", Name: "TikTok", Color: "#000000"},
	{Key: "youtube", Name: "YouTube", Color: "#FF0000"},
	{Key: "twitter", Name: "Twitter (X)", Color: "#14171A"},
	{Key: "facebook", Name: "Facebook", Color: "#1877F2"},
}

var packages = []models.CatalogItem{
	{
		ID:       "ig-f-1k",
		Platform: "instagram",
		Title:    "1K Instagram Followers",
		QtyLabel: "1K",
		Price:    4.99,
		OldPrice: 5.99,
		Discount: 17,
		Delivery: "1-3 days",
		Features: []string{"Real active followers", "Gradual delivery", "24/7 support", "Lifetime guarantee"},
		Type:     "followers",
	},
	{
		ID:       "ig-f-5k",
		Platform: "instagram",
		Title:    "5K Instagram Followers",
		QtyLabel: "5K",
		Price:    24.99,
		OldPrice: 29.99,
		Discount: 17,
		Delivery: "3-5 days",
		Features: []string{"Real active followers", "Gradual delivery", "24/7 support", "Lifetime guarantee", "5% discount"},
		Type:     "followers",
	},
	{
		ID:       "ig-l-1k",
		Platform: "instagram",
		Title:    "1K Instagram Likes",
		QtyLabel: "1K",
		Price:    2.99,
		OldPrice: 3.59,
		Discount: 17,
		Delivery: "1-2 hours",
		Features: []string{"Real likes from active users", "Fast delivery", "24/7 support", "Spread across posts"},
		Type:     "likes",
	},
	{
		ID:       "tt-f-1k",
		Platform: "tiktok",
		Title:    "1K TikTok Followers",
		QtyLabel: "1K",
		Price:    7.99,
		OldPrice: 9.59,
		Discount: 17,
		Delivery: "1-3 days",
		Features: []string{"Real active followers", "Gradual delivery", "24/7 support", "Lifetime guarantee"},
		Type:     "followers",
	},
	{
		ID:       "tt-v-10k",
		Platform: "tiktok",
		Title:    "10K TikTok Views - LIMITED OFFER!",
		QtyLabel: "10K",
		Price:    1.00,
		OldPrice: 10.00,
		Discount: 90,
		Delivery: "Instant",
		Features: []string{"PROMOTIONAL PRICING", "Real views from active users", "Instant delivery", "24/7 support", "90% OFF!"},
		Type:     "views",
		Sale:     true,
	},
	{
		ID:       "yt-v-10k",
		Platform: "youtube",
		Title:    "10K YouTube Views",
		QtyLabel: "10K",
		Price:    14.99,
		OldPrice: 19.99,
		Discount: 25,
		Delivery: "12-24 hours",
		Features: []string{"High-retention views", "Safe & gradual", "24/7 support"},
		Type:     "views",
	},
	{
		ID:       "yt-s-1k",
		Platform: "youtube",
		Title:    "1K YouTube Subscribers",
		QtyLabel: "1K",
		Price:    89.99,
		OldPrice: 109.99,
		Discount: 18,
		Delivery: "3-7 days",
		Features: []string{"Real subscribers", "Drip feed", "Priority support"},
		Type:     "subscribers",
	},
	{
		ID:       "tw-f-1k",
		Platform: "twitter",
		Title:    "1K Twitter (X) Followers",
		QtyLabel: "1K",
		Price:    12.99,
		OldPrice: 16.99,
		Discount: 23,
		Delivery: "2-4 days",
		Features: []string{"Real users", "Natural growth patterns", "24/7 support"},
		Type:     "followers",
	},
	{
		ID:       "tw-l-5k",
		Platform: "twitter",
		Title:    "5K Twitter (X) Likes",
		QtyLabel: "5K",
		Price:    19.99,
		OldPrice: 29.99,
		Discount: 33,
		Delivery: "4-8 hours",
		Features: []string{"High-quality likes", "Fast rollout", "24/7 support"},
		Type:     "likes",
	},
	{
		ID:       "fb-f-1k",
		Platform: "facebook",
		Title:    "1K Facebook Page Followers",
		QtyLabel: "1K",
		Price:    9.99,
		OldPrice: 12.99,
		Discount: 23,
		Delivery: "2-5 days",
		Features: []string{"Real profiles", "Drip feed", "Support"},
		Type:     "followers",
	},
	{
		ID:       "fb-l-5k",
		Platform: "facebook",
		Title:    "5K Facebook Post Likes",
		QtyLabel: "5K",
		Price:    17.99,
		OldPrice: 24.99,
		Discount: 28,
		Delivery: "2-6 hours",
		Features: []string{"Real likes", "Fast delivery", "Spread across posts"},
		Type:     "likes",
	},
}

var plans = []models.SubscriptionPlan{
	{
		ID:      "sub-growth",
		Name:    "Growth",
		Price:   49.99,
		Period:  "/month",
		Summary: "For serious creators who post regularly - double the engagement",
		Features: []string{
			"10K Instagram Followers per month",
			"200K Video Views per month",
			"25K Instagram Post Likes per month",
			"Automatic delivery 1-10 minutes after posting",
			"Real active users",
			"Priority support",
			"Growth analytics dashboard",
		},
		CTA: "Start Growing",
	},
	{
		ID:      "sub-viralpro",
		Name:    "ViralPro",
		Price:   99.99,
		Period:  "/month",
		Summary: "Maximum impact for influencers and brands",
		Features: []string{
			"25K Instagram Followers per month",
			"500K Video Views per month",
			"75K Instagram Post Likes per month",
			"Automatic delivery 1-10 minutes after posting",
			"Dedicated account manager",
			"Advanced analytics & insights",
		},
		CTA: "Start Growing",
	},
	{
		ID:        "sub-massive",
		Name:      "Massive Growth",
		Price:     199.99,
		Period:    "/month",
		Highlight: true,
		Summary:   "Serious scale for ambitious creators and established businesses",
		Features: []string{
			"75K Instagram Followers per month",
			"2M Video Views per month",
			"200K Instagram Post Likes per month",
			"Express delivery within 2-5 minutes",
			"Premium customer support",
			"Growth acceleration algorithms",
			"Detailed analytics dashboard",
		},
		CTA: "Go Viral Now",
	},
}

var testimonials = []models.Testimonial{
	{
		Handle:    "@sarah_f***",
		Name:      "Sarah M.",
		Niche:     "Fitness • Instagram",
		Rating:    5,
		MonthsAgo: 7,
		Before:    847,
		After:     8400,
		Growth:    "+894%",
		Package:   "Instagram Auto-Growth Pro",
		Quote:     "I was stuck at 850 followers for months. After using the Instagram Auto-Growth subscription, my account exploded! Now I get 2,000+ new followers every month automatically.",
	},
	{
		Handle:    "@mike_t****",
		Name:      "Mike R.",
		Niche:     "Travel • Instagram",
		Rating:    5,
		MonthsAgo: 7,
		Before:    1200,
		After:     15800,
		Growth:    "+1217%",
		Package:   "Instagram Auto-Growth Elite",
		Quote:     "Best investment for my travel blog! Brands started reaching out offering paid partnerships. My income went from $0 to $3,000/month!",
	},
	{
		Handle:    "@emily_f****",
		Name:      "Emily K.",
		Niche:     "Food • Instagram",
		Rating:    5,
		MonthsAgo: 7,
		Before:    75,
		After:     1600,
		Growth:    "+2100%",
		Package:   "Instagram Auto-Growth Pro",
		Quote:     "My food account was dying. Now I consistently get 1,500+ likes and just signed my first cookbook deal.",
	},
}

var blogPosts = []models.BlogPost{
	{
		ID:      "alg-boost",
		Title:   "How to Trigger Instagram's Algorithm in 2025",
		Excerpt: "Understand ranking signals, exploit the golden 60-minute window, and build repeatable viral systems.",
		Author:  "PopularSMM Team",
		Date:    "Jul 12, 2025",
	},
	{
		ID:      "tiktok-views",
		Title:   "The Truth About TikTok Views: What Actually Matters",
		Excerpt: "View quality vs quantity, watch time retention, and why immediate velocity still rules.",
		Author:  "Growth Lab",
		Date:    "Jun 28, 2025",
	},
	{
		ID:      "yt-subscribers",
		Title:   "Turning YouTube Views into Subscribers",
		Excerpt: "CTA placement, session time, and human-first thumbnails that convert.",
		Author:  "PopularSMM Team",
		Date:    "May 9, 2025",
	},
}

var faqs = []models.FAQ{
	{
		Question: "How quickly will I see results?",
		Answer:   "Most subscribers see initial engagement within 24-48 hours. Full algorithm optimization typically occurs within the first week.",
	},
	{
		Question: "Is this safe for my Instagram account?",
		Answer:   "Yes. We use gradual, natural delivery patterns that mimic organic growth and comply with Instagram's terms.",
	},
	{
		Question: "Can I cancel anytime?",
		Answer:   "Absolutely. Cancel anytime and continue to receive services through the end of your billing period.",
	},
}
