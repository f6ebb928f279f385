package catalog

func int64ptr(v int64) *int64 { return &v }

// DefaultCatalog is the hard-coded fallback served when neither the upstream
// catalog source nor a cached snapshot is available. Degraded pricing
// accuracy is preferable to an empty storefront.
func DefaultCatalog() *Catalog {
	services := []*Service{
		{
			id:             "standard",
			title:          "Standard Site",
			description:    "Multi-page business site with CMS and contact forms",
			basePriceCents: 70000,
			features:       []string{"Up to 10 pages", "CMS integration", "Contact forms", "Mobile-first layout"},
		},
		{
			id:                 "premium",
			title:              "Premium Site",
			description:        "Custom-designed site with animations and integrations",
			basePriceCents:     150000,
			originalPriceCents: int64ptr(180000),
			features:           []string{"Unlimited pages", "Custom design system", "Third-party integrations", "Performance tuning"},
		},
		{
			id:                "basic",
			title:             "Launch Package",
			description:       "Landing page plus hosting setup for a quick start",
			basePriceCents:    50000,
			isPackage:         true,
			bundledServiceIDs: []string{"landing", "hosting-setup"},
			features:          []string{"Single landing page", "Hosting setup", "Basic SEO"},
		},
		{
			id:                "business",
			title:             "Business Package",
			description:       "Standard site bundled with analytics and a year of support",
			basePriceCents:    230000,
			originalPriceCents: int64ptr(260000),
			isPackage:         true,
			bundledServiceIDs: []string{"standard", "analytics", "support-year"},
			features:          []string{"Everything in Standard", "Analytics onboarding", "12 months support"},
		},
	}

	recurringYear, _ := RecurringBilling(12)
	recurringMonth, _ := RecurringBilling(1)
	addOns := []*AddOn{
		{id: "domain", name: "Domain & DNS management", priceCents: 14997, billing: recurringYear},
		{id: "analytics", name: "Analytics setup", priceCents: 25000, billing: OneTimeBilling()},
		{id: "seo-audit", name: "SEO audit", priceCents: 40000, billing: OneTimeBilling()},
		{id: "maintenance", name: "Maintenance & updates", priceCents: 9800, billing: recurringMonth},
	}

	return NewCatalog(services, addOns)
}
