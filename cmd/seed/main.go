package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"resumeforge-be/internal/model"
	"resumeforge-be/pkg/database"
	"resumeforge-be/pkg/pricing"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	log.Println("Seeding Template Catalog...")

	templates := []model.Template{
		{Slug: "classic", Name: "Classic", PreviewURL: "/templates/classic.png", IsPremium: false, SortOrder: 1},
		{Slug: "modern", Name: "Modern", PreviewURL: "/templates/modern.png", IsPremium: false, SortOrder: 2},
		{Slug: "minimal", Name: "Minimal", PreviewURL: "/templates/minimal.png", IsPremium: false, SortOrder: 3},
		{Slug: "professional", Name: "Professional", PreviewURL: "/templates/professional.png", IsPremium: false, SortOrder: 4},
		{Slug: "executive", Name: "Executive", PreviewURL: "/templates/executive.png", IsPremium: true, SortOrder: 5},
		{Slug: "creative", Name: "Creative", PreviewURL: "/templates/creative.png", IsPremium: true, SortOrder: 6},
		{Slug: "technical", Name: "Technical", PreviewURL: "/templates/technical.png", IsPremium: true, SortOrder: 7},
	}

	for _, t := range templates {
		var existing model.Template
		if err := db.Where("slug = ?", t.Slug).First(&existing).Error; err == nil {
			log.Printf("%s Template '%s' already exists, skipping...", yellow("SKIP"), t.Slug)
			continue
		}

		if err := db.Create(&t).Error; err != nil {
			log.Printf("Error creating template '%s': %v", t.Slug, err)
		} else {
			log.Printf("%s Created template: %s (%s)", green("OK"), t.Name, t.Slug)
		}
	}

	log.Println("Seeding Plan Catalog Mirror...")

	// The in-code catalog stays authoritative; this table exists for display
	// and reporting joins only.
	for _, plan := range pricing.AllPlans() {
		row := model.SubscriptionPlan{
			Slug:           string(plan.ID),
			Name:           plan.Name,
			Tagline:        plan.Tagline,
			Price:          plan.Price,
			BillingCycle:   string(plan.BillingCycle),
			TemplateAccess: string(plan.TemplateAccess),
			UsesCredits:    plan.CreditRules.UsesCredits,
			MonthlyCredits: plan.CreditRules.MonthlyCredits,
			IsMostPopular:  plan.IsMostPopular,
			IsActive:       true,
			SortOrder:      plan.SortOrder,
		}

		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", row.Slug).First(&existing).Error; err == nil {
			row.Id = existing.Id
			if err := db.Model(&existing).Updates(&row).Error; err != nil {
				log.Printf("Error updating plan '%s': %v", row.Slug, err)
			} else {
				log.Printf("%s Updated plan: %s", green("OK"), row.Slug)
			}
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("Error creating plan '%s': %v", row.Slug, err)
		} else {
			log.Printf("%s Created plan: %s (%s)", green("OK"), row.Name, row.Slug)
		}
	}

	log.Println("Seeding completed!")
}
