package main

import (
	"encoding/json"
	"log"
	"os"

	"feature-flag-be/internal/model"
	"feature-flag-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Development seeder. Wipes the flag tables and rebuilds the demo dataset;
// never point it at a production database.
func main() {
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

	color.Cyan("🌱 Starting seeding process...")

	// Clean slate so reruns are deterministic.
	for _, table := range []string{"feature_flags", "audit_logs", "features", "tenants"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("Error: Failed to clean table %s: %v", table, err)
		}
	}
	color.Yellow("🧹 Cleaned up existing data.")

	// Tenants
	zebra := model.Tenant{Name: "zebra"}
	nike := model.Tenant{Name: "nike"}
	for _, t := range []*model.Tenant{&zebra, &nike} {
		if err := db.Create(t).Error; err != nil {
			log.Fatalf("Error: Failed to create tenant '%s': %v", t.Name, err)
		}
	}
	color.Green("✅ Created tenants: 'zebra', 'nike'")

	// Feature catalog
	dashboard := model.Feature{Name: "new-dashboard", Description: "New and improved user dashboard"}
	checkout := model.Feature{Name: "beta-checkout", Description: "New checkout page rolled out by percentage"}
	darkMode := model.Feature{Name: "dark-mode", Description: "Dark mode support for the UI"}
	newApi := model.Feature{Name: "new-api-integration", Description: "New API integration limited to specific users"}
	for _, f := range []*model.Feature{&dashboard, &checkout, &darkMode, &newApi} {
		if err := db.Create(f).Error; err != nil {
			log.Fatalf("Error: Failed to create feature '%s': %v", f.Name, err)
		}
	}
	color.Green("✅ Created features: new-dashboard, beta-checkout, dark-mode, new-api-integration")

	// Flags per tenant and environment
	zebraFlags := []model.FeatureFlag{
		// prod
		{TenantId: zebra.Id, FeatureId: dashboard.Id, Env: "prod", Enabled: true, EvaluationStrategy: "BOOLEAN"},
		{TenantId: zebra.Id, FeatureId: checkout.Id, Env: "prod", Enabled: true, EvaluationStrategy: "PERCENTAGE", EvaluationDetailsJson: mustDetails(map[string]interface{}{"percentage": 50})},

		// staging
		{TenantId: zebra.Id, FeatureId: dashboard.Id, Env: "staging", Enabled: false, EvaluationStrategy: "BOOLEAN"},
		{TenantId: zebra.Id, FeatureId: darkMode.Id, Env: "staging", Enabled: true, EvaluationStrategy: "BOOLEAN"},
		{TenantId: zebra.Id, FeatureId: newApi.Id, Env: "staging", Enabled: true, EvaluationStrategy: "USER", EvaluationDetailsJson: mustDetails(map[string]interface{}{"users": []string{"user-123", "dev-team@zebra.com"}})},
	}
	createFlags(db, zebraFlags)
	color.Blue("🔵 Created feature flags for tenant: 'zebra'")

	nikeFlags := []model.FeatureFlag{
		// prod; new dashboard stays off, dark mode rolled out to everyone
		{TenantId: nike.Id, FeatureId: dashboard.Id, Env: "prod", Enabled: false, EvaluationStrategy: "BOOLEAN"},
		{TenantId: nike.Id, FeatureId: darkMode.Id, Env: "prod", Enabled: true, EvaluationStrategy: "PERCENTAGE", EvaluationDetailsJson: mustDetails(map[string]interface{}{"percentage": 100})},

		// dev
		{TenantId: nike.Id, FeatureId: checkout.Id, Env: "dev", Enabled: true, EvaluationStrategy: "BOOLEAN"},
	}
	createFlags(db, nikeFlags)
	color.Blue("🔵 Created feature flags for tenant: 'nike'")

	color.Cyan("🏁 Seeding finished successfully!")
}

func createFlags(db *gorm.DB, flags []model.FeatureFlag) {
	for i := range flags {
		if err := db.Create(&flags[i]).Error; err != nil {
			log.Fatalf("Error: Failed to create feature flag: %v", err)
		}
	}
}

func mustDetails(details map[string]interface{}) datatypes.JSON {
	raw, err := json.Marshal(details)
	if err != nil {
		log.Fatalf("Error: Failed to marshal details: %v", err)
	}
	return datatypes.JSON(raw)
}
