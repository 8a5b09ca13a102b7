//go:build ignore
// +build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"things-service/internal/config"
	"things-service/internal/services/database"
)

func main() {
	fmt.Println("=== Database Initialization Script ===")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("📡 Connecting to %s database...\n", cfg.DBDriver)
	db, err := database.Open(ctx, cfg)
	if err != nil {
		fmt.Printf("❌ Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database successfully!")
	fmt.Println()

	fmt.Println("🚀 Creating things table...")
	if err := db.EnsureSchema(ctx); err != nil {
		fmt.Printf("❌ Failed to create table: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Table ready")
	fmt.Println()

	// Verify by listing the table
	things, err := db.ListThings(ctx)
	if err != nil {
		fmt.Printf("⚠️  Warning: Could not list things: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("   📦 Things in database: %d\n", len(things))
	for i, thing := range things {
		if i >= 10 {
			fmt.Printf("   ... and %d more\n", len(things)-10)
			break
		}
		fmt.Printf("   %d. %s\n", thing.ID, thing.Name)
	}

	fmt.Println()
	fmt.Println("🎉 Database initialization completed successfully!")
}
