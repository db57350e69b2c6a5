package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"uqifeed/database"
	"uqifeed/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")
	numDays := seedCmd.Int("days", utils.DefaultNumDays, "Days of food entries per user")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteUsers := deleteCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to delete")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		log.Printf("Seeding %d users with %d days of entries each", *numUsers, *numDays)
		if err := utils.SeedUsers(*numUsers, *numDays); err != nil {
			log.Fatalf("Error seeding users: %v", err)
		}
		log.Println("Seeding completed successfully")

	case "delete":
		deleteCmd.Parse(os.Args[2:])

		database.ConnectDatabase()

		log.Printf("Deleting up to %d seeded users", *deleteUsers)
		if err := utils.DeleteSeededUsers(*deleteUsers); err != nil {
			log.Fatalf("Error deleting seeded users: %v", err)
		}
		log.Println("Deletion completed successfully")

	case "help", "-h", "--help":
		printHelp()

	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("UQIFeed database seeder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  seed   --users N --days D   Create demo users with profiles, targets and entries")
	fmt.Println("  delete --users N            Delete demo users and their data")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  go run ./cmd/seed seed --users 5 --days 7")
	fmt.Println("  go run ./cmd/seed delete --users 5")
}
