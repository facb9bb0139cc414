// Imports the gamification catalog (shop items, avatars, features,
// achievements, quests, seasonal challenges) from a JSON seed file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"wellspring/database"
	"wellspring/models"

	"github.com/joho/godotenv"
)

type SeedFile struct {
	Avatars    []models.Avatar            `json:"avatars"`
	Features   []models.AvatarFeature     `json:"features"`
	ShopItems  []models.ShopItem          `json:"shop_items"`
	Quests     []models.Quest             `json:"quests"`
	Challenges []models.SeasonalChallenge `json:"seasonal_challenges"`
	Awards     []models.Achievement       `json:"achievements"`
}

func main() {
	seedPath := flag.String("seed", "./seed/catalog.json", "path to the catalog seed file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	db := database.GetDB()

	data, err := os.ReadFile(*seedPath)
	if err != nil {
		log.Fatal("Failed to read seed file:", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatal("Failed to parse seed file:", err)
	}

	counts := map[string]int{}

	if len(seed.Avatars) > 0 {
		if err := db.Create(&seed.Avatars).Error; err != nil {
			log.Fatal("Failed to import avatars:", err)
		}
		counts["avatars"] = len(seed.Avatars)
	}

	if len(seed.Features) > 0 {
		if err := db.Create(&seed.Features).Error; err != nil {
			log.Fatal("Failed to import avatar features:", err)
		}
		counts["features"] = len(seed.Features)
	}

	if len(seed.ShopItems) > 0 {
		if err := db.Create(&seed.ShopItems).Error; err != nil {
			log.Fatal("Failed to import shop items:", err)
		}
		counts["shop items"] = len(seed.ShopItems)
	}

	if len(seed.Quests) > 0 {
		if err := db.Create(&seed.Quests).Error; err != nil {
			log.Fatal("Failed to import quests:", err)
		}
		counts["quests"] = len(seed.Quests)
	}

	if len(seed.Challenges) > 0 {
		if err := db.Create(&seed.Challenges).Error; err != nil {
			log.Fatal("Failed to import seasonal challenges:", err)
		}
		counts["seasonal challenges"] = len(seed.Challenges)
	}

	if len(seed.Awards) > 0 {
		if err := db.Create(&seed.Awards).Error; err != nil {
			log.Fatal("Failed to import achievements:", err)
		}
		counts["achievements"] = len(seed.Awards)
	}

	fmt.Println("✓ Catalog import completed")
	for name, n := range counts {
		fmt.Printf("✓ Imported %d %s\n", n, name)
	}
}
