// Seed program: provisions the support-content collection and imports the
// sample support documents with freshly computed embeddings.
package main

import (
	"context"
	"log"
	"time"

	"tripmate/config"
	"tripmate/database"
	supportRepoPkg "tripmate/database/repository/support"
	"tripmate/models"
	"tripmate/services/knowledge"
)

var supportContent = []models.SupportContent{
	{
		ID:       "booking-policy-1",
		Title:    "Booking and Cancellation Policy",
		Content:  "Norse Atlantic Airways allows free changes and cancellations up to 24 hours before departure. After this time, a fee may apply. Refunds are processed within 7-10 business days.",
		Category: "Booking",
		Tags:     []string{"booking", "cancellation", "policy"},
		Metadata: models.ContentMetadata{
			LastUpdated: "2024-01-01",
			Source:      "Norse Airways Support Center",
			URL:         "https://norse.com/support/booking-policy",
		},
	},
	{
		ID:       "baggage-allowance-1",
		Title:    "Baggage Allowance",
		Content:  "Economy passengers are allowed one carry-on bag (max 10kg) and one personal item. Checked baggage can be purchased up to 23kg per bag. Premium passengers receive one free checked bag.",
		Category: "Baggage",
		Tags:     []string{"baggage", "luggage", "allowance"},
		Metadata: models.ContentMetadata{
			LastUpdated: "2024-01-01",
			Source:      "Norse Airways Support Center",
			URL:         "https://norse.com/support/baggage",
		},
	},
	{
		ID:       "check-in-1",
		Title:    "Online Check-in",
		Content:  "Online check-in opens 24 hours before departure and closes 1 hour before departure. You can check in through our website or mobile app. Boarding passes can be printed or saved to your mobile device.",
		Category: "Check-in",
		Tags:     []string{"check-in", "boarding", "online"},
		Metadata: models.ContentMetadata{
			LastUpdated: "2024-01-01",
			Source:      "Norse Airways Support Center",
			URL:         "https://norse.com/support/check-in",
		},
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	svc := &knowledge.DefaultKnowledgeService{
		Repo:     supportRepoPkg.NewMongoSupportRepo(),
		Embedder: knowledge.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey, config.AppConfig.EmbeddingModel),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Printf("Importing %d support documents...", len(supportContent))
	if err := svc.BulkImport(ctx, supportContent); err != nil {
		log.Fatalf("Failed to import support content: %v", err)
	}
	log.Println("Support content imported successfully")
}
