package sqlite

import "time"

// ListingRow is the listings table. Tag columns hold free-form text: JSON
// arrays when written by this service, comma-separated strings when imported
// from elsewhere.
type ListingRow struct {
	ID                     string  `gorm:"primaryKey"`
	SellerID               string  `gorm:"index"`
	Price                  float64 `gorm:"not null;default:0"`
	Title                  string
	Description            string
	StoryText              string
	Category               string
	Moods                  string
	Styles                 string
	Intents                string
	Keywords               string
	AISuggestedKeywords    string    `gorm:"column:ai_suggested_keywords"`
	AIGeneratedTitle       string    `gorm:"column:ai_generated_title"`
	AIGeneratedDescription string    `gorm:"column:ai_generated_description"`
	Status                 string    `gorm:"index:idx_listings_status_created,priority:1;not null"`
	CreatedAt              time.Time `gorm:"index:idx_listings_status_created,priority:2;autoCreateTime:false"`
}

// TableName returns the table name for GORM.
func (ListingRow) TableName() string {
	return "listings"
}
