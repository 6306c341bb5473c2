package listing

import (
	"strconv"
	"time"

	domlisting "github.com/kailas-cloud/thriftfind/internal/domain/listing"
)

// Hash field names.
const (
	fieldID                     = "id"
	fieldSellerID               = "seller_id"
	fieldPrice                  = "price"
	fieldTitle                  = "title"
	fieldDescription            = "description"
	fieldStoryText              = "story_text"
	fieldCategory               = "category"
	fieldMoods                  = "moods"
	fieldStyles                 = "styles"
	fieldIntents                = "intents"
	fieldKeywords               = "keywords"
	fieldAISuggestedKeywords    = "ai_suggested_keywords"
	fieldAIGeneratedTitle       = "ai_generated_title"
	fieldAIGeneratedDescription = "ai_generated_description"
	fieldStatus                 = "status"
	fieldCreatedAt              = "created_at"
)

// toHash encodes a listing as hash fields. Tag columns are stored as JSON arrays.
func toHash(l *domlisting.Listing) map[string]string {
	return map[string]string{
		fieldID:                     l.ID,
		fieldSellerID:               l.SellerID,
		fieldPrice:                  strconv.FormatFloat(l.Price, 'f', -1, 64),
		fieldTitle:                  l.Title,
		fieldDescription:            l.Description,
		fieldStoryText:              l.StoryText,
		fieldCategory:               l.Category,
		fieldMoods:                  l.Moods.String(),
		fieldStyles:                 l.Styles.String(),
		fieldIntents:                l.Intents.String(),
		fieldKeywords:               l.Keywords.String(),
		fieldAISuggestedKeywords:    l.AISuggestedKeywords.String(),
		fieldAIGeneratedTitle:       l.AIGeneratedTitle,
		fieldAIGeneratedDescription: l.AIGeneratedDescription,
		fieldStatus:                 l.Status,
		fieldCreatedAt:              strconv.FormatInt(l.CreatedAt.UnixMilli(), 10),
	}
}

// fromHash decodes hash fields. Rows written by other tools may carry tag
// columns as comma-separated strings; ParseTags accepts both.
func fromHash(id string, m map[string]string) domlisting.Listing {
	l := domlisting.Listing{
		ID:                     id,
		SellerID:               m[fieldSellerID],
		Title:                  m[fieldTitle],
		Description:            m[fieldDescription],
		StoryText:              m[fieldStoryText],
		Category:               m[fieldCategory],
		Moods:                  domlisting.ParseTags(m[fieldMoods]),
		Styles:                 domlisting.ParseTags(m[fieldStyles]),
		Intents:                domlisting.ParseTags(m[fieldIntents]),
		Keywords:               domlisting.ParseTags(m[fieldKeywords]),
		AISuggestedKeywords:    domlisting.ParseTags(m[fieldAISuggestedKeywords]),
		AIGeneratedTitle:       m[fieldAIGeneratedTitle],
		AIGeneratedDescription: m[fieldAIGeneratedDescription],
		Status:                 m[fieldStatus],
	}
	if v, ok := m[fieldID]; ok && v != "" {
		l.ID = v
	}
	if v, err := strconv.ParseFloat(m[fieldPrice], 64); err == nil {
		l.Price = v
	}
	if ms, err := strconv.ParseInt(m[fieldCreatedAt], 10, 64); err == nil {
		l.CreatedAt = time.UnixMilli(ms).UTC()
	}
	return l
}

// activeScore is the sorted-set score for the active index: newest first.
func activeScore(l *domlisting.Listing) float64 {
	return float64(l.CreatedAt.UnixMilli())
}
