package handlers

import "github.com/anoline/anoline/internal/db/models"

// getPaginationOptions converts a 1-based page number into list options
func getPaginationOptions(page int) *models.ListOptions {
	if page < 1 {
		page = 1
	}
	return &models.ListOptions{
		Limit:  models.DefaultLimit,
		Offset: (page - 1) * models.DefaultLimit,
	}
}
