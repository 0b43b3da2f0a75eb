package database

import (
	"strings"

	"neuroscan/models"
)

// UserStats aggregates a user's ledger for the dashboard.
type UserStats struct {
	TotalAnalyses    int64  `json:"totalAnalyses"`
	LastAnalysisDate string `json:"lastAnalysisDate"`
}

// AddPrediction appends one scored analysis to the user's ledger.
func AddPrediction(userID uint, date string, probability float64, resultText, imagePath string) (*models.Prediction, error) {
	prediction := models.Prediction{
		UserID:      userID,
		Date:        date,
		Probability: probability,
		ResultText:  resultText,
		ImagePath:   imagePath,
	}

	if err := Database.Db.Create(&prediction).Error; err != nil {
		return nil, err
	}

	return &prediction, nil
}

// ListPredictionsForUser retrieves all prediction records for a user, newest
// first. The timestamp format is fixed-width and zero-padded, so sorting the
// string column descending is chronological.
func ListPredictionsForUser(userID uint) ([]models.Prediction, error) {
	var predictions []models.Prediction
	if err := Database.Db.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

// GetUserStats returns the analysis count and the date portion of the newest
// record, or "N/A" when the ledger is empty.
func GetUserStats(userID uint) (UserStats, error) {
	stats := UserStats{LastAnalysisDate: "N/A"}

	if err := Database.Db.
		Model(&models.Prediction{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalAnalyses).Error; err != nil {
		return stats, err
	}

	var last models.Prediction
	err := Database.Db.
		Where("user_id = ?", userID).
		Order("date desc").
		First(&last).Error
	if err == nil {
		stats.LastAnalysisDate = strings.SplitN(last.Date, " ", 2)[0]
	}

	return stats, nil
}
