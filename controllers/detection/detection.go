package detectionController

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"time"

	"neuroscan/config"
	"neuroscan/database"
	"neuroscan/inference"
	"neuroscan/middleware"
	"neuroscan/utils"

	"github.com/gofiber/fiber/v2"
)

// Interpretation policy: fixed threshold and wording, applied here rather
// than inside the inference adapter.
const (
	probabilityThreshold = 0.5
	positiveResultText   = "The MRI scan analysis indicates a potential presence of Parkinson's disease."
	negativeResultText   = "The MRI scan analysis indicates a low probability of Parkinson's disease."
)

// Analyze scores an uploaded MRI scan and appends the result to the user's history.
func Analyze(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID", nil)
	}

	user, err := database.GetUserByID(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not retrieve user data. Please try logging in again.", nil)
	}

	fileHeader, err := c.FormFile("scan")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "MRI scan image is required!", nil)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded image!", nil)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Uploaded file is not a valid image!", nil)
	}

	imagePath, err := utils.SaveUploadedScan(fileHeader, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded scan: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store uploaded scan!", nil)
	}

	probability, err := inference.Engine.Predict(img)
	if err != nil {
		if errors.Is(err, inference.ErrModelUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "The analysis model is currently unavailable. Please try again later.", nil)
		}
		log.Printf("Inference failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Model analysis failed. Please try again.", nil)
	}

	resultText := negativeResultText
	if probability > probabilityThreshold {
		resultText = positiveResultText
	}

	date := time.Now().Format("2006-01-02 15:04:05")

	record, err := database.AddPrediction(user.ID, date, probability, resultText, imagePath)
	if err != nil {
		log.Printf("Error saving prediction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Analysis succeeded but saving the result failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analysis complete! Results saved to your Patient History.", fiber.Map{
		"probability": probability,
		"resultText":  resultText,
		"date":        date,
		"record":      record,
	})
}
