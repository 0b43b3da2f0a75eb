package chatController

import (
	"errors"
	"fmt"
	"strings"

	"neuroscan/database"
	"neuroscan/middleware"
	"neuroscan/models"
	"neuroscan/utils"

	"github.com/gofiber/fiber/v2"
)

const promptTemplate = `**System Instructions:**
You are an expert AI medical assistant. Your task is to answer the user's questions based on the provided medical history context. Do not invent information or provide general medical advice. Be empathetic and clear in your responses.
Act as a professional healthcare assistant. If the patient has a disease or may have one, advise them to consult a healthcare professional for accurate diagnosis and treatment.
You can also answer general health and wellness questions.

**Provided Medical History Context:**
%s

**User's Question:**
"%s"

**Your Response:**
`

// BuildPatientContext renders the ledger into the text block handed to the
// conversational model, one paragraph per record, most recent first.
func BuildPatientContext(predictions []models.Prediction) string {
	if len(predictions) == 0 {
		return "No patient history is available in the database yet. The user has not performed any analysis."
	}

	var sb strings.Builder
	sb.WriteString("Here is the patient's medical history, with the most recent checkup first:\n\n")
	for i, record := range predictions {
		fmt.Fprintf(&sb, "--- Checkup Record %d ---\n", i+1)
		fmt.Fprintf(&sb, "Date of Analysis: %s\n", record.Date)
		fmt.Fprintf(&sb, "Model Prediction Confidence (Probability of Parkinson's): %.2f%%\n", record.Probability*100)
		fmt.Fprintf(&sb, "Model's Interpretation: %q\n\n", record.ResultText)
	}

	return sb.String()
}

// Ask forwards one question to the conversational model, grounded in the
// user's own ledger. Conversation state lives in the client; this endpoint
// makes exactly one external call per question.
func Ask(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID", nil)
	}

	reqData := new(struct {
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if _, err := database.GetUserByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not retrieve user data. Please try logging in again.", nil)
	}

	predictions, err := database.ListPredictionsForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch your history!", nil)
	}

	prompt := fmt.Sprintf(promptTemplate, BuildPatientContext(predictions), reqData.Message)

	answer, err := utils.GenerateAnswer(prompt)
	if err != nil {
		if errors.Is(err, utils.ErrChatUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "The chatbot is not configured on this server.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, fmt.Sprintf("An error occurred: %v", err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer generated successfully!", fiber.Map{
		"reply": answer,
	})
}
