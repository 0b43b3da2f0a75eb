package infoController

import (
	"neuroscan/middleware"

	"github.com/gofiber/fiber/v2"
)

// Health is a simple liveness endpoint.
func Health(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
}

// About serves the static project information page content.
func About(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "About fetched successfully!", fiber.Map{
		"title": "About the Parkinson's Disease Detection Project",
		"description": "This application is a proof-of-concept tool designed to assist in the early detection of " +
			"Parkinson's disease using modern machine learning techniques. It leverages a Convolutional Neural Network " +
			"(CNN) to analyze MRI scans, providing a probabilistic assessment that can aid healthcare professionals in " +
			"their diagnostic process.",
		"mission": "Our mission is to harness the power of artificial intelligence to create accessible, reliable, and " +
			"non-invasive tools for early-stage disease detection.",
		"disclaimer": "This is not a medical device. The predictions made by this application are for informational " +
			"purposes only and should not be considered a substitute for a professional medical diagnosis. All results " +
			"must be reviewed and interpreted by a qualified healthcare provider.",
		"faq": []fiber.Map{
			{
				"question": "Is my data safe and private?",
				"answer": "Yes. All user accounts are password-protected, and prediction histories are linked to " +
					"individual accounts. We do not share your data with any third parties.",
			},
			{
				"question": "How accurate is the prediction model?",
				"answer": "The model was trained on a curated dataset of MRI scans and achieved high accuracy on our " +
					"test sets. However, it is a decision-support tool, not an infallible diagnostic oracle.",
			},
			{
				"question": "Who should use this application?",
				"answer": "Individuals who wish to get a preliminary, non-invasive assessment based on their MRI " +
					"scans, and healthcare professionals who can use it as a supplementary tool.",
			},
		},
	})
}
