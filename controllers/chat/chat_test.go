package chatController

import (
	"strings"
	"testing"

	"neuroscan/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPatientContextEmpty(t *testing.T) {
	context := BuildPatientContext(nil)
	assert.Equal(t, "No patient history is available in the database yet. The user has not performed any analysis.", context)
}

func TestBuildPatientContext(t *testing.T) {
	// Ledger order: newest first, as ListPredictionsForUser returns it
	records := []models.Prediction{
		{Date: "2024-02-01 09:00:00", Probability: 0.8123, ResultText: "The MRI scan analysis indicates a potential presence of Parkinson's disease."},
		{Date: "2024-01-01 10:00:00", Probability: 0.25, ResultText: "The MRI scan analysis indicates a low probability of Parkinson's disease."},
	}

	context := BuildPatientContext(records)

	assert.Contains(t, context, "most recent checkup first")
	assert.Contains(t, context, "--- Checkup Record 1 ---")
	assert.Contains(t, context, "--- Checkup Record 2 ---")
	assert.Contains(t, context, "Date of Analysis: 2024-02-01 09:00:00")
	assert.Contains(t, context, "Model Prediction Confidence (Probability of Parkinson's): 81.23%")
	assert.Contains(t, context, "Model Prediction Confidence (Probability of Parkinson's): 25.00%")
	assert.Contains(t, context, `"The MRI scan analysis indicates a potential presence of Parkinson's disease."`)

	// Record 1 is the newer timestamp
	assert.Less(t,
		strings.Index(context, "2024-02-01 09:00:00"),
		strings.Index(context, "2024-01-01 10:00:00"))
}
