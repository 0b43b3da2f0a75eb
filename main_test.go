package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"neuroscan/config"
	"neuroscan/database"
	"neuroscan/inference"
	"neuroscan/models"
	authRoutes "neuroscan/routers/authRoutes"
	chatRoutes "neuroscan/routers/chatRoutes"
	detectionRoutes "neuroscan/routers/detectionRoutes"
	historyRoutes "neuroscan/routers/historyRoutes"
	infoRoutes "neuroscan/routers/infoRoutes"
	userRoutes "neuroscan/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestApp wires the whole application against a throwaway database and
// a stubbed model server.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models/mri", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"model_version_status":[{"version":"1","state":"AVAILABLE"}]}`)
	})
	mux.HandleFunc("/v1/models/mri:predict", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"predictions":[[0.87]]}`)
	})
	modelServer := httptest.NewServer(mux)
	t.Cleanup(modelServer.Close)

	config.AppConfig = &config.Config{
		SaltRound:      4,
		JWTKey:         "e2e-test-secret",
		UploadDir:      filepath.Join(t.TempDir(), "scans"),
		ModelServerUrl: modelServer.URL,
		ModelName:      "mri",
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "e2e.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Prediction{}))
	database.Database = database.DbInstance{Db: db}

	adapter, err := inference.NewAdapter(modelServer.URL, "mri")
	require.NoError(t, err)
	inference.Engine = adapter

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	detectionRoutes.SetupDetectionRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)
	chatRoutes.SetupChatRoutes(app)
	infoRoutes.SetupInfoRoutes(app)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body any) (int, apiResponse) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return doRequest(t, app, req)
}

func getJSON(t *testing.T, app *fiber.App, path, token string) (int, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return doRequest(t, app, req)
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, apiResponse) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)

	return resp.StatusCode, parsed
}

func pngScan(t *testing.T) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func analyzeScan(t *testing.T, app *fiber.App, token string) (int, apiResponse) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("scan", "scan.png")
	require.NoError(t, err)
	_, err = part.Write(pngScan(t))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/detection/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return doRequest(t, app, req)
}

func signupAndLogin(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	code, _ := postJSON(t, app, "/auth/signup", "", fiber.Map{
		"name": name, "email": email, "age": 54, "gender": "Female", "password": password,
	})
	require.Equal(t, http.StatusCreated, code)

	code, resp := postJSON(t, app, "/auth/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.NotEmpty(t, data.Token)

	return data.Token
}

func TestSignupLoginAnalyzeHistoryFlow(t *testing.T) {
	app := setupTestApp(t)

	tokenA := signupAndLogin(t, app, "Asha Patel", "asha@example.com", "s3cret-pass")

	// Duplicate signup is rejected
	code, _ := postJSON(t, app, "/auth/signup", "", fiber.Map{
		"name": "Imposter", "email": "asha@example.com", "age": 30, "gender": "Male", "password": "other-pass",
	})
	assert.Equal(t, http.StatusConflict, code)

	// Wrong password and unknown email collapse to the same response
	code, resp := postJSON(t, app, "/auth/login", "", fiber.Map{"email": "asha@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password.", resp.Message)
	code, resp = postJSON(t, app, "/auth/login", "", fiber.Map{"email": "nobody@example.com", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid email or password.", resp.Message)

	// Fresh dashboard shows the empty-ledger sentinel
	code, resp = getJSON(t, app, "/user/dashboard", tokenA)
	require.Equal(t, http.StatusOK, code)
	var dashboard struct {
		TotalAnalyses    int64  `json:"totalAnalyses"`
		LastAnalysisDate string `json:"lastAnalysisDate"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &dashboard))
	assert.EqualValues(t, 0, dashboard.TotalAnalyses)
	assert.Equal(t, "N/A", dashboard.LastAnalysisDate)

	// Run an analysis
	code, resp = analyzeScan(t, app, tokenA)
	require.Equal(t, http.StatusOK, code, resp.Message)
	var analysis struct {
		Probability float64 `json:"probability"`
		ResultText  string  `json:"resultText"`
		Date        string  `json:"date"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &analysis))
	assert.InDelta(t, 0.87, analysis.Probability, 1e-6)
	assert.GreaterOrEqual(t, analysis.Probability, 0.0)
	assert.LessOrEqual(t, analysis.Probability, 1.0)
	assert.Equal(t, "The MRI scan analysis indicates a potential presence of Parkinson's disease.", analysis.ResultText)

	// The row shows up in A's history
	code, resp = getJSON(t, app, "/history/", tokenA)
	require.Equal(t, http.StatusOK, code)
	var history struct {
		Records []models.Prediction `json:"records"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	require.Len(t, history.Records, 1)
	assert.Equal(t, analysis.Date, history.Records[0].Date)

	// Dashboard reflects the new row
	code, resp = getJSON(t, app, "/user/dashboard", tokenA)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &dashboard))
	assert.EqualValues(t, 1, dashboard.TotalAnalyses)
	assert.NotEqual(t, "N/A", dashboard.LastAnalysisDate)

	// Another user never sees A's records
	tokenB := signupAndLogin(t, app, "Bob Martin", "bob@example.com", "password-b")
	code, resp = getJSON(t, app, "/history/", tokenB)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	assert.Empty(t, history.Records)
}

func TestAnalyzeRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	code, _ := analyzeScan(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSignupValidation(t *testing.T) {
	app := setupTestApp(t)

	code, resp := postJSON(t, app, "/auth/signup", "", fiber.Map{
		"name": "A", "email": "not-an-email", "age": 0, "gender": "Unknown", "password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, resp.Status)
}

func TestAboutAndHealth(t *testing.T) {
	app := setupTestApp(t)

	code, resp := getJSON(t, app, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Status)

	code, resp = getJSON(t, app, "/about", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Status)
}
