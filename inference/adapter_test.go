package inference

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModelServer mimics the TensorFlow Serving REST surface.
func fakeModelServer(t *testing.T, probability float64, predictStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models/mri", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"model_version_status":[{"version":"1","state":"AVAILABLE"}]}`)
	})
	mux.HandleFunc("/v1/models/mri:predict", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req predictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Instances) != 1 || len(req.Instances[0]) != ImageSize {
			http.Error(w, "unexpected tensor shape", http.StatusBadRequest)
			return
		}
		if predictStatus != http.StatusOK {
			http.Error(w, "model blew up", predictStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"predictions":[[%f]]}`, probability)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestPredict(t *testing.T) {
	server := fakeModelServer(t, 0.87, http.StatusOK)

	adapter, err := NewAdapter(server.URL, "mri")
	require.NoError(t, err)

	probability, err := adapter.Predict(midGrayImage(ImageSize, ImageSize))
	require.NoError(t, err)
	assert.InDelta(t, 0.87, probability, 1e-6)
}

func TestPredictServerError(t *testing.T) {
	server := fakeModelServer(t, 0, http.StatusInternalServerError)

	adapter, err := NewAdapter(server.URL, "mri")
	require.NoError(t, err)

	_, err = adapter.Predict(midGrayImage(ImageSize, ImageSize))
	assert.ErrorIs(t, err, ErrInferenceFailed)
}

func TestPredictModelUnavailable(t *testing.T) {
	adapter := &Adapter{}
	_, err := adapter.Predict(midGrayImage(ImageSize, ImageSize))
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestNewAdapterUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	_, err := NewAdapter(server.URL, "mri")
	assert.Error(t, err)
}

func TestNewAdapterModelMissing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	_, err := NewAdapter(server.URL, "mri")
	assert.Error(t, err)
}
