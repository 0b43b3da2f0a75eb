package inference

import (
	"errors"
	"fmt"
	"image"
	"log"

	"neuroscan/config"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrModelUnavailable is returned when the classifier could not be loaded at startup.
	ErrModelUnavailable = errors.New("MRI model is not available")
	// ErrInferenceFailed is returned when a forward pass did not produce a score.
	ErrInferenceFailed = errors.New("MRI model inference failed")
)

// Adapter wraps the pretrained MRI classifier served over the TensorFlow
// Serving REST API. It is constructed once and treated as read-only after
// that, so concurrent requests share it safely.
type Adapter struct {
	client    *resty.Client
	baseURL   string
	modelName string
	available bool
}

// Engine is the process-wide model handle, set once by Init.
var Engine *Adapter

// Init builds the adapter and verifies the model once. An unreachable model
// does not abort startup; detection requests fail individually until the
// process is restarted with the model in place.
func Init() {
	adapter, err := NewAdapter(config.AppConfig.ModelServerUrl, config.AppConfig.ModelName)
	if err != nil {
		log.Printf("Warning: failed to load MRI model: %v", err)
		Engine = &Adapter{
			client:    resty.New(),
			baseURL:   config.AppConfig.ModelServerUrl,
			modelName: config.AppConfig.ModelName,
		}
		return
	}

	log.Println("MRI model loaded successfully.")
	Engine = adapter
}

// NewAdapter connects to the serving endpoint and checks the model status.
func NewAdapter(baseURL, modelName string) (*Adapter, error) {
	adapter := &Adapter{
		client:    resty.New(),
		baseURL:   baseURL,
		modelName: modelName,
	}

	resp, err := adapter.client.R().
		Get(fmt.Sprintf("%s/v1/models/%s", baseURL, modelName))
	if err != nil {
		return nil, fmt.Errorf("model server unreachable: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("model %q not served: status %d", modelName, resp.StatusCode())
	}

	adapter.available = true
	return adapter, nil
}

type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// Predict preprocesses the scan and runs a single forward pass, returning the
// scalar probability at position [0][0].
func (a *Adapter) Predict(img image.Image) (float64, error) {
	if a == nil || !a.available {
		return 0, ErrModelUnavailable
	}

	tensor := Preprocess(img)

	var result predictResponse
	resp, err := a.client.R().
		SetBody(predictRequest{Instances: [][][][]float32{tensor}}).
		SetResult(&result).
		Post(fmt.Sprintf("%s/v1/models/%s:predict", a.baseURL, a.modelName))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("%w: status %d: %s", ErrInferenceFailed, resp.StatusCode(), resp.String())
	}
	if len(result.Predictions) == 0 || len(result.Predictions[0]) == 0 {
		return 0, fmt.Errorf("%w: empty prediction payload", ErrInferenceFailed)
	}

	return result.Predictions[0][0], nil
}
