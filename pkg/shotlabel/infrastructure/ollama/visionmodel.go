package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

const (
	generatePath          = "/api/generate"
	defaultRequestTimeout = 5 * time.Minute
)

var (
	errMissingResponse = errors.New("response field is missing")
	errEmptyResponse   = errors.New("model returned an empty response")
)

type visionModel struct {
	apiKey     string
	httpClient *http.Client
}

// NewVisionModel talks to Ollama's /api/generate endpoint. The host and the model come with each request.
func NewVisionModel(config *common.Config) domain.VisionModel {
	return NewVisionModelWithClient(
		&http.Client{Timeout: config.GetDurationOrDefault(domain.ConfigKeyRequestTimeout, defaultRequestTimeout)},
		config.GetString(domain.ConfigKeyOllamaAPIKey),
	)
}

func NewVisionModelWithClient(httpClient *http.Client, apiKey string) domain.VisionModel {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &visionModel{
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: httpClient,
	}
}

func (v *visionModel) Infer(request domain.InferenceRequest) (string, error) {
	url := baseURL(request.Host) + generatePath
	op := "POST " + url
	stream := false
	payload := generateRequest{
		Model:  request.Model,
		Prompt: request.Prompt,
		Images: []string{request.ImageBase64},
		Stream: &stream,
	}
	headers := make(map[string]string)
	if v.apiKey != "" {
		headers["Authorization"] = "Bearer " + v.apiKey
	}
	if request.RequestID != "" {
		headers["X-Request-ID"] = request.RequestID
	}
	body, err := common.PostJSON(context.Background(), v.httpClient, url, headers, payload)
	if err != nil {
		var statusErr *common.HTTPStatusError
		if errors.As(err, &statusErr) {
			return "", &domain.InferenceError{Op: op, StatusCode: statusErr.StatusCode, Err: decodeAPIError(statusErr)}
		}
		return "", &domain.InferenceError{Op: op, Err: err}
	}
	var response generateResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		return "", &domain.InferenceError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if strings.TrimSpace(response.Error) != "" {
		return "", &domain.InferenceError{Op: op, Err: errors.New(strings.TrimSpace(response.Error))}
	}
	if response.Response == nil {
		return "", &domain.InferenceError{Op: op, Err: errMissingResponse}
	}
	text := strings.TrimSpace(*response.Response)
	if text == "" {
		return "", &domain.InferenceError{Op: op, Err: errEmptyResponse}
	}
	return text, nil
}

func decodeAPIError(statusErr *common.HTTPStatusError) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(statusErr.Body, &envelope); err == nil && strings.TrimSpace(envelope.Error) != "" {
		return errors.New(strings.TrimSpace(envelope.Error))
	}
	text := strings.TrimSpace(string(statusErr.Body))
	if text == "" {
		text = http.StatusText(statusErr.StatusCode)
	}
	return errors.New(text)
}

func baseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return domain.DefaultOllamaHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return host
}
