package clima

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Service fetches the current weather at the workshop from Open-Meteo. The
// front desk shows it next to the day's intake schedule.
type Service struct {
	httpClient *http.Client
	baseURL    string
	latitud    float64
	longitud   float64
}

func NewService(baseURL string, latitud, longitud float64, timeout time.Duration) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		latitud:    latitud,
		longitud:   longitud,
	}
}

type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather upstream returned status %d", e.Status)
}

// Actual is the subset of the Open-Meteo answer the UI uses.
type Actual struct {
	Temperature float64 `json:"temperature"`
	Windspeed   float64 `json:"windspeed"`
	Weathercode int     `json:"weathercode"`
	IsDay       int     `json:"is_day"`
	Time        string  `json:"time"`
}

type upstreamResponse struct {
	CurrentWeather Actual `json:"current_weather"`
}

func (s *Service) Actual(ctx context.Context) (*Actual, error) {
	url := fmt.Sprintf("%s/forecast?latitude=%.4f&longitude=%.4f&current_weather=true",
		s.baseURL, s.latitud, s.longitud)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var parsed upstreamResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return &parsed.CurrentWeather, nil
}
