package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// WeatherService fetches current conditions for a user's location, for
// the dashboard header. Purely decorative enrichment.
type WeatherService struct {
	client  *http.Client
	baseURL string
}

var weatherService *WeatherService

func GetWeatherService() *WeatherService {
	if weatherService == nil {
		weatherService = NewWeatherService()
	}
	return weatherService
}

func NewWeatherService() *WeatherService {
	baseURL := os.Getenv("WEATHER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://wttr.in"
	}
	return &WeatherService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type WeatherReport struct {
	CurrentCondition []struct {
		TempF       string `json:"temp_F"`
		Humidity    string `json:"humidity"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// Current looks up conditions by free-form location (zip works).
func (s *WeatherService) Current(location string) (*WeatherReport, error) {
	u := fmt.Sprintf("%s/%s?format=j1", s.baseURL, url.PathEscape(location))
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather returned status %d", resp.StatusCode)
	}

	var report WeatherReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("weather decode failed: %w", err)
	}
	return &report, nil
}
