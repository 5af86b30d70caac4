package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// MovieService looks up movie/TV metadata from an OMDb-compatible API.
// It is read-only enrichment: a failed lookup degrades to an empty
// result and must never fail a core write.
type MovieService struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

var movieService *MovieService

func GetMovieService() *MovieService {
	if movieService == nil {
		movieService = NewMovieService()
	}
	return movieService
}

func NewMovieService() *MovieService {
	baseURL := os.Getenv("OMDB_BASE_URL")
	if baseURL == "" {
		baseURL = "https://www.omdbapi.com"
	}
	return &MovieService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  os.Getenv("OMDB_API_KEY"),
	}
}

type MovieInfo struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Genre    string `json:"Genre"`
	Director string `json:"Director"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	ImdbID   string `json:"imdbID"`
	Type     string `json:"Type"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// Lookup fetches metadata by title. A nil result with nil error means
// the title is simply unknown upstream.
func (s *MovieService) Lookup(title string) (*MovieInfo, error) {
	u := fmt.Sprintf("%s/?apikey=%s&t=%s", s.baseURL, url.QueryEscape(s.apiKey), url.QueryEscape(title))
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("movie lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movie lookup returned status %d", resp.StatusCode)
	}

	var info MovieInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("movie lookup decode failed: %w", err)
	}
	if info.Response != "True" {
		log.Debug().Str("title", title).Str("error", info.Error).Msg("movie not found upstream")
		return nil, nil
	}
	return &info, nil
}
