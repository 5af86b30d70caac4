package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// DictionaryService fetches word definitions. Like every lookup
// service it is opportunistic: failure renders as empty, not as an
// error.
type DictionaryService struct {
	client  *http.Client
	baseURL string
}

var dictionaryService *DictionaryService

func GetDictionaryService() *DictionaryService {
	if dictionaryService == nil {
		dictionaryService = NewDictionaryService()
	}
	return dictionaryService
}

func NewDictionaryService() *DictionaryService {
	baseURL := os.Getenv("DICTIONARY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	}
	return &DictionaryService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type WordEntry struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

func (s *DictionaryService) Define(word string) ([]WordEntry, error) {
	resp, err := s.client.Get(s.baseURL + "/" + url.PathEscape(word))
	if err != nil {
		return nil, fmt.Errorf("dictionary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary returned status %d", resp.StatusCode)
	}

	var entries []WordEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("dictionary decode failed: %w", err)
	}
	return entries, nil
}
