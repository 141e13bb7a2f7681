package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Config carries the dictionary API credentials. Both values come from the
// environment, not the config file.
type Config struct {
	Host string
	Key  string
}

// Client is a cache-first dictionary API client.
type Client struct {
	config    Config
	fileCache *FileCache
}

// NewClient creates a dictionary client with a JSON file cache.
func NewClient(cacheDirectory string, config Config) *Client {
	return &Client{
		config:    config,
		fileCache: NewFileCache(cacheDirectory),
	}
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	client := resty.New()
	res, err := client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", c.config.Host).
		SetHeader("x-rapidapi-key", c.config.Key).
		Get(fmt.Sprintf("https://%s/words/%s", c.config.Host, word))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w, response %s", err, string(res.Body()))
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the dictionary entry for a word, cache-first.
func (c *Client) Lookup(ctx context.Context, word string) (Response, error) {
	var resp Response
	contents, err := c.fileCache.cache(word, func() ([]byte, error) {
		body, err := c.lookupAPI(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("c.lookupAPI > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return resp, fmt.Errorf("c.fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

// Synonyms implements the quiz generator's DistractorSource.
func (c *Client) Synonyms(ctx context.Context, word string) ([]string, error) {
	resp, err := c.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	return resp.AllSynonyms(), nil
}

// Antonyms implements the quiz generator's DistractorSource.
func (c *Client) Antonyms(ctx context.Context, word string) ([]string, error) {
	resp, err := c.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}
	return resp.AllAntonyms(), nil
}
