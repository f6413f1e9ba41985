package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Hugging Face public API host.
	DefaultBaseURL = "https://huggingface.co"

	// DefaultTimeout bounds the single metadata request per dataset.
	DefaultTimeout = 8 * time.Second
)

// Client queries the Hugging Face public API for dataset card metadata.
// One request per dataset, no retries: a failed lookup degrades to the
// caller's heuristic path.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client identifying itself with the given tool version.
func NewClient(version string) *Client {
	return &Client{
		baseURL:   DefaultBaseURL,
		userAgent: "dataspectre/" + version,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// SetTimeout overrides the per-request timeout. Non-positive values are ignored.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// datasetCard mirrors the subset of the dataset API response carrying licence
// metadata. Field shapes vary between cards, so both are kept raw.
type datasetCard struct {
	CardData struct {
		License  json.RawMessage `json:"license"`
		Licenses json.RawMessage `json:"licenses"`
	} `json:"cardData"`
}

// DatasetLicence fetches the dataset card for id and returns its declared
// licence. An empty string with nil error means the card has no licence field.
func (c *Client) DatasetLicence(ctx context.Context, id string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/datasets/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build dataset request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch dataset card: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset card request returned %s", resp.Status)
	}

	var card datasetCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return "", fmt.Errorf("decode dataset card: %w", err)
	}

	return licenceFromCard(card), nil
}

// licenceFromCard reads cardData.license, falling back to the first entry of
// cardData.licenses (either a plain string or an object with a name).
func licenceFromCard(card datasetCard) string {
	var licence string
	if json.Unmarshal(card.CardData.License, &licence) == nil && licence != "" {
		return licence
	}

	var entries []json.RawMessage
	if json.Unmarshal(card.CardData.Licenses, &entries) != nil || len(entries) == 0 {
		return ""
	}
	if json.Unmarshal(entries[0], &licence) == nil && licence != "" {
		return licence
	}
	var named struct {
		Name string `json:"name"`
	}
	if json.Unmarshal(entries[0], &named) == nil {
		return named.Name
	}
	return ""
}
