package postcodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const postcodesBaseURL = "https://api.postcodes.io"

// ErrNotFound is returned when the postcode does not exist.
var ErrNotFound = errors.New("postcode not found")

// Coordinate is the resolved position of a postcode.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolver looks up postcodes against postcodes.io.
type Resolver struct {
	BaseURL string

	httpClient *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		BaseURL:    postcodesBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Status int `json:"status"`
	Result struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"result"`
}

// Resolve turns a free text postcode into a coordinate. Transient transport
// failures are retried with exponential backoff; an unknown postcode is
// ErrNotFound and not retried.
func (r *Resolver) Resolve(ctx context.Context, postcode string) (Coordinate, error) {
	requestURL := fmt.Sprintf("%s/postcodes/%s", r.BaseURL, url.PathEscape(postcode))

	var coordinate Coordinate

	lookup := func() error {
		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := r.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrNotFound)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("postcode lookup returned status %d", resp.StatusCode)
		}

		jsonBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		var lookupResult lookupResponse
		if err := json.Unmarshal(jsonBytes, &lookupResult); err != nil {
			return backoff.Permanent(err)
		}

		coordinate = Coordinate{
			Latitude:  lookupResult.Result.Latitude,
			Longitude: lookupResult.Result.Longitude,
		}

		return nil
	}

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(lookup, retryBackoff); err != nil {
		return Coordinate{}, err
	}

	return coordinate, nil
}
