// Package practicum calls the homework statuses endpoint of the review API.
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"homework_notification_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// Client fetches homework statuses changed since a given timestamp.
// It does not retry; the poll loop repeats the request on its next cycle.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, httpClient *http.Client, logger *logrus.Entry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// HomeworkStatuses requests statuses with from_date set to the cursor and returns the
// decoded JSON body. Numbers are kept as json.Number.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, homework.NewTransportError(fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err))
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, homework.NewTransportError(err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
		return nil, homework.NewUpstreamStatusError(resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, homework.NewDecodeError(err)
	}
	// The body must hold exactly one JSON value.
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
		return nil, homework.NewDecodeError(err)
	}
	return payload, nil
}
