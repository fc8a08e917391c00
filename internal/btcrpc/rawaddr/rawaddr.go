package rawaddr

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

type client struct {
	baseURL string
	client  *http.Client
	logger  *logger.Logger
}

func New(cfg *config.AppConfig, logger *logger.Logger) IClient {
	return &client{
		baseURL: cfg.Bitcoin.ChainAPIURL,
		client:  &http.Client{Timeout: cfg.Bitcoin.FetchTimeout},
		logger:  logger,
	}
}

// GetAddress fetches the full transaction history for one address. The
// request is made exactly once; failures surface to the caller as one of the
// typed errors of this package instead of being retried.
func (c *client) GetAddress(address string) (*Response, error) {
	url := fmt.Sprintf("%s/rawaddr/%s", c.baseURL, address)

	resp, err := c.client.Get(url)
	if err != nil {
		c.logger.Error("[GetAddress][client.Get]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("[GetAddress] unexpected status", map[string]string{
			"statusCode": strconv.Itoa(resp.StatusCode),
			"address":    address,
		})
		return nil, ErrAddressNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("[GetAddress][io.ReadAll]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, &NetworkError{Err: errors.Wrap(err, "failed to read response body")}
	}

	var payload Response
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("[GetAddress][json.Unmarshal]", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return nil, &ParseError{Err: err}
	}

	return &payload, nil
}
