package deps

import (
	"context"
	"net/url"
	httpclient "signup/internal/core/domain/http_client"
	"sync"
)

// trackingClient remembers the outcome of every request sent through inner so
// the host can wait for them before exiting.
type trackingClient struct {
	inner   httpclient.PostClient
	wg      sync.WaitGroup
	lock    sync.Mutex
	results []httpclient.Result
}

func newTrackingClient(inner httpclient.PostClient) *trackingClient {
	return &trackingClient{inner: inner}
}

func (c *trackingClient) Post(ctx context.Context, url url.URL, data []byte, completion func(httpclient.Result)) {
	c.wg.Add(1)
	c.inner.Post(ctx, url, data, func(result httpclient.Result) {
		defer c.wg.Done()
		c.lock.Lock()
		c.results = append(c.results, result)
		c.lock.Unlock()
		if completion != nil {
			completion(result)
		}
	})
}

func (c *trackingClient) Wait() []httpclient.Result {
	c.wg.Wait()
	c.lock.Lock()
	defer c.lock.Unlock()
	results := make([]httpclient.Result, len(c.results))
	copy(results, c.results)
	return results
}
