// Package httputil provides HTTP client utilities shared by the API
// clients in this module.
//
// The main export is [Retry], an exponential-backoff retry loop that only
// retries errors explicitly marked transient via [Retryable]. API clients
// wrap network failures and 5xx responses; validation failures and 4xx
// responses pass through immediately.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err) // network failure: retry
//	    }
//	    defer resp.Body.Close()
//	    if resp.StatusCode >= 500 {
//	        return httputil.Retryable(fmt.Errorf("server error: %d", resp.StatusCode))
//	    }
//	    // ...
//	    return nil
//	})
package httputil
