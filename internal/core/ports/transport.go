package ports

import "context"

// Transport dispatches a request to the remote complaint service.
// Implementations read the current session from the credential store on
// every call and attach its bearer token when present; they never
// mutate the store, retry, or cache. body may be nil; when out is
// non-nil the 2xx response body is decoded into it.
type Transport interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
