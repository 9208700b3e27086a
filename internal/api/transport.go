package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mssbox/blindboxctl/internal/common"
	"github.com/mssbox/blindboxctl/internal/storage"
)

// authTransport is the outgoing interceptor stage: before every request it
// reads the current token from the session store and, if one is present,
// attaches it as a bearer credential. The token is read lazily on each call
// and never cached here, so a logout in another component takes effect on the
// very next request.
type authTransport struct {
	store          storage.Store
	defaultHeaders map[string]string
	next           http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Per net/http contract the request must not be mutated in place.
	req = req.Clone(req.Context())

	for k, v := range t.defaultHeaders {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if token, ok, _ := t.store.Get(req.Context(), storage.KeyToken); ok && token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	return t.next.RoundTrip(req)
}
