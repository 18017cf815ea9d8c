package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport provides detailed HTTP request/response logging for
// troubleshooting backend communication.
//
// Dumps include full bodies, and bodies carry session tokens, so keep
// this out of production. Enable it with ONTRACK_DEBUG=true or
// DEBUG=true, or explicitly via WithDebugLogging.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be
// enabled. Both the SDK-specific and the general flag are honored so a
// broad DEBUG=true run picks up HTTP traffic too.
func debugLoggingRequested() bool {
	return os.Getenv("ONTRACK_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
