package errors

// RecoverableStatus reports whether an HTTP status code describes a
// failure worth retrying at the transport level:
// - 5xx server errors are transient by assumption
// - 408 Request Timeout and 429 Too Many Requests invite a retry
// - every other 4xx is a definitive rejection
func RecoverableStatus(statusCode int) bool {
	switch {
	case statusCode == 408 || statusCode == 429:
		return true
	case statusCode >= 500 && statusCode < 600:
		return true
	default:
		return false
	}
}

// Recoverable reports whether err may succeed on retry. Network-level
// failures (no status code) are treated as transient; anything that is
// not a RemoteError is not ours to retry.
func Recoverable(err error) bool {
	re, ok := err.(*RemoteError)
	if !ok {
		return false
	}
	if re.StatusCode == 0 {
		return true
	}
	return RecoverableStatus(re.StatusCode)
}
