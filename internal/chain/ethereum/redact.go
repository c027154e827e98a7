package ethereum

import "net/url"

// redact strips credentials and API-key paths from an endpoint for logs and labels.
func redact(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "invalid-endpoint"
	}
	return u.Scheme + "://" + u.Host
}
