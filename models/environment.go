package models

// EnvironmentURLs is the set of server endpoints a client (or a single
// account) points at. A self-hosted install typically sets Base only; the
// remaining fields override individual services when they live on separate
// hosts.
type EnvironmentURLs struct {
	Base     string `json:"base,omitempty"`
	API      string `json:"api,omitempty"`
	Identity string `json:"identity,omitempty"`
	Icons    string `json:"icons,omitempty"`
	WebVault string `json:"web_vault,omitempty"`
}

// IsZero reports whether no endpoint is configured at all.
func (e EnvironmentURLs) IsZero() bool {
	return e == EnvironmentURLs{}
}
