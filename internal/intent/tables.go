package intent

import "strings"

// Site is one entry in an ordered name→URL table. Tables are slices, not
// maps: lookup is by substring containment and the first matching entry in
// declaration order wins, so iteration order has to be deterministic.
type Site struct {
	Name string
	URL  string
}

// StreamingServices matches "open <service>" commands.
var StreamingServices = []Site{
	{"netflix", "https://www.netflix.com"},
	{"hulu", "https://www.hulu.com"},
	{"disney plus", "https://www.disneyplus.com"},
	{"disney+", "https://www.disneyplus.com"},
	{"prime video", "https://www.amazon.com/Prime-Video"},
	{"amazon prime", "https://www.amazon.com/Prime-Video"},
	{"hbo", "https://www.hbomax.com"},
	{"hbo max", "https://www.hbomax.com"},
	{"peacock", "https://www.peacocktv.com"},
	{"paramount", "https://www.paramountplus.com"},
	{"paramount+", "https://www.paramountplus.com"},
	{"apple tv", "https://tv.apple.com"},
	{"apple tv+", "https://tv.apple.com"},
}

// Websites matches the target of a generic "open ..." command.
var Websites = []Site{
	{"youtube", "https://youtube.com"},
	{"google", "https://google.com"},
	{"gmail", "https://mail.google.com"},
	{"spotify", "https://open.spotify.com"},
	{"netflix", "https://netflix.com"},
	{"amazon", "https://amazon.com"},
	{"facebook", "https://facebook.com"},
	{"instagram", "https://instagram.com"},
	{"twitter", "https://twitter.com"},
	{"x", "https://twitter.com"},
	{"linkedin", "https://linkedin.com"},
	{"reddit", "https://reddit.com"},
	{"twitch", "https://twitch.tv"},
	{"disney plus", "https://disneyplus.com"},
	{"disney+", "https://disneyplus.com"},
	{"hulu", "https://hulu.com"},
	{"github", "https://github.com"},
	{"stackoverflow", "https://stackoverflow.com"},
	{"pinterest", "https://pinterest.com"},
	{"maps", "https://maps.google.com"},
	{"google maps", "https://maps.google.com"},
}

// EmailProviders maps a provider keyword to its webmail URL.
// Gmail is the default when no provider is named.
var EmailProviders = []Site{
	{"gmail", "https://mail.google.com"},
	{"outlook", "https://outlook.live.com"},
	{"yahoo", "https://mail.yahoo.com"},
}

// LookupStreaming returns the URL for an exact streaming-service name.
func LookupStreaming(name string) (string, bool) {
	for _, s := range StreamingServices {
		if s.Name == name {
			return s.URL, true
		}
	}
	return "", false
}

// MatchWebsite finds the first website whose name appears inside target.
func MatchWebsite(target string) (Site, bool) {
	for _, s := range Websites {
		if strings.Contains(target, s.Name) {
			return s, true
		}
	}
	return Site{}, false
}

// LookupEmailProvider returns the webmail URL for a provider keyword,
// defaulting to Gmail.
func LookupEmailProvider(provider string) string {
	for _, p := range EmailProviders {
		if p.Name == provider {
			return p.URL
		}
	}
	return EmailProviders[0].URL
}
