package intent

import (
	"regexp"
	"strings"
)

// Classifier maps free text to an Intent through a strictly ordered,
// first-match-wins rule cascade. The ordering is load-bearing: the
// info-query rule runs before the per-site handlers, so "who is playing on
// youtube" is an info query, and the streaming table runs before the
// generic open handler, so "open netflix" hits the service URL rather than
// the website table.
type Classifier struct {
	rules []rule
}

type rule struct {
	name  string
	match func(cmd string) (Intent, bool)
}

var (
	mathContinuationRe = regexp.MustCompile(`^\s*[+\-*/]\s*\d+`)
	mathExpressionRe   = regexp.MustCompile(`^(?:what'?s\s*)?([\d\s+\-*/]+)$`)
	directionsRe       = regexp.MustCompile(`directions to\s+(.+?)(?:\s+from\s+(.+))?$`)
	mapsSearchRe       = regexp.MustCompile(`(?:find|search|locate|show)?\s*(.+?)\s+on\s+(?:maps|google maps)`)
	newsRe             = regexp.MustCompile(`(?:news about|latest news on)\s+(.+)`)
	openRe             = regexp.MustCompile(`open\s+(.+?)(?:\s+on\s+google)?$`)
)

// siteRule is one "<query> on <site>" handler. Marker containment gates the
// regex, and the rules run in declaration order.
type siteRule struct {
	service string
	markers []string
	re      *regexp.Regexp
}

var siteRules = []siteRule{
	{"youtube", []string{"on youtube"}, regexp.MustCompile(`(?:open|search|play|watch)?\s*(.+?)\s+on\s+youtube`)},
	{"spotify", []string{"on spotify"}, regexp.MustCompile(`(?:open|search|play|listen to)?\s*(.+?)\s+on\s+spotify`)},
	{"netflix", []string{"on netflix"}, regexp.MustCompile(`(?:open|search|play|watch)?\s*(.+?)\s+on\s+netflix`)},
	{"amazon", []string{"on amazon"}, regexp.MustCompile(`(?:open|search|find|buy)?\s*(.+?)\s+on\s+amazon`)},
	{"twitter", []string{"on twitter", "on x"}, regexp.MustCompile(`(?:open|search|find)?\s*(.+?)\s+on\s+(?:twitter|x)`)},
	{"facebook", []string{"on facebook"}, regexp.MustCompile(`(?:open|search|find)?\s*(.+?)\s+on\s+facebook`)},
	{"instagram", []string{"on instagram"}, regexp.MustCompile(`(?:open|search|find)?\s*(.+?)\s+on\s+instagram`)},
}

var (
	greetings       = []string{"hello", "hi", "hey"}
	identityPhrases = []string{"what's your name", "who are you", "what are you called"}
	statusPhrases   = []string{"how are you", "how's it going", "what's up"}
	exitWords       = []string{"bye", "goodbye", "exit", "stop", "quit"}
	infoPhrases     = []string{"who is", "who's", "what is", "what's", "tell me about"}
	personPhrases   = []string{"who is", "who's"}
	timeQualifiers  = []string{"what", "current", "right now"}
	dateQualifiers  = []string{"what", "today", "current"}
)

// New builds the classifier with its rule cascade.
func New() *Classifier {
	c := &Classifier{}
	c.rules = []rule{
		{"greeting", matchGreeting},
		{"identity", matchIdentity},
		{"status", matchStatus},
		{"exit", matchExit},
		{"info_query", matchInfoQuery},
		{"math", matchMath},
		{"sites", matchSites},
		{"maps", matchMaps},
		{"news", matchNews},
		{"email", matchEmail},
		{"streaming", matchStreaming},
		{"open", matchOpen},
		{"time", matchTime},
		{"date", matchDate},
	}
	return c
}

// Classify lower-cases and trims text, then walks the cascade. Anything no
// rule claims becomes a conversational fallback.
func (c *Classifier) Classify(text string) Intent {
	cmd := strings.ToLower(strings.TrimSpace(text))
	for _, r := range c.rules {
		if it, ok := r.match(cmd); ok {
			return it
		}
	}
	return Intent{Type: TypeFallback, Raw: cmd}
}

func matchGreeting(cmd string) (Intent, bool) {
	for _, g := range greetings {
		if cmd == g {
			return Intent{Type: TypeGreeting}, true
		}
	}
	return Intent{}, false
}

func matchIdentity(cmd string) (Intent, bool) {
	if containsAny(cmd, identityPhrases) {
		return Intent{Type: TypeIdentity}, true
	}
	return Intent{}, false
}

func matchStatus(cmd string) (Intent, bool) {
	if containsAny(cmd, statusPhrases) {
		return Intent{Type: TypeStatus}, true
	}
	return Intent{}, false
}

func matchExit(cmd string) (Intent, bool) {
	if containsAny(cmd, exitWords) {
		return Intent{Type: TypeExit}, true
	}
	return Intent{}, false
}

func matchInfoQuery(cmd string) (Intent, bool) {
	if !containsAny(cmd, infoPhrases) {
		return Intent{}, false
	}
	subject := cmd
	for _, phrase := range infoPhrases {
		subject = strings.ReplaceAll(subject, phrase, "")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		// Nothing left to ask about; let later rules have a go.
		return Intent{}, false
	}
	return Intent{
		Type:     TypeInfoQuery,
		Subject:  subject,
		IsPerson: containsAny(cmd, personPhrases),
	}, true
}

func matchMath(cmd string) (Intent, bool) {
	if mathContinuationRe.MatchString(cmd) {
		return Intent{Type: TypeMathContinuation, Expression: cmd}, true
	}
	if m := mathExpressionRe.FindStringSubmatch(cmd); m != nil {
		return Intent{Type: TypeMathExpression, Expression: strings.TrimSpace(m[1])}, true
	}
	return Intent{}, false
}

func matchSites(cmd string) (Intent, bool) {
	for _, sr := range siteRules {
		if !containsAny(cmd, sr.markers) {
			continue
		}
		if m := sr.re.FindStringSubmatch(cmd); m != nil {
			return Intent{
				Type:    TypeSiteSearch,
				Service: sr.service,
				Query:   strings.TrimSpace(m[1]),
			}, true
		}
	}
	return Intent{}, false
}

func matchMaps(cmd string) (Intent, bool) {
	if !containsAny(cmd, []string{"on maps", "on google maps", "directions to"}) {
		return Intent{}, false
	}
	if strings.Contains(cmd, "directions to") {
		if m := directionsRe.FindStringSubmatch(cmd); m != nil {
			return Intent{
				Type:        TypeDirections,
				Destination: strings.TrimSpace(m[1]),
				Origin:      strings.TrimSpace(m[2]),
			}, true
		}
		return Intent{}, false
	}
	if m := mapsSearchRe.FindStringSubmatch(cmd); m != nil {
		return Intent{
			Type:    TypeSiteSearch,
			Service: "maps",
			Query:   strings.TrimSpace(m[1]),
		}, true
	}
	return Intent{}, false
}

func matchNews(cmd string) (Intent, bool) {
	if !containsAny(cmd, []string{"news about", "latest news on"}) {
		return Intent{}, false
	}
	if m := newsRe.FindStringSubmatch(cmd); m != nil {
		return Intent{Type: TypeNewsQuery, Topic: strings.TrimSpace(m[1])}, true
	}
	return Intent{}, false
}

func matchEmail(cmd string) (Intent, bool) {
	if !strings.Contains(cmd, "open email") && !strings.Contains(cmd, "check email") {
		return Intent{}, false
	}
	provider := ""
	for _, p := range EmailProviders {
		if strings.Contains(cmd, p.Name) {
			provider = p.Name
			break
		}
	}
	return Intent{Type: TypeEmailOpen, Provider: provider}, true
}

func matchStreaming(cmd string) (Intent, bool) {
	for _, s := range StreamingServices {
		if strings.Contains(cmd, "open "+s.Name) {
			return Intent{Type: TypeStreamingOpen, Service: s.Name}, true
		}
	}
	return Intent{}, false
}

func matchOpen(cmd string) (Intent, bool) {
	if !strings.Contains(cmd, "open") {
		return Intent{}, false
	}
	m := openRe.FindStringSubmatch(cmd)
	if m == nil {
		return Intent{}, false
	}
	return Intent{
		Type:      TypeGenericOpen,
		Target:    strings.TrimSpace(m[1]),
		ViaGoogle: strings.Contains(cmd, " on google"),
	}, true
}

func matchTime(cmd string) (Intent, bool) {
	if strings.Contains(cmd, "time") && containsAny(cmd, timeQualifiers) {
		return Intent{Type: TypeTimeQuery}, true
	}
	return Intent{}, false
}

func matchDate(cmd string) (Intent, bool) {
	if strings.Contains(cmd, "date") && containsAny(cmd, dateQualifiers) {
		return Intent{Type: TypeDateQuery}, true
	}
	return Intent{}, false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
