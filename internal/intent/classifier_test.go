package intent

import "testing"

func TestClassifyDeterministicIntents(t *testing.T) {
	c := New()

	cases := []struct {
		name string
		in   string
		want Intent
	}{
		{"greeting exact", "hello", Intent{Type: TypeGreeting}},
		{"greeting trimmed upper", "  HEY  ", Intent{Type: TypeGreeting}},
		{"greeting not substring", "hello there friend", Intent{Type: TypeFallback, Raw: "hello there friend"}},
		{"identity", "what's your name", Intent{Type: TypeIdentity}},
		{"identity containment", "hey what's your name buddy", Intent{Type: TypeIdentity}},
		{"status", "how's it going", Intent{Type: TypeStatus}},
		{"exit word", "goodbye", Intent{Type: TypeExit}},
		{"exit containment", "ok stop now", Intent{Type: TypeExit}},
		{"person query", "who is Marie Curie", Intent{Type: TypeInfoQuery, Subject: "marie curie", IsPerson: true}},
		{"thing query", "what is photosynthesis", Intent{Type: TypeInfoQuery, Subject: "photosynthesis"}},
		{"tell me about", "tell me about black holes", Intent{Type: TypeInfoQuery, Subject: "black holes"}},
		{"math expression", "5 + 10", Intent{Type: TypeMathExpression, Expression: "5 + 10"}},
		{"math division", "12 / 4", Intent{Type: TypeMathExpression, Expression: "12 / 4"}},
		{"math continuation", "+ 6", Intent{Type: TypeMathContinuation, Expression: "+ 6"}},
		{"math rejects letters", "5 + ten", Intent{Type: TypeFallback, Raw: "5 + ten"}},
		{"youtube", "search cats on youtube", Intent{Type: TypeSiteSearch, Service: "youtube", Query: "cats"}},
		{"spotify", "search cats on spotify", Intent{Type: TypeSiteSearch, Service: "spotify", Query: "cats"}},
		{"netflix", "watch stranger things on netflix", Intent{Type: TypeSiteSearch, Service: "netflix", Query: "stranger things"}},
		{"amazon", "buy headphones on amazon", Intent{Type: TypeSiteSearch, Service: "amazon", Query: "headphones"}},
		{"twitter via x", "find elon on x", Intent{Type: TypeSiteSearch, Service: "twitter", Query: "elon"}},
		{"facebook", "search old friends on facebook", Intent{Type: TypeSiteSearch, Service: "facebook", Query: "old friends"}},
		{"instagram", "find nasa on instagram", Intent{Type: TypeSiteSearch, Service: "instagram", Query: "nasa"}},
		{"maps search", "show coffee shops on maps", Intent{Type: TypeSiteSearch, Service: "maps", Query: "coffee shops"}},
		{"directions", "directions to Paris from London", Intent{Type: TypeDirections, Destination: "paris", Origin: "london"}},
		{"directions no origin", "directions to the airport", Intent{Type: TypeDirections, Destination: "the airport"}},
		{"news", "latest news on climate change", Intent{Type: TypeNewsQuery, Topic: "climate change"}},
		{"email default", "open email", Intent{Type: TypeEmailOpen}},
		{"email provider", "check email on outlook", Intent{Type: TypeEmailOpen, Provider: "outlook"}},
		{"streaming", "open hulu", Intent{Type: TypeStreamingOpen, Service: "hulu"}},
		{"streaming disney plus", "open disney plus", Intent{Type: TypeStreamingOpen, Service: "disney plus"}},
		{"open website", "open github", Intent{Type: TypeGenericOpen, Target: "github"}},
		{"open on google", "open cats on google", Intent{Type: TypeGenericOpen, Target: "cats", ViaGoogle: true}},
		{"open app", "open calculator", Intent{Type: TypeGenericOpen, Target: "calculator"}},
		{"time", "what time is it", Intent{Type: TypeTimeQuery}},
		{"date", "what date is it today", Intent{Type: TypeDateQuery}},
		{"fallback", "recommend a good book", Intent{Type: TypeFallback, Raw: "recommend a good book"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.in)
			if got != tc.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

// The cascade order is part of the contract: the info-query rule runs before
// the site handlers, and the streaming table runs before the generic open
// handler.
func TestClassifyPrecedence(t *testing.T) {
	c := New()

	t.Run("info query beats site search", func(t *testing.T) {
		got := c.Classify("who is playing on youtube")
		if got.Type != TypeInfoQuery {
			t.Fatalf("Type = %s, want %s", got.Type, TypeInfoQuery)
		}
		if got.Subject != "playing on youtube" {
			t.Errorf("Subject = %q", got.Subject)
		}
		if !got.IsPerson {
			t.Error("IsPerson = false, want true")
		}
	})

	t.Run("info query beats math", func(t *testing.T) {
		// "what's" routes to the info handler even when the remainder is
		// arithmetic; only bare expressions reach the evaluator.
		got := c.Classify("what's 3 * 7")
		if got.Type != TypeInfoQuery {
			t.Fatalf("Type = %s, want %s", got.Type, TypeInfoQuery)
		}
		if got.Subject != "3 * 7" {
			t.Errorf("Subject = %q", got.Subject)
		}
	})

	t.Run("streaming beats website table", func(t *testing.T) {
		got := c.Classify("open netflix")
		if got.Type != TypeStreamingOpen {
			t.Fatalf("Type = %s, want %s", got.Type, TypeStreamingOpen)
		}
	})

	t.Run("status beats info query for what's up", func(t *testing.T) {
		got := c.Classify("what's up")
		if got.Type != TypeStatus {
			t.Fatalf("Type = %s, want %s", got.Type, TypeStatus)
		}
	})

	t.Run("ordered streaming keys", func(t *testing.T) {
		// "disney+" and "disney plus" are distinct keys; each input matches
		// its own entry and both resolve to the same URL.
		a := c.Classify("open disney+")
		b := c.Classify("open disney plus")
		if a.Type != TypeStreamingOpen || b.Type != TypeStreamingOpen {
			t.Fatalf("types = %s, %s", a.Type, b.Type)
		}
		urlA, _ := LookupStreaming(a.Service)
		urlB, _ := LookupStreaming(b.Service)
		if urlA != urlB || urlA == "" {
			t.Errorf("urls = %q, %q", urlA, urlB)
		}
	})
}

// Classification is a pure function of the input text.
func TestClassifyIdempotent(t *testing.T) {
	c := New()
	inputs := []string{"hello", "5 + 10", "search cats on spotify", "who is ada lovelace", "open netflix"}
	for _, in := range inputs {
		first := c.Classify(in)
		for i := 0; i < 3; i++ {
			if got := c.Classify(in); got != first {
				t.Errorf("Classify(%q) unstable: %+v vs %+v", in, got, first)
			}
		}
	}
}
