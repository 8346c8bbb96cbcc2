package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"voice-assistant-backend/internal/intent"
	"voice-assistant-backend/internal/model"
	"voice-assistant-backend/internal/session"
	"voice-assistant-backend/pkg/mathexpr"
)

// execute maps a classified intent to its response. Every branch returns a
// usable CommandResponse; collaborator failures degrade, they never bubble.
func (uc *implUseCase) execute(ctx context.Context, sess *session.Session, it intent.Intent) model.CommandResponse {
	switch it.Type {
	case intent.TypeGreeting:
		return model.CommandResponse{Response: greetingResponse}

	case intent.TypeIdentity:
		return model.CommandResponse{Response: identityResponse}

	case intent.TypeStatus:
		return model.CommandResponse{Response: statusResponse}

	case intent.TypeExit:
		return model.CommandResponse{Response: exitResponse, Action: model.ActionExit}

	case intent.TypeInfoQuery:
		return uc.answerInfo(ctx, sess, it.Subject, it.IsPerson)

	case intent.TypeMathContinuation:
		return uc.executeMathContinuation(ctx, sess, it.Expression)

	case intent.TypeMathExpression:
		return uc.executeMath(ctx, sess, it.Expression)

	case intent.TypeSiteSearch:
		return executeSiteSearch(it.Service, it.Query)

	case intent.TypeDirections:
		return executeDirections(it.Destination, it.Origin)

	case intent.TypeNewsQuery:
		return openURL(
			fmt.Sprintf("Here's the latest news about %s", it.Topic),
			"https://news.google.com/search?q="+plusQuery(it.Topic),
			fmt.Sprintf("News about %s", it.Topic),
		)

	case intent.TypeEmailOpen:
		return openURL("Opening your email", intent.LookupEmailProvider(it.Provider), "Email")

	case intent.TypeStreamingOpen:
		url, _ := intent.LookupStreaming(it.Service)
		return openURL(fmt.Sprintf("Opening %s", title(it.Service)), url, title(it.Service))

	case intent.TypeGenericOpen:
		return executeOpen(it.Target, it.ViaGoogle)

	case intent.TypeTimeQuery:
		return model.CommandResponse{Response: fmt.Sprintf("It's %s", uc.clock().Format("03:04 PM"))}

	case intent.TypeDateQuery:
		return model.CommandResponse{Response: fmt.Sprintf("Today is %s", uc.clock().Format("January 02, 2006"))}

	default:
		return uc.answerFallback(ctx, sess, it.Raw)
	}
}

func (uc *implUseCase) executeMath(ctx context.Context, sess *session.Session, expr string) model.CommandResponse {
	result, err := mathexpr.Evaluate(expr)
	if err != nil {
		uc.l.Warnf(ctx, "assistant/usecase.executeMath: %v", err)
		return model.CommandResponse{Response: apologyResponse}
	}
	sess.RecordCalculation(expr, result)
	return model.CommandResponse{Response: mathexpr.FormatResult(result)}
}

// executeMathContinuation prepends the running total to an operator-first
// fragment like "+ 6". Without a prior result the fragment reads as
// conversation, not arithmetic.
func (uc *implUseCase) executeMathContinuation(ctx context.Context, sess *session.Session, fragment string) model.CommandResponse {
	last, ok := sess.LastResult()
	if !ok {
		return uc.answerFallback(ctx, sess, fragment)
	}
	expr := mathexpr.FormatResult(last) + " " + fragment
	result, err := mathexpr.Evaluate(expr)
	if err != nil {
		uc.l.Warnf(ctx, "assistant/usecase.executeMathContinuation: %v", err)
		return model.CommandResponse{Response: apologyResponse}
	}
	sess.RecordCalculation(expr, result)
	return model.CommandResponse{Response: mathexpr.FormatResult(result)}
}

// executeSiteSearch builds the per-site search URL. Each site keeps its own
// space-escaping convention.
func executeSiteSearch(service, query string) model.CommandResponse {
	switch service {
	case "youtube":
		return openURL(
			fmt.Sprintf("Opening %s on YouTube", query),
			"https://www.youtube.com/results?search_query="+plusQuery(query),
			fmt.Sprintf("%s on YouTube", query),
		)
	case "spotify":
		return openURL(
			fmt.Sprintf("Opening %s on Spotify", query),
			"https://open.spotify.com/search/"+percentQuery(query),
			fmt.Sprintf("%s on Spotify", query),
		)
	case "netflix":
		return openURL(
			fmt.Sprintf("Opening %s on Netflix", query),
			"https://www.netflix.com/search?q="+percentQuery(query),
			fmt.Sprintf("%s on Netflix", query),
		)
	case "amazon":
		return openURL(
			fmt.Sprintf("Opening %s on Amazon", query),
			"https://www.amazon.com/s?k="+plusQuery(query),
			fmt.Sprintf("%s on Amazon", query),
		)
	case "twitter":
		return openURL(
			fmt.Sprintf("Opening %s on Twitter", query),
			"https://twitter.com/search?q="+percentQuery(query),
			fmt.Sprintf("%s on Twitter", query),
		)
	case "facebook":
		return openURL(
			fmt.Sprintf("Opening %s on Facebook", query),
			"https://www.facebook.com/search/top/?q="+percentQuery(query),
			fmt.Sprintf("%s on Facebook", query),
		)
	case "instagram":
		if !strings.Contains(query, " ") {
			return openURL(
				fmt.Sprintf("Opening %s's Instagram", query),
				"https://www.instagram.com/"+query,
				fmt.Sprintf("%s's Instagram", query),
			)
		}
		return openURL(
			fmt.Sprintf("Opening #%s on Instagram", query),
			"https://www.instagram.com/explore/tags/"+strings.ReplaceAll(query, " ", ""),
			fmt.Sprintf("#%s on Instagram", query),
		)
	case "maps":
		return openURL(
			fmt.Sprintf("Showing %s on Maps", query),
			"https://www.google.com/maps/search/"+plusQuery(query),
			fmt.Sprintf("%s on Maps", query),
		)
	default:
		return model.CommandResponse{Response: apologyResponse}
	}
}

func executeDirections(destination, origin string) model.CommandResponse {
	if origin != "" {
		return openURL(
			fmt.Sprintf("Getting directions from %s to %s", origin, destination),
			"https://www.google.com/maps/dir/"+plusQuery(origin)+"/"+plusQuery(destination),
			fmt.Sprintf("Directions from %s to %s", origin, destination),
		)
	}
	return openURL(
		fmt.Sprintf("Getting directions to %s", destination),
		"https://www.google.com/maps/dir//"+plusQuery(destination),
		fmt.Sprintf("Directions to %s", destination),
	)
}

// executeOpen resolves a bare "open ..." target: Google search when asked,
// then the website table, then a native-app hint for anything unknown.
func executeOpen(target string, viaGoogle bool) model.CommandResponse {
	if viaGoogle {
		return openURL(
			fmt.Sprintf("Searching for %s on Google", target),
			"https://www.google.com/search?q="+plusQuery(target),
			fmt.Sprintf("%s on Google", target),
		)
	}
	if site, ok := intent.MatchWebsite(target); ok {
		return openURL(fmt.Sprintf("Opening %s", title(site.Name)), site.URL, title(site.Name))
	}
	return model.CommandResponse{
		Response: fmt.Sprintf("Opening %s", target),
		Action:   model.ActionOpenApp,
		Data:     map[string]any{"app_name": title(target)},
	}
}

func openURL(response, url, description string) model.CommandResponse {
	return model.CommandResponse{
		Response: response,
		Action:   model.ActionOpenURL,
		Data:     map[string]any{"url": url, "description": description},
	}
}

func plusQuery(s string) string {
	return strings.ReplaceAll(s, " ", "+")
}

func percentQuery(s string) string {
	return strings.ReplaceAll(s, " ", "%20")
}

// title upper-cases the first letter of each space-separated word.
func title(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}
