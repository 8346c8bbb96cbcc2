package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"voice-assistant-backend/internal/model"
	"voice-assistant-backend/internal/session"
	"voice-assistant-backend/pkg/gemini"
)

var sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s`)

// answerInfo resolves a who-is/what-is question through the generative
// collaborator. Hedged or failed replies degrade to a search action so the
// user always gets something actionable.
func (uc *implUseCase) answerInfo(ctx context.Context, sess *session.Session, subject string, isPerson bool) model.CommandResponse {
	var prompt string
	if isPerson {
		prompt = fmt.Sprintf("Who is %s? Provide a brief, factual sentence about this person.", subject)
	} else {
		prompt = fmt.Sprintf("Answer this briefly in one sentence: %s", subject)
	}

	reply, err := uc.llm.GenerateReply(ctx, gemini.ReplyRequest{
		Prompt:       prompt,
		History:      conversationContext(sess),
		SystemPrompt: systemPrompt,
		Temperature:  infoTemperature,
		MaxTokens:    infoMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.answerInfo: %v", err)
		query := subject
		if isPerson {
			query = fmt.Sprintf("who is %s person", subject)
		}
		return searchAction("Let me search for that", query)
	}

	reply = strings.TrimSpace(reply)
	if isUncertain(reply, isPerson) {
		if isPerson {
			return searchAction(
				fmt.Sprintf("Let me find information about %s", subject),
				fmt.Sprintf("who is %s person biography", subject),
			)
		}
		return searchAction(fmt.Sprintf("Let me search for information about %s", subject), subject)
	}
	return model.CommandResponse{Response: reply}
}

// answerFallback handles anything the deterministic rules did not claim.
// Replies are clipped to their first sentence to keep the spoken answer
// short.
func (uc *implUseCase) answerFallback(ctx context.Context, sess *session.Session, text string) model.CommandResponse {
	reply, err := uc.llm.GenerateReply(ctx, gemini.ReplyRequest{
		Prompt:       fmt.Sprintf("Answer this in a single concise sentence: %s", text),
		History:      conversationContext(sess),
		SystemPrompt: systemPrompt,
		Temperature:  fallbackTemperature,
		MaxTokens:    fallbackMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.answerFallback: %v", err)
		return searchAction("Let me search for that", text)
	}

	reply = firstSentence(strings.TrimSpace(reply))
	if isUncertain(reply, false) {
		return searchAction(fmt.Sprintf("Let me search for information about %s", text), text)
	}
	return model.CommandResponse{Response: reply}
}

// conversationContext returns the most recent turns, oldest first, as
// collaborator messages. The just-appended user turn is part of the window.
func conversationContext(sess *session.Session) []gemini.Message {
	turns := sess.RecentTurns(contextTurns)
	msgs := make([]gemini.Message, 0, len(turns))
	for _, t := range turns {
		msgs = append(msgs, gemini.Message{Role: string(t.Role), Content: t.Content})
	}
	return msgs
}

// isUncertain reports whether a reply reads as a non-answer. Person queries
// apply stricter checks: very short replies, counter-questions and offers
// to help are all treated as "the model doesn't know".
func isUncertain(reply string, isPerson bool) bool {
	lower := strings.ToLower(reply)
	for _, phrase := range uncertainPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if isPerson {
		if len(strings.Fields(reply)) < 4 {
			return true
		}
		if strings.HasSuffix(reply, "?") {
			return true
		}
		if strings.Contains(lower, "would you like") {
			return true
		}
	}
	return false
}

// firstSentence clips text at the first sentence boundary (punctuation
// followed by whitespace).
func firstSentence(text string) string {
	if loc := sentenceBoundaryRe.FindStringIndex(text); loc != nil {
		return text[:loc[0]+1]
	}
	return text
}

func searchAction(response, query string) model.CommandResponse {
	return model.CommandResponse{
		Response: response,
		Action:   model.ActionSearch,
		Data:     map[string]any{"query": query},
	}
}
