package usecase

const (
	defaultMaxCommandLength = 1000

	// contextTurns bounds the conversation window sent with generative
	// fallback prompts.
	contextTurns = 6

	systemPrompt = "You are Ballsy, a helpful voice assistant. Always provide a single sentence answer, keeping responses brief, concise, and to the point."

	greetingResponse   = "Hi there! I'm Ballsy, your voice assistant. How can I help?"
	identityResponse   = "I'm Ballsy, your personal voice assistant!"
	statusResponse     = "I'm doing great! Ready to help you with anything you need!"
	exitResponse       = "Goodbye! Take care!"
	validationResponse = "I didn't catch that. Could you please repeat?"
	rateLimitResponse  = "Too many requests. Please wait a moment and try again."
	apologyResponse    = "Sorry, I had an error processing that request."
)

// Generation settings per prompt kind.
const (
	infoTemperature = 0.3
	infoMaxTokens   = 100

	fallbackTemperature = 0.5
	fallbackMaxTokens   = 75
)

// uncertainPhrases flag a generative reply as a non-answer; the executor
// then degrades to a search action instead of relaying the hedge.
var uncertainPhrases = []string{
	"don't know", "not familiar", "can't find",
	"don't have information", "not sure",
	"unable to provide", "no information",
	"beyond my knowledge", "not available",
	"hello", "hi there", "what about", "it seems",
	"i don't have specific", "i don't have enough",
}
