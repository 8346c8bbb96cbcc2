package intent

// Type is the classified category of a user command.
type Type string

const (
	TypeGreeting         Type = "greeting"
	TypeIdentity         Type = "identity"
	TypeStatus           Type = "status"
	TypeExit             Type = "exit"
	TypeInfoQuery        Type = "info_query"
	TypeMathContinuation Type = "math_continuation"
	TypeMathExpression   Type = "math_expression"
	TypeSiteSearch       Type = "site_search"
	TypeDirections       Type = "directions"
	TypeNewsQuery        Type = "news_query"
	TypeEmailOpen        Type = "email_open"
	TypeStreamingOpen    Type = "streaming_open"
	TypeGenericOpen      Type = "generic_open"
	TypeTimeQuery        Type = "time_query"
	TypeDateQuery        Type = "date_query"
	TypeFallback         Type = "fallback"
)

// Intent is a classified command plus the parameters the executor needs to
// act without re-parsing the input. Only the fields relevant to Type are set.
type Intent struct {
	Type Type

	// InfoQuery
	Subject  string
	IsPerson bool

	// Math
	Expression string

	// Site search / streaming / email
	Service  string
	Query    string
	Provider string

	// Directions
	Destination string
	Origin      string

	// News
	Topic string

	// Generic open
	Target    string
	ViaGoogle bool

	// Fallback
	Raw string
}
