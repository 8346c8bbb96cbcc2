package model

// Action tells the client what to do alongside speaking the response.
type Action string

const (
	ActionExit    Action = "exit"
	ActionOpenURL Action = "open_url"
	ActionOpenApp Action = "open_app"
	ActionSearch  Action = "search"
)

// CommandResponse is the structured result of processing one command.
// Response is always present and non-empty. Action and Data travel together,
// except ActionExit which carries no data.
type CommandResponse struct {
	Response    string         `json:"response"`
	Action      Action         `json:"action,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	AudioBase64 string         `json:"audio_base64,omitempty"`
}
