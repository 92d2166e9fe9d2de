package model

const (
	ActionToggle        = "toggle"
	ActionOn            = "on"
	ActionOff           = "off"
	ActionSetBrightness = "set_brightness"
	ActionOpen          = "open"
	ActionClose         = "close"
)

type ActionParams map[string]interface{}

type Body struct {
	Action string       `json:"action"`
	ID     string       `json:"id"`
	Params ActionParams `json:"params"`
}

// Message is the envelope POSTed to the messages endpoint. The server echoes
// it back once the action has been accepted.
type Message struct {
	Body Body `json:"body"`
}

func NewMessage(action, id string, params ActionParams) Message {
	if params == nil {
		params = ActionParams{}
	}
	return Message{Body: Body{Action: action, ID: id, Params: params}}
}
