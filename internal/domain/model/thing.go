package model

type ThingType string

const (
	ThingTypeLamp   ThingType = "lamp"
	ThingTypeDimmer ThingType = "dimmer"
	ThingTypeDoor   ThingType = "door"
	ThingTypeCustom ThingType = "custom"
)

// ThingState is the raw state object reported by the server, e.g.
// {"is_active": true, "brightness": 80}.
type ThingState map[string]interface{}

type Thing struct {
	ID           string     `json:"id"`
	Type         ThingType  `json:"type"`
	Placement    string     `json:"placement"` // Room ID
	FriendlyName string     `json:"friendly_name,omitempty"`
	State        ThingState `json:"state,omitempty"`
}

// ThingList is the envelope returned by GET things.
type ThingList struct {
	Things []Thing `json:"things"`
}

func (s ThingState) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// Number returns a numeric attribute. JSON numbers decode as float64, but
// states built in code may carry ints.
func (s ThingState) Number(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	}
	return 0, false
}
