package model

type Room struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ImagePath string  `json:"image_path,omitempty"`
	Things    []Thing `json:"things,omitempty"`
}

// RoomList is the envelope returned by GET rooms.
type RoomList struct {
	Rooms []Room `json:"rooms"`
}
