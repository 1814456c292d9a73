package entities

import "time"

// OpeningType distinguishes wall openings that deduct from paintable /
// coverable wall area.

type OpeningType string

const (
	OpeningDoor    OpeningType = "door"
	OpeningWindow  OpeningType = "window"
	OpeningMissing OpeningType = "missing_wall"
)

// Opening is a door/window/missing-wall segment on one of the four walls.

type Opening struct {
	Type     OpeningType `json:"type"`
	Wall     int         `json:"wall"` // 0-3
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Quantity int         `json:"quantity"`
}

// Room is the geometry snapshot measurements derive from.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Dimensions are in feet. A zero dimension means "not yet measured"; derived
// quantities fall back to the partial-geometry policy instead of failing.

type Room struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	RoomType    string    `json:"room_type"` // kitchen, bathroom, roof, ...
	ZoneType    string    `json:"zone_type"` // interior, exterior
	Length      float64   `json:"length"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Floor       string    `json:"floor"`
	CeilingType string    `json:"ceiling_type"`
	Openings    []Opening `json:"openings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r Room) IsRoof() bool {
	return r.RoomType == "roof"
}
