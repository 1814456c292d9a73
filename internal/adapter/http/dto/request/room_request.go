package request

import (
	"strings"

	"claimscope/internal/domain/entities"
)

type OpeningRequest struct {
	Type     string  `json:"type" binding:"required"`
	Wall     int     `json:"wall" binding:"min=0,max=3"`
	Width    float64 `json:"width" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Quantity int     `json:"quantity"`
}

// RoomRequest upserts a room's geometry snapshot. Partial dimensions are
// accepted; missing ones degrade derived quantities, they do not reject the
// request.
type RoomRequest struct {
	SessionID   string           `json:"session_id" binding:"required"`
	Name        string           `json:"name"`
	RoomType    string           `json:"room_type"`
	ZoneType    string           `json:"zone_type"`
	Length      float64          `json:"length"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Floor       string           `json:"floor"`
	CeilingType string           `json:"ceiling_type"`
	Openings    []OpeningRequest `json:"openings,omitempty"`
}

func (r RoomRequest) ToRoom(id string) entities.Room {
	room := entities.Room{
		ID:          strings.TrimSpace(id),
		SessionID:   strings.TrimSpace(r.SessionID),
		Name:        strings.TrimSpace(r.Name),
		RoomType:    strings.TrimSpace(r.RoomType),
		ZoneType:    strings.TrimSpace(r.ZoneType),
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		Floor:       r.Floor,
		CeilingType: r.CeilingType,
	}
	for _, o := range r.Openings {
		qty := o.Quantity
		if qty <= 0 {
			qty = 1
		}
		room.Openings = append(room.Openings, entities.Opening{
			Type:     entities.OpeningType(o.Type),
			Wall:     o.Wall,
			Width:    o.Width,
			Height:   o.Height,
			Quantity: qty,
		})
	}
	return room
}
