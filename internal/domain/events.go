package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventNewInfection      EventKind = "new_infection"
	EventPotentialOutbreak EventKind = "potential_outbreak"
	EventProximityAlert    EventKind = "proximity_alert"
)

// Event is one outbound notification. Fields not used by a kind stay zero.
type Event struct {
	Kind             EventKind `json:"kind"`
	Identity         Identity  `json:"identity,omitempty"`
	Location         string    `json:"location"`
	OutbreakLocation string    `json:"outbreak_location,omitempty"`
	Count            uint64    `json:"count,omitempty"`
	DistanceMeters   uint64    `json:"distance_m,omitempty"`
	Timestamp        int64     `json:"timestamp,omitempty"`
}

func NewInfection(identity Identity, location string, ts int64) Event {
	return Event{Kind: EventNewInfection, Identity: identity, Location: location, Timestamp: ts}
}

func PotentialOutbreak(location string, count uint64, ts int64) Event {
	return Event{Kind: EventPotentialOutbreak, Location: location, Count: count, Timestamp: ts}
}

func ProximityAlert(identity Identity, userLocation, outbreakLocation string, distance uint64) Event {
	return Event{
		Kind:             EventProximityAlert,
		Identity:         identity,
		Location:         userLocation,
		OutbreakLocation: outbreakLocation,
		DistanceMeters:   distance,
	}
}

// MarshalJSON keeps distance_m on proximity alerts even when the user
// stands on the outbreak location.
func (ev Event) MarshalJSON() ([]byte, error) {
	type plain Event
	if ev.Kind != EventProximityAlert {
		return json.Marshal(plain(ev))
	}
	return json.Marshal(struct {
		plain
		DistanceMeters uint64 `json:"distance_m"`
	}{plain: plain(ev), DistanceMeters: ev.DistanceMeters})
}

// Notification is the envelope handed to delivery sinks.
type Notification struct {
	ID          uuid.UUID `json:"id"`
	Event       Event     `json:"event"`
	PublishedAt time.Time `json:"published_at"`
}
