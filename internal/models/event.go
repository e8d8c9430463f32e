package models

import "strings"

// EventType is a live-event token sent by the signage platform when something
// notable happens in the content feed (a touchdown, halftime, a goal). Tokens
// are upper-cased at the boundary; the selection logic only ever sees
// normalized members of this enumeration.
type EventType string

const (
	// Football
	EventTouchdown    EventType = "TOUCHDOWN"
	EventFieldGoal    EventType = "FIELD_GOAL"
	EventSafety       EventType = "SAFETY"
	EventInterception EventType = "INTERCEPTION"
	// Basketball
	EventThreePointer EventType = "THREE_POINTER"
	EventSlamDunk     EventType = "SLAM_DUNK"
	EventBuzzerBeater EventType = "BUZZER_BEATER"
	// Hockey / soccer
	EventGoal          EventType = "GOAL"
	EventPowerPlayGoal EventType = "POWER_PLAY_GOAL"
	EventSoccerGoal    EventType = "SOCCER_GOAL"
	EventPenaltyKick   EventType = "PENALTY_KICK"
	// Baseball
	EventHomeRun   EventType = "HOME_RUN"
	EventGrandSlam EventType = "GRAND_SLAM"
	EventStrikeout EventType = "STRIKEOUT"
	// Game flow
	EventHalftime        EventType = "HALFTIME"
	EventTimeout         EventType = "TIMEOUT"
	EventGameStart       EventType = "GAME_START"
	EventGameEnd         EventType = "GAME_END"
	EventCommercialBreak EventType = "COMMERCIAL_BREAK"
	EventGeneric         EventType = "GENERIC"
)

// ValidEventTypes lists every member of the event enumeration in a stable
// order, used for server info responses and boundary validation.
var ValidEventTypes = []EventType{
	EventTouchdown, EventFieldGoal, EventSafety, EventInterception,
	EventThreePointer, EventSlamDunk, EventBuzzerBeater,
	EventGoal, EventPowerPlayGoal, EventSoccerGoal, EventPenaltyKick,
	EventHomeRun, EventGrandSlam, EventStrikeout,
	EventHalftime, EventTimeout, EventGameStart, EventGameEnd,
	EventCommercialBreak, EventGeneric,
}

var eventTypeSet = func() map[EventType]struct{} {
	m := make(map[EventType]struct{}, len(ValidEventTypes))
	for _, e := range ValidEventTypes {
		m[e] = struct{}{}
	}
	return m
}()

// NormalizeEventType case-folds a raw event token and checks membership in
// the enumeration. Callers that require strict validation reject on ok=false;
// the selector itself treats any unrecognized event as GENERIC when scoring.
func NormalizeEventType(raw string) (EventType, bool) {
	e := EventType(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := eventTypeSet[e]
	return e, ok
}
