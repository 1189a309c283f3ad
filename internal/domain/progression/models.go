package progression

import (
	"bytes"
	"encoding/json"
)

// Progression is the singleton game-state summary. Each key holds whatever
// JSON value was last written to it; values are not type checked.
type Progression struct {
	Wins          json.RawMessage `json:"wins"`
	Losses        json.RawMessage `json:"losses"`
	StagesCleared json.RawMessage `json:"stages_cleared"`
	Achievements  json.RawMessage `json:"achievements"`
}

var (
	defaultCount        = json.RawMessage(`0`)
	defaultAchievements = json.RawMessage(`[]`)
)

// Default returns zero counters and an empty achievements list.
func Default() Progression {
	return Progression{
		Wins:          clone(defaultCount),
		Losses:        clone(defaultCount),
		StagesCleared: clone(defaultCount),
		Achievements:  clone(defaultAchievements),
	}
}

// Patch carries the keys present in an update request. An empty value means absent;
// an explicit null is a value like any other.
type Patch struct {
	Wins          json.RawMessage `json:"wins"`
	Losses        json.RawMessage `json:"losses"`
	StagesCleared json.RawMessage `json:"stages_cleared"`
	Achievements  json.RawMessage `json:"achievements"`
}

// Apply replaces each key present in patch wholesale.
func (p Progression) Apply(patch Patch) Progression {
	if len(patch.Wins) > 0 {
		p.Wins = clone(patch.Wins)
	}
	if len(patch.Losses) > 0 {
		p.Losses = clone(patch.Losses)
	}
	if len(patch.StagesCleared) > 0 {
		p.StagesCleared = clone(patch.StagesCleared)
	}
	if len(patch.Achievements) > 0 {
		p.Achievements = clone(patch.Achievements)
	}
	return p.Normalize()
}

// Normalize fills keys missing from a stored document with their defaults and
// compacts every value so documents compare equal regardless of indentation.
func (p Progression) Normalize() Progression {
	p.Wins = normalizeValue(p.Wins, defaultCount)
	p.Losses = normalizeValue(p.Losses, defaultCount)
	p.StagesCleared = normalizeValue(p.StagesCleared, defaultCount)
	p.Achievements = normalizeValue(p.Achievements, defaultAchievements)
	return p
}

func normalizeValue(raw, def json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return clone(def)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return clone(raw)
	}
	return buf.Bytes()
}

func clone(raw json.RawMessage) json.RawMessage {
	return append(json.RawMessage(nil), raw...)
}
