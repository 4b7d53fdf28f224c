package processor

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// DataChange describes one mutation of a DataProcessor.
// OldValue and NewValue are set for ActionAdd, RemovedValue for ActionRemove.
type DataChange struct {
	Action       Action `json:"action"`
	Key          string `json:"key"`
	OldValue     any    `json:"old_value,omitempty"`
	NewValue     any    `json:"new_value,omitempty"`
	RemovedValue any    `json:"removed_value,omitempty"`
}

type addChange struct {
	Action   Action `json:"action"`
	Key      string `json:"key"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

type removeChange struct {
	Action       Action `json:"action"`
	Key          string `json:"key"`
	RemovedValue any    `json:"removed_value"`
}

// plainChange drops the MarshalJSON method of DataChange.
type plainChange DataChange

// MarshalJSON writes the fields of c.Action only; old_value is null for an add on a new key.
func (c DataChange) MarshalJSON() ([]byte, error) {
	switch c.Action {
	case ActionAdd:
		return json.Marshal(addChange{Action: c.Action, Key: c.Key, OldValue: c.OldValue, NewValue: c.NewValue})
	case ActionRemove:
		return json.Marshal(removeChange{Action: c.Action, Key: c.Key, RemovedValue: c.RemovedValue})
	default:
		return json.Marshal(plainChange(c))
	}
}

func (c DataChange) String() string {
	switch c.Action {
	case ActionAdd:
		return fmt.Sprintf("{action: %s, key: %s, old_value: %v, new_value: %v}", c.Action, c.Key, c.OldValue, c.NewValue)
	case ActionRemove:
		return fmt.Sprintf("{action: %s, key: %s, removed_value: %v}", c.Action, c.Key, c.RemovedValue)
	default:
		return fmt.Sprintf("{action: %s, key: %s}", c.Action, c.Key)
	}
}
