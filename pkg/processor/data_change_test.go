package processor

import (
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataChange_MarshalJSON(t *testing.T) {
	cases := []struct {
		name   string
		change DataChange
		want   string
	}{
		{
			name:   "add new key",
			change: DataChange{Action: ActionAdd, Key: "revenue", NewValue: 1000},
			want:   `{"action":"add","key":"revenue","old_value":null,"new_value":1000}`,
		},
		{
			name:   "overwrite",
			change: DataChange{Action: ActionAdd, Key: "expenses", OldValue: 300, NewValue: 350},
			want:   `{"action":"add","key":"expenses","old_value":300,"new_value":350}`,
		},
		{
			name:   "remove",
			change: DataChange{Action: ActionRemove, Key: "revenue", RemovedValue: 1000},
			want:   `{"action":"remove","key":"revenue","removed_value":1000}`,
		},
		{
			name:   "unknown action",
			change: DataChange{Action: "touch", Key: "revenue"},
			want:   `{"action":"touch","key":"revenue"}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := json.MarshalToString(c.change)
			require.NoError(t, err)
			assert.Equal(t, c.want, data)

			std, err := stdjson.Marshal(c.change)
			require.NoError(t, err)
			assert.JSONEq(t, c.want, string(std))
		})
	}
}
