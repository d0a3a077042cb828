package run

import (
	"encoding/json"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

const EventTopic = "searchad_run_events"

// RunEvent 任务事件的对外格式，Payload 是具体事件的 JSON
type RunEvent struct {
	RunID   uint64          `json:"runId,string"`
	Kind    domain.RunKind  `json:"kind"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Time    int64           `json:"time"`
}
