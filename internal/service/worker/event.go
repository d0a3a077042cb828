package worker

import (
	"gitee.com/flycash/searchad-automation/internal/domain"
)

// EventType 任务事件类型
type EventType string

const (
	EventTypeProgress  EventType = "progress"
	EventTypeLog       EventType = "log"
	EventTypeRowStatus EventType = "row_status"
	EventTypeStatus    EventType = "status"
	EventTypeBidChange EventType = "bid_change"
	EventTypeResult    EventType = "result"
	EventTypeState     EventType = "state"
)

// Event 任务通过事件向外汇报进度，界面和测试都只消费事件
type Event interface {
	Type() EventType
}

// Progress 已处理数量 / 总数
type Progress struct {
	Processed int `json:"processed"`
	Total     int `json:"total"`
}

func (Progress) Type() EventType { return EventTypeProgress }

// Log 某一行任务的状态日志
type Log struct {
	Row     int               `json:"row"`
	Tag     domain.TaskStatus `json:"tag"`
	Message string            `json:"message"`
}

func (Log) Type() EventType { return EventTypeLog }

// RowState 调价目标所在行的状态
type RowState string

const (
	RowStateRunning RowState = "RUNNING"
	RowStateWaiting RowState = "WAITING"
)

type RowStatus struct {
	Row    int      `json:"row"`
	Status RowState `json:"status"`
}

func (RowStatus) Type() EventType { return EventTypeRowStatus }

// Status 任务整体的提示文本
type Status struct {
	Text string `json:"text"`
}

func (Status) Type() EventType { return EventTypeStatus }

type BidChange struct {
	domain.BidChange
}

func (BidChange) Type() EventType { return EventTypeBidChange }

// Result 终态事件，每个任务有且只有一个，之后事件通道关闭
type Result struct {
	Success int    `json:"success"`
	Failure int    `json:"failure"`
	Error   string `json:"error,omitempty"`
}

func (Result) Type() EventType { return EventTypeResult }

type StateChange struct {
	State domain.RunState `json:"state"`
}

func (StateChange) Type() EventType { return EventTypeState }

// Sink 任务往这里写事件，不允许阻塞任务太久
type Sink interface {
	Emit(evt Event)
}

type SinkFunc func(evt Event)

func (f SinkFunc) Emit(evt Event) {
	f(evt)
}
