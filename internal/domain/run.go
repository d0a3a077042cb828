package domain

// RunKind 自动化任务类型
type RunKind string

const (
	RunKindBid    RunKind = "BID"    // 按目标排名调价
	RunKindLevel  RunKind = "LEVEL"  // 统一出价
	RunKindExpand RunKind = "EXPAND" // 瀑布式关键词扩展
	RunKindClone  RunKind = "CLONE"  // 复制素材到多个广告组
)

// RunState 任务状态
type RunState string

const (
	RunStateIdle     RunState = "IDLE"
	RunStateRunning  RunState = "RUNNING"
	RunStateCooling  RunState = "COOLING" // 两个周期之间的等待
	RunStateStopped  RunState = "STOPPED"
	RunStateFinished RunState = "FINISHED"
)

func (s RunState) Terminal() bool {
	return s == RunStateStopped || s == RunStateFinished
}

// Run 一次任务执行的记录
type Run struct {
	ID      uint64
	Kind    RunKind
	State   RunState
	Success int
	Failure int
	Error   string
	Ctime   int64
	Utime   int64
}
