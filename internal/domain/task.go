package domain

// RegistrationTask 关键词注册任务，入队之后只有终态会变化
type RegistrationTask struct {
	OriginAdGroupID string
	Keyword         string
	Row             int
}

// TaskStatus 注册任务在执行过程中的状态标签
type TaskStatus string

const (
	TaskStatusSucceeded   TaskStatus = "SUCCEEDED"    // 注册成功
	TaskStatusFailed      TaskStatus = "FAILED"       // 注册失败
	TaskStatusSkipped     TaskStatus = "SKIPPED"      // 已存在，跳过
	TaskStatusWaiting     TaskStatus = "WAITING"      // 等待重试
	TaskStatusMoving      TaskStatus = "MOVING"       // 正在查找后继广告组
	TaskStatusSwitched    TaskStatus = "SWITCHED"     // 切换到已有的后继广告组
	TaskStatusCreated     TaskStatus = "CREATED"      // 新建后继广告组
	TaskStatusRetrying    TaskStatus = "RETRYING"     // 名称冲突，重新查找
	TaskStatusExpandError TaskStatus = "EXPAND_ERROR" // 创建后继广告组失败
	TaskStatusAborted     TaskStatus = "ABORTED"      // 超过循环上限
)

func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskStatusSucceeded, TaskStatusFailed, TaskStatusSkipped, TaskStatusAborted:
		return true
	default:
		return false
	}
}
