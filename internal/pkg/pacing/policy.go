package pacing

import (
	"context"
	"time"
)

// Policy 调用广告 API 时的节奏控制。
// 上游对每秒请求数限制很严格，这里的间隔都可以调整，不代表上游的真实限额
type Policy struct {
	// 批量大小
	StatsChunk int `yaml:"statsChunk"` // 每次统计查询的关键词数
	WriteChunk int `yaml:"writeChunk"` // 每次批量写入的条数

	// 调价
	StatsPause      time.Duration `yaml:"statsPause"`      // 统计查询批次之间
	GroupPause      time.Duration `yaml:"groupPause"`      // 逐个广告组查询之间
	BidFlushPause   time.Duration `yaml:"bidFlushPause"`   // 每次提交出价之后
	LevelFlushPause time.Duration `yaml:"levelFlushPause"` // 统一出价每批之间
	CycleSlice      time.Duration `yaml:"cycleSlice"`      // 周期等待的切片

	// 关键词注册
	CreateChunkPause   time.Duration `yaml:"createChunkPause"`   // 批量创建关键词的分片之间
	CapacityPause      time.Duration `yaml:"capacityPause"`      // 容量检查之前
	RegisterPause      time.Duration `yaml:"registerPause"`      // 提交注册之前
	ReadRetryPause     time.Duration `yaml:"readRetryPause"`     // 读取失败之后
	SearchPause        time.Duration `yaml:"searchPause"`        // 查找后继广告组之前
	CreateGroupPause   time.Duration `yaml:"createGroupPause"`   // 创建后继广告组之前
	NameCollisionPause time.Duration `yaml:"nameCollisionPause"` // 名称冲突之后
	RateLimitPause     time.Duration `yaml:"rateLimitPause"`     // 被上游限流之后
	ClonePause         time.Duration `yaml:"clonePause"`         // 复制素材的每次调用之间

	// 网关
	LimitedWait time.Duration `yaml:"limitedWait"` // 本地限流器拒绝之后

	// 瀑布扩展的上限
	KeywordCapacity  int `yaml:"keywordCapacity"`
	ExpandOuterLimit int `yaml:"expandOuterLimit"`
	ExpandInnerLimit int `yaml:"expandInnerLimit"`
}

func DefaultPolicy() Policy {
	return Policy{
		StatsChunk:         50,
		WriteChunk:         100,
		StatsPause:         50 * time.Millisecond,
		GroupPause:         200 * time.Millisecond,
		BidFlushPause:      2 * time.Second,
		LevelFlushPause:    500 * time.Millisecond,
		CycleSlice:         time.Second,
		CreateChunkPause:   200 * time.Millisecond,
		CapacityPause:      500 * time.Millisecond,
		RegisterPause:      time.Second,
		ReadRetryPause:     2 * time.Second,
		SearchPause:        500 * time.Millisecond,
		CreateGroupPause:   time.Second,
		NameCollisionPause: time.Second,
		RateLimitPause:     5 * time.Second,
		ClonePause:         time.Second,
		LimitedWait:        100 * time.Millisecond,
		KeywordCapacity:    1000,
		ExpandOuterLimit:   50,
		ExpandInnerLimit:   100,
	}
}

// Scaled 按比例缩放所有间隔，批量大小和上限不变。factor 为 0 时所有间隔都变成 0
func (p Policy) Scaled(factor float64) Policy {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	p.StatsPause = scale(p.StatsPause)
	p.GroupPause = scale(p.GroupPause)
	p.BidFlushPause = scale(p.BidFlushPause)
	p.LevelFlushPause = scale(p.LevelFlushPause)
	p.CycleSlice = scale(p.CycleSlice)
	p.CreateChunkPause = scale(p.CreateChunkPause)
	p.CapacityPause = scale(p.CapacityPause)
	p.RegisterPause = scale(p.RegisterPause)
	p.ReadRetryPause = scale(p.ReadRetryPause)
	p.SearchPause = scale(p.SearchPause)
	p.CreateGroupPause = scale(p.CreateGroupPause)
	p.NameCollisionPause = scale(p.NameCollisionPause)
	p.RateLimitPause = scale(p.RateLimitPause)
	p.ClonePause = scale(p.ClonePause)
	p.LimitedWait = scale(p.LimitedWait)
	return p
}

// Sleep 可以被 ctx 打断的等待，所有的节奏控制都走这里
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Chunk 按 size 切分，size 不合法的时候不切分
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{items}
	}
	res := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		res = append(res, items[start:end])
	}
	return res
}
