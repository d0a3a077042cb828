package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

// AutomationRun 任务执行记录
type AutomationRun struct {
	ID      uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	Kind    string `gorm:"type:ENUM('BID','LEVEL','EXPAND','CLONE');NOT NULL;comment:'任务类型'"`
	State   string `gorm:"type:VARCHAR(16);NOT NULL;index:idx_state;comment:'RUNNING,COOLING,STOPPED,FINISHED'"`
	Success int    `gorm:"type:INT;NOT NULL;DEFAULT:0"`
	Failure int    `gorm:"type:INT;NOT NULL;DEFAULT:0"`
	Error   string `gorm:"type:VARCHAR(1024);comment:'任务级别的错误'"`
	Ctime   int64
	Utime   int64
}

func (AutomationRun) TableName() string {
	return "automation_runs"
}

// BidChange 出价变更流水，只追加
type BidChange struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	RunID     uint64  `gorm:"NOT NULL;index:idx_run_id;comment:'所属任务'"`
	AdGroupID string  `gorm:"type:VARCHAR(64);NOT NULL"`
	KeywordID string  `gorm:"type:VARCHAR(64);NOT NULL"`
	Keyword   string  `gorm:"type:VARCHAR(255)"`
	OldBid    int64   `gorm:"NOT NULL"`
	NewBid    int64   `gorm:"NOT NULL"`
	Rank      float64 `gorm:"comment:'调价时的平均排名'"`
	Reason    string  `gorm:"type:VARCHAR(64)"`
	Ctime     int64
}

func (BidChange) TableName() string {
	return "bid_changes"
}

type RunDAO interface {
	// Save 按 ID 插入或者更新状态和计数
	Save(ctx context.Context, run AutomationRun) error
	AddBidChanges(ctx context.Context, changes []BidChange) error
	List(ctx context.Context, offset, limit int) ([]AutomationRun, error)
	FindBidChanges(ctx context.Context, runID uint64, limit int) ([]BidChange, error)
}

type runDAO struct {
	db *egorm.Component
}

func NewRunDAO(db *egorm.Component) RunDAO {
	return &runDAO{db: db}
}

func (d *runDAO) Save(ctx context.Context, run AutomationRun) error {
	now := time.Now().UnixMilli()
	run.Utime = now
	if run.Ctime == 0 {
		run.Ctime = now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "success", "failure", "error", "utime"}),
	}).Create(&run).Error
}

func (d *runDAO) AddBidChanges(ctx context.Context, changes []BidChange) error {
	if len(changes) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range changes {
		if changes[i].Ctime == 0 {
			changes[i].Ctime = now
		}
	}
	return d.db.WithContext(ctx).Create(&changes).Error
}

func (d *runDAO) List(ctx context.Context, offset, limit int) ([]AutomationRun, error) {
	var res []AutomationRun
	err := d.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *runDAO) FindBidChanges(ctx context.Context, runID uint64, limit int) ([]BidChange, error) {
	var res []BidChange
	err := d.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
