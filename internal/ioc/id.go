package ioc

import (
	"errors"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	type Config struct {
		MachineID uint16 `yaml:"machineId"`
		StartTime string `yaml:"startTime"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("worker.id", &cfg); err != nil {
		panic(err)
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if cfg.StartTime != "" {
		t, err := time.Parse(time.DateOnly, cfg.StartTime)
		if err != nil {
			panic(err)
		}
		start = t
	}
	settings := sonyflake.Settings{StartTime: start}
	if cfg.MachineID != 0 {
		settings.MachineID = func() (uint16, error) {
			return cfg.MachineID, nil
		}
	}
	sf := sonyflake.NewSonyflake(settings)
	if sf == nil {
		panic(errors.New("初始化 ID 生成器失败"))
	}
	return sf
}
