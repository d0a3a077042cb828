package plan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePlan = `
bid:
  loop: true
  intervalMinutes: 10
  since: "2025-03-01"
  until: "2025-03-07"
  defaults:
    targetRank: 3
    bidStep: 100
    maxBid: 5000
    minBid: 70
    probeLimit: 1000
    minImpressions: 10
  targets:
    - adGroupId: grp-1
      name: shoes
    - adGroupId: grp-2
      targetRank: 1
      maxBid: 9000
level:
  campaignId: cmp-1
  bid: 300
expand:
  campaignId: cmp-1
  mapping: |
    Shoes(Gangnam,Mapo)
  keywords: boots, sneakers
  options:
    locationFirst: true
clone:
  source: grp-1
  targets:
    - grp-3
    - grp-4
`

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Bid)
	require.NotNil(t, f.Level)
	require.NotNil(t, f.Expand)
	assert.Equal(t, LevelPlan{CampaignID: "cmp-1", Bid: 300}, *f.Level)
	assert.True(t, f.Expand.Options.LocationFirst)
	assert.Equal(t, ClonePlan{Source: "grp-1", Targets: []string{"grp-3", "grp-4"}}, *f.Clone)

	targets, err := f.Bid.BidTargets()
	require.NoError(t, err)
	assert.Equal(t, []domain.BidTarget{
		{AdGroupID: "grp-1", Name: "shoes", Row: 0, Config: domain.BidConfig{TargetRank: 3, BidStep: 100, MaxBid: 5000, MinBid: 70, ProbeLimit: 1000, MinImpressions: 10}},
		{AdGroupID: "grp-2", Name: "grp-2", Row: 1, Config: domain.BidConfig{TargetRank: 1, BidStep: 100, MaxBid: 9000, MinBid: 70, ProbeLimit: 1000, MinImpressions: 10}},
	}, targets)

	opts, err := f.Bid.Options()
	require.NoError(t, err)
	assert.True(t, opts.Loop)
	assert.Equal(t, 10*time.Minute, opts.Interval)
	assert.Equal(t, 7, opts.DateRange.Until.Day())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		data string
	}{
		{name: "空计划", data: "{}"},
		{name: "未知字段", data: "bids: {}"},
		{name: "格式错误", data: "bid: ["},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.data))
			assert.ErrorIs(t, err, errs.ErrInvalidParameter)
		})
	}
}

func TestBidPlan_Invalid(t *testing.T) {
	t.Parallel()
	_, err := BidPlan{Targets: []BidTarget{{AdGroupID: "grp-1"}}}.BidTargets()
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = BidPlan{}.BidTargets()
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = BidPlan{Loop: true}.Options()
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = BidPlan{Since: "2025-03-07", Until: "2025-03-01"}.Options()
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
