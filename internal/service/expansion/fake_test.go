package expansion

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gitee.com/flycash/searchad-automation/internal/domain"
	"gitee.com/flycash/searchad-automation/internal/service/asset"
	"gitee.com/flycash/searchad-automation/internal/service/gateway"
	"gitee.com/flycash/searchad-automation/internal/service/searchad"
)

var _ searchad.Client = (*fakeAPI)(nil)

// fakeAPI 内存版的广告 API，记录每个广告组收到的注册请求
type fakeAPI struct {
	mu         sync.Mutex
	capacity   int
	groups     []domain.AdGroup
	keywords   map[string][]domain.Keyword
	seq        int
	groupSeq   int
	violations []string

	createCalls      map[string][][]string
	createGroupCalls []string
	// 返回非 nil 时创建广告组失败
	createGroupErr func(name string, attempt int) error
	// 搜索时看不到任何后继广告组
	hideGroups bool
	// 上游静默拒绝的关键词
	rejected map[string]bool
	// 查询关键词失败的次数
	listFailures int
	getGroupErr  error
}

func newFakeAPI(groups ...domain.AdGroup) *fakeAPI {
	return &fakeAPI{
		capacity:    domain.KeywordCapacity,
		groups:      groups,
		keywords:    make(map[string][]domain.Keyword),
		createCalls: make(map[string][][]string),
		rejected:    make(map[string]bool),
	}
}

func (f *fakeAPI) fill(groupID string, n int) {
	for i := 0; i < n; i++ {
		f.keywords[groupID] = append(f.keywords[groupID], domain.Keyword{
			ID: fmt.Sprintf("%s-seed-%d", groupID, i), AdGroupID: groupID, Text: fmt.Sprintf("SEED%d", i),
		})
	}
}

func (f *fakeAPI) GetAdGroup(_ context.Context, id string) (domain.AdGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getGroupErr != nil {
		return domain.AdGroup{}, f.getGroupErr
	}
	for _, g := range f.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.AdGroup{}, &gateway.APIError{Kind: gateway.KindRemote, Code: 404}
}

func (f *fakeAPI) ListAdGroups(_ context.Context, campaignID string) ([]domain.AdGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideGroups {
		return nil, nil
	}
	var res []domain.AdGroup
	for _, g := range f.groups {
		if g.CampaignID == campaignID {
			res = append(res, g)
		}
	}
	return res, nil
}

func (f *fakeAPI) CreateAdGroup(_ context.Context, group domain.AdGroup) (domain.AdGroup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createGroupCalls = append(f.createGroupCalls, group.Name)
	if f.createGroupErr != nil {
		if err := f.createGroupErr(group.Name, len(f.createGroupCalls)); err != nil {
			return domain.AdGroup{}, err
		}
	}
	f.groupSeq++
	group.ID = fmt.Sprintf("grp-new-%d", f.groupSeq)
	f.groups = append(f.groups, group)
	return group, nil
}

func (f *fakeAPI) ListKeywords(_ context.Context, adGroupID string) ([]domain.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listFailures > 0 {
		f.listFailures--
		return nil, &gateway.APIError{Kind: gateway.KindTransport, Code: gateway.CodeTransport}
	}
	res := make([]domain.Keyword, len(f.keywords[adGroupID]))
	copy(res, f.keywords[adGroupID])
	return res, nil
}

func (f *fakeAPI) CreateKeywords(_ context.Context, adGroupID string, texts []string) ([]domain.Keyword, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls[adGroupID] = append(f.createCalls[adGroupID], texts)
	if len(f.keywords[adGroupID])+len(texts) > f.capacity {
		f.violations = append(f.violations, fmt.Sprintf("%s: %d + %d", adGroupID, len(f.keywords[adGroupID]), len(texts)))
	}
	var created []domain.Keyword
	for _, text := range texts {
		if f.rejected[strings.ToUpper(text)] {
			continue
		}
		f.seq++
		kw := domain.Keyword{ID: fmt.Sprintf("nkw-%d", f.seq), AdGroupID: adGroupID, Text: text, BidAmount: 70}
		f.keywords[adGroupID] = append(f.keywords[adGroupID], kw)
		created = append(created, kw)
	}
	return created, nil
}

func (f *fakeAPI) ListCampaigns(context.Context) ([]domain.Campaign, error) { return nil, nil }

func (f *fakeAPI) UpdateBids(context.Context, []domain.Keyword) error { return nil }

func (f *fakeAPI) GetStats(context.Context, []string, domain.DateRange) (map[string]domain.KeywordStat, error) {
	return nil, nil
}

func (f *fakeAPI) ListAds(context.Context, string) ([]domain.Ad, error) { return nil, nil }

func (f *fakeAPI) CreateAd(context.Context, domain.Ad) error { return nil }

func (f *fakeAPI) ListExtensions(context.Context, string) ([]domain.Extension, error) {
	return nil, nil
}

func (f *fakeAPI) CreateExtension(context.Context, domain.Extension) error { return nil }

func (f *fakeAPI) ListChannels(context.Context) ([]domain.Channel, error) { return nil, nil }

type cloneCall struct {
	src, dst string
}

type fakeCloner struct {
	calls []cloneCall
}

func (f *fakeCloner) Clone(_ context.Context, src, dst string) (asset.Report, error) {
	f.calls = append(f.calls, cloneCall{src: src, dst: dst})
	return asset.Report{}, nil
}
