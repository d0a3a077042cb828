package expansion

import (
	"regexp"
	"strings"

	"gitee.com/flycash/searchad-automation/internal/domain"
)

var (
	mappingPattern  = regexp.MustCompile(`^([^(]+)(?:\(([^)]+)\))?$`)
	keywordSplitter = regexp.MustCompile(`[,\n]+`)
)

// PlanOptions 关键词组合方式，至少要选一种
type PlanOptions struct {
	LocationFirst bool `json:"locationFirst" yaml:"locationFirst"` // 地区+关键词
	KeywordFirst  bool `json:"keywordFirst" yaml:"keywordFirst"`   // 关键词+地区
	KeywordOnly   bool `json:"keywordOnly" yaml:"keywordOnly"`     // 只有关键词
}

// PlannedTask 带着广告组名称，方便界面展示
type PlannedTask struct {
	domain.RegistrationTask
	GroupName string `json:"groupName"`
}

type PlanResult struct {
	Tasks []PlannedTask `json:"tasks"`
	// Unmatched 找不到对应广告组的名称
	Unmatched []string `json:"unmatched"`
}

// RegistrationTasks 交给 Expander 的任务
func (r PlanResult) RegistrationTasks() []domain.RegistrationTask {
	res := make([]domain.RegistrationTask, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		res = append(res, t.RegistrationTask)
	}
	return res
}

// Plan 根据 "广告组名(地区1,地区2)" 形式的映射生成注册任务。
// groups 是广告组名称到ID的映射，名称已经去掉首尾空白
func Plan(mapping, keywords string, opts PlanOptions, groups map[string]string) PlanResult {
	kws := SplitKeywords(keywords)
	var res PlanResult
	seen := make(map[string]struct{})
	for _, line := range strings.Split(mapping, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := mappingPattern.FindStringSubmatch(line)
		if m == nil {
			res.Unmatched = append(res.Unmatched, line)
			continue
		}
		name := strings.TrimSpace(m[1])
		id, ok := groups[name]
		if !ok {
			res.Unmatched = append(res.Unmatched, name)
			continue
		}
		locations := splitList(m[2])
		if len(locations) == 0 {
			locations = []string{name}
		}
		for _, kw := range kws {
			for _, loc := range locations {
				for _, text := range combine(loc, kw, opts) {
					key := id + "\x00" + domain.NormalizeKeyword(text)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					res.Tasks = append(res.Tasks, PlannedTask{
						RegistrationTask: domain.RegistrationTask{
							OriginAdGroupID: id,
							Keyword:         text,
							Row:             len(res.Tasks),
						},
						GroupName: name,
					})
				}
			}
		}
	}
	return res
}

func combine(loc, kw string, opts PlanOptions) []string {
	var res []string
	if opts.LocationFirst {
		res = append(res, loc+kw)
	}
	if opts.KeywordFirst {
		res = append(res, kw+loc)
	}
	if opts.KeywordOnly {
		res = append(res, kw)
	}
	return res
}

// SplitKeywords 按逗号和换行切分
func SplitKeywords(text string) []string {
	var res []string
	for _, k := range keywordSplitter.Split(text, -1) {
		if k = strings.TrimSpace(k); k != "" {
			res = append(res, k)
		}
	}
	return res
}

func splitList(s string) []string {
	var res []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}
