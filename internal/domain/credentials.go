package domain

// Credentials 广告 API 凭证，创建后不可变，每个任务持有一份快照
type Credentials struct {
	AccessKey  string // API Key
	SecretKey  string // 签名密钥
	CustomerID string // 广告主账号ID
}

// Valid 三个字段都必须存在
func (c Credentials) Valid() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.CustomerID != ""
}

// Masked 日志里只允许出现脱敏后的 AccessKey
func (c Credentials) Masked() string {
	const keep = 4
	if len(c.AccessKey) <= keep {
		return "****"
	}
	return c.AccessKey[:keep] + "****"
}
