package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
)

// Sign 签名原文为 "{毫秒时间戳}.{METHOD}.{path}"，path 不包含查询参数
func Sign(secret string, timestamp int64, method, path string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10) + "." + strings.ToUpper(method) + "." + stripQuery(path)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
