package data

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSnapshotPath 快照相对页面的默认地址
const DefaultSnapshotPath = "data.json"

// LocalDiskWarningText 页面从本地磁盘打开时给用户的提示
const LocalDiskWarningText = "提示：由于浏览器的安全策略（CORS），直接双击打开本地 HTML 文件无法加载 JSON 数据。" +
	"请使用本地服务器运行（例如：python3 -m http.server），或者部署到 GitHub Pages/Vercel 后查看。"

// LocalDiskWarning 页面处于 file: 上下文时返回提示，否则返回空串
func LocalDiskWarning(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	if strings.EqualFold(u.Scheme, "file") {
		return LocalDiskWarningText
	}
	return ""
}

// ResolveLocation 把快照路径按页面地址解析成完整地址
func ResolveLocation(pageURL, path string) (string, error) {
	if path == "" {
		path = DefaultSnapshotPath
	}
	// 没有页面地址时路径可能是本地文件，不做 URL 转义
	if pageURL == "" {
		return path, nil
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot path %q: %w", path, err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", pageURL, err)
	}
	return base.ResolveReference(ref).String(), nil
}
