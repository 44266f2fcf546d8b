package conf

type Bootstrap struct {
	Server    *Server    `json:"server"`
	Snapshot  *Snapshot  `json:"snapshot"`
	Dashboard *Dashboard `json:"dashboard"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Snapshot 快照来源配置
type Snapshot struct {
	// BaseUrl 页面所在地址，Path 相对它解析
	BaseUrl   string  `json:"base_url"`
	Path      string  `json:"path"`
	Timeout   string  `json:"timeout"`
	Qps       float64 `json:"qps"`
	Burst     int32   `json:"burst"`
	UserAgent string  `json:"user_agent"`
}

// Dashboard 渲染相关配置
type Dashboard struct {
	// Strict 开发模式，渲染目标缺失时直接报错
	Strict        bool              `json:"strict"`
	TopN          int32             `json:"top_n"`
	Categories    map[string]string `json:"categories"`
	FallbackStyle string            `json:"fallback_style"`
	Palette       []string          `json:"palette"`
	Targets       []string          `json:"targets"`
	Ranking       *Ranking          `json:"ranking"`
}

type Ranking struct {
	SortByScore bool `json:"sort_by_score"`
}
