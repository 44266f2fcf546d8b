package biz

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/conf"
	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

func TestFormatTraffic(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0+"},
		{1, "1+"},
		{9999, "9999+"},
		{10000, "1万+"},
		{19999, "1万+"},
		{20000, "2万+"},
		{2000000, "200万+"},
		{5049999, "504万+"},
		{-3, "0+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTraffic(tt.n), "n=%d", tt.n)
	}
}

func TestFormatTraffic_Property(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		n := r.Int63n(1 << 40)
		want := strconv.FormatInt(n, 10) + "+"
		if n >= 10000 {
			want = strconv.FormatInt(n/10000, 10) + "万+"
		}
		assert.Equal(t, want, FormatTraffic(n))
	}
}

func TestDisplayTraffic(t *testing.T) {
	assert.Equal(t, "3万+", DisplayTraffic(domain.NumericTraffic(30500)))
	assert.Equal(t, "200万+", DisplayTraffic(domain.TextTraffic("200万+")))
	assert.Equal(t, "", DisplayTraffic(domain.TextTraffic("")))
	assert.Equal(t, TrafficUnavailable, DisplayTraffic(domain.Traffic{}))
}

func TestClassify(t *testing.T) {
	n := NewNormalizer(nil, log.DefaultLogger)

	assert.Equal(t, StyleTech, n.Classify("科技/AI"))
	assert.Equal(t, StyleSports, n.Classify("体育"))
	assert.Equal(t, StyleFinance, n.Classify("金融/商业"))

	for _, cat := range []string{"", "其他", "娱乐/生活", "科技", "科技/ai", " 体育", "体育 "} {
		assert.Equal(t, StyleOther, n.Classify(cat), "category %q", cat)
	}
}

func TestClassify_Configured(t *testing.T) {
	n := NewNormalizer(&conf.Dashboard{
		Categories:    map[string]string{"娱乐/生活": "cat-fun", "体育": "cat-sports", "broken": ""},
		FallbackStyle: "cat-misc",
	}, log.DefaultLogger)

	assert.Equal(t, "cat-fun", n.Classify("娱乐/生活"))
	assert.Equal(t, "cat-sports", n.Classify("体育"))
	assert.Equal(t, "cat-misc", n.Classify("科技/AI"))
	assert.Equal(t, "cat-misc", n.Classify("broken"))
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0"},
		{12, "12"},
		{1234, "1,234"},
		{2000000, "2,000,000"},
		{1234.5, "1,234.5"},
		{0.12345, "0.123"},
		{-9876543, "-9,876,543"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.score))
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer(nil, log.DefaultLogger)

	got := n.Normalize(domain.TrendRecord{
		Keyword:  "nvidia ces",
		Traffic:  domain.NumericTraffic(2000000),
		Category: "科技/AI",
		Score:    2000000,
	})

	assert.Equal(t, domain.DisplayRecord{
		Keyword:   "nvidia ces",
		Traffic:   "200万+",
		Category:  "科技/AI",
		StyleTag:  StyleTech,
		ScoreText: "2,000,000",
		Score:     2000000,
	}, got)
}

func TestNormalizeAll(t *testing.T) {
	n := NewNormalizer(nil, log.DefaultLogger)

	assert.Empty(t, n.NormalizeAll(nil))

	records := []domain.TrendRecord{
		{Keyword: "b", Score: 1, Category: "unknown"},
		{Keyword: "a", Score: 5, Traffic: domain.TextTraffic("50万+")},
	}
	got := n.NormalizeAll(records)
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Keyword)
	assert.Equal(t, StyleOther, got[0].StyleTag)
	assert.Equal(t, "50万+", got[1].Traffic)
	assert.Equal(t, "b", records[0].Keyword)
}
