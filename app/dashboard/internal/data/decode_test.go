package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

const sampleSnapshot = `{
  "last_updated": "2026-01-05 08:00:00",
  "trends": [
    {"keyword": "nvidia ces", "score": 2000000, "traffic_numeric": 2000000, "category": "科技/AI", "timestamp": "2026-01-05 07:00:00"},
    {"keyword": "nfl playoffs", "score": 500000, "traffic_numeric": 500000.0, "category": "体育"},
    {"keyword": "rose bowl", "score": 12, "traffic": "200万+", "category": "体育"}
  ],
  "category_stats": {"科技/AI": 5, "体育": 3, "其他": 1},
  "insights": [
    {"title": "AI/Tech 垂直工具", "context": "检测到 <b>nvidia</b> 等科技热点。", "suggestion": "开发中文教程。"}
  ]
}`

func TestDecode(t *testing.T) {
	snap, err := Decode([]byte(sampleSnapshot))
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05 08:00:00", snap.LastUpdated)
	require.Len(t, snap.Trends, 3)
	assert.Equal(t, 0, snap.Dropped)

	assert.Equal(t, "nvidia ces", snap.Trends[0].Keyword)
	assert.Equal(t, domain.NumericTraffic(2000000), snap.Trends[0].Traffic)
	assert.Equal(t, 2000000.0, snap.Trends[0].Score)
	assert.Equal(t, domain.NumericTraffic(500000), snap.Trends[1].Traffic)
	assert.Equal(t, domain.TextTraffic("200万+"), snap.Trends[2].Traffic)

	assert.Equal(t, domain.CategoryStats{
		{Name: "科技/AI", Count: 5},
		{Name: "体育", Count: 3},
		{Name: "其他", Count: 1},
	}, snap.CategoryStats)

	require.Len(t, snap.Insights, 1)
	assert.Equal(t, "检测到 <b>nvidia</b> 等科技热点。", snap.Insights[0].Context)
}

func TestDecode_CamelCaseAliases(t *testing.T) {
	body := `{"lastUpdated": "today", "trends": [{"keyword": "a", "trafficNumeric": 12000, "score": 3}], "categoryStats": {"体育": 2}}`

	snap, err := Decode([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, "today", snap.LastUpdated)
	require.Len(t, snap.Trends, 1)
	assert.Equal(t, domain.NumericTraffic(12000), snap.Trends[0].Traffic)
	assert.Equal(t, domain.CategoryStats{{Name: "体育", Count: 2}}, snap.CategoryStats)
}

func TestDecode_OptionalSections(t *testing.T) {
	snap, err := Decode([]byte(`{"trends": []}`))
	require.NoError(t, err)

	assert.NotNil(t, snap.Trends)
	assert.Empty(t, snap.Trends)
	assert.Empty(t, snap.CategoryStats)
	assert.Empty(t, snap.Insights)
	assert.Equal(t, "", snap.LastUpdated)

	snap, err = Decode([]byte(`{"trends": [], "category_stats": null, "insights": "none"}`))
	require.NoError(t, err)
	assert.Empty(t, snap.CategoryStats)
	assert.Empty(t, snap.Insights)
}

func TestDecode_DuplicateCategoryKeys(t *testing.T) {
	snap, err := Decode([]byte(`{"trends": [], "category_stats": {"体育": 1, "科技/AI": 3, "体育": 2}}`))
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryStats{
		{Name: "体育", Count: 2},
		{Name: "科技/AI", Count: 3},
	}, snap.CategoryStats)
}

func TestDecode_PartialRecords(t *testing.T) {
	body := `{"trends": [
		{"keyword": "ok", "score": "42", "category": "体育"},
		"not an object",
		{"keyword": "   ", "score": 1},
		{"score": 9},
		{"keyword": "no traffic", "score": null},
		{"keyword": "negative", "traffic_numeric": -5}
	]}`

	snap, err := Decode([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Dropped)
	require.Len(t, snap.Trends, 3)

	assert.Equal(t, 42.0, snap.Trends[0].Score)
	assert.Equal(t, domain.TrafficUnknown, snap.Trends[1].Traffic.Kind)
	assert.Equal(t, 0.0, snap.Trends[1].Score)
	assert.Equal(t, domain.NumericTraffic(0), snap.Trends[2].Traffic)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(error) bool
	}{
		{name: "empty body", body: "", check: IsParseError},
		{name: "truncated", body: `{"trends": [`, check: IsParseError},
		{name: "html page", body: `<html></html>`, check: IsParseError},
		{name: "missing trends", body: `{"last_updated": "x"}`, check: IsSchemaError},
		{name: "trends is object", body: `{"trends": {"a": 1}}`, check: IsSchemaError},
		{name: "trends is null", body: `{"trends": null}`, check: IsSchemaError},
		{name: "top level array", body: `[{"trends": []}]`, check: IsSchemaError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Decode([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, snap)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.True(t, IsLoadError(err))
		})
	}
}
