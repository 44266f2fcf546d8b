package data

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/LeeRHuang/googledailytreadsinfo123/app/dashboard/internal/domain"
)

// Decode 校验并解析快照
//
// 生产者写的是 snake_case 键名，camelCase 作为别名同样接受。
// 单条记录不合法时只丢弃该条，不影响其余记录。
func Decode(body []byte) (*domain.TrendSnapshot, error) {
	if !json.Valid(body) {
		return nil, ErrParse("snapshot is not well-formed json")
	}
	doc := bytes.TrimSpace(body)
	if doc[0] != '{' {
		return nil, ErrSchema("snapshot is not an object")
	}

	trends, dt := lookup(doc, "trends")
	switch dt {
	case jsonparser.Array:
	case jsonparser.NotExist:
		return nil, ErrSchema("snapshot has no trends field")
	default:
		return nil, ErrSchema("trends is not a sequence, got " + dt.String())
	}

	snap := &domain.TrendSnapshot{
		LastUpdated:   stringField(doc, "last_updated", "lastUpdated"),
		Trends:        make([]domain.TrendRecord, 0),
		CategoryStats: make(domain.CategoryStats, 0),
		Insights:      make([]domain.InsightRecord, 0),
	}

	if _, err := jsonparser.ArrayEach(trends, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
		if dt != jsonparser.Object {
			snap.Dropped++
			return
		}
		rec, ok := decodeRecord(value)
		if !ok {
			snap.Dropped++
			return
		}
		snap.Trends = append(snap.Trends, rec)
	}); err != nil {
		return nil, ErrParse("trends: " + err.Error())
	}

	if stats, dt := lookup(doc, "category_stats", "categoryStats"); dt == jsonparser.Object {
		// 重复的键保留首次出现的位置，取最后一次的值
		seen := make(map[string]int)
		_ = jsonparser.ObjectEach(stats, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
			count, ok := toNumber(value, dt)
			if !ok {
				return nil
			}
			name, err := jsonparser.ParseString(key)
			if err != nil {
				name = string(key)
			}
			if i, ok := seen[name]; ok {
				snap.CategoryStats[i].Count = count
				return nil
			}
			seen[name] = len(snap.CategoryStats)
			snap.CategoryStats = append(snap.CategoryStats, domain.CategoryCount{Name: name, Count: count})
			return nil
		})
	}

	if insights, dt := lookup(doc, "insights"); dt == jsonparser.Array {
		_, _ = jsonparser.ArrayEach(insights, func(value []byte, dt jsonparser.ValueType, _ int, _ error) {
			if dt != jsonparser.Object {
				return
			}
			snap.Insights = append(snap.Insights, domain.InsightRecord{
				Title:      stringField(value, "title"),
				Context:    stringField(value, "context"),
				Suggestion: stringField(value, "suggestion"),
			})
		})
	}

	return snap, nil
}

func decodeRecord(value []byte) (domain.TrendRecord, bool) {
	keyword := stringField(value, "keyword")
	if strings.TrimSpace(keyword) == "" {
		return domain.TrendRecord{}, false
	}

	rec := domain.TrendRecord{
		Keyword:  keyword,
		Category: stringField(value, "category"),
	}
	if score, ok := numberField(value, "score"); ok {
		rec.Score = score
	}

	if n, ok := numberField(value, "traffic_numeric", "trafficNumeric"); ok {
		rec.Traffic = domain.NumericTraffic(toInt64(n))
	} else if raw, dt := lookup(value, "traffic"); dt == jsonparser.String {
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			s = string(raw)
		}
		rec.Traffic = domain.TextTraffic(s)
	} else if n, ok := toNumber(raw, dt); ok {
		rec.Traffic = domain.NumericTraffic(toInt64(n))
	}

	return rec, true
}

// lookup 返回第一个存在的键对应的值
func lookup(data []byte, keys ...string) ([]byte, jsonparser.ValueType) {
	for _, key := range keys {
		v, dt, _, err := jsonparser.Get(data, key)
		if err == nil && dt != jsonparser.NotExist {
			return v, dt
		}
	}
	return nil, jsonparser.NotExist
}

func stringField(data []byte, keys ...string) string {
	v, dt := lookup(data, keys...)
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return string(v)
		}
		return s
	case jsonparser.Number:
		return string(v)
	}
	return ""
}

func numberField(data []byte, keys ...string) (float64, bool) {
	return toNumber(lookup(data, keys...))
}

// toNumber 接受 JSON 数字或数字字符串
func toNumber(v []byte, dt jsonparser.ValueType) (float64, bool) {
	switch dt {
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(v)
		return f, err == nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toInt64(f float64) int64 {
	switch {
	case f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(math.Floor(f))
}
