package logger

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/sirupsen/logrus"
)

// CallerKey 业务代码调用位置的字段名，由 kratos 的 log.Caller 填充
const CallerKey = "caller"

// NewKratos 返回带调用位置的 kratos 日志，业务代码通过 log.NewHelper 使用
func NewKratos(l *logrus.Logger) log.Logger {
	return log.With(NewKratosLogger(l), CallerKey, log.DefaultCaller)
}

// KratosLogger 把 kratos 的 log.Logger 接到 logrus 上，命令行工具与服务端共用同一套业务代码
type KratosLogger struct {
	l *logrus.Logger
}

var _ log.Logger = (*KratosLogger)(nil)

func NewKratosLogger(l *logrus.Logger) *KratosLogger {
	return &KratosLogger{l: l}
}

// Log 实现 log.Logger，msg 键作为日志正文，其余键值作为字段
func (k *KratosLogger) Log(level log.Level, keyvals ...interface{}) error {
	if len(keyvals) == 0 {
		return nil
	}
	if len(keyvals)%2 != 0 {
		keyvals = append(keyvals, "KEYVALS UNPAIRED")
	}

	var msg string
	fields := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields[key] = keyvals[i+1]
	}

	entry := k.l.WithFields(fields)
	switch level {
	case log.LevelDebug:
		entry.Debug(msg)
	case log.LevelWarn:
		entry.Warn(msg)
	case log.LevelError:
		entry.Error(msg)
	case log.LevelFatal:
		// 不退出进程，交给调用方处理
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
	return nil
}
