// Package logger 는 review-desk 바이너리들이 공유하는 JSON 로거다.
package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 패키지 밖에서 쓰는 로깅 메서드만 노출한다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Fields map[string]any

// Log 는 Init 전에도 info 레벨로 쓸 수 있다.
var Log Logger = NewLogger("info")

// Init 은 logging.level 로 Log 를 교체한다. 알 수 없는 값은 gookit 기본 해석을 따른다.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger 는 stdout 으로 datetime/level/message 와 Fields 만 출력하는 로거를 만든다.
func NewLogger(level string) Logger {
	h := handler.NewConsoleHandler(levelsUpTo(slog.LevelByName(level)))
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

// gookit 레벨은 값이 작을수록 심각하다.
func levelsUpTo(max slog.Level) slog.Levels {
	var out slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			out = append(out, lv)
		}
	}
	return out
}

func InfoWithFields(msg string, fields Fields) { logFields(slog.InfoLevel, msg, fields) }
func DebugWithFields(msg string, fields Fields) { logFields(slog.DebugLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields) { logFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logFields(slog.ErrorLevel, msg, fields) }

// logFields 는 SERVICE_NAME 이 있으면 service_name 을 덧붙인다.
// Log 가 gookit 로거가 아니면 필드 없이 메시지만 남긴다.
func logFields(level slog.Level, msg string, fields Fields) {
	lg, ok := Log.(*slog.Logger)
	if !ok {
		Log.Info(msg)
		return
	}
	m := slog.M{}
	for k, v := range fields {
		m[k] = v
	}
	if _, set := m["service_name"]; !set {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			m["service_name"] = sn
		}
	}
	lg.WithFields(m).Log(level, msg)
}

// Snippet 은 s 를 max 룬으로 자르고 "..." 을 붙인다. max <= 0 이면 그대로 반환한다.
func Snippet(s string, max int) string {
	rs := []rune(s)
	if max <= 0 || len(rs) <= max {
		return s
	}
	return string(rs[:max]) + "..."
}
