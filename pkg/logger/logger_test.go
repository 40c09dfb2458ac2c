package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/FelipeSantos92Dev/senai-2025-2/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr bool
		enabled zapcore.Level
	}{
		{"json info", config.LogConfig{Level: "info", Format: "json"}, false, zapcore.InfoLevel},
		{"console debug", config.LogConfig{Level: "debug", Format: "console"}, false, zapcore.DebugLevel},
		{"无效级别", config.LogConfig{Level: "verbose", Format: "json"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望返回错误")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger 应成功: %v", err)
			}
			if !l.Core().Enabled(tt.enabled) {
				t.Errorf("期望级别 %s 已启用", tt.enabled)
			}
		})
	}
}
