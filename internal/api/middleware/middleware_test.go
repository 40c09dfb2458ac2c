package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func ok(c *gin.Context) { c.String(http.StatusOK, "ok") }

// ── RequestID ──

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"沿用请求头", "abc-123", true},
		{"缺失时生成", "", false},
		{"过长时重新生成", strings.Repeat("x", requestIDMaxLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.incoming != "" {
				req.Header.Set(requestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(requestIDHeader)
			if got == "" || got != w.Body.String() {
				t.Fatalf("响应头与上下文中的 ID 不一致: %q / %q", got, w.Body.String())
			}
			if tt.keep && got != tt.incoming {
				t.Errorf("期望沿用 %q，实际=%q", tt.incoming, got)
			}
			if !tt.keep && got == tt.incoming {
				t.Error("应生成新的 ID")
			}
		})
	}
}

// ── Logger ──

func TestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Logger(zap.New(core)))
	r.GET("/ok", ok)
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/missing", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("期望3条日志，实际=%d", len(entries))
	}
	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Errorf("第 %d 条日志级别期望 %s，实际=%s", i, want[i], e.Level)
		}
		if e.ContextMap()["request_id"] == "" {
			t.Error("日志应包含 request_id")
		}
	}
}

func TestLogger_RouteHealthAndErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/health", ok)
	r.GET("/api/v1/units/:id", func(c *gin.Context) {
		_ = c.Error(errors.New("connection refused"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	if logs.Len() != 0 {
		t.Fatalf("健康检查成功时不应记 Info 日志，实际=%d", logs.Len())
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/units/u1?x=1", nil))
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望1条日志，实际=%d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["route"] != "/api/v1/units/:id" {
		t.Errorf("route 应为路由模板，实际=%v", ctx["route"])
	}
	if ctx["query"] != "x=1" {
		t.Errorf("query 不正确: %v", ctx["query"])
	}
	if _, ok := ctx["errors"]; !ok {
		t.Error("日志应包含处理器登记的错误")
	}
}

// ── CORS ──

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000/"}))
	r.GET("/", ok)

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("预检请求期望 204，实际=%d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("期望允许 http://localhost:3000，实际=%q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("未允许的来源不应返回 CORS 头，实际=%q", got)
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	for _, h := range []string{"X-Frame-Options", "X-Content-Type-Options", "Content-Security-Policy"} {
		if w.Header().Get(h) == "" {
			t.Errorf("缺少响应头 %s", h)
		}
	}
}

// ── BodyLimit ──

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/", func(c *gin.Context) {
		_, err := c.GetRawData()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader("small")))
	if w.Code != http.StatusOK {
		t.Errorf("未超限期望 200，实际=%d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader("much larger than eight bytes")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("超限期望 413，实际=%d", w.Code)
	}
}

// ── RateLimit ──

type fakeLimiter struct {
	allowed bool
	err     error
	calls   int
}

func (f *fakeLimiter) CheckRateLimit(_ context.Context, _ string, _ int, _ time.Duration) (bool, error) {
	f.calls++
	return f.allowed, f.err
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		limiter   *fakeLimiter
		method    string
		wantCode  int
		wantCalls int
	}{
		{"读请求不限流", &fakeLimiter{allowed: false}, "GET", http.StatusOK, 0},
		{"写请求放行", &fakeLimiter{allowed: true}, "POST", http.StatusOK, 1},
		{"写请求超限", &fakeLimiter{allowed: false}, "DELETE", http.StatusTooManyRequests, 1},
		{"Redis 出错降级放行", &fakeLimiter{err: errors.New("redis down")}, "PUT", http.StatusOK, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RateLimit(tt.limiter, 10, time.Minute, zap.NewNop()))
			r.Handle(tt.method, "/", ok)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, "/", nil))

			if w.Code != tt.wantCode {
				t.Errorf("期望 %d，实际=%d", tt.wantCode, w.Code)
			}
			if tt.limiter.calls != tt.wantCalls {
				t.Errorf("期望调用 %d 次，实际=%d", tt.wantCalls, tt.limiter.calls)
			}
		})
	}
}

func TestRateLimit_NilLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute, zap.NewNop()))
	r.POST("/", ok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("未配置 Redis 时应放行，实际=%d", w.Code)
	}
}

// ── Recovery ──

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("期望 500，实际=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "kaboom") {
		t.Error("panic 信息不应返回给客户端")
	}
	if logs.Len() != 1 {
		t.Errorf("期望记录1条错误日志，实际=%d", logs.Len())
	}
}
