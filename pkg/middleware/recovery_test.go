package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// testRecoveryMessage はパニック時に返すテスト用メッセージ。
const testRecoveryMessage = "Internal server error during CAPTCHA verification"

// newRecoveryRouter はRecoveryとRequestIDを登録したテスト用ルーターを生成する。
func newRecoveryRouter(method string, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(Recovery(testRecoveryMessage))
	router.Use(RequestID())
	router.Handle(method, "/target", handler)
	return router
}

// TestRecovery はRecoveryミドルウェアを検証する。
func TestRecovery(t *testing.T) {
	t.Parallel()

	panics := []struct {
		name   string
		method string
		value  any
	}{
		{name: "文字列", method: http.MethodGet, value: "テスト用パニック"},
		{name: "整数", method: http.MethodGet, value: 42},
		{name: "error型", method: http.MethodGet, value: http.ErrAbortHandler},
		{name: "POSTリクエストでの文字列", method: http.MethodPost, value: "POSTでパニック"},
	}
	for _, tt := range panics {
		t.Run(tt.name+"のパニックで500の失敗レスポンスが返ること", func(t *testing.T) {
			t.Parallel()

			router := newRecoveryRouter(tt.method, func(_ *gin.Context) {
				panic(tt.value)
			})

			req := httptest.NewRequest(tt.method, "/target", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("レスポンスボディのパースに失敗: %v", err)
			}
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["message"] != testRecoveryMessage {
				t.Errorf("message = %v, want %q", body["message"], testRecoveryMessage)
			}
		})
	}

	t.Run("パニックが発生しない場合はハンドラーのレスポンスが返ること", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter(http.MethodGet, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		req := httptest.NewRequest(http.MethodGet, "/target", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("レスポンス書き込み後のパニックではステータスが上書きされないこと", func(t *testing.T) {
		t.Parallel()

		router := newRecoveryRouter(http.MethodGet, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			panic("書き込み後のパニック")
		})

		req := httptest.NewRequest(http.MethodGet, "/target", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if strings.Contains(w.Body.String(), testRecoveryMessage) {
			t.Errorf("書き込み済みのレスポンスに失敗メッセージが追記された: %s", w.Body.String())
		}
	})
}

// TestRecoveryLogsRequestID はパニックのログにリクエストIDが含まれることを検証する。
// ログの出力先を差し替えるため並列実行しない。
func TestRecoveryLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	router := newRecoveryRouter(http.MethodPost, func(_ *gin.Context) {
		panic("ログ確認用パニック")
	})

	req := httptest.NewRequest(http.MethodPost, "/target", nil)
	req.Header.Set(HeaderRequestID, "req-panic-1")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	got := buf.String()
	for _, want := range []string{"[PANIC]", "POST /target", "request_id=req-panic-1", "ログ確認用パニック"} {
		if !strings.Contains(got, want) {
			t.Errorf("ログに %q が含まれていない: %s", want, got)
		}
	}
}
