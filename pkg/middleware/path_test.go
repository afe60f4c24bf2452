package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestForPath はForPathミドルウェアを検証する。
func TestForPath(t *testing.T) {
	t.Parallel()

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(ForPath("/gated", AllowMethods(http.MethodPost)))
		router.POST("/gated", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		router.GET("/open", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("一致するパスではhandlerが実行されること", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusMethodNotAllowed)
		}
	})

	t.Run("ルートの無い独自メソッドにもhandlerが実行されること", func(t *testing.T) {
		t.Parallel()

		for _, method := range []string{"PURGE", "PROPFIND", "X-CUSTOM"} {
			req := httptest.NewRequest(method, "/gated", nil)
			w := httptest.NewRecorder()

			newRouter().ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("%s: ステータスコード = %d, want %d", method, w.Code, http.StatusMethodNotAllowed)
			}
		}
	})

	t.Run("一致するパスで許可されたリクエストは後続のハンドラーに進むこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/gated", nil)
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("一致しないパスではhandlerが実行されないこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()

		newRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})
}
