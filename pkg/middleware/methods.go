package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowMethods は指定されたHTTPメソッド以外のリクエストを405で拒否するGinミドルウェアを返す。
// 拒否時は {"success": false, "message": "Method not allowed"} を返す。
func AllowMethods(methods ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[m] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := allowed[c.Request.Method]; !ok {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, Failure("Method not allowed"))
			return
		}
		c.Next()
	}
}

// Failure は失敗レスポンスの共通JSONボディを生成する。
func Failure(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}
