package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery はパニックからの回復を行うGinミドルウェアを返す。
// パニック発生時にログを出力し、messageを含む失敗レスポンスを500で返す。
// レスポンスが書き込み済みの場合はステータスを上書きしない。
func Recovery(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s request_id=%s: %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), r)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, Failure(message))
			}
		}()
		c.Next()
	}
}
