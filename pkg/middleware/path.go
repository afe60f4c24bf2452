package middleware

import "github.com/gin-gonic/gin"

// ForPath は指定したパスへのリクエストに対してのみhandlerを実行するGinミドルウェアを返す。
// エンジン全体に登録するため、ルートが登録されていないメソッド（PURGEなどの独自メソッドを含む）にも適用される。
// パスが一致しない場合は何もせず後続の処理に進む。
func ForPath(path string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path != path {
			c.Next()
			return
		}
		handler(c)
	}
}
