package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig はCORSミドルウェアの設定。
type CORSConfig struct {
	// AllowedOrigins はAccess-Control-Allow-Originで公開するオリジンの許可リスト。
	AllowedOrigins []string
	// AllowedMethods はAccess-Control-Allow-Methodsに設定するメソッド。
	AllowedMethods []string
	// AllowedHeaders はAccess-Control-Allow-Headersに設定するリクエストヘッダー。
	AllowedHeaders []string
	// PreflightStatus はOPTIONSリクエストに返すステータスコード。0の場合は204を返す。
	PreflightStatus int
}

// CORS は許可リストに含まれるオリジンからのクロスオリジンリクエストを許可するGinミドルウェアを返す。
// Access-Control-Allow-Originは許可されたオリジンに対してのみ設定する。
// メソッドとヘッダーの宣言はオリジンに関係なく常に設定する。
// OPTIONSリクエストは空ボディで即座に応答し、後続のハンドラーは実行しない。
func CORS(cfg CORSConfig) gin.HandlerFunc {
	originsSet := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		originsSet[o] = struct{}{}
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	preflightStatus := cfg.PreflightStatus
	if preflightStatus == 0 {
		preflightStatus = http.StatusNoContent
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := originsSet[origin]; ok {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(preflightStatus)
			return
		}

		c.Next()
	}
}
