package captcha

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/verify-captcha/internal/config"
	"github.com/nao1215/verify-captcha/internal/recaptcha"
	"github.com/nao1215/verify-captcha/internal/shopify"
	"github.com/nao1215/verify-captcha/pkg/httpclient"
	"github.com/nao1215/verify-captcha/pkg/middleware"
)

// verifyPath はCAPTCHA検証エンドポイントのパス。
const verifyPath = "/verify-captcha"

// allowedOrigins はAccess-Control-Allow-Originで公開するオリジン。
var allowedOrigins = []string{
	"https://www.billyreid.com",
	"http://127.0.0.1:9292",
}

// trustedProxies はX-Forwarded-Forを信頼する接続元。
// サービスはホスティング基盤のプロキシの背後で動作し、直接の接続元は常にプロキシになる。
var trustedProxies = []string{"0.0.0.0/0", "::/0"}

// TokenVerifier はCAPTCHAトークンを外部サービスで検証する。
type TokenVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*recaptcha.Result, error)
}

// Enricher は検証成功時にレスポンスのdataへ付加するデータを取得する。
type Enricher interface {
	Enrich(ctx context.Context) (any, error)
}

// Server はCAPTCHA検証サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// verifier はreCAPTCHAトークンの検証クライアント。
	verifier TokenVerifier
	// enricher は検証成功時のデータ取得。nilの場合はdataを付加しない。
	enricher Enricher
	// configErr は起動時の設定検証で見つかったエラー。
	// nilでない場合、POSTリクエストはすべて500で応答する。
	configErr error
}

// NewServer は設定から新しいCAPTCHA検証サーバーを生成する。
// 設定の検証はここで1度だけ行い、不備がある場合もサーバーは生成する。
func NewServer(cfg *config.Config) *Server {
	configErr := cfg.Validate()
	if configErr != nil {
		log.Printf("[Captcha] 設定に不備があるため、検証リクエストは500を返します: %v", configErr)
	}

	opts := []httpclient.Option{httpclient.WithTimeout(cfg.HTTPClientTimeout)}

	var enricher Enricher
	if cfg.Enrichment == config.EnrichmentShopify {
		enricher = shopify.NewClient(cfg.ShopifyBaseURL(), cfg.Shopify.APIVersion, cfg.Shopify.AccessToken, opts...)
	}

	return newServer(
		cfg.Port,
		recaptcha.NewClient(cfg.Recaptcha.SecretKey, cfg.Recaptcha.VerifyURL, opts...),
		enricher,
		configErr,
	)
}

// newServer はミドルウェアとルーティングを設定したサーバーを生成する。
func newServer(port string, verifier TokenVerifier, enricher Enricher, configErr error) *Server {
	router := gin.New()
	router.Use(middleware.Recovery(msgInternalError))
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	// クライアントIPはX-Forwarded-Forを優先し、無い場合は接続元アドレスを使う
	router.RemoteIPHeaders = []string{"X-Forwarded-For"}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		log.Printf("[Captcha] 信頼するプロキシの設定に失敗: %v", err)
	}

	s := &Server{
		router:    router,
		port:      port,
		verifier:  verifier,
		enricher:  enricher,
		configErr: configErr,
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// ServeHTTP はhttp.Handlerを実装する。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// OPTIONSと非POSTはルートの有無に関係なくミドルウェアで応答する。
	// ルートの無い独自メソッドにも適用するため、エンジン全体に登録する。
	s.router.Use(middleware.ForPath(verifyPath, middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  allowedOrigins,
		AllowedMethods:  []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:  []string{"Content-Type"},
		PreflightStatus: http.StatusOK,
	})))
	s.router.Use(middleware.ForPath(verifyPath, middleware.AllowMethods(http.MethodPost)))
	s.router.POST(verifyPath, s.handleVerify())

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "verify-captcha"})
	})
}
