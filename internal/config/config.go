// Package config は環境変数と.envファイルからサービスの設定を読み込む。
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nao1215/verify-captcha/internal/recaptcha"
	"github.com/nao1215/verify-captcha/internal/shopify"
)

// EnrichmentMode は検証成功時に付加するデータの取得方法。
type EnrichmentMode string

const (
	// EnrichmentShopify はShopifyのメタオブジェクトから予約リンクを取得する。
	EnrichmentShopify EnrichmentMode = "shopify"
	// EnrichmentNone はデータを付加しない。
	EnrichmentNone EnrichmentMode = "none"
)

var (
	// ErrMissingRecaptchaSecret はRECAPTCHA_SECRET_KEYが設定されていないことを表す。
	ErrMissingRecaptchaSecret = errors.New("RECAPTCHA_SECRET_KEYが設定されていません")
	// ErrMissingShopifyCredentials はShopify Admin APIの認証情報が設定されていないことを表す。
	ErrMissingShopifyCredentials = errors.New("SHOPIFY_ADMIN_ACCESS_TOKENまたはSHOPIFY_SHOP_DOMAINが設定されていません")
	// ErrUnknownEnrichment はCAPTCHA_ENRICHMENTに未知の値が指定されたことを表す。
	ErrUnknownEnrichment = errors.New("CAPTCHA_ENRICHMENTの値が不正です")
)

// Config はverify-captchaサービスの設定。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port string
	// Recaptcha はreCAPTCHA検証の設定。
	Recaptcha RecaptchaConfig
	// Enrichment は検証成功時のデータ付加方法。
	Enrichment EnrichmentMode
	// Shopify はShopify Admin APIの設定。EnrichmentがEnrichmentShopifyの場合のみ使用する。
	Shopify ShopifyConfig
	// HTTPClientTimeout は外部API呼び出しのタイムアウト。0の場合は設けない。
	HTTPClientTimeout time.Duration
}

// RecaptchaConfig はreCAPTCHA検証の設定。
type RecaptchaConfig struct {
	SecretKey string
	VerifyURL string
}

// ShopifyConfig はShopify Admin APIの設定。
type ShopifyConfig struct {
	AccessToken string
	ShopDomain  string
	APIVersion  string
}

// Load は.envファイルと環境変数から設定を読み込む。
// envFilesに指定したファイルのうち存在するものを順に読み込む。
// 既に設定されている環境変数は.envファイルの値で上書きしない。
func Load(envFiles ...string) *Config {
	loadEnvFiles(envFiles)

	return &Config{
		Port: getEnv("PORT", "8080"),
		Recaptcha: RecaptchaConfig{
			SecretKey: getEnv("RECAPTCHA_SECRET_KEY", ""),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", recaptcha.DefaultVerifyURL),
		},
		Enrichment: EnrichmentMode(strings.ToLower(getEnv("CAPTCHA_ENRICHMENT", string(EnrichmentShopify)))),
		Shopify: ShopifyConfig{
			AccessToken: getEnv("SHOPIFY_ADMIN_ACCESS_TOKEN", ""),
			ShopDomain:  getEnv("SHOPIFY_SHOP_DOMAIN", ""),
			APIVersion:  getEnv("SHOPIFY_API_VERSION", shopify.DefaultAPIVersion),
		},
		HTTPClientTimeout: getDuration("HTTP_CLIENT_TIMEOUT", 0),
	}
}

// Validate は必須の設定が揃っているかを検証する。
// 不足している項目をすべてまとめたエラーを返す。
func (c *Config) Validate() error {
	var errs []error
	if c.Recaptcha.SecretKey == "" {
		errs = append(errs, ErrMissingRecaptchaSecret)
	}
	switch c.Enrichment {
	case EnrichmentShopify:
		if c.Shopify.AccessToken == "" || c.Shopify.ShopDomain == "" {
			errs = append(errs, ErrMissingShopifyCredentials)
		}
	case EnrichmentNone:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownEnrichment, c.Enrichment))
	}
	return errors.Join(errs...)
}

// ShopifyBaseURL はShopify Admin APIのベースURLを返す。
// ShopDomainにスキームが含まれていない場合はhttpsを補う。
func (c *Config) ShopifyBaseURL() string {
	domain := strings.TrimRight(c.Shopify.ShopDomain, "/")
	if domain == "" {
		return ""
	}
	if strings.HasPrefix(domain, "https://") || strings.HasPrefix(domain, "http://") {
		return domain
	}
	return "https://" + domain
}

// loadEnvFiles は存在する.envファイルを環境変数に読み込む。
func loadEnvFiles(files []string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("[Config] .envファイルの読み込みに失敗: file=%s, error=%v", f, err)
			continue
		}
		log.Printf("[Config] .envファイルを読み込みました: %s", f)
	}
}

// getEnv は環境変数を取得する。未設定または空白のみの場合はfallbackを返す。
func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("[Config] %sの値が不正なため既定値を使用します: %q", key, value)
	}
	return fallback
}
