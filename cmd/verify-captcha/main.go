// CAPTCHA検証サービスのエントリポイント。
// reCAPTCHAトークンを検証し、成功時にShopifyから予約リンクを取得して返す。
// 設定に不備がある場合も起動し、検証リクエストには500を返す。
package main

import (
	"log"

	"github.com/nao1215/verify-captcha/internal/captcha"
	"github.com/nao1215/verify-captcha/internal/config"
)

func main() {
	cfg := config.Load(".env")

	server := captcha.NewServer(cfg)

	log.Printf("CAPTCHA検証サービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("CAPTCHA検証サービスの起動に失敗: %v", err)
	}
}
