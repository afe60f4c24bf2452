package recaptcha

import (
	"context"
	"fmt"
	"net/url"

	"github.com/nao1215/verify-captcha/pkg/httpclient"
)

// DefaultVerifyURL はGoogle reCAPTCHAのトークン検証エンドポイント。
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Result はsiteverifyエンドポイントの検証結果。
type Result struct {
	// Success はトークンが有効であったかどうか。
	Success bool `json:"success"`
	// Score はreCAPTCHA v3のスコア（0.0〜1.0）。v2では返されない。
	Score *float64 `json:"score,omitempty"`
	// Action はトークン発行時に指定されたアクション名。
	Action string `json:"action,omitempty"`
	// Hostname はトークンが発行されたサイトのホスト名。
	Hostname string `json:"hostname,omitempty"`
	// ChallengeTS はチャレンジが実施された日時（ISO 8601）。
	ChallengeTS string `json:"challenge_ts,omitempty"`
	// ErrorCodes は検証サービスが報告したエラーコード。
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// Client はreCAPTCHAのトークン検証クライアント。
type Client struct {
	// http はsiteverifyエンドポイントへのHTTPクライアント。
	http *httpclient.Client
	// secret はreCAPTCHAのシークレットキー。
	secret string
}

// NewClient は新しいreCAPTCHA検証クライアントを生成する。
// verifyURLが空の場合はDefaultVerifyURLを使用する。
func NewClient(secret, verifyURL string, opts ...httpclient.Option) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		http:   httpclient.New(verifyURL, opts...),
		secret: secret,
	}
}

// Verify はトークンをsiteverifyエンドポイントに送信し、検証結果を返す。
// remoteIPが空の場合はremoteipパラメータを送信しない。
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	var result Result
	if err := c.http.PostForm(ctx, "", form, &result); err != nil {
		return nil, fmt.Errorf("reCAPTCHAトークンの検証リクエストに失敗: %w", err)
	}
	return &result, nil
}
