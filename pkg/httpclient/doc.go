// Package httpclient は外部APIとのHTTP通信を行うクライアントを提供する。
//
// reCAPTCHAのトークン検証（フォーム形式）やShopify Admin GraphQL API
// （JSON形式）の呼び出しなど、外部サービスとの通信パターンを統一する。
// 2xx以外のレスポンスは*StatusErrorとして返す。
package httpclient
