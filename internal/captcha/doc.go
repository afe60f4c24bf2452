// Package captcha はCAPTCHA検証サービスの内部実装を提供する。
//
// POST /verify-captcha で受け取ったreCAPTCHAトークンを検証し、
// 成功した場合は設定に応じてShopifyから予約リンクを取得して返す。
// オリジンの許可判定とプリフライト応答は他のすべての検証より前に行う。
// すべての経路で {"success": bool, "message": string} 形式のJSONを1回だけ返す。
package captcha
