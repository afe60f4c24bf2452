// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// CORS設定とプリフライト応答、許可メソッドの制限、リクエストIDの付与、
// パニックリカバリなど、エンドポイントの前段で共通して使用するミドルウェアを含む。
// 失敗レスポンスは {"success": false, "message": "..."} の形式に統一する。
package middleware
