// Package recaptcha はGoogle reCAPTCHAのトークン検証を提供する。
//
// siteverifyエンドポイントへの問い合わせを行うClientと、
// 検証結果を判定ポリシーに照らして評価するEvaluateから構成される。
// Evaluateは純粋関数であり、HTTPとは独立してテストできる。
package recaptcha
