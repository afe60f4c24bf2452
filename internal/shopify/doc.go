// Package shopify はShopify Admin GraphQL APIから予約リンクを取得する。
//
// custom_locationとstylistの2種類のメタオブジェクトを1回のクエリで取得し、
// booking_linkフィールドを持つレコードだけをハンドル→リンクのマップに変換する。
package shopify
