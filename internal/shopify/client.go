package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nao1215/verify-captcha/pkg/httpclient"
)

// DefaultAPIVersion はShopify Admin APIのバージョン。
const DefaultAPIVersion = "2024-10"

// headerAccessToken はShopify Admin APIのアクセストークンを送るHTTPヘッダーキー。
const headerAccessToken = "X-Shopify-Access-Token"

var (
	// ErrNoData はGraphQLレスポンスにdataが含まれていなかったことを表す。
	ErrNoData = errors.New("Shopify APIのレスポンスにdataが含まれていません")
	// ErrMalformedData はdataの一覧やフィールドが欠落していたことを表す。
	ErrMalformedData = errors.New("Shopify APIのレスポンスの形式が不正です")
)

// BookingLinks は店舗とスタイリストそれぞれの、ハンドルから予約リンクへのマップ。
type BookingLinks struct {
	// Locations はcustom_locationメタオブジェクトの予約リンク。
	Locations map[string]string `json:"locations"`
	// Stylists はstylistメタオブジェクトの予約リンク。
	Stylists map[string]string `json:"stylists"`
}

// Metaobject はShopifyのメタオブジェクト1件。
type Metaobject struct {
	ID          string  `json:"id"`
	Handle      string  `json:"handle"`
	DisplayName string  `json:"displayName"`
	Fields      []Field `json:"fields"`
}

// Field はメタオブジェクトのキーと値の組。
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// graphQLRequest はGraphQLリクエストのJSON構造。
type graphQLRequest struct {
	Query string `json:"query"`
}

// graphQLResponse はメタオブジェクトクエリのレスポンス構造。
type graphQLResponse struct {
	Data   *metaobjectsData `json:"data"`
	Errors json.RawMessage  `json:"errors"`
}

type metaobjectsData struct {
	CustomLocations *metaobjectConnection `json:"customLocations"`
	Stylists        *metaobjectConnection `json:"stylists"`
}

type metaobjectConnection struct {
	Edges []metaobjectEdge `json:"edges"`
}

type metaobjectEdge struct {
	Node Metaobject `json:"node"`
}

// Client はShopify Admin GraphQL APIのクライアント。
type Client struct {
	// http はショップドメインへのHTTPクライアント。
	http *httpclient.Client
	// path はGraphQLエンドポイントのパス。
	path string
}

// NewClient は新しいShopify APIクライアントを生成する。
// baseURLには "https://{shop}.myshopify.com" の形式を指定する。
// apiVersionが空の場合はDefaultAPIVersionを使用する。
func NewClient(baseURL, apiVersion, accessToken string, opts ...httpclient.Option) *Client {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	opts = append([]httpclient.Option{httpclient.WithHeader(headerAccessToken, accessToken)}, opts...)
	return &Client{
		http: httpclient.New(baseURL, opts...),
		path: fmt.Sprintf("/admin/api/%s/graphql.json", apiVersion),
	}
}

// FetchBookingLinks はメタオブジェクトを取得し、予約リンクのマップに変換して返す。
// HTTPエラー、GraphQLのerrorsフィールド、dataの欠落はいずれもエラーとして扱う。
// 一覧（customLocations・stylistsとそのedges）や各レコードのfieldsがnullまたは欠落している場合もエラーとする。
func (c *Client) FetchBookingLinks(ctx context.Context) (*BookingLinks, error) {
	var resp graphQLResponse
	if err := c.http.PostJSON(ctx, c.path, graphQLRequest{Query: metaobjectsQuery}, &resp); err != nil {
		return nil, fmt.Errorf("Shopify APIリクエストに失敗: %w", err)
	}
	if hasErrors(resp.Errors) {
		return nil, fmt.Errorf("Shopify APIがエラーを返しました: %s", string(resp.Errors))
	}
	if resp.Data == nil {
		return nil, ErrNoData
	}

	locations, err := bookingLinks("customLocations", resp.Data.CustomLocations)
	if err != nil {
		return nil, err
	}
	stylists, err := bookingLinks("stylists", resp.Data.Stylists)
	if err != nil {
		return nil, err
	}
	return &BookingLinks{
		Locations: locations,
		Stylists:  stylists,
	}, nil
}

// Enrich はFetchBookingLinksの結果を検証成功レスポンスのdataとして返す。
func (c *Client) Enrich(ctx context.Context) (any, error) {
	return c.FetchBookingLinks(ctx)
}

// hasErrors はerrorsフィールドが存在しnullでないかを判定する。
// 空配列もエラーとして扱う。
func hasErrors(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
