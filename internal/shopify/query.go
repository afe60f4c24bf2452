package shopify

// metaobjectsQuery は店舗とスタイリストのメタオブジェクトを最大100件ずつ取得するGraphQLクエリ。
const metaobjectsQuery = `
query ShopMetaobjects {
  customLocations: metaobjects(first: 100, type: "custom_location") {
    edges {
      node {
        id
        handle
        displayName
        fields {
          key
          value
        }
      }
    }
  }
  stylists: metaobjects(first: 100, type: "stylist") {
    edges {
      node {
        id
        handle
        displayName
        fields {
          key
          value
        }
      }
    }
  }
}
`
