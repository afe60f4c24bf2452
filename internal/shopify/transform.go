package shopify

import "fmt"

// bookingLinkKey は予約リンクを保持するメタオブジェクトフィールドのキー。
const bookingLinkKey = "booking_link"

// bookingLinks はメタオブジェクトの一覧をハンドル→予約リンクのマップに変換する。
// booking_linkフィールドが無い、または値が空のレコードは含めない。
// 一覧・edges・fieldsのいずれかがnullの場合はErrMalformedDataを返す。
func bookingLinks(name string, conn *metaobjectConnection) (map[string]string, error) {
	if conn == nil || conn.Edges == nil {
		return nil, fmt.Errorf("%w: %sのedgesがありません", ErrMalformedData, name)
	}
	links := make(map[string]string, len(conn.Edges))
	for _, edge := range conn.Edges {
		if edge.Node.Fields == nil {
			return nil, fmt.Errorf("%w: %sのレコード%qにfieldsがありません", ErrMalformedData, name, edge.Node.Handle)
		}
		if link, ok := edge.Node.BookingLink(); ok {
			links[edge.Node.Handle] = link
		}
	}
	return links, nil
}

// BookingLink はbooking_linkフィールドの値を返す。
// 同じキーのフィールドが複数ある場合は最初のものを使用する。
func (m Metaobject) BookingLink() (string, bool) {
	for _, f := range m.Fields {
		if f.Key == bookingLinkKey {
			return f.Value, f.Value != ""
		}
	}
	return "", false
}
