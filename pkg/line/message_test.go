package line

import "testing"

func TestNewMessageQuickReply(t *testing.T) {
	qr := NewMessageQuickReply(
		map[string]string{"違う店が見たい": "違う店", "ライトプラン": "ライトプラン"},
		[]string{"違う店が見たい", "ライトプラン"},
	)

	if len(qr.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(qr.Items))
	}
	first := qr.Items[0]
	if first.Type != "action" || first.Action.Type != "message" {
		t.Errorf("unexpected item shape: %+v", first)
	}
	if first.Action.Label != "違う店が見たい" || first.Action.Text != "違う店" {
		t.Errorf("label/text mapping broken: %+v", first.Action)
	}
	if qr.Items[1].Action.Text != "ライトプラン" {
		t.Errorf("order not preserved: %+v", qr.Items[1].Action)
	}
}
