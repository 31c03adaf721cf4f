package hal

import "testing"

func TestEvent_AckWithoutResponder(t *testing.T) {
	// Platforms without broadcast semantics deliver events with no ack.
	ev := NewEvent(Arrived, ClassUSBDevice, nil)
	ev.Ack(true) // must not panic
	ev.Ack(false)
}

func TestEvent_AckDeliversResponse(t *testing.T) {
	var got []bool
	ev := NewEvent(Removed, ClassUSBDevice, func(handled bool) {
		got = append(got, handled)
	})

	ev.Ack(true)
	ev.Ack(false)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("ack responses = %v, want [true false]", got)
	}
}

func TestAction_String(t *testing.T) {
	cases := []struct {
		action Action
		want   string
	}{
		{Arrived, "arrived"},
		{Removed, "removed"},
		{Teardown, "teardown"},
		{Action(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.action, got, tc.want)
		}
	}
}

func TestDeviceClass_String(t *testing.T) {
	if got := ClassUSBDevice.String(); got != "usb-device" {
		t.Errorf("ClassUSBDevice.String() = %q, want %q", got, "usb-device")
	}
	if got := ClassOther.String(); got != "other" {
		t.Errorf("ClassOther.String() = %q, want %q", got, "other")
	}
}
