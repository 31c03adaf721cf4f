package registry

import "testing"

func TestDiscoveryStatus_String(t *testing.T) {
	cases := []struct {
		status DiscoveryStatus
		want   string
	}{
		{NotYetSeen, "not-yet-seen"},
		{StillPresent, "still-present"},
		{NewlyDiscovered, "newly-discovered"},
		{NoLongerDiscovered, "no-longer-discovered"},
		{DiscoveryStatus(99), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("DiscoveryStatus(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestEvent_String(t *testing.T) {
	if got := Arrived.String(); got != "arrived" {
		t.Errorf("Arrived.String() = %q, want %q", got, "arrived")
	}
	if got := Left.String(); got != "left" {
		t.Errorf("Left.String() = %q, want %q", got, "left")
	}
	if got := Event(99).String(); got != "unknown" {
		t.Errorf("Event(99).String() = %q, want %q", got, "unknown")
	}
}

func TestDeviceKey_String(t *testing.T) {
	k := DeviceKey{Bus: 1, Address: 4, PortPath: "1-1.4"}
	want := "001/004 (1-1.4)"
	if got := k.String(); got != want {
		t.Errorf("DeviceKey.String() = %q, want %q", got, want)
	}
}

func TestDevice_SetInitialized(t *testing.T) {
	d := &Device{key: DeviceKey{Bus: 1, Address: 1}}
	if d.Initialized() {
		t.Error("new device must not be initialized")
	}
	d.SetInitialized()
	if !d.Initialized() {
		t.Error("device must be initialized after SetInitialized")
	}
}
