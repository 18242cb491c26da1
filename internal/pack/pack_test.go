package pack

import "testing"

func TestInt32KeyRoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 1<<31 - 1, -1 << 31}
	for _, v := range cases {
		k := Int32Key(v)
		if len(k) != Int32KeySize {
			t.Fatalf("Int32Key(%d) has length %d, want %d", v, len(k), Int32KeySize)
		}
		if got := ReadInt32(k); got != v {
			t.Errorf("ReadInt32(Int32Key(%d)) = %d", v, got)
		}
	}
}

func TestReadInt32Short(t *testing.T) {
	if got := ReadInt32([]byte{1, 2}); got != 0 {
		t.Errorf("ReadInt32 on short buffer = %d, want 0", got)
	}
	if got := ReadInt32(nil); got != 0 {
		t.Errorf("ReadInt32(nil) = %d, want 0", got)
	}
}

func TestStringKey(t *testing.T) {
	if got := StringKey(""); len(got) != 0 {
		t.Errorf("StringKey(\"\") has length %d, want 0", len(got))
	}
	if got := string(StringKey("HOSTNAME")); got != "HOSTNAME" {
		t.Errorf("StringKey round trip = %q", got)
	}
}
