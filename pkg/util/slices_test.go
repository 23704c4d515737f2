package util

import "testing"

func TestSliceToMap(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		key  string
		want string
	}{
		{name: "key and value", in: []string{"name=Acme"}, key: "name", want: "Acme"},
		{name: "value with equals sign", in: []string{"tone=formal=ish"}, key: "tone", want: "formal=ish"},
		{name: "bare key", in: []string{"industry"}, key: "industry", want: ""},
	}

	for _, tc := range testCases {
		got := SliceToMap(tc.in)
		if got[tc.key] != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got[tc.key])
		}
	}
}
