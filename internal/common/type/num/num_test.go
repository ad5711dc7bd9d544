// Released under an MIT license. See LICENSE.

package num

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"42", "42"},
		{" -7 ", "-7"},
		{"0x1F", "31"},
		{"1/4", "0.25"},
		{"1/3", "1/3"},
		{"2.50", "2.5"},
	}

	for _, tt := range tests {
		n, ok := Parse(tt.text)
		if !ok {
			t.Errorf("Parse(%q) failed", tt.text)

			continue
		}

		if actual := n.(*num).String(); actual != tt.expected {
			t.Errorf("Parse(%q) = %s, expected %s", tt.text, actual, tt.expected)
		}
	}

	for _, s := range []string{"", "true", "0x", "1,2", "0xZZ"} {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Int(2).Equal(New("4/2")) {
		t.Fatal("2 should equal 4/2")
	}

	if Int(2).Equal(Int(3)) {
		t.Fatal("2 should not equal 3")
	}
}
