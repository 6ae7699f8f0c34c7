package utils

import "testing"

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"root", "#/", ""},
		{"object field", "#/title", "title"},
		{"array element field", "#/0/dueDateTime", "[0].dueDateTime"},
		{"nested", "/2/a/b", "[2].a.b"},
		{"escaped slash", "#/a~1b", "a/b"},
		{"escaped tilde", "#/a~0b", "a~b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JSONPointerToPath(tt.in); got != tt.want {
				t.Errorf("JSONPointerToPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
