package api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ironlabs/basic-auth/internal/core/domain"
)

func TestRenderer_Views(t *testing.T) {
	r := NewRenderer()

	cases := []struct {
		view string
		data interface{}
		want string
	}{
		{"index.html", nil, "Welcome"},
		{"signup.html", map[string]string{"ErrorMessage": "boom", "Username": "alice", "Email": ""}, "boom"},
		{"login.html", map[string]string{"ErrorMessage": "", "Email": "a@b.com"}, "a@b.com"},
		{"profile.html", &domain.User{Username: "alice", Email: "alice@example.com"}, "Hello, alice"},
		{"error.html", errorPage{Status: 500, Message: "internal server error"}, "internal server error"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := r.Render(&buf, tc.view, tc.data, nil); err != nil {
			t.Fatalf("%s: render failed: %v", tc.view, err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Fatalf("%s: expected %q in output:\n%s", tc.view, tc.want, buf.String())
		}
	}
}

func TestRenderer_EscapesUserInput(t *testing.T) {
	r := NewRenderer()

	var buf bytes.Buffer
	data := map[string]string{"ErrorMessage": "", "Username": `<script>alert(1)</script>`, "Email": ""}
	if err := r.Render(&buf, "signup.html", data, nil); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Fatalf("user input rendered unescaped:\n%s", buf.String())
	}
}
