package menusync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "About us", cleanText("  About\tus\x00 "))
	assert.Equal(t, "Bold label", cleanText("<b>Bold</b> label"))
	assert.Equal(t, "a b", cleanText("a\n\n b"))
	assert.Equal(t, "café", cleanText("café"), "NFC normalized")
}

func TestCleanMultiline(t *testing.T) {
	assert.Equal(t, "first line\nsecond", cleanMultiline(" first \t line \r\nsecond\x07 "))
}

func TestCleanURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/about", "https://example.com/about"},
		{" http://example.com/a b ", "http://example.com/ab"},
		{"/shop/cart", "/shop/cart"},
		{"#top", "#top"},
		{"mailto:info@example.com", "mailto:info@example.com"},
		{"tel:+3212345", "tel:+3212345"},
		{"javascript:alert(1)", ""},
		{"//evil.example/x", ""},
		{"relative/path", ""},
		{"https://", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanURL(tt.in), tt.in)
	}
}

func TestCleanLinkTarget(t *testing.T) {
	assert.Equal(t, "_blank", cleanLinkTarget(" _BLANK "))
	assert.Equal(t, "", cleanLinkTarget("popup"))
}

func TestCleanClasses(t *testing.T) {
	got := cleanClasses([]string{"nav  main", "main", "bad<class>", "", "nav", "x_y-z"})
	assert.Equal(t, []string{"nav", "main", "badclass", "x_y-z"}, got)
	assert.Nil(t, cleanClasses(nil))
}

func TestCleanAttributes(t *testing.T) {
	got := cleanAttributes(map[string]string{" Data-Icon ": " star ", "<>": "dropped"})
	assert.Equal(t, map[string]string{"data-icon": "star"}, got)
	assert.Nil(t, cleanAttributes(map[string]string{}))
}

func TestCleanAttributes_CollidingKeys(t *testing.T) {
	attrs := map[string]string{"ICON ": "c", "Icon": "b", "icon": "a", "data-x": "x"}
	for i := 0; i < 50; i++ {
		got := cleanAttributes(attrs)
		// "ICON " < "Icon" < "icon" byte-wise, so the upper-case key wins every time.
		assert.Equal(t, map[string]string{"icon": "c", "data-x": "x"}, got)
	}
}
