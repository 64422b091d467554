package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		current string
		link    string
		want    bool
	}{
		{current: "/about", link: "/about", want: true},
		{current: "/about", link: "/", want: false},
		{current: "/about/", link: "/about", want: false},
		{current: "/", link: "/", want: true},
		{current: "/About", link: "/about", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActive(tt.current, tt.link), "%q vs %q", tt.current, tt.link)
	}
}

func TestActiveIndex(t *testing.T) {
	links := []NavLink{
		{Name: "Work", Path: "/"},
		{Name: "About", Path: "/about"},
		{Name: "Notes", Path: "/notes"},
	}

	assert.Equal(t, 0, ActiveIndex("/", links))
	assert.Equal(t, 2, ActiveIndex("/notes", links))
	assert.Equal(t, -1, ActiveIndex("/notes/", links))
	assert.Equal(t, -1, ActiveIndex("/", nil))
}
