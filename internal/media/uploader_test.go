package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
	}{
		{"already small", 400, 300, 400, 300},
		{"exact bound", 512, 512, 512, 512},
		{"wide", 1024, 512, 512, 256},
		{"tall", 512, 1024, 256, 512},
		{"square large", 2048, 2048, 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fit(tt.w, tt.h, 512)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
