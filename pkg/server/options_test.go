package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr bool
	}{
		{name: "defaults", mutate: func(o *Options) {}},
		{name: "debug mode", mutate: func(o *Options) { o.Mode = "debug" }},
		{name: "test mode", mutate: func(o *Options) { o.Mode = "test" }},
		{name: "empty addr", mutate: func(o *Options) { o.Addr = "" }, wantErr: true},
		{name: "bogus mode", mutate: func(o *Options) { o.Mode = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewOptions()
			tt.mutate(opts)

			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	assert.Equal(t, ":3000", opts.Addr)
	assert.Equal(t, "release", opts.Mode)
}
