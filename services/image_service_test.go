package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantBody string
		wantErr  bool
	}{
		{
			name:     "geçerli jpeg",
			input:    "data:image/jpeg;base64,aGVsbG8=",
			wantType: "image/jpeg",
			wantBody: "hello",
		},
		{
			name:     "content type yoksa octet-stream",
			input:    "data:;base64,aGVsbG8=",
			wantType: "application/octet-stream",
			wantBody: "hello",
		},
		{name: "data öneki yok", input: "https://ornek/foto.jpg", wantErr: true},
		{name: "base64 işareti yok", input: "data:image/png,abc", wantErr: true},
		{name: "bozuk base64", input: "data:image/png;base64,%%%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, body, err := decodeDataURI(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDataURI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}
