package middleware

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBasicHeader(t *testing.T) {
	encode := func(s string) string {
		return base64.StdEncoding.EncodeToString([]byte(s))
	}

	cases := []struct {
		name         string
		header       string
		wantEmail    string
		wantPassword string
		wantOK       bool
	}{
		{
			name:         "well formed",
			header:       "Basic " + encode("a@x.com:pw1"),
			wantEmail:    "a@x.com",
			wantPassword: "pw1",
			wantOK:       true,
		},
		{
			name:         "password containing colons splits at first colon",
			header:       "Basic " + encode("a@x.com:pw:with:colons"),
			wantEmail:    "a@x.com",
			wantPassword: "pw:with:colons",
			wantOK:       true,
		},
		{
			name:         "empty password",
			header:       "Basic " + encode("a@x.com:"),
			wantEmail:    "a@x.com",
			wantPassword: "",
			wantOK:       true,
		},
		{name: "empty header", header: "", wantOK: false},
		{name: "missing scheme", header: encode("a@x.com:pw1"), wantOK: false},
		{name: "wrong scheme", header: "Bearer " + encode("a@x.com:pw1"), wantOK: false},
		{name: "invalid base64", header: "Basic !!!not-base64!!!", wantOK: false},
		{name: "no colon in payload", header: "Basic " + encode("a@x.com"), wantOK: false},
		{name: "empty email", header: "Basic " + encode(":pw1"), wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, password, ok := decodeBasicHeader(tc.header)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantEmail, email)
				assert.Equal(t, tc.wantPassword, password)
			}
		})
	}
}
