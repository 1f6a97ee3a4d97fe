package mailcheck

import (
	"strings"
	"testing"
)

func TestValidStructure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "plain address",
			input: "user@example.com",
			want:  true,
		},
		{
			name:  "minimal address",
			input: "a@b.co",
			want:  true,
		},
		{
			name:  "dotted local part",
			input: "first.last@example.com",
			want:  true,
		},
		{
			name:  "atext specials in local part",
			input: "o'brien+tag!#$%&@example.com",
			want:  true,
		},
		{
			name:  "underscore in local part",
			input: "contact_@live.com",
			want:  true,
		},
		{
			name:  "digits and hyphens in labels",
			input: "user@mail-01.example7.com",
			want:  true,
		},
		{
			name:  "punycode label",
			input: "user@example.xn--p1ai",
			want:  true,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
		{
			name:  "no at sign",
			input: "user.example.com",
			want:  false,
		},
		{
			name:  "empty local part",
			input: "@example.com",
			want:  false,
		},
		{
			name:  "empty domain",
			input: "user@",
			want:  false,
		},
		{
			name:  "two at signs",
			input: "a@b@c.co",
			want:  false,
		},
		{
			name:  "leading dot in local part",
			input: ".user@example.com",
			want:  false,
		},
		{
			name:  "trailing dot in local part",
			input: "user.@example.com",
			want:  false,
		},
		{
			name:  "double dot in local part",
			input: "user..name@example.com",
			want:  false,
		},
		{
			name:  "space in local part",
			input: "us er@example.com",
			want:  false,
		},
		{
			name:  "unicode local part",
			input: "ユーザー@example.com",
			want:  false,
		},
		{
			name:  "single label domain",
			input: "user@localhost",
			want:  false,
		},
		{
			name:  "leading dot in domain",
			input: "user@.example.com",
			want:  false,
		},
		{
			name:  "trailing dot in domain",
			input: "user@example.com.",
			want:  false,
		},
		{
			name:  "empty label in domain",
			input: "user@example..com",
			want:  false,
		},
		{
			name:  "label starts with hyphen",
			input: "user@-example.com",
			want:  false,
		},
		{
			name:  "label ends with hyphen",
			input: "user@example-.com",
			want:  false,
		},
		{
			name:  "underscore in domain",
			input: "user@ex_ample.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validStructure(tt.input); got != tt.want {
				t.Errorf("validStructure(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidStructureLengthBoundaries(t *testing.T) {
	t.Run("local part of 64 accepted", func(t *testing.T) {
		addr := strings.Repeat("a", 64) + "@example.com"
		if !validStructure(addr) {
			t.Errorf("validStructure rejected a 64-octet local part")
		}
	})

	t.Run("local part of 65 rejected", func(t *testing.T) {
		addr := strings.Repeat("a", 65) + "@example.com"
		if validStructure(addr) {
			t.Errorf("validStructure accepted a 65-octet local part")
		}
	})

	t.Run("label of 63 accepted", func(t *testing.T) {
		addr := "user@" + strings.Repeat("a", 63) + ".com"
		if !validStructure(addr) {
			t.Errorf("validStructure rejected a 63-octet label")
		}
	})

	t.Run("label of 64 rejected", func(t *testing.T) {
		addr := "user@" + strings.Repeat("a", 64) + ".com"
		if validStructure(addr) {
			t.Errorf("validStructure accepted a 64-octet label")
		}
	})

	t.Run("total of 254 accepted", func(t *testing.T) {
		// 64 + 1 + 63 + 1 + 63 + 1 + 57 + 4 = 254
		addr := strings.Repeat("a", 64) + "@" +
			strings.Repeat("b", 63) + "." +
			strings.Repeat("c", 63) + "." +
			strings.Repeat("d", 57) + ".com"
		if len(addr) != 254 {
			t.Fatalf("fixture length = %d, want 254", len(addr))
		}
		if !validStructure(addr) {
			t.Errorf("validStructure rejected a 254-octet address")
		}
	})

	t.Run("total of 255 rejected", func(t *testing.T) {
		addr := strings.Repeat("a", 64) + "@" +
			strings.Repeat("b", 63) + "." +
			strings.Repeat("c", 63) + "." +
			strings.Repeat("d", 58) + ".com"
		if len(addr) != 255 {
			t.Fatalf("fixture length = %d, want 255", len(addr))
		}
		if validStructure(addr) {
			t.Errorf("validStructure accepted a 255-octet address")
		}
	})
}
