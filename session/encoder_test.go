package session

import (
	"errors"
	"testing"
)

func TestEncodeDecodeIdentity(t *testing.T) {
	rec := testRecord()
	rec.SavedAt = 123

	data, err := EncodeIdentity(&rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := DecodeIdentity(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.UserID != rec.UserID || out.Email != rec.Email || out.Role != rec.Role || out.SavedAt != 123 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.Token != "" {
		t.Fatal("token must never ride in the identity slot")
	}
}

func TestDecodeIdentityFailClosed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not json", []byte("garbage")},
		{"unknown version", []byte(`{"v":99,"id":1,"role":"admin"}`)},
		{"zero id", []byte(`{"v":2,"id":0,"role":"admin"}`)},
		{"missing role", []byte(`{"v":2,"id":1}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeIdentity(tc.data); !errors.Is(err, ErrRecordCorrupt) {
				t.Fatalf("expected ErrRecordCorrupt, got %v", err)
			}
		})
	}
}

func TestDecodeIdentityAcceptsV1(t *testing.T) {
	out, err := DecodeIdentity([]byte(`{"v":1,"id":3,"firstName":"A","lastName":"B","email":"a@b.c","role":"user"}`))
	if err != nil {
		t.Fatalf("decode v1: %v", err)
	}
	if out.UserID != 3 || out.Role != "user" {
		t.Fatalf("unexpected v1 record: %+v", out)
	}
}

func TestEncodeIdentityRejectsInvalid(t *testing.T) {
	rec := testRecord()
	rec.UserID = 0
	if _, err := EncodeIdentity(&rec); err == nil {
		t.Fatal("expected error for zero user id")
	}

	rec = testRecord()
	rec.Role = "  "
	if _, err := EncodeIdentity(&rec); err == nil {
		t.Fatal("expected error for blank role")
	}
}
