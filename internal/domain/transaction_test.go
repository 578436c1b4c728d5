package domain

import "testing"

func TestMetadata_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		wantNil bool
		wantKey string
		wantVal string
	}{
		{name: "valid json bytes", src: []byte(`{"eventId":"ev-1"}`), wantKey: "eventId", wantVal: "ev-1"},
		{name: "valid json string", src: `{"eventId":"ev-1"}`, wantKey: "eventId", wantVal: "ev-1"},
		{name: "malformed json treated as absent", src: []byte(`{not json`), wantNil: true},
		{name: "null column", src: nil, wantNil: true},
		{name: "unexpected driver type", src: 42, wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Metadata
			if err := m.Scan(tt.src); err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if tt.wantNil {
				if m != nil {
					t.Fatalf("expected nil metadata, got %v", m)
				}
				return
			}
			if got, _ := m.stringKey(tt.wantKey); got != tt.wantVal {
				t.Fatalf("expected %s=%q, got %q", tt.wantKey, tt.wantVal, got)
			}
		})
	}
}

func TestMetadata_Accessors(t *testing.T) {
	m := Metadata{
		"event_id":      "ev-1",
		"genderId":      "g-1",
		"registrationId": "reg-1",
		"customer_name": "Ana Souza",
		"Email":         "ana@example.com",
		"amount":        12.5, // non-string values are never returned by accessors
	}

	if v, ok := m.EventID(); !ok || v != "ev-1" {
		t.Fatalf("EventID = %q, %v", v, ok)
	}
	if v, ok := m.GenderID(); !ok || v != "g-1" {
		t.Fatalf("GenderID = %q, %v", v, ok)
	}
	if v, ok := m.RegistrationID(); !ok || v != "reg-1" {
		t.Fatalf("RegistrationID = %q, %v", v, ok)
	}
	if v, ok := m.CustomerName(); !ok || v != "Ana Souza" {
		t.Fatalf("CustomerName = %q, %v", v, ok)
	}
	if v, ok := m.CustomerEmail(); !ok || v != "ana@example.com" {
		t.Fatalf("CustomerEmail = %q, %v", v, ok)
	}

	var empty Metadata
	if _, ok := empty.EventID(); ok {
		t.Fatal("expected no event id on nil metadata")
	}
	if _, ok := (Metadata{"eventId": 7}).EventID(); ok {
		t.Fatal("expected non-string value to be ignored")
	}
}
