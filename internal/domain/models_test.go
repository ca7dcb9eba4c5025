package domain

import "testing"

func TestUserAccessors(t *testing.T) {
	u := User{"id": float64(42), "email": "a@example.com", "age": 3}
	if u.ID() != "42" {
		t.Fatalf("expected id 42, got %q", u.ID())
	}
	if u.Field("email") != "a@example.com" {
		t.Fatalf("unexpected email %q", u.Field("email"))
	}
	if u.Field("age") != "" {
		t.Fatalf("expected empty string for non-string field")
	}

	var nilUser User
	if nilUser.ID() != "" || nilUser.Field("email") != "" {
		t.Fatalf("expected empty values on nil user")
	}
	if (User{"id": "u-1"}).ID() != "u-1" {
		t.Fatalf("expected string id")
	}
}
