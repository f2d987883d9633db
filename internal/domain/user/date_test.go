package user

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2018, time.January, 1)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(b) != `"2018-01-01"` {
		t.Errorf("Expected \"2018-01-01\", got %s", b)
	}
}

func TestDate_MarshalJSON_ZeroIsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Expected null, got %s", b)
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2018-02-02"`), &d); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !d.Equal(NewDate(2018, time.February, 2).Time) {
		t.Errorf("Expected 2018-02-02, got %s", d)
	}

	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("Expected no error for null, got %v", err)
	}
	if !d.IsZero() {
		t.Errorf("Expected zero date for null, got %s", d)
	}
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"02/02/2018"`), &d); err == nil {
		t.Error("Expected an error for a non-ISO date")
	}
}

func TestUpdateUserRequest_ApplyTo(t *testing.T) {
	u := &User{
		Username: "ivan",
		Email:    "ivan@test",
		Birthday: NewDate(2018, time.January, 1),
	}

	username := "ivan2"
	(&UpdateUserRequest{Username: &username}).ApplyTo(u)

	if u.Username != "ivan2" {
		t.Errorf("Expected username ivan2, got %s", u.Username)
	}
	if u.Email != "ivan@test" {
		t.Errorf("Expected absent email field to leave value untouched, got %s", u.Email)
	}
	if !u.Birthday.Equal(NewDate(2018, time.January, 1).Time) {
		t.Errorf("Expected absent birthday field to leave value untouched, got %s", u.Birthday)
	}
}
