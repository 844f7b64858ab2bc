package models

import "testing"

func TestPasswordHashing(t *testing.T) {
	var u User
	if err := u.HashPassword("correct horse battery staple"); err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if u.Password == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}
	if !u.CheckPassword("correct horse battery staple") {
		t.Fatal("correct password rejected")
	}
	if u.CheckPassword("wrong password") {
		t.Fatal("wrong password accepted")
	}
}
