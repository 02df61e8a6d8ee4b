package password

import "testing"

func TestHashVerifyRoundTrip(t *testing.T) {
	hashed, err := Hash("Password123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hashed == "Password123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify("Password123", hashed) {
		t.Fatal("Verify rejected the original password")
	}
	if Verify("Password124", hashed) {
		t.Fatal("Verify accepted a different password")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("Password123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("Password123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ (random salt)")
	}
	if !Verify("Password123", first) || !Verify("Password123", second) {
		t.Fatal("both hashes must verify against the original password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if Verify("Password123", "not-a-bcrypt-hash") {
		t.Fatal("Verify accepted a malformed hash")
	}
	if Verify("Password123", "") {
		t.Fatal("Verify accepted an empty hash")
	}
}
