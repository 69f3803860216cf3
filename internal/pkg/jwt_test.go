package pkg

import "testing"

func TestGenerateAndParse(t *testing.T) {
	pair, err := GeneratePair(42, "organizer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("empty token pair")
	}

	claims, err := ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
	if claims.Role != "organizer" {
		t.Errorf("role = %q, want organizer", claims.Role)
	}
}

func TestParseAccessRejectsRefresh(t *testing.T) {
	pair, err := GeneratePair(1, "member")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// refresh 用的是另一把密钥，access 解析必须失败
	if _, err := ParseAccess(pair.RefreshToken); err == nil {
		t.Error("refresh token parsed as access token")
	}
}

func TestRefreshRoundTrip(t *testing.T) {
	pair, err := GeneratePair(7, "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	next, err := Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := ParseAccess(next.AccessToken)
	if err != nil {
		t.Fatalf("parse refreshed access: %v", err)
	}
	if claims.UserID != 7 || claims.Role != "admin" {
		t.Errorf("claims = (%d, %q), want (7, admin)", claims.UserID, claims.Role)
	}
}
