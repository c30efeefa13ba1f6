package enums

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    Category
		wantErr bool
	}{
		{raw: "Supercars", want: CategorySupercars},
		{raw: "Art & Craft", want: CategoryArtAndCraft},
		{raw: "Anime Figurines", want: CategoryAnimeFigurines},
		{raw: "supercars", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseCategory(%q) expected error", tt.raw)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseCategory(%q) = %q, %v", tt.raw, got, err)
		}
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusShipped, OrderStatusDelivered} {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if OrderStatus("Cancelled").IsValid() {
		t.Fatal("expected Cancelled to be invalid")
	}
}

func TestRarityZeroValueIsUntagged(t *testing.T) {
	var r Rarity
	if r.IsValid() {
		t.Fatal("zero rarity must not parse as a tag")
	}
	if _, err := ParseRarity("Limited"); err != nil {
		t.Fatalf("ParseRarity: %v", err)
	}
}

func TestStorageBackendIsSQL(t *testing.T) {
	sql := map[StorageBackend]bool{
		StorageBackendMemory:   false,
		StorageBackendFile:     false,
		StorageBackendSQLite:   true,
		StorageBackendPostgres: true,
		StorageBackendRedis:    false,
	}
	for backend, want := range sql {
		if backend.IsSQL() != want {
			t.Fatalf("%s.IsSQL() = %v, want %v", backend, !want, want)
		}
	}
	if _, err := ParseStorageBackend("s3"); err == nil {
		t.Fatal("expected unknown backend to fail")
	}
}

func TestParsePage(t *testing.T) {
	if p, err := ParsePage("collectors-guide"); err != nil || p != PageCollectorsGuide {
		t.Fatalf("ParsePage = %q, %v", p, err)
	}
	if _, err := ParsePage("Home"); err == nil {
		t.Fatal("pages are lower-case slugs")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	got, err := ParsePaymentMethod("")
	if err != nil || got != PaymentMethodUPI {
		t.Fatalf("empty input should default to UPI, got %q, %v", got, err)
	}
	got, err = ParsePaymentMethod("COD")
	if err != nil || got != PaymentMethodCOD {
		t.Fatalf("ParsePaymentMethod(COD) = %q, %v", got, err)
	}
	if _, err := ParsePaymentMethod("card"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
