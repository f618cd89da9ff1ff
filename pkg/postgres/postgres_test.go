package postgres

import (
	"testing"

	"fisk-dimension/pkg/config"
)

func TestDSN(t *testing.T) {
	got := DSN(&config.DatabaseConfig{
		Host: "db", Port: "5432", User: "fisk", Password: "secret", DBName: "ledger", SSLMode: "disable",
	})
	want := "host=db port=5432 user=fisk password=secret dbname=ledger sslmode=disable"
	if got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
