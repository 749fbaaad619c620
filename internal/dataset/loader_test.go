package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCSV(t, `Order ID,Amount,Profit,Quantity,Category,Sub-Category
B-25601,1275,-1148,7,Furniture,Bookcases
B-25602,66,-12,5,Clothing,Stole
`)

	records, err := New(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	want := domain.OrderRecord{
		OrderID: "B-25601", Amount: 1275, Profit: -1148,
		Quantity: 7, Category: "Furniture", SubCategory: "Bookcases",
	}
	if records[0] != want {
		t.Errorf("records[0] = %+v, want %+v", records[0], want)
	}
}

func TestLoadExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, `Order ID,Amount,Profit,Quantity,Category,Sub-Category,Notes
B-1,10,2,1,Clothing,Saree,irrelevant
`)

	records, err := New(path, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].SubCategory != "Saree" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCSV(t, `Order ID,Amount,Quantity,Category,Sub-Category
B-1,10,1,Clothing,Saree
`)

	_, err := New(path, zap.NewNop()).Load()
	if err == nil {
		t.Fatal("expected error for missing Profit column")
	}
}

func TestLoadMalformedNumeric(t *testing.T) {
	path := writeCSV(t, `Order ID,Amount,Profit,Quantity,Category,Sub-Category
B-1,ten,2,1,Clothing,Saree
`)

	_, err := New(path, zap.NewNop()).Load()
	if !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("err = %v, want ErrMalformedRecord", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv"), zap.NewNop()).Load()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDocuments(t *testing.T) {
	path := writeCSV(t, `Order ID,Amount,Profit,Quantity,Category,Sub-Category
B-1,50,-5,1,Furniture,Chairs
B-2,600,80,9,Electronics,Phones
`)

	docs, err := New(path, zap.NewNop()).LoadDocuments()
	if err != nil {
		t.Fatalf("LoadDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].ID != "order_0" || docs[1].ID != "order_1" {
		t.Errorf("ids = %q, %q", docs[0].ID, docs[1].ID)
	}
	if docs[1].AmountRange != domain.AmountHigh {
		t.Errorf("docs[1].AmountRange = %q", docs[1].AmountRange)
	}
}
