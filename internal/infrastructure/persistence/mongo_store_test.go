package persistence

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

func TestIDFilterWithObjectID(t *testing.T) {
	hex := "665f1c2e9b1e8a0012345678"
	filter := IDFilter(hex)

	clauses := filter["$or"].(bson.A)
	if len(clauses) != 2 {
		t.Fatalf("expected two clauses, got %v", clauses)
	}
	if clauses[0].(bson.M)["id"] != hex {
		t.Fatalf("expected legacy id clause, got %v", clauses[0])
	}
	oid, ok := clauses[1].(bson.M)["_id"].(primitive.ObjectID)
	if !ok || oid.Hex() != hex {
		t.Fatalf("expected ObjectID clause, got %v", clauses[1])
	}
}

func TestIDFilterWithPlainString(t *testing.T) {
	filter := IDFilter("abc123")

	clauses := filter["$or"].(bson.A)
	if got := clauses[1].(bson.M)["_id"]; got != "abc123" {
		t.Fatalf("expected string _id clause, got %#v", got)
	}
}

func TestToBSONDropsIDs(t *testing.T) {
	doc := toBSON(entity.Record{
		"_id":      "x",
		"id":       "y",
		"customer": "Budi",
		"payment":  entity.Record{"status": "PAID"},
		"items":    []interface{}{entity.Record{"product": "Teh"}},
	})

	if _, ok := doc["_id"]; ok {
		t.Fatalf("_id must not be written")
	}
	if _, ok := doc["id"]; ok {
		t.Fatalf("id must not be written")
	}
	if _, ok := doc["payment"].(bson.M); !ok {
		t.Fatalf("expected nested payment as bson.M, got %T", doc["payment"])
	}
	if _, ok := doc["items"].(bson.A); !ok {
		t.Fatalf("expected items as bson.A, got %T", doc["items"])
	}
}

func TestFromBSONConvertsDriverTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	amount, err := primitive.ParseDecimal128("14000.50")
	if err != nil {
		t.Fatal(err)
	}

	doc := fromBSON(bson.M{
		"_id":       oid,
		"createdAt": primitive.NewDateTimeFromTime(created),
		"payment":   bson.D{{Key: "amountPaid", Value: amount}},
		"items":     bson.A{bson.M{"product": "Teh"}},
	})

	if doc["_id"] != oid.Hex() {
		t.Fatalf("expected hex id, got %v", doc["_id"])
	}
	if ts, ok := doc["createdAt"].(time.Time); !ok || !ts.Equal(created) {
		t.Fatalf("expected time.Time, got %#v", doc["createdAt"])
	}
	payment, ok := doc["payment"].(entity.Record)
	if !ok || payment["amountPaid"] != 14000.5 {
		t.Fatalf("unexpected payment %#v", doc["payment"])
	}
	items, ok := doc["items"].([]interface{})
	if !ok || items[0].(entity.Record)["product"] != "Teh" {
		t.Fatalf("unexpected items %#v", doc["items"])
	}
}
