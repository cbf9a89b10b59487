package store

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/starford/mannaz/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "mannaz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func doc(id, body string, at time.Time) Document {
	return Document{ID: id, Body: json.RawMessage(body), CreatedAt: at, UpdatedAt: at}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM documents`).Scan(&count); err != nil {
		t.Fatalf("documents table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM current_docs`).Scan(&count); err != nil {
		t.Fatalf("current_docs table missing: %v", err)
	}
}

func TestFindCurrent_Empty(t *testing.T) {
	db := testDB(t)
	_, err := db.FindCurrent("portfolio")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestInsertCurrentRepoints(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC()

	if err := db.InsertCurrent("portfolio", doc("v1", `{"n":1}`, now)); err != nil {
		t.Fatalf("InsertCurrent v1: %v", err)
	}
	if err := db.InsertCurrent("portfolio", doc("v2", `{"n":2}`, now.Add(time.Second))); err != nil {
		t.Fatalf("InsertCurrent v2: %v", err)
	}

	cur, err := db.FindCurrent("portfolio")
	if err != nil {
		t.Fatalf("FindCurrent: %v", err)
	}
	if cur.ID != "v2" {
		t.Errorf("current = %q, want v2", cur.ID)
	}

	// v1 is still reachable as history.
	old, err := db.FindByID("portfolio", "v1")
	if err != nil {
		t.Fatalf("FindByID v1: %v", err)
	}
	if string(old.Body) != `{"n":1}` {
		t.Errorf("v1 body = %s", old.Body)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.FindByID("portfolio", "ghost")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFindMany_FilterSortPagination(t *testing.T) {
	db := testDB(t)
	base := time.Now().UTC()

	rows := []struct {
		id     string
		status string
		at     time.Time
	}{
		{"a", "new", base},
		{"b", "read", base.Add(1 * time.Second)},
		{"c", "new", base.Add(2 * time.Second)},
		{"d", "new", base.Add(3 * time.Second)},
	}
	for _, r := range rows {
		if err := db.InsertOne("contact_submissions", doc(r.id, `{"id":"`+r.id+`","status":"`+r.status+`"}`, r.at)); err != nil {
			t.Fatalf("InsertOne %s: %v", r.id, err)
		}
	}

	// Status filter, newest first.
	docs, err := db.FindMany("contact_submissions", map[string]string{"status": "new"}, 10, 0)
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3", len(docs))
	}
	if docs[0].ID != "d" || docs[1].ID != "c" || docs[2].ID != "a" {
		t.Errorf("order = %s,%s,%s, want d,c,a", docs[0].ID, docs[1].ID, docs[2].ID)
	}

	// Pagination.
	docs, err = db.FindMany("contact_submissions", nil, 2, 1)
	if err != nil {
		t.Fatalf("FindMany paginated: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
	if docs[0].ID != "c" || docs[1].ID != "b" {
		t.Errorf("page = %s,%s, want c,b", docs[0].ID, docs[1].ID)
	}
}

func TestFindMany_EmptyIsNotError(t *testing.T) {
	db := testDB(t)
	docs, err := db.FindMany("contact_submissions", map[string]string{"status": "read"}, 10, 0)
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("len = %d, want 0", len(docs))
	}
}

func TestUpdateFields_ShallowReplace(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC()
	if err := db.InsertOne("portfolio", doc("p1", `{"personal":{"name":"Old"},"projects":[{"id":1},{"id":2}]}`, now)); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	n, err := db.UpdateFields("portfolio", "p1", map[string]any{
		"projects": []map[string]any{{"id": 9}},
	}, now.Add(time.Second))
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if n != 1 {
		t.Fatalf("modified = %d, want 1", n)
	}

	got, err := db.FindByID("portfolio", "p1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(got.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// Untouched field survives, patched list is replaced wholesale.
	if string(body["personal"]) != `{"name":"Old"}` {
		t.Errorf("personal = %s", body["personal"])
	}
	if string(body["projects"]) != `[{"id":9}]` {
		t.Errorf("projects = %s", body["projects"])
	}
	if !got.UpdatedAt.After(now) {
		t.Errorf("updated_at not bumped: %v", got.UpdatedAt)
	}
}

func TestUpdateFields_MissingDocument(t *testing.T) {
	db := testDB(t)
	n, err := db.UpdateFields("portfolio", "ghost", map[string]any{"x": 1}, time.Now().UTC())
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if n != 0 {
		t.Errorf("modified = %d, want 0", n)
	}
}
