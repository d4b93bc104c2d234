package query

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddMergesByProtein(t *testing.T) {
	qs := new(Queries)
	qs.Add("1abc", "1abc.pdb", "A")
	qs.Add("2def", "2def.pdb", "A")
	qs.Add("1abc", "1abc.pdb", "B")
	qs.Add("1abc", "1abc.pdb", "A") //duplicate chain, ignored
	if qs.Len() != 2 {
		t.Fatal("expected 2 queries, got", qs.Len())
	}
	q := qs.Get("1abc")
	if q == nil {
		t.Fatal("query for 1abc not found")
	}
	if len(q.ChainIDs) != 2 || q.ChainIDs[0] != "A" || q.ChainIDs[1] != "B" {
		t.Error("chain ids must be unique and keep first-seen order, got", q.ChainIDs)
	}
	if qs.List()[0].ProteinID != "1abc" || qs.List()[1].ProteinID != "2def" {
		t.Error("queries must keep insertion order")
	}
	if qs.Contains("3xyz") {
		t.Error("Contains should be false for an unknown protein")
	}
}

func TestReadListMissing(t *testing.T) {
	_, err := ReadList(filepath.Join(t.TempDir(), "nowhere.csv"), true)
	qerr, ok := err.(Error)
	if !ok || qerr.Message() != ListNotFound {
		t.Fatal("expected a list-not-found error, got", err)
	}
	if !qerr.Critical() {
		t.Error("a missing query list must be critical")
	}
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	content := "protein_id,file_path,chain_id\n" +
		"1abc,1abc.pdb,A\n" +
		"1abc,1abc.pdb,B\n" +
		"2def,2def.pdb,C\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	qs, err := ReadList(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if qs.Len() != 2 {
		t.Fatal("expected 2 queries, got", qs.Len())
	}
	if got := qs.Get("1abc").ChainIDs; len(got) != 2 {
		t.Error("expected chains A,B for 1abc, got", got)
	}
}

func TestReadListBadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.csv")
	if err := os.WriteFile(path, []byte("h,h,h\nonly-one-field\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadList(path, true)
	qerr, ok := err.(Error)
	if !ok || qerr.Message() != BadRow {
		t.Fatal("expected a bad-row error, got", err)
	}
}

func TestListRoundTrip(t *testing.T) {
	qs := new(Queries)
	qs.Add("1abc", "1abc.pdb", "A")
	qs.Add("1abc", "1abc.pdb", "B")
	qs.Add("2def", "2def.cif", "X")
	var buf bytes.Buffer
	if err := qs.WriteList(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := readList(&buf, true)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != qs.Len() {
		t.Fatal("round trip changed the number of queries")
	}
	for i, q := range qs.List() {
		got := back.List()[i]
		if got.ProteinID != q.ProteinID || got.Path != q.Path {
			t.Error("round trip changed query", i)
		}
		if strings.Join(got.ChainIDs, "") != strings.Join(q.ChainIDs, "") {
			t.Error("round trip changed chains of", q.ProteinID)
		}
	}
}

func TestProteinIDFromFile(t *testing.T) {
	for name, want := range map[string]string{
		"1abc.pdb.gz": "1abc",
		"2def.cif":    "2def",
		"nodots":      "nodots",
	} {
		if got := proteinIDFromFile(name); got != want {
			t.Error(name, "->", got, "want", want)
		}
	}
}
