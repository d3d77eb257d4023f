// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/models"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &documentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetDocument_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	state := `{"name":"glycolysis","organisms":["Homo sapiens"],"entries":[{"id":"e1","group":null}]}`
	rows := sqlmock.NewRows([]string{"state"}).AddRow(state)

	mock.ExpectQuery("SELECT state FROM documents").
		WithArgs("doc-1").
		WillReturnRows(rows)

	got, err := repo.GetDocument(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "glycolysis" {
		t.Errorf("expected name glycolysis, got %s", got.Name)
	}
	if len(got.Entries) != 1 || got.Entries[0].ID != "e1" {
		t.Errorf("unexpected entries: %+v", got.Entries)
	}
}

func TestGetDocument_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT state FROM documents").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDocument(context.Background(), "ghost")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestSaveDocument_Upsert(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("doc-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	state := models.DocumentState{Name: "glycolysis"}
	if err := repo.SaveDocument(context.Background(), "doc-1", state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveDocument_ZeroRowsAffected(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO documents").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveDocument(context.Background(), "doc-1", models.DocumentState{})
	if !errors.Is(err, ErrDocumentNotSaved) {
		t.Fatalf("expected ErrDocumentNotSaved, got %v", err)
	}
}

func TestGetElementPayload_Success(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow(`{"id":"e1","kind":"macromolecule","label":"HK1","sbo_term":"SBO:0000245"}`)

	mock.ExpectQuery("SELECT payload FROM elements").
		WithArgs("doc-1", "e1").
		WillReturnRows(rows)

	got, err := repo.GetElementPayload(context.Background(), "doc-1", "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Label != "HK1" || got.Kind != models.KindMacromolecule {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestGetElementPayload_NotFound(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload FROM elements").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetElementPayload(context.Background(), "doc-1", "ghost")
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}

func TestSaveElementPayload(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO elements").
		WithArgs("doc-1", "e1", "complex", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	payload := models.ElementPayload{ID: "e1", Kind: models.KindComplex, Label: "PFK"}
	if err := repo.SaveElementPayload(context.Background(), "doc-1", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListElementPayloads(t *testing.T) {
	repo, mock, db := newTestDocumentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow(`{"id":"e1","kind":"macromolecule","label":"HK1"}`).
		AddRow(`{"id":"e2","kind":"process","label":"phosphorylation"}`)

	mock.ExpectQuery("SELECT payload FROM elements").
		WithArgs("doc-1").
		WillReturnRows(rows)

	got, err := repo.ListElementPayloads(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].ID != "e2" {
		t.Errorf("unexpected payloads: %+v", got)
	}
}
