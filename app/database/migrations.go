package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []func(*sql.DB) error{
		createAlunosTable,
		createAlunoAnoTable,
		createEtapasTable,
		createNotasTable,
		createLancamentosTable,
		addTipoColumn,
		backfillTipoFromLabel,
		seedEtapas,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAlunosTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS alunos (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL,
			serie TEXT NOT NULL,
			ativo BOOLEAN NOT NULL DEFAULT true
		);
	`
	return exec(db, "alunos table", query)
}

func createAlunoAnoTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS aluno_ano (
			aluno TEXT NOT NULL,
			ano INTEGER NOT NULL,
			serie TEXT NOT NULL,
			PRIMARY KEY (aluno, ano)
		);
	`
	return exec(db, "aluno_ano table", query)
}

func createEtapasTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS etapas (
			id INTEGER PRIMARY KEY,
			nome TEXT NOT NULL,
			valor_total NUMERIC NOT NULL,
			ordem INTEGER NOT NULL
		);
	`
	return exec(db, "etapas table", query)
}

func createNotasTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS notas (
			id BIGSERIAL PRIMARY KEY,
			criado_em TIMESTAMPTZ NOT NULL DEFAULT now(),
			ano INTEGER NOT NULL,
			aluno TEXT NOT NULL,
			etapa INTEGER NOT NULL CHECK (etapa BETWEEN 1 AND 3),
			disciplina TEXT NOT NULL DEFAULT '',
			avaliacao TEXT NOT NULL DEFAULT '',
			tipo TEXT NOT NULL DEFAULT 'regular' CHECK (tipo IN ('regular', 'ajuste')),
			valor_max NUMERIC NOT NULL DEFAULT 0,
			nota NUMERIC,
			obs TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_notas_contexto ON notas (aluno, ano, etapa);
	`
	return exec(db, "notas table", query)
}

func createLancamentosTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS notas_lancamentos (
			id BIGSERIAL PRIMARY KEY,
			criado_em TIMESTAMPTZ NOT NULL DEFAULT now(),
			aluno TEXT NOT NULL,
			serie TEXT NOT NULL,
			etapa INTEGER NOT NULL CHECK (etapa BETWEEN 1 AND 3),
			disciplina TEXT NOT NULL,
			avaliacao TEXT NOT NULL,
			valor_max NUMERIC NOT NULL,
			valor_media NUMERIC NOT NULL,
			nota NUMERIC
		);
	`
	return exec(db, "notas_lancamentos table", query)
}

// addTipoColumn covers databases created before the explicit tipo
// column existed.
func addTipoColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'notas'
				AND column_name = 'tipo'
			) THEN
				ALTER TABLE notas ADD COLUMN tipo TEXT NOT NULL DEFAULT 'regular'
					CHECK (tipo IN ('regular', 'ajuste'));
				RAISE NOTICE 'Added tipo column to notas';
			END IF;
		END $$;
	`
	return exec(db, "notas.tipo column", query)
}

// backfillTipoFromLabel marks rows written back when the "Ajuste" label
// doubled as the balancing-row tag.
func backfillTipoFromLabel(db *sql.DB) error {
	query := `
		UPDATE notas
		SET tipo = 'ajuste'
		WHERE tipo = 'regular' AND lower(trim(avaliacao)) = 'ajuste';
	`
	return exec(db, "notas.tipo backfill", query)
}

func seedEtapas(db *sql.DB) error {
	query := `
		INSERT INTO etapas (id, nome, valor_total, ordem) VALUES
			(1, '1ª etapa', 30, 1),
			(2, '2ª etapa', 30, 2),
			(3, '3ª etapa', 40, 3)
		ON CONFLICT (id) DO NOTHING;
	`
	return exec(db, "etapas seed", query)
}

func exec(db *sql.DB, label, query string) error {
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for %s: %v", label, err)
		return err
	}
	return nil
}
