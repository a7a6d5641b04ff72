package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	configurator "furniture-configurator/internal/configurator/models"
	"furniture-configurator/internal/projects/models"

	"github.com/ncruces/go-sqlite3"
)

// ============================================================
// SQLite Repository
// ============================================================

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init запускает миграции.
func (r *Repository) Init(ctx context.Context, migrationsPath string) error {
	if err := r.runMigrations(ctx, migrationsPath); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Ping проверяет соединение с базой (для readiness probe).
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ============================================================
// Projects
// ============================================================

func (r *Repository) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO projects (id, name, description)
        VALUES (?, ?, ?)
    `, p.ID, p.Name, p.Description)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return r.GetProject(ctx, p.ID)
}

func (r *Repository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, description, created_at
        FROM projects
        WHERE id = ?
    `, id)

	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, description, created_at
        FROM projects
        ORDER BY created_at, rowid
    `)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ============================================================
// Cabinets & Parts
// ============================================================

// SaveCabinet сохраняет шкаф и его детали в одной транзакции.
func (r *Repository) SaveCabinet(ctx context.Context, cab models.Cabinet, parts []models.StoredPart) error {
	params, err := json.Marshal(cab.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	mats, err := json.Marshal(cab.Materials)
	if err != nil {
		return fmt.Errorf("encode materials: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO cabinets (id, project_id, furniture_id, type, frame, width, height, depth, params_json, materials_json)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, cab.ID, cab.ProjectID, cab.FurnitureID, string(cab.Type), string(cab.Frame),
		cab.Width, cab.Height, cab.Depth, string(params), string(mats))
	if err != nil {
		if isConstraint(err) {
			return fmt.Errorf("cabinet %s in project %s: %w", cab.ID, cab.ProjectID, ErrDuplicate)
		}
		return fmt.Errorf("insert cabinet: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO parts (id, project_id, cabinet_id, seq, role, material_id, part_json)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return fmt.Errorf("prepare parts: %w", err)
	}
	defer stmt.Close()

	for _, p := range parts {
		data, err := json.Marshal(p.Part)
		if err != nil {
			return fmt.Errorf("encode part %s: %w", p.ID, err)
		}
		_, err = stmt.ExecContext(ctx, p.ID, p.ProjectID, p.CabinetID, p.Seq,
			string(p.Part.CabinetMetadata.Role), p.Part.MaterialID, string(data))
		if err != nil {
			return fmt.Errorf("insert part %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (r *Repository) ListCabinets(ctx context.Context, projectID string) ([]models.Cabinet, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT c.id, c.project_id, c.furniture_id, c.type, c.frame, c.width, c.height, c.depth,
               c.params_json, c.materials_json, c.created_at,
               (SELECT COUNT(*) FROM parts p WHERE p.project_id = c.project_id AND p.cabinet_id = c.id)
        FROM cabinets c
        WHERE c.project_id = ?
        ORDER BY c.created_at, c.rowid
    `, projectID)
	if err != nil {
		return nil, fmt.Errorf("list cabinets: %w", err)
	}
	defer rows.Close()

	cabinets := []models.Cabinet{}
	for rows.Next() {
		var (
			c            models.Cabinet
			typ, frame   string
			params, mats string
		)
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.FurnitureID, &typ, &frame, &c.Width, &c.Height, &c.Depth,
			&params, &mats, &c.CreatedAt, &c.PartCount); err != nil {
			return nil, err
		}
		c.Type = configurator.CabinetType(typ)
		c.Frame = configurator.CoordinateFrame(frame)
		if err := json.Unmarshal([]byte(params), &c.Params); err != nil {
			return nil, fmt.Errorf("decode params of %s: %w", c.ID, err)
		}
		if err := json.Unmarshal([]byte(mats), &c.Materials); err != nil {
			return nil, fmt.Errorf("decode materials of %s: %w", c.ID, err)
		}
		cabinets = append(cabinets, c)
	}
	return cabinets, rows.Err()
}

// ListParts возвращает детали проекта в порядке генерации. Пустой
// cabinetID означает все шкафы проекта.
func (r *Repository) ListParts(ctx context.Context, projectID, cabinetID string) ([]models.StoredPart, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT p.id, p.project_id, p.cabinet_id, p.seq, p.part_json
        FROM parts p
        JOIN cabinets c ON c.project_id = p.project_id AND c.id = p.cabinet_id
        WHERE p.project_id = ? AND (? = '' OR p.cabinet_id = ?)
        ORDER BY c.created_at, c.rowid, p.seq
    `, projectID, cabinetID, cabinetID)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	parts := []models.StoredPart{}
	for rows.Next() {
		var (
			p    models.StoredPart
			data string
		)
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.CabinetID, &p.Seq, &data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(data), &p.Part); err != nil {
			return nil, fmt.Errorf("decode part %s: %w", p.ID, err)
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// isConstraint сообщает, что вставка нарушила первичный ключ или UNIQUE.
func isConstraint(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	code := serr.ExtendedCode()
	return code == sqlite3.CONSTRAINT_PRIMARYKEY || code == sqlite3.CONSTRAINT_UNIQUE
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context, migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000&_pragma=foreign_keys(1)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
