package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danharves/certsched/internal/db"
	"github.com/danharves/certsched/internal/domain"
)

// SQLiteCertificateRepo implements CertificateRepo using a SQLite database.
type SQLiteCertificateRepo struct {
	db db.DBTX
}

// NewSQLiteCertificateRepo creates a new SQLiteCertificateRepo.
func NewSQLiteCertificateRepo(conn db.DBTX) *SQLiteCertificateRepo {
	return &SQLiteCertificateRepo{db: conn}
}

const certificateColumns = `employee_id, license_id, status, days_until_expiry, expiry_date, department, location`

func (r *SQLiteCertificateRepo) Upsert(ctx context.Context, c *domain.CertificateExpiryRecord) error {
	query := `INSERT INTO certificate_records (` + certificateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id, license_id) DO UPDATE SET
			status = excluded.status,
			days_until_expiry = excluded.days_until_expiry,
			expiry_date = excluded.expiry_date,
			department = excluded.department,
			location = excluded.location`
	_, err := r.db.ExecContext(ctx, query,
		c.EmployeeID,
		c.LicenseID,
		string(c.Status),
		nullableIntToValue(c.DaysUntilExpiry),
		nullableTimeToString(c.ExpiryDate, time.RFC3339),
		c.Department,
		c.Location,
	)
	if err != nil {
		return fmt.Errorf("upserting certificate record: %w", err)
	}
	return nil
}

func (r *SQLiteCertificateRepo) ListByLicense(ctx context.Context, licenseID string) ([]domain.CertificateExpiryRecord, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificate_records
		WHERE license_id = ? ORDER BY employee_id`
	rows, err := r.db.QueryContext(ctx, query, licenseID)
	if err != nil {
		return nil, fmt.Errorf("listing certificates by license: %w", err)
	}
	defer rows.Close()
	return scanCertificates(rows)
}

func (r *SQLiteCertificateRepo) List(ctx context.Context) ([]domain.CertificateExpiryRecord, error) {
	query := `SELECT ` + certificateColumns + ` FROM certificate_records
		ORDER BY license_id, employee_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing certificate records: %w", err)
	}
	defer rows.Close()
	return scanCertificates(rows)
}

func scanCertificates(rows *sql.Rows) ([]domain.CertificateExpiryRecord, error) {
	var records []domain.CertificateExpiryRecord
	for rows.Next() {
		var c domain.CertificateExpiryRecord
		var status string
		var days sql.NullInt64
		var expiry sql.NullString
		if err := rows.Scan(&c.EmployeeID, &c.LicenseID, &status, &days, &expiry, &c.Department, &c.Location); err != nil {
			return nil, fmt.Errorf("scanning certificate record: %w", err)
		}
		c.Status = domain.CertStatus(status)
		c.DaysUntilExpiry = nullableInt(days)
		c.ExpiryDate = parseNullableTime(expiry, time.RFC3339)
		records = append(records, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating certificate records: %w", err)
	}
	return records, nil
}
