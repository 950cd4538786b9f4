package queries

import (
	"context"
	"database/sql"
	"fmt"

	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// IntegrityAuditQueryHandler cross-checks the compartments and packages tables.
type IntegrityAuditQueryHandler struct {
	db *gorm.DB
}

func NewIntegrityAuditQueryHandler(db *gorm.DB) IntegrityAuditQueryHandler {
	return IntegrityAuditQueryHandler{db: db}
}

// Handle returns compartment findings ordered by id, followed by package
// findings ordered by id. A consistent database yields an empty slice.
func (h IntegrityAuditQueryHandler) Handle(ctx context.Context, query IntegrityAuditQuery) ([]IntegrityFinding, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	findings := make([]IntegrityFinding, 0)

	compartments, err := h.occupiedWithoutPackage(ctx)
	if err != nil {
		return nil, err
	}
	findings = append(findings, compartments...)

	packages, err := h.packagesOutOfPlace(ctx)
	if err != nil {
		return nil, err
	}
	findings = append(findings, packages...)

	return findings, nil
}

func (h IntegrityAuditQueryHandler) occupiedWithoutPackage(ctx context.Context) ([]IntegrityFinding, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.package_id,
			p.status
		FROM compartments c
		LEFT JOIN packages p ON p.id = c.package_id
		WHERE c.status = ?
			AND (p.id IS NULL OR p.status <> ?)
		ORDER BY c.id
	`, compartment.Occupied.String(), parcel.InLocker.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	findings := make([]IntegrityFinding, 0)
	for rows.Next() {
		var id int64
		var packageID sql.NullInt64
		var packageStatus sql.NullString

		if err = rows.Scan(&id, &packageID, &packageStatus); err != nil {
			return nil, err
		}

		reason := fmt.Sprintf("occupied by missing package %d", packageID.Int64)
		if packageStatus.Valid {
			reason = fmt.Sprintf("occupied by package %d in status %s", packageID.Int64, packageStatus.String)
		}
		findings = append(findings, IntegrityFinding{
			Entity: FindingCompartment,
			ID:     kernel.ID(id),
			Reason: reason,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return findings, nil
}

func (h IntegrityAuditQueryHandler) packagesOutOfPlace(ctx context.Context) ([]IntegrityFinding, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.compartment_id,
			c.id IS NOT NULL
		FROM packages p
		LEFT JOIN compartments c ON c.id = p.compartment_id
		WHERE p.status = ?
			AND (c.id IS NULL OR c.package_id IS DISTINCT FROM p.id)
		ORDER BY p.id
	`, parcel.InLocker.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	findings := make([]IntegrityFinding, 0)
	for rows.Next() {
		var id, compartmentID int64
		var compartmentExists bool

		if err = rows.Scan(&id, &compartmentID, &compartmentExists); err != nil {
			return nil, err
		}

		reason := fmt.Sprintf("compartment %d is missing", compartmentID)
		if compartmentExists {
			reason = fmt.Sprintf("compartment %d does not hold it", compartmentID)
		}
		findings = append(findings, IntegrityFinding{
			Entity: FindingPackage,
			ID:     kernel.ID(id),
			Reason: reason,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return findings, nil
}
