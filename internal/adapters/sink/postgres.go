package sink

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
	"github.com/akhilc162005/anti-location-tracker/internal/ports"
)

// PostgresArchive stores raw location fixes in a Postgres table for later
// analysis. Inserts are idempotent on (name, ts).
type PostgresArchive struct {
	db        *sql.DB
	tableName string
}

func NewPostgresArchive(db *sql.DB, table string) *PostgresArchive {
	return &PostgresArchive{db: db, tableName: table}
}

func (p *PostgresArchive) Name() string { return "postgres" }

func (p *PostgresArchive) ArchiveBatch(samples []domain.LocationSample) error {
	if len(samples) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(p.tableName)
	b.WriteString(" (name, country, ts, lat, lon, accuracy_m, speed_kph, heading_deg, altitude_m) VALUES ")

	args := make([]any, 0, len(samples)*9)
	for i, s := range samples {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			len(args)+1, len(args)+2, len(args)+3, len(args)+4, len(args)+5,
			len(args)+6, len(args)+7, len(args)+8, len(args)+9))

		args = append(args,
			s.Name,
			s.Country,
			s.Timestamp,
			s.Lat,
			s.Lon,
			s.AccuracyM,
			s.SpeedKPH,
			s.HeadingDeg,
			s.AltitudeM,
		)
	}

	b.WriteString(" ON CONFLICT (name, ts) DO NOTHING")

	_, err := p.db.Exec(b.String(), args...)
	return err
}

var _ ports.LocationArchive = (*PostgresArchive)(nil)
