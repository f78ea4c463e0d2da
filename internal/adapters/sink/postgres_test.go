package sink

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akhilc162005/anti-location-tracker/internal/domain"
)

func TestPostgresArchiveBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	archive := NewPostgresArchive(db, "location_samples")
	ts := time.Now()

	samples := []domain.LocationSample{
		{
			Name:       "New York",
			Country:    "USA",
			Timestamp:  ts,
			Lat:        40.7128,
			Lon:        -74.0060,
			AccuracyM:  5.5,
			SpeedKPH:   30.2,
			HeadingDeg: 180,
			AltitudeM:  12,
		},
	}

	expectedQuery := regexp.QuoteMeta("INSERT INTO location_samples (name, country, ts, lat, lon, accuracy_m, speed_kph, heading_deg, altitude_m) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT (name, ts) DO NOTHING")
	mock.ExpectExec(expectedQuery).
		WithArgs("New York", "USA", ts, 40.7128, -74.0060, 5.5, 30.2, 180.0, 12.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := archive.ArchiveBatch(samples); err != nil {
		t.Fatalf("archive batch: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresArchiveMultiRowPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	archive := NewPostgresArchive(db, "location_samples")
	ts := time.Now()

	samples := []domain.LocationSample{
		{Name: "London", Country: "UK", Timestamp: ts, Lat: 51.5074, Lon: -0.1278},
		{Name: "Tokyo", Country: "Japan", Timestamp: ts, Lat: 35.6762, Lon: 139.6503},
	}

	mock.ExpectExec(regexp.QuoteMeta("($1,$2,$3,$4,$5,$6,$7,$8,$9),($10,$11,$12,$13,$14,$15,$16,$17,$18)")).
		WithArgs(
			"London", "UK", ts, 51.5074, -0.1278, 0.0, 0.0, 0.0, 0.0,
			"Tokyo", "Japan", ts, 35.6762, 139.6503, 0.0, 0.0, 0.0, 0.0,
		).
		WillReturnResult(sqlmock.NewResult(2, 2))

	if err := archive.ArchiveBatch(samples); err != nil {
		t.Fatalf("archive batch: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresArchiveEmptyBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	archive := NewPostgresArchive(db, "location_samples")
	if err := archive.ArchiveBatch(nil); err != nil {
		t.Fatalf("expected nil error for empty batch, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
