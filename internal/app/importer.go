package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	appctx "github.com/jsamuelsen11/device-usage-service/internal/app/context"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// Compile-time check that Importer implements ports.Importer.
var _ ports.Importer = (*Importer)(nil)

const (
	// seedDateLayout is the dd.MM.yyyy format of the From and To columns.
	seedDateLayout = "02.01.2006"

	seedSeparator = ';'
	seedColumns   = 8
)

// Importer loads historical bookings from a semicolon separated CSV with the
// columns SerialNumber, DeviceName, DeviceType, LastName, FirstName,
// MailAddress, From and To. The first line is a header.
//
// Rows that cannot be parsed or that fail a domain rule are skipped with a
// warning. Storage errors abort the import and roll back every row.
type Importer struct {
	uow     ports.UnitOfWork
	source  ports.SeedSource
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer)

// WithImportMetrics counts imported and skipped rows on m.
func WithImportMetrics(m *telemetry.Metrics) ImporterOption {
	return func(im *Importer) { im.metrics = m }
}

// NewImporter creates an Importer. A nil logger discards output.
func NewImporter(uow ports.UnitOfWork, source ports.SeedSource, logger *slog.Logger, opts ...ImporterOption) *Importer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	im := &Importer{
		uow:    uow,
		source: source,
		logger: logger,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// seedRow is one parsed CSV line.
type seedRow struct {
	serialNumber string
	deviceName   string
	deviceType   device.Type
	lastName     string
	firstName    string
	mailAddress  string
	from         domain.Date
	to           domain.Date
}

// SeedIfEmpty imports the seed source inside one transaction when no device
// is stored yet.
func (im *Importer) SeedIfEmpty(ctx context.Context) (*ports.ImportReport, bool, error) {
	var (
		report *ports.ImportReport
		ran    bool
	)

	err := im.uow.WithinTx(ctx, func(ctx context.Context, repos ports.Repositories) error {
		count, err := repos.Devices.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting devices: %w", err)
		}
		if count > 0 {
			im.logger.InfoContext(ctx, "seed skipped, devices already present", slog.Int64("devices", count))
			return nil
		}

		im.logger.InfoContext(ctx, "seeding from source", slog.String("source", im.source.Describe()))

		rc, err := im.source.Open(ctx)
		if err != nil {
			return fmt.Errorf("opening seed source: %w", err)
		}
		defer func() { _ = rc.Close() }()

		report, err = im.importRows(ctx, repos, rc)
		if err != nil {
			return err
		}
		ran = true
		return nil
	})
	if err != nil {
		im.logger.ErrorContext(ctx, "seed import failed",
			slog.String("operation", "SeedIfEmpty"),
			slog.String("source", im.source.Describe()),
			slog.Any("error", err),
		)
		return nil, false, err
	}

	if ran {
		im.metrics.RecordSeedRows(ctx, report.Rows-report.SkippedRows, report.SkippedRows)
		im.logger.InfoContext(ctx, "seed import finished",
			slog.Int("rows", report.Rows),
			slog.Int("skipped", report.SkippedRows),
			slog.Int("devices", report.DevicesCreated),
			slog.Int("people", report.PeopleCreated),
			slog.Int("usages", report.UsagesCreated),
		)
	}
	return report, ran, nil
}

func (im *Importer) importRows(ctx context.Context, repos ports.Repositories, r io.Reader) (*ports.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.Comma = seedSeparator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	// Devices and people are keyed by serial number and mail address so
	// repeated rows book the entity created by the first one.
	memo := appctx.New(ctx)
	report := &ports.ImportReport{}
	checker := NewPersonUniquenessChecker(repos.People)

	for header := true; ; header = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading seed source: %w", err)
		}
		if header {
			continue
		}
		report.Rows++
		line, _ := reader.FieldPos(0)

		row, err := parseSeedRow(record)
		if err != nil {
			im.skip(ctx, report, line, err)
			continue
		}

		if err := im.importRow(ctx, memo, repos, checker, row, report); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				im.skip(ctx, report, line, err)
				continue
			}
			return nil, fmt.Errorf("importing seed line %d: %w", line, err)
		}
	}

	return report, nil
}

func (im *Importer) importRow(
	ctx context.Context,
	memo *appctx.RequestContext,
	repos ports.Repositories,
	checker person.UniquenessChecker,
	row seedRow,
	report *ports.ImportReport,
) error {
	dev, err := appctx.GetOrFetch(memo, appctx.Key("serial", row.serialNumber), func(ctx context.Context) (*device.Device, error) {
		d, err := device.New(row.serialNumber, row.deviceName, row.deviceType)
		if err != nil {
			return nil, err
		}
		if err := repos.Devices.Create(ctx, d); err != nil {
			return nil, err
		}
		report.DevicesCreated++
		return d, nil
	})
	if err != nil {
		return err
	}

	p, err := appctx.GetOrFetch(memo, appctx.Key("mail", row.mailAddress), func(ctx context.Context) (*person.Person, error) {
		p, err := person.New(ctx, row.lastName, row.firstName, row.mailAddress, checker)
		if err != nil {
			return nil, err
		}
		if err := repos.People.Create(ctx, p); err != nil {
			return nil, err
		}
		report.PeopleCreated++
		return p, nil
	})
	if err != nil {
		return err
	}

	u, err := usage.New(ctx, dev, p, row.from, row.to, repos.Usages, usage.AllowPastDates(true))
	if err != nil {
		return err
	}
	if err := repos.Usages.Create(ctx, u); err != nil {
		return err
	}
	report.UsagesCreated++
	return nil
}

func (im *Importer) skip(ctx context.Context, report *ports.ImportReport, line int, err error) {
	report.SkippedRows++
	im.logger.WarnContext(ctx, "skipping seed row",
		slog.Int("line", line),
		slog.Any("error", err),
	)
}

func parseSeedRow(record []string) (seedRow, error) {
	if len(record) < seedColumns {
		return seedRow{}, fmt.Errorf("expected %d columns, got %d", seedColumns, len(record))
	}

	field := func(i int) string {
		return strings.Trim(strings.TrimSpace(record[i]), `"`)
	}

	deviceType, ok := device.ParseType(field(2))
	if !ok {
		return seedRow{}, fmt.Errorf("unknown device type %q", field(2))
	}

	from, err := domain.ParseDate(seedDateLayout, field(6))
	if err != nil {
		return seedRow{}, fmt.Errorf("parsing from date: %w", err)
	}
	to, err := domain.ParseDate(seedDateLayout, field(7))
	if err != nil {
		return seedRow{}, fmt.Errorf("parsing to date: %w", err)
	}

	return seedRow{
		serialNumber: field(0),
		deviceName:   field(1),
		deviceType:   deviceType,
		lastName:     field(3),
		firstName:    field(4),
		mailAddress:  field(5),
		from:         from,
		to:           to,
	}, nil
}
