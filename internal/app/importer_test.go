package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/storage"
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
	"github.com/jsamuelsen11/device-usage-service/mocks"
)

const seedCSV = `SerialNumber;DeviceName;DeviceType;LastName;FirstName;Mail;From;To
SN-1001;"iPad Air";Tablet;Huber;Anna;anna.huber@example.com;03.03.2025;14.03.2025
SN-1001;"iPad Air";Tablet;Gruber;Max;max.gruber@example.com;15.03.2025;20.03.2025

SN-2001;"Galaxy S24";smartphone;Huber;Anna;anna.huber@example.com;01.04.2025;30.04.2025
SN-1001;"iPad Air";Tablet;Berger;Lena;lena.berger@example.com;20.03.2025;25.03.2025
SN-3001;"ThinkPad";Laptop;Berger;Lena;lena.berger@example.com;01.02.2025;02.02.2025
SN-3001;"ThinkPad";Notebook;Berger;Lena;lena.berger@example.com;2025-02-01;02.02.2025
SN-3001;"ThinkPad";Notebook;Berger;Lena
SN-4001;"X";Notebook;Berger;Lena;lena.berger@example.com;01.02.2025;02.02.2025
`

func newImportStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return store
}

func stringSource(t *testing.T, body string) *mocks.MockSeedSource {
	t.Helper()
	src := mocks.NewMockSeedSource(t)
	src.EXPECT().Describe().Return("test.csv").Maybe()
	src.EXPECT().Open(mock.Anything).RunAndReturn(func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body)), nil
	})
	return src
}

func TestImporter_SeedIfEmpty(t *testing.T) {
	t.Parallel()
	store := newImportStore(t)
	im := NewImporter(store, stringSource(t, seedCSV), discardLogger())

	report, ran, err := im.SeedIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("SeedIfEmpty() error = %v, want nil", err)
	}
	if !ran {
		t.Fatal("SeedIfEmpty() ran = false, want true")
	}

	want := ports.ImportReport{
		Rows:           8,
		SkippedRows:    5,
		DevicesCreated: 2,
		PeopleCreated:  3,
		UsagesCreated:  3,
	}
	if *report != want {
		t.Errorf("SeedIfEmpty() report = %+v, want %+v", *report, want)
	}

	repos := store.Repositories()
	summaries, err := repos.Devices.ListWithUsageCounts(context.Background())
	if err != nil {
		t.Fatalf("ListWithUsageCounts() error = %v", err)
	}
	counts := map[string]int64{}
	for _, s := range summaries {
		counts[s.SerialNumber] = s.UsageCount
	}
	if counts["SN-1001"] != 2 || counts["SN-2001"] != 1 {
		t.Errorf("usage counts = %v, want SN-1001:2 SN-2001:1", counts)
	}

	galaxy, err := repos.Devices.GetBySerialNumber(context.Background(), "SN-2001")
	if err != nil {
		t.Fatalf("GetBySerialNumber() error = %v", err)
	}
	if galaxy.DeviceName != "Galaxy S24" || galaxy.Type != device.TypeSmartPhone {
		t.Errorf("imported device = %+v, want unquoted name and SmartPhone", galaxy)
	}
}

func TestImporter_SkipsWhenDevicesExist(t *testing.T) {
	t.Parallel()
	store := newImportStore(t)

	existing := &device.Device{SerialNumber: "SN-9", DeviceName: "Pixel", Type: device.TypeSmartPhone}
	if err := store.Repositories().Devices.Create(context.Background(), existing); err != nil {
		t.Fatalf("Devices.Create() error = %v", err)
	}

	src := mocks.NewMockSeedSource(t)
	im := NewImporter(store, src, discardLogger())

	report, ran, err := im.SeedIfEmpty(context.Background())
	if err != nil {
		t.Fatalf("SeedIfEmpty() error = %v, want nil", err)
	}
	if ran || report != nil {
		t.Errorf("SeedIfEmpty() = (%v, %v), want (nil, false)", report, ran)
	}
}

func TestImporter_SourceErrorRollsBack(t *testing.T) {
	t.Parallel()
	store := newImportStore(t)

	src := mocks.NewMockSeedSource(t)
	src.EXPECT().Describe().Return("remote").Maybe()
	src.EXPECT().Open(mock.Anything).Return(nil, domain.ErrUnavailable)

	im := NewImporter(store, src, discardLogger())

	_, ran, err := im.SeedIfEmpty(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("SeedIfEmpty() error = %v, want ErrUnavailable", err)
	}
	if ran {
		t.Error("SeedIfEmpty() ran = true, want false")
	}
}

func TestImporter_ReadErrorRollsBack(t *testing.T) {
	t.Parallel()
	store := newImportStore(t)

	errReset := errors.New("connection reset")
	body := "header\nSN-1001;\"iPad Air\";Tablet;Huber;Anna;anna@example.com;03.03.2025;04.03.2025\n"

	src := mocks.NewMockSeedSource(t)
	src.EXPECT().Describe().Return("remote").Maybe()
	src.EXPECT().Open(mock.Anything).Return(io.NopCloser(io.MultiReader(strings.NewReader(body), iotest.ErrReader(errReset))), nil)

	im := NewImporter(store, src, nil)

	if _, _, err := im.SeedIfEmpty(context.Background()); !errors.Is(err, errReset) {
		t.Fatalf("SeedIfEmpty() error = %v, want %v", err, errReset)
	}

	n, err := store.Repositories().Devices.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() = %d after rollback, want 0", n)
	}
}

func TestParseSeedRow(t *testing.T) {
	t.Parallel()

	row, err := parseSeedRow([]string{" SN-1 ", `"Surface Go"`, "TABLET", "Doe", "Jane", "jane@example.com", "28.02.2025", "01.03.2025"})
	if err != nil {
		t.Fatalf("parseSeedRow() error = %v", err)
	}
	if row.serialNumber != "SN-1" || row.deviceName != "Surface Go" || row.deviceType != device.TypeTablet {
		t.Errorf("parseSeedRow() = %+v", row)
	}
	if got := row.to.String(); got != "2025-03-01" {
		t.Errorf("parseSeedRow().to = %s, want 2025-03-01", got)
	}
}
