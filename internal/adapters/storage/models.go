package storage

import (
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
)

type deviceRecord struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	SerialNumber string `gorm:"size:100;not null;uniqueIndex:ux_devices_serial_number"`
	DeviceName   string `gorm:"size:200;not null;index:ix_devices_device_name"`
	DeviceType   string `gorm:"size:20;not null"`
	Version      int64  `gorm:"not null;default:1"`
}

func (deviceRecord) TableName() string { return "devices" }

type personRecord struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	LastName    string `gorm:"size:100;not null;index:ix_people_name,priority:1"`
	FirstName   string `gorm:"size:100;not null;index:ix_people_name,priority:2"`
	MailAddress string `gorm:"size:255;not null;uniqueIndex:ux_people_mail_address"`
	Version     int64  `gorm:"not null;default:1"`
}

func (personRecord) TableName() string { return "people" }

type usageRecord struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	DeviceID int64       `gorm:"not null;index:ix_usages_device_date_range,priority:1"`
	PersonID int64       `gorm:"not null;index:ix_usages_person_id"`
	From     domain.Date `gorm:"column:from_date;type:date;not null;index:ix_usages_device_date_range,priority:2"`
	To       domain.Date `gorm:"column:to_date;type:date;not null;index:ix_usages_device_date_range,priority:3"`
	Version  int64       `gorm:"not null;default:1"`

	// Belongs-to relations exist only to declare the cascading foreign keys.
	Device deviceRecord `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE"`
	Person personRecord `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE"`
}

func (usageRecord) TableName() string { return "usages" }

// deviceCountRow is the scan target of the device-with-usage-count query.
type deviceCountRow struct {
	ID           int64
	SerialNumber string
	DeviceName   string
	DeviceType   string
	Version      int64
	UsageCount   int64
}

// usageDetailsRow is the scan target of the joined usage queries.
type usageDetailsRow struct {
	ID              int64
	DeviceID        int64
	PersonID        int64
	From            domain.Date `gorm:"column:from_date"`
	To              domain.Date `gorm:"column:to_date"`
	Version         int64
	DeviceName      string
	PersonFirstName string
	PersonLastName  string
}

func toDeviceRecord(d *device.Device) deviceRecord {
	return deviceRecord{
		ID:           d.ID,
		SerialNumber: d.SerialNumber,
		DeviceName:   d.DeviceName,
		DeviceType:   d.Type.String(),
		Version:      d.Version,
	}
}

func (r deviceRecord) toDomain() device.Device {
	return device.Device{
		ID:           r.ID,
		SerialNumber: r.SerialNumber,
		DeviceName:   r.DeviceName,
		Type:         device.Type(r.DeviceType),
		Version:      r.Version,
	}
}

func (r deviceCountRow) toDomain() device.Summary {
	return device.Summary{
		Device: device.Device{
			ID:           r.ID,
			SerialNumber: r.SerialNumber,
			DeviceName:   r.DeviceName,
			Type:         device.Type(r.DeviceType),
			Version:      r.Version,
		},
		UsageCount: r.UsageCount,
	}
}

func toPersonRecord(p *person.Person) personRecord {
	return personRecord{
		ID:          p.ID,
		LastName:    p.LastName,
		FirstName:   p.FirstName,
		MailAddress: p.MailAddress,
		Version:     p.Version,
	}
}

func (r personRecord) toDomain() person.Person {
	return person.Person{
		ID:          r.ID,
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MailAddress: r.MailAddress,
		Version:     r.Version,
	}
}

func toUsageRecord(u *usage.Usage) usageRecord {
	return usageRecord{
		ID:       u.ID,
		DeviceID: u.DeviceID,
		PersonID: u.PersonID,
		From:     u.From,
		To:       u.To,
		Version:  u.Version,
	}
}

func (r usageDetailsRow) toDomain() usage.Details {
	return usage.Details{
		Usage: usage.Usage{
			ID:       r.ID,
			DeviceID: r.DeviceID,
			PersonID: r.PersonID,
			From:     r.From,
			To:       r.To,
			Version:  r.Version,
		},
		DeviceName:      r.DeviceName,
		PersonFirstName: r.PersonFirstName,
		PersonLastName:  r.PersonLastName,
	}
}
