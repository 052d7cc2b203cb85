// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/device-usage-service/internal/domain"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/device"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/person"
	"github.com/jsamuelsen11/device-usage-service/internal/domain/usage"
)

// DeviceResponse represents a single device in HTTP responses.
type DeviceResponse struct {
	ID           int64  `json:"id"`
	SerialNumber string `json:"serialNumber"`
	DeviceName   string `json:"deviceName"`
	DeviceType   string `json:"deviceType"`
	Version      int64  `json:"version"`
}

// DeviceListResponse represents a list of devices in HTTP responses.
type DeviceListResponse struct {
	Devices []DeviceResponse `json:"devices"`
	Count   int              `json:"count"`
}

// DeviceSummaryResponse is a device with the number of usages booked for it.
type DeviceSummaryResponse struct {
	DeviceResponse
	UsageCount int64 `json:"usageCount"`
}

// DeviceSummaryListResponse represents a list of device summaries.
type DeviceSummaryListResponse struct {
	Devices []DeviceSummaryResponse `json:"devices"`
	Count   int                     `json:"count"`
}

// ToDeviceResponse converts a domain Device to an HTTP response DTO.
func ToDeviceResponse(d *device.Device) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID,
		SerialNumber: d.SerialNumber,
		DeviceName:   d.DeviceName,
		DeviceType:   d.Type.String(),
		Version:      d.Version,
	}
}

// ToDeviceListResponse converts domain devices to a list response.
func ToDeviceListResponse(devices []device.Device) DeviceListResponse {
	items := make([]DeviceResponse, len(devices))
	for i := range devices {
		items[i] = ToDeviceResponse(&devices[i])
	}
	return DeviceListResponse{Devices: items, Count: len(items)}
}

// ToDeviceSummaryListResponse converts device summaries to a list response.
func ToDeviceSummaryListResponse(summaries []device.Summary) DeviceSummaryListResponse {
	items := make([]DeviceSummaryResponse, len(summaries))
	for i := range summaries {
		items[i] = DeviceSummaryResponse{
			DeviceResponse: ToDeviceResponse(&summaries[i].Device),
			UsageCount:     summaries[i].UsageCount,
		}
	}
	return DeviceSummaryListResponse{Devices: items, Count: len(items)}
}

// PersonResponse represents a single person in HTTP responses.
type PersonResponse struct {
	ID          int64  `json:"id"`
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MailAddress string `json:"mailAddress"`
	Version     int64  `json:"version"`
}

// PersonListResponse represents a list of people in HTTP responses.
type PersonListResponse struct {
	People []PersonResponse `json:"people"`
	Count  int              `json:"count"`
}

// ToPersonResponse converts a domain Person to an HTTP response DTO.
func ToPersonResponse(p *person.Person) PersonResponse {
	return PersonResponse{
		ID:          p.ID,
		LastName:    p.LastName,
		FirstName:   p.FirstName,
		MailAddress: p.MailAddress,
		Version:     p.Version,
	}
}

// ToPersonListResponse converts domain people to a list response.
func ToPersonListResponse(people []person.Person) PersonListResponse {
	items := make([]PersonResponse, len(people))
	for i := range people {
		items[i] = ToPersonResponse(&people[i])
	}
	return PersonListResponse{People: items, Count: len(items)}
}

// UsageResponse represents a single booking in HTTP responses.
type UsageResponse struct {
	ID              int64       `json:"id"`
	DeviceID        int64       `json:"deviceId"`
	DeviceName      string      `json:"deviceName"`
	PersonID        int64       `json:"personId"`
	PersonFirstName string      `json:"personFirstName"`
	PersonLastName  string      `json:"personLastName"`
	From            domain.Date `json:"from"`
	To              domain.Date `json:"to"`
	Version         int64       `json:"version"`
}

// UsageListResponse represents a list of bookings in HTTP responses.
type UsageListResponse struct {
	Usages []UsageResponse `json:"usages"`
	Count  int             `json:"count"`
}

// ToUsageResponse converts usage details to an HTTP response DTO.
func ToUsageResponse(u *usage.Details) UsageResponse {
	return UsageResponse{
		ID:              u.ID,
		DeviceID:        u.DeviceID,
		DeviceName:      u.DeviceName,
		PersonID:        u.PersonID,
		PersonFirstName: u.PersonFirstName,
		PersonLastName:  u.PersonLastName,
		From:            u.From,
		To:              u.To,
		Version:         u.Version,
	}
}

// ToUsageListResponse converts usage details to a list response.
func ToUsageListResponse(usages []usage.Details) UsageListResponse {
	items := make([]UsageResponse, len(usages))
	for i := range usages {
		items[i] = ToUsageResponse(&usages[i])
	}
	return UsageListResponse{Usages: items, Count: len(items)}
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each dependency name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse summarizes registry results. ready is false when any
// dependency reported an error.
func ToHealthResponse(results map[string]error) (resp HealthResponse, ready bool) {
	resp = HealthResponse{Status: "ready", Checks: make(map[string]string, len(results))}
	ready = true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = "ok"
	}
	if !ready {
		resp.Status = "not_ready"
	}
	return resp, ready
}
